package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdto "github.com/matbaa/storefront-service/internal/catalog/dto"
	"github.com/matbaa/storefront-service/internal/model"
	"github.com/matbaa/storefront-service/internal/review/dto"
	"github.com/matbaa/storefront-service/pkg/logger"
)

type fakeReviewRepo struct {
	reviews       []model.Review
	lastLimit     int
	lastOffset    int
	ratingRefresh int
}

func (r *fakeReviewRepo) FindByProduct(_ context.Context, productID int64, limit, offset int) ([]model.Review, error) {
	r.lastLimit = limit
	r.lastOffset = offset
	var out []model.Review
	for _, rev := range r.reviews {
		if rev.ProductID == productID {
			out = append(out, rev)
		}
	}
	return out, nil
}

func (r *fakeReviewRepo) Create(_ context.Context, review *model.Review) error {
	r.reviews = append(r.reviews, *review)
	return nil
}

func (r *fakeReviewRepo) UpdateProductRating(_ context.Context, _ int64) error {
	r.ratingRefresh++
	return nil
}

type fakeCatalog struct{}

func (c *fakeCatalog) GetProduct(_ context.Context, id int64) (*model.Product, error) {
	if id == 7 {
		return &model.Product{ID: 7}, nil
	}
	return nil, nil
}

func (c *fakeCatalog) ListProducts(_ context.Context, _ *catalogdto.ProductFilters) ([]model.Product, int, error) {
	return nil, 0, nil
}

func (c *fakeCatalog) ListCategories(_ context.Context) ([]model.Category, error) {
	return nil, nil
}

func (c *fakeCatalog) SyncProduct(_ context.Context, _ *model.Product) {}

func TestCreateReviewValidations(t *testing.T) {
	uc := NewReviewUseCase(&fakeReviewRepo{}, &fakeCatalog{}, logger.NewNop())

	_, err := uc.Create(context.Background(), &dto.CreateReviewInput{
		ProductID: 7, UserID: "u1", UserName: "سارة", Rating: 6, Comment: "جيد",
	})
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = uc.Create(context.Background(), &dto.CreateReviewInput{
		ProductID: 7, UserID: "u1", UserName: "سارة", Rating: 4, Comment: "   ",
	})
	assert.ErrorIs(t, err, ErrEmptyComment)

	_, err = uc.Create(context.Background(), &dto.CreateReviewInput{
		ProductID: 999, UserID: "u1", UserName: "سارة", Rating: 4, Comment: "جيد",
	})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCreateReviewRefreshesRating(t *testing.T) {
	repo := &fakeReviewRepo{}
	uc := NewReviewUseCase(repo, &fakeCatalog{}, logger.NewNop())

	rev, err := uc.Create(context.Background(), &dto.CreateReviewInput{
		ProductID: 7, UserID: "u1", UserName: "سارة", Rating: 5, Comment: " ممتاز ",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, rev.ID)
	assert.Equal(t, "ممتاز", rev.Comment)
	assert.Equal(t, 1, repo.ratingRefresh)
}

func TestListByProductPaging(t *testing.T) {
	repo := &fakeReviewRepo{}
	uc := NewReviewUseCase(repo, &fakeCatalog{}, logger.NewNop())

	_, err := uc.ListByProduct(context.Background(), 7, 3, 10)
	require.NoError(t, err)
	assert.Equal(t, 10, repo.lastLimit)
	assert.Equal(t, 20, repo.lastOffset)

	// out-of-range inputs fall back to defaults
	_, err = uc.ListByProduct(context.Background(), 7, 0, 500)
	require.NoError(t, err)
	assert.Equal(t, 20, repo.lastLimit)
	assert.Equal(t, 0, repo.lastOffset)

	_, err = uc.ListByProduct(context.Background(), 404, 1, 10)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
