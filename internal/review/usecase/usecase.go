package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/matbaa/storefront-service/internal/catalog"
	"github.com/matbaa/storefront-service/internal/model"
	"github.com/matbaa/storefront-service/internal/review"
	"github.com/matbaa/storefront-service/internal/review/dto"
	"github.com/matbaa/storefront-service/pkg/logger"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrEmptyComment    = errors.New("comment is required")
)

type reviewUseCase struct {
	repo    review.Repository
	catalog catalog.UseCase
	logger  logger.ZapLogger
}

func NewReviewUseCase(repo review.Repository, cat catalog.UseCase, log logger.ZapLogger) review.UseCase {
	return &reviewUseCase{
		repo:    repo,
		catalog: cat,
		logger:  log,
	}
}

func (uc *reviewUseCase) ListByProduct(ctx context.Context, productID int64, page, pageSize int) ([]model.Review, error) {
	product, err := uc.catalog.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return uc.repo.FindByProduct(ctx, productID, pageSize, (page-1)*pageSize)
}

func (uc *reviewUseCase) Create(ctx context.Context, input *dto.CreateReviewInput) (*model.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, ErrInvalidRating
	}
	if strings.TrimSpace(input.Comment) == "" {
		return nil, ErrEmptyComment
	}

	product, err := uc.catalog.GetProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}

	now := time.Now()
	rev := &model.Review{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		ProductID: input.ProductID,
		UserID:    input.UserID,
		UserName:  input.UserName,
		Rating:    input.Rating,
		Comment:   strings.TrimSpace(input.Comment),
	}

	if err := uc.repo.Create(ctx, rev); err != nil {
		return nil, err
	}

	// The denormalized aggregate feeds the listing cards; a failed
	// refresh only leaves it stale until the next review lands.
	if err := uc.repo.UpdateProductRating(ctx, input.ProductID); err != nil {
		uc.logger.Warn("failed to refresh product rating",
			zap.Int64("product_id", input.ProductID),
			zap.Error(err),
		)
	}

	return rev, nil
}
