package review

import (
	"context"

	"github.com/matbaa/storefront-service/internal/model"
	"github.com/matbaa/storefront-service/internal/review/dto"
)

type UseCase interface {
	ListByProduct(ctx context.Context, productID int64, page, pageSize int) ([]model.Review, error)
	Create(ctx context.Context, input *dto.CreateReviewInput) (*model.Review, error)
}
