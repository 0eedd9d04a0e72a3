package review

import (
	"context"

	"github.com/matbaa/storefront-service/internal/model"
)

type Repository interface {
	FindByProduct(ctx context.Context, productID int64, limit, offset int) ([]model.Review, error)
	Create(ctx context.Context, review *model.Review) error
	// UpdateProductRating recomputes the denormalized aggregate on the
	// product row from the review table.
	UpdateProductRating(ctx context.Context, productID int64) error
}
