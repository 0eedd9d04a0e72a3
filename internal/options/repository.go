package options

import (
	"context"

	"github.com/matbaa/storefront-service/internal/model"
)

type Repository interface {
	ProductExists(ctx context.Context, productID int64) (bool, error)
	FindSchema(ctx context.Context, productID int64) (*model.OptionSchema, error)
}
