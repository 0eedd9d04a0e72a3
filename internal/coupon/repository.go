package coupon

import (
	"context"

	"github.com/matbaa/storefront-service/internal/model"
)

type Repository interface {
	FindByCode(ctx context.Context, code string) (*model.Coupon, error)
	IncrementUsage(ctx context.Context, id int64) error
}
