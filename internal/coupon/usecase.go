package coupon

import (
	"context"

	"github.com/matbaa/storefront-service/internal/coupon/dto"
)

type UseCase interface {
	// Apply is a read-only price check; it never consumes a use.
	Apply(ctx context.Context, code string, orderTotal float64) (*dto.ApplyResult, error)
	// Redeem consumes one use when the code passes the same checks.
	Redeem(ctx context.Context, code string, orderTotal float64) (*dto.ApplyResult, error)
}
