package options

import (
	"context"

	"github.com/matbaa/storefront-service/internal/model"
	"github.com/matbaa/storefront-service/internal/options/dto"
)

type UseCase interface {
	GetSchema(ctx context.Context, productID int64) (*model.OptionSchema, error)
	Quote(ctx context.Context, productID int64, input *dto.SelectionInput) (*dto.QuoteResult, error)
	InvalidateSchema(ctx context.Context, productID int64) error
}
