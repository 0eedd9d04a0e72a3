package catalog

import (
	"context"

	"github.com/matbaa/storefront-service/internal/catalog/dto"
	"github.com/matbaa/storefront-service/internal/model"
)

type UseCase interface {
	GetProduct(ctx context.Context, id int64) (*model.Product, error)
	ListProducts(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
	SyncProduct(ctx context.Context, p *model.Product)
}
