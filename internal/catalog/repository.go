package catalog

import (
	"context"

	"github.com/matbaa/storefront-service/internal/catalog/dto"
	"github.com/matbaa/storefront-service/internal/model"
)

type Repository interface {
	FindByID(ctx context.Context, id int64) (*model.Product, error)
	FindAll(ctx context.Context, filters *dto.ProductFilters) ([]model.Product, int, error)
	FindCategories(ctx context.Context) ([]model.Category, error)
}
