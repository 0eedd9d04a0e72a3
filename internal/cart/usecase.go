package cart

import (
	"context"

	"github.com/matbaa/storefront-service/internal/cart/dto"
	"github.com/matbaa/storefront-service/internal/model"
)

type UseCase interface {
	AddItem(ctx context.Context, input *dto.AddItemInput) (*model.CartItem, error)
	UpdateItem(ctx context.Context, input *dto.UpdateItemInput) (*model.CartItem, error)
	ListItems(ctx context.Context, userID string) ([]model.CartItem, error)
	GetItemOptions(ctx context.Context, userID, itemID string) (*dto.SavedOptions, error)
	RemoveItem(ctx context.Context, userID, itemID string) error
}
