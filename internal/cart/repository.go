package cart

import (
	"context"

	"github.com/matbaa/storefront-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, item *model.CartItem) error
	FindByID(ctx context.Context, id string) (*model.CartItem, error)
	FindByUser(ctx context.Context, userID string) ([]model.CartItem, error)
	Update(ctx context.Context, item *model.CartItem) error
	Delete(ctx context.Context, id string) error
}

// EventPublisher decouples the usecase from the kafka writer; nil is a
// valid publisher (events are best-effort).
type EventPublisher interface {
	Publish(ctx context.Context, key, value []byte) error
}
