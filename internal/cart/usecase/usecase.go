package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/matbaa/storefront-service/internal/cart"
	"github.com/matbaa/storefront-service/internal/cart/dto"
	"github.com/matbaa/storefront-service/internal/model"
	"github.com/matbaa/storefront-service/internal/options"
	optionsdto "github.com/matbaa/storefront-service/internal/options/dto"
	optionsUC "github.com/matbaa/storefront-service/internal/options/usecase"
	"github.com/matbaa/storefront-service/pkg/logger"
)

var (
	ErrItemNotFound = errors.New("cart item not found")
	ErrForbidden    = errors.New("cart item belongs to another user")
)

// IncompleteSelectionError carries the missing-field labels so the
// handler can present the full list to the customer.
type IncompleteSelectionError struct {
	Missing []string
}

func (e *IncompleteSelectionError) Error() string {
	return "incomplete selection"
}

type cartUseCase struct {
	repo      cart.Repository
	options   options.UseCase
	publisher cart.EventPublisher
	logger    logger.ZapLogger
}

func NewCartUseCase(repo cart.Repository, opts options.UseCase, publisher cart.EventPublisher, log logger.ZapLogger) cart.UseCase {
	return &cartUseCase{
		repo:      repo,
		options:   opts,
		publisher: publisher,
		logger:    log,
	}
}

func (uc *cartUseCase) AddItem(ctx context.Context, input *dto.AddItemInput) (*model.CartItem, error) {
	quote, err := uc.options.Quote(ctx, input.ProductID, input.Selection)
	if err != nil {
		return nil, err
	}
	if !quote.IsValid {
		return nil, &IncompleteSelectionError{Missing: quote.Missing}
	}

	now := time.Now()
	item := &model.CartItem{
		BaseModel: model.BaseModel{
			ID:        uuid.New().String(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:    input.UserID,
		ProductID: input.ProductID,
	}
	applyQuote(item, quote)

	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}

	go uc.publishSaved(context.Background(), "CartItemAdded", item)
	return item, nil
}

func (uc *cartUseCase) UpdateItem(ctx context.Context, input *dto.UpdateItemInput) (*model.CartItem, error) {
	item, err := uc.ownedItem(ctx, input.UserID, input.ItemID)
	if err != nil {
		return nil, err
	}

	quote, err := uc.options.Quote(ctx, item.ProductID, input.Selection)
	if err != nil {
		return nil, err
	}
	if !quote.IsValid {
		return nil, &IncompleteSelectionError{Missing: quote.Missing}
	}

	applyQuote(item, quote)
	item.UpdatedAt = time.Now()

	if err := uc.repo.Update(ctx, item); err != nil {
		return nil, err
	}

	go uc.publishSaved(context.Background(), "CartItemUpdated", item)
	return item, nil
}

func (uc *cartUseCase) ListItems(ctx context.Context, userID string) ([]model.CartItem, error) {
	return uc.repo.FindByUser(ctx, userID)
}

// GetItemOptions resolves the stored ids back to display names so the
// form can restore the saved configuration. Stale ids (schema rows
// removed since the item was saved) resolve to empty and the form falls
// back to its legacy-row restore path.
func (uc *cartUseCase) GetItemOptions(ctx context.Context, userID, itemID string) (*dto.SavedOptions, error) {
	item, err := uc.ownedItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}

	schema, err := uc.options.GetSchema(ctx, item.ProductID)
	if err != nil {
		if errors.Is(err, optionsUC.ErrProductNotFound) {
			schema = &model.OptionSchema{}
		} else {
			return nil, err
		}
	}

	saved := &dto.SavedOptions{
		ProductID:    item.ProductID,
		Quantity:     item.Quantity,
		SelectedOpts: item.SelectedOptions,
	}
	if saved.SelectedOpts == nil {
		saved.SelectedOpts = []model.CartItemOption{}
	}

	if item.SizeID != nil {
		for _, s := range schema.Sizes {
			if s.ID == *item.SizeID {
				saved.Size = s.Name
				break
			}
		}
	}
	if item.ColorID != nil {
		for _, c := range schema.Colors {
			if c.ID == *item.ColorID {
				saved.Color = c.Name
				break
			}
		}
	}
	if item.MaterialID != nil {
		for _, m := range schema.Materials {
			if m.ID == *item.MaterialID {
				saved.Material = m.Name
				break
			}
		}
	}
	if item.PrintingMethodID != nil {
		for _, pm := range schema.PrintingMethods {
			if pm.ID == *item.PrintingMethodID {
				saved.PrintingMethod = pm.Name
				break
			}
		}
	}
	for _, locID := range item.PrintLocationIDs {
		for _, pl := range schema.PrintLocations {
			if pl.ID == locID {
				saved.PrintLocations = append(saved.PrintLocations, pl.Name)
				break
			}
		}
	}

	return saved, nil
}

func (uc *cartUseCase) RemoveItem(ctx context.Context, userID, itemID string) error {
	if _, err := uc.ownedItem(ctx, userID, itemID); err != nil {
		return err
	}
	return uc.repo.Delete(ctx, itemID)
}

func (uc *cartUseCase) ownedItem(ctx context.Context, userID, itemID string) (*model.CartItem, error) {
	item, err := uc.repo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	if item.UserID != userID {
		return nil, ErrForbidden
	}
	return item, nil
}

// applyQuote copies the configurator's verdict onto the line item.
func applyQuote(item *model.CartItem, quote *optionsdto.QuoteResult) {
	item.SizeID = quote.IDs.SizeID
	item.ColorID = quote.IDs.ColorID
	item.MaterialID = quote.IDs.MaterialID
	item.PrintingMethodID = quote.IDs.PrintingMethodID
	item.PrintLocationIDs = pq.Int64Array(quote.IDs.PrintLocations)
	item.Quantity = quote.Quantity
	item.BasePrice = quote.Base
	item.ExtrasPrice = quote.Extras
	item.TotalPrice = quote.Total

	item.SelectedOptions = make([]model.CartItemOption, 0, len(quote.SelectedOptions))
	for _, opt := range quote.SelectedOptions {
		item.SelectedOptions = append(item.SelectedOptions, model.CartItemOption{
			CartItemID:      item.ID,
			OptionName:      opt.OptionName,
			OptionValue:     opt.OptionValue,
			AdditionalPrice: opt.AdditionalPrice,
		})
	}
}

type cartItemEvent struct {
	EventID   string               `json:"event_id"`
	EventType string               `json:"event_type"`
	Payload   cartItemEventPayload `json:"payload"`
	Timestamp time.Time            `json:"timestamp"`
}

type cartItemEventPayload struct {
	CartItemID string  `json:"cart_item_id"`
	UserID     string  `json:"user_id"`
	ProductID  int64   `json:"product_id"`
	TotalPrice float64 `json:"total_price"`
}

func (uc *cartUseCase) publishSaved(ctx context.Context, eventType string, item *model.CartItem) {
	if uc.publisher == nil {
		return
	}

	event := cartItemEvent{
		EventID:   uuid.New().String(),
		EventType: eventType,
		Payload: cartItemEventPayload{
			CartItemID: item.ID,
			UserID:     item.UserID,
			ProductID:  item.ProductID,
			TotalPrice: item.TotalPrice,
		},
		Timestamp: time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	if err := uc.publisher.Publish(ctx, []byte(item.ID), data); err != nil {
		uc.logger.Error("failed to publish cart event",
			zap.String("cart_item_id", item.ID),
			zap.Error(err),
		)
	}
}
