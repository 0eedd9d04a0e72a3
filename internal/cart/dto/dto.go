package dto

import (
	"github.com/matbaa/storefront-service/internal/model"
	optionsdto "github.com/matbaa/storefront-service/internal/options/dto"
)

type AddItemInput struct {
	UserID    string
	ProductID int64
	Selection *optionsdto.SelectionInput
}

type UpdateItemInput struct {
	UserID    string
	ItemID    string
	Selection *optionsdto.SelectionInput
}

// SavedOptions is what the edit-mode form needs to restore a previously
// persisted configuration: ids resolved back to display names plus the
// stored billable option rows.
type SavedOptions struct {
	ProductID      int64                  `json:"product_id"`
	Size           string                 `json:"size"`
	Color          string                 `json:"color"`
	Material       string                 `json:"material"`
	PrintingMethod string                 `json:"printing_method"`
	PrintLocations []string               `json:"print_locations"`
	Quantity       *int64                 `json:"quantity,omitempty"`
	SelectedOpts   []model.CartItemOption `json:"selected_options"`
}
