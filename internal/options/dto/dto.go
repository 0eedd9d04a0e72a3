package dto

import "github.com/matbaa/storefront-service/internal/configurator"

// SelectionInput is the wire shape of a client selection. Field names
// match what the storefront form submits; the legacy "اختر" placeholder
// is accepted and normalized.
type SelectionInput struct {
	Size           string            `json:"size"`
	SizeTierID     *int64            `json:"size_tier_id"`
	Color          string            `json:"color"`
	Material       string            `json:"material"`
	OptionGroups   map[string]string `json:"optionGroups"`
	PrintingMethod string            `json:"printing_method"`
	PrintLocations []string          `json:"print_locations"`
}

// QuoteResult is the server-side verdict on a selection: completeness,
// the price breakdown, and both submission payloads.
type QuoteResult struct {
	IsValid bool     `json:"is_valid"`
	Missing []string `json:"missing"`

	Base   float64 `json:"base"`
	Extras float64 `json:"extras"`
	Total  float64 `json:"total"`

	IDs             configurator.IDsPayload     `json:"ids"`
	SelectedOptions []configurator.PricedOption `json:"selected_options"`

	// Present only when the chosen size carries quantity tiers.
	Quantity *int64 `json:"quantity,omitempty"`
}
