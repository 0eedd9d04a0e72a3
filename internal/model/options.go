package model

// Option schema for a single product. The schema is server-authoritative
// and read-only to the configurator; option groups are derived from the
// flat Options list, never stored.

type OptionSchema struct {
	Sizes           []Size           `json:"sizes"`
	Colors          []Color          `json:"colors"`
	Materials       []Material       `json:"materials"`
	Options         []OptionRow      `json:"options"`
	PrintingMethods []PrintingMethod `json:"printing_methods"`
	PrintLocations  []PrintLocation  `json:"print_locations"`
}

type Size struct {
	ID        int64      `db:"id" json:"id"`
	ProductID int64      `db:"product_id" json:"-"`
	Name      string     `db:"name" json:"name"`
	SortOrder int        `db:"sort_order" json:"-"`
	Tiers     []SizeTier `db:"-" json:"tiers"`
}

// SizeTier is a quantity bracket for a size. TotalPrice <= 0 means the
// backend did not precompute a total and quantity*unit applies.
type SizeTier struct {
	ID           int64   `db:"id" json:"id"`
	SizeID       int64   `db:"size_id" json:"-"`
	Quantity     int64   `db:"quantity" json:"quantity"`
	PricePerUnit float64 `db:"price_per_unit" json:"price_per_unit"`
	TotalPrice   float64 `db:"total_price" json:"total_price"`
}

type Color struct {
	ID        int64   `db:"id" json:"id"`
	ProductID int64   `db:"product_id" json:"-"`
	Name      string  `db:"name" json:"name"`
	HexCode   *string `db:"hex_code" json:"hex_code"`
}

type Material struct {
	ID              int64   `db:"id" json:"id"`
	ProductID       int64   `db:"product_id" json:"-"`
	Name            string  `db:"name" json:"name"`
	AdditionalPrice float64 `db:"additional_price" json:"additional_price"`
}

// OptionRow is one selectable value inside a named group. Rows sharing an
// OptionName form the group. IsOneTime, when set, overrides the textual
// design-service detection for per-order pricing.
type OptionRow struct {
	ID              int64   `db:"id" json:"id"`
	ProductID       int64   `db:"product_id" json:"-"`
	OptionName      string  `db:"option_name" json:"option_name"`
	OptionValue     string  `db:"option_value" json:"option_value"`
	AdditionalPrice float64 `db:"additional_price" json:"additional_price"`
	IsRequired      bool    `db:"is_required" json:"is_required"`
	IsOneTime       *bool   `db:"is_one_time" json:"is_one_time,omitempty"`
}

type PrintingMethod struct {
	ID        int64   `db:"id" json:"id"`
	ProductID int64   `db:"product_id" json:"-"`
	Name      string  `db:"name" json:"name"`
	BasePrice float64 `db:"base_price" json:"base_price"`
}

type PrintLocation struct {
	ID        int64  `db:"id" json:"id"`
	ProductID int64  `db:"product_id" json:"-"`
	Name      string `db:"name" json:"name"`
	Type      string `db:"type" json:"type"`
}
