package model

import "github.com/lib/pq"

type CartItem struct {
	BaseModel
	UserID           string        `db:"user_id" json:"user_id"`
	ProductID        int64         `db:"product_id" json:"product_id"`
	SizeID           *int64        `db:"size_id" json:"size_id"`
	ColorID          *int64        `db:"color_id" json:"color_id"`
	MaterialID       *int64        `db:"material_id" json:"material_id"`
	PrintingMethodID *int64        `db:"printing_method_id" json:"printing_method_id"`
	PrintLocationIDs pq.Int64Array `db:"print_location_ids" json:"print_locations"`
	Quantity         *int64        `db:"quantity" json:"quantity,omitempty"`
	BasePrice        float64       `db:"base_price" json:"base_price"`
	ExtrasPrice      float64       `db:"extras_price" json:"extras_price"`
	TotalPrice       float64       `db:"total_price" json:"total_price"`

	// Line-item option rows, stored in cart_item_options.
	SelectedOptions []CartItemOption `db:"-" json:"selected_options"`
}

type CartItemOption struct {
	ID              int64   `db:"id" json:"-"`
	CartItemID      string  `db:"cart_item_id" json:"-"`
	OptionName      string  `db:"option_name" json:"option_name"`
	OptionValue     string  `db:"option_value" json:"option_value"`
	AdditionalPrice float64 `db:"additional_price" json:"additional_price"`
}
