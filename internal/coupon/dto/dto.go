package dto

// ApplyResult mirrors the storefront's coupon response: a status plus a
// human message, with the discount terms echoed back on success.
type ApplyResult struct {
	Status        string  `json:"status"`
	Message       string  `json:"message"`
	DiscountType  string  `json:"discount_type,omitempty"`
	DiscountValue float64 `json:"discount_value,omitempty"`
	NewTotal      float64 `json:"new_total,omitempty"`
}
