package model

import "time"

type Coupon struct {
	ID            int64      `db:"id" json:"id"`
	Code          string     `db:"code" json:"code"`
	DiscountType  string     `db:"discount_type" json:"discount_type"` // "percent" or "fixed"
	DiscountValue float64    `db:"discount_value" json:"discount_value"`
	MinOrderTotal float64    `db:"min_order_total" json:"min_order_total"`
	MaxUses       int        `db:"max_uses" json:"max_uses"` // 0 = unlimited
	UsedCount     int        `db:"used_count" json:"used_count"`
	StartsAt      *time.Time `db:"starts_at" json:"starts_at"`
	ExpiresAt     *time.Time `db:"expires_at" json:"expires_at"`
	IsActive      bool       `db:"is_active" json:"is_active"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
}
