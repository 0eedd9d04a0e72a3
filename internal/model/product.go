package model

import "time"

type Product struct {
	ID          int64     `db:"id" json:"id"`
	CategoryID  *int64    `db:"category_id" json:"category_id"`
	Slug        string    `db:"slug" json:"slug"`
	Name        string    `db:"name" json:"name"`
	Description *string   `db:"description" json:"description"`
	ImageURL    *string   `db:"image_url" json:"image_url"`
	BasePrice   float64   `db:"base_price" json:"base_price"`
	RatingAvg   float64   `db:"rating_avg" json:"rating_avg"`
	RatingCount int       `db:"rating_count" json:"rating_count"`
	IsActive    bool      `db:"is_active" json:"is_active"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type Category struct {
	ID        int64   `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Slug      string  `db:"slug" json:"slug"`
	ImageURL  *string `db:"image_url" json:"image_url"`
	SortOrder int     `db:"sort_order" json:"sort_order"`
	IsActive  bool    `db:"is_active" json:"is_active"`
}
