package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/matbaa/storefront-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindByProduct(ctx context.Context, productID int64, limit, offset int) ([]model.Review, error) {
	var reviews []model.Review
	err := r.DB.SelectContext(ctx, &reviews,
		`SELECT * FROM reviews WHERE product_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`,
		productID, limit, offset)
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *PGRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
        INSERT INTO reviews (id, product_id, user_id, user_name, rating, comment, is_verified, created_at, updated_at)
        VALUES (:id, :product_id, :user_id, :user_name, :rating, :comment, :is_verified, :created_at, :updated_at)
    `
	_, err := r.DB.NamedExecContext(ctx, query, review)
	return err
}

func (r *PGRepository) UpdateProductRating(ctx context.Context, productID int64) error {
	query := `
        UPDATE products
        SET rating_avg = agg.avg_rating,
            rating_count = agg.cnt
        FROM (
            SELECT COALESCE(AVG(rating), 0) AS avg_rating, COUNT(*) AS cnt
            FROM reviews
            WHERE product_id = $1
        ) AS agg
        WHERE products.id = $1
    `
	_, err := r.DB.ExecContext(ctx, query, productID)
	return err
}
