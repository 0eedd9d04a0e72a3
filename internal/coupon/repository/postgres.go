package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/matbaa/storefront-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindByCode(ctx context.Context, code string) (*model.Coupon, error) {
	var coupon model.Coupon
	err := r.DB.GetContext(ctx, &coupon,
		`SELECT * FROM coupons WHERE UPPER(code) = $1 LIMIT 1`,
		strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &coupon, nil
}

func (r *PGRepository) IncrementUsage(ctx context.Context, id int64) error {
	_, err := r.DB.ExecContext(ctx,
		`UPDATE coupons SET used_count = used_count + 1 WHERE id = $1`, id)
	return err
}
