package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/matbaa/storefront-service/internal/model"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, item *model.CartItem) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        INSERT INTO cart_items (
            id, user_id, product_id, size_id, color_id, material_id,
            printing_method_id, print_location_ids, quantity,
            base_price, extras_price, total_price, created_at, updated_at
        )
        VALUES (
            :id, :user_id, :product_id, :size_id, :color_id, :material_id,
            :printing_method_id, :print_location_ids, :quantity,
            :base_price, :extras_price, :total_price, :created_at, :updated_at
        )
    `
	if _, err := tx.NamedExecContext(ctx, query, item); err != nil {
		return err
	}

	if err := insertOptions(ctx, tx, item); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.CartItem, error) {
	var item model.CartItem
	err := r.DB.GetContext(ctx, &item, `SELECT * FROM cart_items WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	err = r.DB.SelectContext(ctx, &item.SelectedOptions,
		`SELECT * FROM cart_item_options WHERE cart_item_id = $1 ORDER BY id`, id)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PGRepository) FindByUser(ctx context.Context, userID string) ([]model.CartItem, error) {
	var items []model.CartItem
	err := r.DB.SelectContext(ctx, &items,
		`SELECT * FROM cart_items WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}

	for i := range items {
		err = r.DB.SelectContext(ctx, &items[i].SelectedOptions,
			`SELECT * FROM cart_item_options WHERE cart_item_id = $1 ORDER BY id`, items[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return items, nil
}

// Update rewrites the item row and replaces its option rows; the two
// stay consistent inside one transaction.
func (r *PGRepository) Update(ctx context.Context, item *model.CartItem) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
        UPDATE cart_items
        SET size_id = :size_id,
            color_id = :color_id,
            material_id = :material_id,
            printing_method_id = :printing_method_id,
            print_location_ids = :print_location_ids,
            quantity = :quantity,
            base_price = :base_price,
            extras_price = :extras_price,
            total_price = :total_price,
            updated_at = :updated_at
        WHERE id = :id AND user_id = :user_id
    `
	if _, err := tx.NamedExecContext(ctx, query, item); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_item_options WHERE cart_item_id = $1`, item.ID); err != nil {
		return err
	}
	if err := insertOptions(ctx, tx, item); err != nil {
		return err
	}

	return tx.Commit()
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_item_options WHERE cart_item_id = $1`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM cart_items WHERE id = $1`, id); err != nil {
		return err
	}
	return tx.Commit()
}

func insertOptions(ctx context.Context, tx *sqlx.Tx, item *model.CartItem) error {
	if len(item.SelectedOptions) == 0 {
		return nil
	}

	query := `
        INSERT INTO cart_item_options (cart_item_id, option_name, option_value, additional_price)
        VALUES (:cart_item_id, :option_name, :option_value, :additional_price)
    `
	for i := range item.SelectedOptions {
		item.SelectedOptions[i].CartItemID = item.ID
		if _, err := tx.NamedExecContext(ctx, query, item.SelectedOptions[i]); err != nil {
			return err
		}
	}
	return nil
}
