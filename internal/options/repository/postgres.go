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

func (r *PGRepository) ProductExists(ctx context.Context, productID int64) (bool, error) {
	var count int
	err := r.DB.GetContext(ctx, &count, `SELECT count(*) FROM products WHERE id = $1`, productID)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindSchema assembles the full option schema for a product. Tiers are
// attached to their sizes in quantity order; everything else keeps the
// insertion order the merchant configured.
func (r *PGRepository) FindSchema(ctx context.Context, productID int64) (*model.OptionSchema, error) {
	schema := &model.OptionSchema{}

	var sizes []model.Size
	err := r.DB.SelectContext(ctx, &sizes,
		`SELECT id, product_id, name, sort_order FROM product_sizes WHERE product_id = $1 ORDER BY sort_order, id`,
		productID)
	if err != nil {
		return nil, err
	}

	if len(sizes) > 0 {
		var tiers []model.SizeTier
		err = r.DB.SelectContext(ctx, &tiers, `
			SELECT t.id, t.size_id, t.quantity, t.price_per_unit, COALESCE(t.total_price, 0) AS total_price
			FROM size_tiers t
			JOIN product_sizes s ON s.id = t.size_id
			WHERE s.product_id = $1
			ORDER BY t.quantity, t.id
		`, productID)
		if err != nil {
			return nil, err
		}

		bySize := map[int64][]model.SizeTier{}
		for _, t := range tiers {
			bySize[t.SizeID] = append(bySize[t.SizeID], t)
		}
		for i := range sizes {
			sizes[i].Tiers = bySize[sizes[i].ID]
		}
	}
	schema.Sizes = sizes

	err = r.DB.SelectContext(ctx, &schema.Colors,
		`SELECT id, product_id, name, hex_code FROM product_colors WHERE product_id = $1 ORDER BY id`,
		productID)
	if err != nil {
		return nil, err
	}

	err = r.DB.SelectContext(ctx, &schema.Materials,
		`SELECT id, product_id, name, COALESCE(additional_price, 0) AS additional_price
		 FROM product_materials WHERE product_id = $1 ORDER BY id`,
		productID)
	if err != nil {
		return nil, err
	}

	err = r.DB.SelectContext(ctx, &schema.Options, `
		SELECT id, product_id, option_name, option_value,
		       COALESCE(additional_price, 0) AS additional_price,
		       COALESCE(is_required, false) AS is_required,
		       is_one_time
		FROM product_options WHERE product_id = $1 ORDER BY id
	`, productID)
	if err != nil {
		return nil, err
	}

	err = r.DB.SelectContext(ctx, &schema.PrintingMethods,
		`SELECT id, product_id, name, COALESCE(base_price, 0) AS base_price
		 FROM printing_methods WHERE product_id = $1 ORDER BY id`,
		productID)
	if err != nil {
		return nil, err
	}

	err = r.DB.SelectContext(ctx, &schema.PrintLocations,
		`SELECT id, product_id, name, COALESCE(type, 'print') AS type
		 FROM print_locations WHERE product_id = $1 ORDER BY id`,
		productID)
	if err != nil {
		return nil, err
	}

	return schema, nil
}
