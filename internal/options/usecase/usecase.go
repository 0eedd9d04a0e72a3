package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/matbaa/storefront-service/internal/configurator"
	"github.com/matbaa/storefront-service/internal/model"
	"github.com/matbaa/storefront-service/internal/options"
	"github.com/matbaa/storefront-service/internal/options/dto"
	"github.com/matbaa/storefront-service/pkg/cache"
	"github.com/matbaa/storefront-service/pkg/logger"
)

var ErrProductNotFound = errors.New("product not found")

const schemaCacheTTL = 10 * time.Minute

type optionsUseCase struct {
	repo   options.Repository
	cache  *cache.RedisClient
	logger logger.ZapLogger
}

func NewOptionsUseCase(repo options.Repository, cache *cache.RedisClient, log logger.ZapLogger) options.UseCase {
	return &optionsUseCase{
		repo:   repo,
		cache:  cache,
		logger: log,
	}
}

func schemaCacheKey(productID int64) string {
	return fmt.Sprintf("options:schema:%d", productID)
}

func (uc *optionsUseCase) GetSchema(ctx context.Context, productID int64) (*model.OptionSchema, error) {
	key := schemaCacheKey(productID)

	if uc.cache != nil {
		if val, err := uc.cache.Client.Get(ctx, key).Result(); err == nil {
			var schema model.OptionSchema
			if err := json.Unmarshal([]byte(val), &schema); err == nil {
				return &schema, nil
			}
		}
	}

	exists, err := uc.repo.ProductExists(ctx, productID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrProductNotFound
	}

	schema, err := uc.repo.FindSchema(ctx, productID)
	if err != nil {
		return nil, err
	}

	if uc.cache != nil {
		if data, err := json.Marshal(schema); err == nil {
			uc.cache.Client.Set(ctx, key, data, schemaCacheTTL)
		}
	}

	return schema, nil
}

// Quote runs the configurator against a submitted selection: validation
// verdict, price breakdown, and both submission payloads.
func (uc *optionsUseCase) Quote(ctx context.Context, productID int64, input *dto.SelectionInput) (*dto.QuoteResult, error) {
	schema, err := uc.GetSchema(ctx, productID)
	if err != nil {
		return nil, err
	}

	sel := ApplySelection(schema, input)

	validation := configurator.Validate(schema, sel)
	quote := configurator.ComputeTotal(schema, sel)
	ids := configurator.BuildIDsPayload(schema, sel)
	priced := configurator.BuildPricedOptions(schema, sel)
	if priced == nil {
		priced = []configurator.PricedOption{}
	}

	// Unresolvable names degrade silently by contract, but they usually
	// mean the client rendered a stale schema; leave a trace.
	if fields := unresolvedFields(sel, ids); len(fields) > 0 {
		uc.logger.Warn("selection references unknown schema values",
			zap.Int64("product_id", productID),
			zap.Strings("fields", fields),
		)
	}
	if quote.Base+quote.Extras < 0 {
		uc.logger.Warn("negative total clamped to zero",
			zap.Int64("product_id", productID),
		)
	}

	result := &dto.QuoteResult{
		IsValid:         validation.IsValid,
		Missing:         validation.Missing,
		Base:            quote.Base,
		Extras:          quote.Extras,
		Total:           quote.Total,
		IDs:             ids,
		SelectedOptions: priced,
	}
	if result.Missing == nil {
		result.Missing = []string{}
	}

	// Quantity accompanies the payload only when the chosen size tiers.
	if size := configurator.FindSize(schema, sel.Size); size != nil && len(size.Tiers) > 0 {
		qty := configurator.Qty(sel)
		result.Quantity = &qty
	}

	return result, nil
}

// unresolvedFields lists the chosen selection fields whose names did not
// resolve to a schema id. Selection fields are already normalized, so a
// non-empty value that produced no id means a stale or foreign name.
func unresolvedFields(sel *configurator.Selection, ids configurator.IDsPayload) []string {
	var out []string
	if sel.Size != "" && ids.SizeID == nil {
		out = append(out, "size")
	}
	if sel.Color != "" && ids.ColorID == nil {
		out = append(out, "color")
	}
	if sel.Material != "" && ids.MaterialID == nil {
		out = append(out, "material")
	}
	if sel.PrintingMethod != "" && ids.PrintingMethodID == nil {
		out = append(out, "printing_method")
	}
	if len(ids.PrintLocations) < len(sel.PrintLocations) {
		out = append(out, "print_locations")
	}
	return out
}

func (uc *optionsUseCase) InvalidateSchema(ctx context.Context, productID int64) error {
	if uc.cache == nil {
		return nil
	}
	return uc.cache.Client.Del(ctx, schemaCacheKey(productID)).Err()
}

// ApplySelection replays a wire selection through a Form so every field
// passes the same normalization and tier-consistency rules as
// interactive edits.
func ApplySelection(schema *model.OptionSchema, input *dto.SelectionInput) *configurator.Selection {
	form := configurator.NewForm(schema)
	defer form.Close()

	if input == nil {
		sel := form.Selection()
		return &sel
	}

	form.SetSize(input.Size)
	if input.SizeTierID != nil {
		form.SetTier(*input.SizeTierID)
	}
	form.SetColor(input.Color)
	form.SetMaterial(input.Material)
	form.SetPrintingMethod(input.PrintingMethod)
	form.SetPrintLocations(input.PrintLocations)
	for group, value := range input.OptionGroups {
		form.SetOptionGroup(group, value)
	}

	sel := form.Selection()
	return &sel
}
