package configurator

import (
	"strings"

	"github.com/matbaa/storefront-service/internal/model"
)

// ResolvedTier carries the facts of a chosen quantity tier. TotalPrice is
// nil when neither the backend nor quantity*unit yields a positive total
// ("price unknown", never zero-as-valid or negative).
type ResolvedTier struct {
	ID         int64
	Quantity   int64
	UnitPrice  float64
	TotalPrice *float64
}

// ResolveTier looks a tier up by id within the given size's tier list
// only. A tier id from another size resolves to nil, which is what keeps
// the tier fields consistent with the selected size.
func ResolveTier(size *model.Size, tierID int64) *ResolvedTier {
	if size == nil || tierID == 0 {
		return nil
	}

	var tier *model.SizeTier
	for i := range size.Tiers {
		if size.Tiers[i].ID == tierID {
			tier = &size.Tiers[i]
			break
		}
	}
	if tier == nil {
		return nil
	}

	resolved := &ResolvedTier{
		ID:        tier.ID,
		Quantity:  tier.Quantity,
		UnitPrice: Num(tier.PricePerUnit),
	}

	// The backend total is authoritative on rounding and bulk discounts;
	// quantity*unit is only the fallback when it is absent.
	backendTotal := Num(tier.TotalPrice)
	if backendTotal > 0 {
		resolved.TotalPrice = &backendTotal
		return resolved
	}

	computed := float64(tier.Quantity) * resolved.UnitPrice
	if computed > 0 {
		resolved.TotalPrice = &computed
	}
	return resolved
}

// FindSize resolves a size by trimmed name match.
func FindSize(schema *model.OptionSchema, name string) *model.Size {
	if schema == nil || !chosen(name) {
		return nil
	}
	name = strings.TrimSpace(name)
	for i := range schema.Sizes {
		if strings.TrimSpace(schema.Sizes[i].Name) == name {
			return &schema.Sizes[i]
		}
	}
	return nil
}
