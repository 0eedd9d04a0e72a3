package configurator

import "github.com/matbaa/storefront-service/internal/model"

// Quote is the displayed price breakdown for a selection.
type Quote struct {
	Base   float64 `json:"base"`
	Extras float64 `json:"extras"`
	Total  float64 `json:"total"`
}

// BaseTotal derives the size/tier base price from the resolved tier
// fields on the selection: a positive stored total wins, else
// quantity*unit, else 0.
func BaseTotal(sel *Selection) float64 {
	if sel == nil {
		return 0
	}
	if sel.SizeTotalPrice != nil {
		if total := Num(*sel.SizeTotalPrice); total > 0 {
			return total
		}
	}

	var qty, unit float64
	if sel.SizeQuantity != nil {
		qty = Num(*sel.SizeQuantity)
	}
	if sel.SizePricePerUnit != nil {
		unit = Num(*sel.SizePricePerUnit)
	}
	if qty > 0 && unit > 0 {
		return qty * unit
	}
	return 0
}

// ComputeTotal combines the base tier price with summed option extras.
// The total is clamped at zero for display; the clamp is a storefront
// presentation rule, not a general numeric floor.
func ComputeTotal(schema *model.OptionSchema, sel *Selection) Quote {
	q := Quote{Base: BaseTotal(sel)}
	for _, opt := range BuildPricedOptions(schema, sel) {
		q.Extras += Num(opt.AdditionalPrice)
	}
	q.Total = q.Base + q.Extras
	if q.Total < 0 {
		q.Total = 0
	}
	return q
}
