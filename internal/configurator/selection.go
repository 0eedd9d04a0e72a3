package configurator

import "strings"

// legacyPlaceholder is the "اختر" sentinel the storefront UI sends for
// untouched selects. Internally an unselected field is the empty string;
// the placeholder is normalized away at every input boundary.
const legacyPlaceholder = "اختر"

// Selection is the client-owned state of a product configuration.
// The four SizeTier* fields are only set while a tier belonging to the
// currently selected size is chosen; changing Size clears all four.
type Selection struct {
	Size string `json:"size"`

	SizeTierID       *int64   `json:"size_tier_id"`
	SizeQuantity     *float64 `json:"size_quantity"`
	SizePricePerUnit *float64 `json:"size_price_per_unit"`
	SizeTotalPrice   *float64 `json:"size_total_price"`

	Color          string            `json:"color"`
	Material       string            `json:"material"`
	OptionGroups   map[string]string `json:"optionGroups"`
	PrintingMethod string            `json:"printing_method"`

	// Selected print location names, order-preserving, no duplicates.
	PrintLocations []string `json:"print_locations"`

	IsValid bool `json:"isValid"`
}

// Normalize maps the legacy placeholder (and whitespace) to the empty
// string so "present but meaningless" behaves like absent.
func Normalize(v string) string {
	v = strings.TrimSpace(v)
	if v == legacyPlaceholder {
		return ""
	}
	return v
}

func chosen(v string) bool {
	return Normalize(v) != ""
}

// Clone returns a deep copy so snapshots handed to observers cannot be
// mutated behind the form's back.
func (s *Selection) Clone() Selection {
	out := *s
	if s.OptionGroups != nil {
		out.OptionGroups = make(map[string]string, len(s.OptionGroups))
		for k, v := range s.OptionGroups {
			out.OptionGroups[k] = v
		}
	}
	if s.PrintLocations != nil {
		out.PrintLocations = append([]string(nil), s.PrintLocations...)
	}
	out.SizeTierID = cloneInt64(s.SizeTierID)
	out.SizeQuantity = cloneFloat64(s.SizeQuantity)
	out.SizePricePerUnit = cloneFloat64(s.SizePricePerUnit)
	out.SizeTotalPrice = cloneFloat64(s.SizeTotalPrice)
	return out
}

func (s *Selection) clearTierFields() {
	s.SizeTierID = nil
	s.SizeQuantity = nil
	s.SizePricePerUnit = nil
	s.SizeTotalPrice = nil
}

func cloneInt64(v *int64) *int64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func cloneFloat64(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
