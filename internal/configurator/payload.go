package configurator

import (
	"strings"

	"github.com/matbaa/storefront-service/internal/model"
)

// IDsPayload is the identifier-only projection submitted to the cart.
// Unresolvable names degrade to nil (scalars) or are dropped (locations)
// rather than failing the submission.
type IDsPayload struct {
	SizeID             *int64  `json:"size_id"`
	ColorID            *int64  `json:"color_id"`
	MaterialID         *int64  `json:"material_id"`
	PrintingMethodID   *int64  `json:"printing_method_id"`
	PrintLocations     []int64 `json:"print_locations"`
	EmbroiderLocations []int64 `json:"embroider_locations"`
}

// PricedOption is one billable line item: the one-time/per-unit split in
// AdditionalPrice is exact, this list is what the backend charges.
type PricedOption struct {
	OptionName      string  `json:"option_name"`
	OptionValue     string  `json:"option_value"`
	AdditionalPrice float64 `json:"additional_price"`
}

// designServiceTokens mark a group or value as a one-time design service.
// Substring match, case-insensitive; the explicit is_one_time flag on a
// schema row takes precedence when present.
var designServiceTokens = []string{"خدمة تصميم", "خدمة التصميم", "design"}

func IsOneTimeService(optionName, optionValue string) bool {
	name := strings.ToLower(strings.TrimSpace(optionName))
	value := strings.ToLower(strings.TrimSpace(optionValue))
	for _, token := range designServiceTokens {
		if strings.Contains(name, token) || strings.Contains(value, token) {
			return true
		}
	}
	return false
}

func oneTime(row *model.OptionRow, group, value string) bool {
	if row != nil && row.IsOneTime != nil {
		return *row.IsOneTime
	}
	return IsOneTimeService(group, value)
}

// BuildIDsPayload resolves each selected name back to its schema id.
func BuildIDsPayload(schema *model.OptionSchema, sel *Selection) IDsPayload {
	payload := IDsPayload{
		PrintLocations:     []int64{},
		EmbroiderLocations: []int64{},
	}
	if schema == nil || sel == nil {
		return payload
	}

	if size := FindSize(schema, sel.Size); size != nil {
		payload.SizeID = cloneInt64(&size.ID)
	}
	if chosen(sel.Color) {
		name := strings.TrimSpace(sel.Color)
		for i := range schema.Colors {
			if strings.TrimSpace(schema.Colors[i].Name) == name {
				payload.ColorID = cloneInt64(&schema.Colors[i].ID)
				break
			}
		}
	}
	if chosen(sel.Material) {
		name := strings.TrimSpace(sel.Material)
		for i := range schema.Materials {
			if strings.TrimSpace(schema.Materials[i].Name) == name {
				payload.MaterialID = cloneInt64(&schema.Materials[i].ID)
				break
			}
		}
	}
	if chosen(sel.PrintingMethod) {
		name := strings.TrimSpace(sel.PrintingMethod)
		for i := range schema.PrintingMethods {
			if strings.TrimSpace(schema.PrintingMethods[i].Name) == name {
				payload.PrintingMethodID = cloneInt64(&schema.PrintingMethods[i].ID)
				break
			}
		}
	}

	for _, locName := range sel.PrintLocations {
		name := strings.TrimSpace(locName)
		for i := range schema.PrintLocations {
			if strings.TrimSpace(schema.PrintLocations[i].Name) == name {
				payload.PrintLocations = append(payload.PrintLocations, schema.PrintLocations[i].ID)
				break
			}
		}
	}

	return payload
}

// BuildPricedOptions projects the selected option groups into billable
// line items. Per-unit prices scale by the effective quantity; one-time
// design services are charged as-is. Group iteration follows schema
// order so the output is deterministic.
func BuildPricedOptions(schema *model.OptionSchema, sel *Selection) []PricedOption {
	var out []PricedOption
	if schema == nil || sel == nil {
		return out
	}

	qty := Qty(sel)

	for _, group := range GroupOptions(schema.Options) {
		value := Normalize(sel.OptionGroups[group.Name])
		if value == "" {
			continue
		}

		row := findRow(schema.Options, group.Name, value)
		perUnit := 0.0
		if row != nil {
			perUnit = Num(row.AdditionalPrice)
		}

		price := perUnit * float64(qty)
		if oneTime(row, group.Name, value) {
			price = perUnit
		}

		out = append(out, PricedOption{
			OptionName:      group.Name,
			OptionValue:     value,
			AdditionalPrice: price,
		})
	}

	return out
}
