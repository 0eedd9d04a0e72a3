package configurator

import "github.com/matbaa/storefront-service/internal/model"

// Missing-selection labels, as the storefront displays them. Group names
// are appended as-is. Transport localizes these via the message catalog.
const (
	LabelSize           = "المقاس"
	LabelSizeQuantity   = "كمية المقاس"
	LabelColor          = "اللون"
	LabelMaterial       = "الخامة"
	LabelPrintingMethod = "طريقة الطباعة"
	LabelPrintLocation  = "مكان الطباعة"
)

type ValidationResult struct {
	IsValid bool     `json:"is_valid"`
	Missing []string `json:"missing"`
}

// Validate checks the selection against what the schema requires. Every
// applicable rule is evaluated (no short circuit) so the caller can show
// the complete list of missing fields.
func Validate(schema *model.OptionSchema, sel *Selection) ValidationResult {
	if schema == nil || sel == nil {
		return ValidationResult{IsValid: false}
	}

	result := ValidationResult{IsValid: true}
	miss := func(label string) {
		result.IsValid = false
		result.Missing = append(result.Missing, label)
	}

	if len(schema.Sizes) > 0 && !chosen(sel.Size) {
		miss(LabelSize)
	}

	// A quantity tier is mandatory whenever the chosen size carries tiers.
	size := FindSize(schema, sel.Size)
	if len(schema.Sizes) > 0 && size != nil && len(size.Tiers) > 0 && sel.SizeTierID == nil {
		miss(LabelSizeQuantity)
	}

	if len(schema.Colors) > 0 && !chosen(sel.Color) {
		miss(LabelColor)
	}

	if len(schema.Materials) > 0 && !chosen(sel.Material) {
		miss(LabelMaterial)
	}

	for _, group := range GroupOptions(schema.Options) {
		if !group.Required() {
			continue
		}
		if !chosen(sel.OptionGroups[group.Name]) {
			miss(group.Name)
		}
	}

	if len(schema.PrintingMethods) > 0 && !chosen(sel.PrintingMethod) {
		miss(LabelPrintingMethod)
	}

	if len(schema.PrintLocations) > 0 && len(sel.PrintLocations) == 0 {
		miss(LabelPrintLocation)
	}

	return result
}
