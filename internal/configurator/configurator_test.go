package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matbaa/storefront-service/internal/model"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

// stickerSchema mirrors a typical print-shop product: two sizes with
// quantity tiers, one color, one material, a required shipping group and
// the design-service group, one printing method and two print locations.
func stickerSchema() *model.OptionSchema {
	return &model.OptionSchema{
		Sizes: []model.Size{
			{ID: 1, Name: "M", Tiers: []model.SizeTier{
				{ID: 10, SizeID: 1, Quantity: 5, PricePerUnit: 10, TotalPrice: 0},
				{ID: 11, SizeID: 1, Quantity: 10, PricePerUnit: 9, TotalPrice: 85},
			}},
			{ID: 2, Name: "L", Tiers: []model.SizeTier{
				{ID: 20, SizeID: 2, Quantity: 5, PricePerUnit: 14, TotalPrice: 0},
			}},
		},
		Colors:    []model.Color{{ID: 31, Name: "أحمر"}},
		Materials: []model.Material{{ID: 41, Name: "ورق لامع", AdditionalPrice: 3}},
		Options: []model.OptionRow{
			{ID: 51, OptionName: "الشحن", OptionValue: "سريع", AdditionalPrice: 2, IsRequired: true},
			{ID: 52, OptionName: "الشحن", OptionValue: "عادي", AdditionalPrice: 0, IsRequired: true},
			{ID: 53, OptionName: "خدمة تصميم", OptionValue: "لدى تصميم", AdditionalPrice: 20},
			{ID: 54, OptionName: "خدمة تصميم", OptionValue: "أريد تصميم", AdditionalPrice: 50},
		},
		PrintingMethods: []model.PrintingMethod{{ID: 61, Name: "أوفست", BasePrice: 0}},
		PrintLocations: []model.PrintLocation{
			{ID: 71, Name: "أمامي", Type: "print"},
			{ID: 72, Name: "خلفي", Type: "print"},
		},
	}
}

func TestNumCoercion(t *testing.T) {
	assert.Equal(t, 12.5, Num("12.5"))
	assert.Equal(t, 12.5, Num(" 12.5 "))
	assert.Equal(t, 7.0, Num(7))
	assert.Equal(t, 7.0, Num(int64(7)))
	assert.Equal(t, 0.0, Num(nil))
	assert.Equal(t, 0.0, Num("abc"))
	assert.Equal(t, 0.0, Num(""))
	assert.Equal(t, 0.0, Num([]string{"x"}))
	assert.Equal(t, -3.0, Num("-3"))
}

func TestQtyNeverZeroOrFractional(t *testing.T) {
	assert.Equal(t, int64(1), Qty(&Selection{}))
	assert.Equal(t, int64(1), Qty(&Selection{SizeQuantity: f64(0)}))
	assert.Equal(t, int64(1), Qty(&Selection{SizeQuantity: f64(-4)}))
	assert.Equal(t, int64(5), Qty(&Selection{SizeQuantity: f64(5.9)}))
	assert.Equal(t, int64(1), Qty(nil))
}

func TestGroupOptionsPreservesFirstSeenOrder(t *testing.T) {
	rows := []model.OptionRow{
		{OptionName: " ب ", OptionValue: "1"},
		{OptionName: "أ", OptionValue: "1"},
		{OptionName: "ب", OptionValue: "2"},
		{OptionName: "  ", OptionValue: "dropped"},
	}

	groups := GroupOptions(rows)
	assert.Len(t, groups, 2)
	assert.Equal(t, "ب", groups[0].Name)
	assert.Equal(t, "أ", groups[1].Name)
	assert.Len(t, groups[0].Rows, 2)
}

func TestRequiredGroups(t *testing.T) {
	groups := GroupOptions(stickerSchema().Options)
	assert.Equal(t, []string{"الشحن"}, RequiredGroups(groups))
}

func TestResolveTierBackendTotalWins(t *testing.T) {
	schema := stickerSchema()
	resolved := ResolveTier(&schema.Sizes[0], 11)

	assert.NotNil(t, resolved)
	assert.Equal(t, int64(10), resolved.Quantity)
	assert.Equal(t, 9.0, resolved.UnitPrice)
	// 85 from the backend, not 10*9=90.
	assert.Equal(t, 85.0, *resolved.TotalPrice)
}

func TestResolveTierComputesWhenTotalMissing(t *testing.T) {
	schema := stickerSchema()
	resolved := ResolveTier(&schema.Sizes[0], 10)

	assert.NotNil(t, resolved)
	assert.Equal(t, 50.0, *resolved.TotalPrice)
}

func TestResolveTierUnknownTotalIsNil(t *testing.T) {
	size := &model.Size{ID: 9, Name: "S", Tiers: []model.SizeTier{
		{ID: 90, Quantity: 5, PricePerUnit: 0, TotalPrice: 0},
	}}

	resolved := ResolveTier(size, 90)
	assert.NotNil(t, resolved)
	assert.Nil(t, resolved.TotalPrice)
}

func TestResolveTierForeignSizeIsNotFound(t *testing.T) {
	schema := stickerSchema()
	// Tier 20 belongs to size L, not M.
	assert.Nil(t, ResolveTier(&schema.Sizes[0], 20))
	assert.Nil(t, ResolveTier(nil, 10))
	assert.Nil(t, ResolveTier(&schema.Sizes[0], 0))
}
