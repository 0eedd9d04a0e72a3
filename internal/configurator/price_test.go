package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matbaa/storefront-service/internal/model"
)

func TestBaseTotalPrefersStoredTotal(t *testing.T) {
	sel := &Selection{
		SizeQuantity:     f64(10),
		SizePricePerUnit: f64(9),
		SizeTotalPrice:   f64(85),
	}
	assert.Equal(t, 85.0, BaseTotal(sel))
}

func TestBaseTotalFallsBackToQuantityTimesUnit(t *testing.T) {
	sel := &Selection{
		SizeQuantity:     f64(5),
		SizePricePerUnit: f64(10),
	}
	assert.Equal(t, 50.0, BaseTotal(sel))
}

func TestBaseTotalUnknownIsZero(t *testing.T) {
	assert.Equal(t, 0.0, BaseTotal(&Selection{}))
	assert.Equal(t, 0.0, BaseTotal(&Selection{SizeQuantity: f64(5)}))
	assert.Equal(t, 0.0, BaseTotal(nil))
}

func TestComputeTotalNeverNegative(t *testing.T) {
	schema := &model.OptionSchema{
		Options: []model.OptionRow{
			{OptionName: "خصم", OptionValue: "خاص", AdditionalPrice: -30},
		},
	}
	sel := &Selection{
		OptionGroups: map[string]string{"خصم": "خاص"},
	}

	q := ComputeTotal(schema, sel)
	assert.Equal(t, -30.0, q.Extras)
	assert.Equal(t, 0.0, q.Total)
}

// Full walk of the documented pricing scenario: size M, tier of 5 at 10
// with no stored total, one required per-unit delivery option at 2.
func TestComputeTotalDeliveryScenario(t *testing.T) {
	schema := &model.OptionSchema{
		Sizes: []model.Size{
			{ID: 1, Name: "M", Tiers: []model.SizeTier{
				{ID: 1, Quantity: 5, PricePerUnit: 10, TotalPrice: 0},
			}},
		},
		Options: []model.OptionRow{
			{OptionName: "Service", OptionValue: "Delivery", AdditionalPrice: 2, IsRequired: true},
		},
	}

	form := NewForm(schema)
	form.SetSize("M")
	form.SetTier(1)
	form.SetOptionGroup("Service", "Delivery")

	sel := form.Selection()
	assert.True(t, sel.IsValid)

	q := ComputeTotal(schema, &sel)
	assert.Equal(t, 50.0, q.Base)
	assert.Equal(t, 10.0, q.Extras) // 2 * 5, per-unit
	assert.Equal(t, 60.0, q.Total)
}

func TestComputeTotalMissingTierScenario(t *testing.T) {
	schema := &model.OptionSchema{
		Sizes: []model.Size{
			{ID: 1, Name: "M", Tiers: []model.SizeTier{
				{ID: 1, Quantity: 5, PricePerUnit: 10, TotalPrice: 0},
			}},
		},
		Options: []model.OptionRow{
			{OptionName: "Service", OptionValue: "Delivery", AdditionalPrice: 2, IsRequired: true},
		},
	}

	form := NewForm(schema)
	form.SetSize("M")
	form.SetOptionGroup("Service", "Delivery")

	result := form.Validate()
	assert.False(t, result.IsValid)
	assert.Contains(t, result.Missing, LabelSizeQuantity)
}

func TestComputeTotalArabicDesignServiceScenario(t *testing.T) {
	schema := &model.OptionSchema{
		Sizes: []model.Size{
			{ID: 1, Name: "M", Tiers: []model.SizeTier{
				{ID: 1, Quantity: 5, PricePerUnit: 10, TotalPrice: 0},
			}},
		},
		Options: []model.OptionRow{
			{OptionName: "خدمة تصميم", OptionValue: "لدى تصميم", AdditionalPrice: 20},
		},
	}

	form := NewForm(schema)
	form.SetSize("M")
	form.SetTier(1)
	form.SetOptionGroup("خدمة تصميم", "لدى تصميم")

	sel := form.Selection()
	q := ComputeTotal(schema, &sel)

	// One-time: exactly 20, not 100.
	assert.Equal(t, 20.0, q.Extras)
	assert.Equal(t, 70.0, q.Total)
}
