package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matbaa/storefront-service/internal/model"
)

func TestBuildIDsPayloadResolvesNames(t *testing.T) {
	sel := &Selection{
		Size:           "M",
		Color:          "أحمر",
		Material:       "ورق لامع",
		PrintingMethod: "أوفست",
		PrintLocations: []string{"خلفي", "أمامي"},
	}

	payload := BuildIDsPayload(stickerSchema(), sel)

	assert.Equal(t, int64(1), *payload.SizeID)
	assert.Equal(t, int64(31), *payload.ColorID)
	assert.Equal(t, int64(41), *payload.MaterialID)
	assert.Equal(t, int64(61), *payload.PrintingMethodID)
	// Selection order, not schema order.
	assert.Equal(t, []int64{72, 71}, payload.PrintLocations)
	assert.Equal(t, []int64{}, payload.EmbroiderLocations)
}

func TestBuildIDsPayloadUnresolvableDegradesSilently(t *testing.T) {
	sel := &Selection{
		Size:           "XXL",
		Color:          "بنفسجي",
		PrintLocations: []string{"أمامي", "جانبي"},
	}

	payload := BuildIDsPayload(stickerSchema(), sel)

	assert.Nil(t, payload.SizeID)
	assert.Nil(t, payload.ColorID)
	assert.Nil(t, payload.MaterialID)
	assert.Nil(t, payload.PrintingMethodID)
	// The unknown location is dropped, the known one survives.
	assert.Equal(t, []int64{71}, payload.PrintLocations)
}

func TestBuildPricedOptionsScalesPerUnitByQuantity(t *testing.T) {
	sel := &Selection{
		SizeQuantity: f64(5),
		OptionGroups: map[string]string{"الشحن": "سريع"},
	}

	options := BuildPricedOptions(stickerSchema(), sel)

	assert.Len(t, options, 1)
	assert.Equal(t, "الشحن", options[0].OptionName)
	assert.Equal(t, "سريع", options[0].OptionValue)
	assert.Equal(t, 10.0, options[0].AdditionalPrice) // 2 * 5
}

func TestBuildPricedOptionsDesignServiceIsOneTime(t *testing.T) {
	sel := &Selection{
		SizeQuantity: f64(5),
		OptionGroups: map[string]string{"خدمة تصميم": "لدى تصميم"},
	}

	options := BuildPricedOptions(stickerSchema(), sel)

	assert.Len(t, options, 1)
	// 20 exactly, not 20*5.
	assert.Equal(t, 20.0, options[0].AdditionalPrice)
}

func TestBuildPricedOptionsSkipsUnselectedGroups(t *testing.T) {
	sel := &Selection{
		OptionGroups: map[string]string{"الشحن": "", "خدمة تصميم": "اختر"},
	}

	assert.Empty(t, BuildPricedOptions(stickerSchema(), sel))
}

func TestBuildPricedOptionsMissingQuantityDefaultsToOne(t *testing.T) {
	sel := &Selection{
		OptionGroups: map[string]string{"الشحن": "سريع"},
	}

	options := BuildPricedOptions(stickerSchema(), sel)
	assert.Equal(t, 2.0, options[0].AdditionalPrice)
}

func TestBuildPricedOptionsUnknownValueKeepsRowAtZero(t *testing.T) {
	sel := &Selection{
		SizeQuantity: f64(3),
		OptionGroups: map[string]string{"الشحن": "فوري"},
	}

	options := BuildPricedOptions(stickerSchema(), sel)
	assert.Len(t, options, 1)
	assert.Equal(t, 0.0, options[0].AdditionalPrice)
}

func TestIsOneTimeServiceMarkers(t *testing.T) {
	assert.True(t, IsOneTimeService("خدمة تصميم", ""))
	assert.True(t, IsOneTimeService("خدمة التصميم", ""))
	assert.True(t, IsOneTimeService("", "خدمة تصميم الشعار"))
	assert.True(t, IsOneTimeService("Design Service", ""))
	assert.True(t, IsOneTimeService("", "Custom DESIGN"))
	assert.False(t, IsOneTimeService("الشحن", "سريع"))
}

func TestExplicitOneTimeFlagOverridesText(t *testing.T) {
	no := false
	yes := true
	schema := &model.OptionSchema{
		Options: []model.OptionRow{
			// Text says design, flag says per-unit.
			{OptionName: "خدمة تصميم", OptionValue: "لدى تصميم", AdditionalPrice: 20, IsOneTime: &no},
			// Text says nothing, flag says one-time.
			{OptionName: "تغليف", OptionValue: "هدية", AdditionalPrice: 4, IsOneTime: &yes},
		},
	}
	sel := &Selection{
		SizeQuantity: f64(5),
		OptionGroups: map[string]string{"خدمة تصميم": "لدى تصميم", "تغليف": "هدية"},
	}

	options := BuildPricedOptions(schema, sel)
	assert.Equal(t, 100.0, options[0].AdditionalPrice)
	assert.Equal(t, 4.0, options[1].AdditionalPrice)
}
