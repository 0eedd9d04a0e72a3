package configurator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/matbaa/storefront-service/internal/model"
)

func TestValidateEmptySchemaIsComplete(t *testing.T) {
	result := Validate(&model.OptionSchema{}, &Selection{})
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Missing)
}

func TestValidateCollectsAllMissingLabels(t *testing.T) {
	result := Validate(stickerSchema(), &Selection{OptionGroups: map[string]string{}})

	assert.False(t, result.IsValid)
	assert.Equal(t, []string{
		LabelSize,
		LabelColor,
		LabelMaterial,
		"الشحن",
		LabelPrintingMethod,
		LabelPrintLocation,
	}, result.Missing)
}

func TestValidateTierRequiredWhenSizeHasTiers(t *testing.T) {
	sel := &Selection{
		Size:           "M",
		Color:          "أحمر",
		Material:       "ورق لامع",
		OptionGroups:   map[string]string{"الشحن": "سريع"},
		PrintingMethod: "أوفست",
		PrintLocations: []string{"أمامي"},
	}

	result := Validate(stickerSchema(), sel)
	assert.False(t, result.IsValid)
	assert.Equal(t, []string{LabelSizeQuantity}, result.Missing)

	sel.SizeTierID = i64(10)
	result = Validate(stickerSchema(), sel)
	assert.True(t, result.IsValid)
	assert.Empty(t, result.Missing)
}

func TestValidateNoTierLabelWhenSizeUnselected(t *testing.T) {
	// When the size itself is missing, the tier rule has no size to
	// inspect; only the size label is reported for that pair.
	result := Validate(stickerSchema(), &Selection{
		Color:          "أحمر",
		Material:       "ورق لامع",
		OptionGroups:   map[string]string{"الشحن": "عادي"},
		PrintingMethod: "أوفست",
		PrintLocations: []string{"خلفي"},
	})

	assert.False(t, result.IsValid)
	assert.Equal(t, []string{LabelSize}, result.Missing)
}

func TestValidatePlaceholderCountsAsUnselected(t *testing.T) {
	result := Validate(stickerSchema(), &Selection{
		Size:           "اختر",
		Color:          "اختر",
		Material:       "اختر",
		OptionGroups:   map[string]string{"الشحن": "اختر"},
		PrintingMethod: "اختر",
	})

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Missing, LabelSize)
	assert.Contains(t, result.Missing, "الشحن")
}

func TestValidateOptionalGroupMayStayUnselected(t *testing.T) {
	sel := &Selection{
		Size:           "L",
		SizeTierID:     i64(20),
		Color:          "أحمر",
		Material:       "ورق لامع",
		OptionGroups:   map[string]string{"الشحن": "عادي", "خدمة تصميم": ""},
		PrintingMethod: "أوفست",
		PrintLocations: []string{"أمامي", "خلفي"},
	}

	result := Validate(stickerSchema(), sel)
	assert.True(t, result.IsValid)
}

func TestValidatePrintLocationsNeedAtLeastOne(t *testing.T) {
	sel := &Selection{
		Size:           "L",
		SizeTierID:     i64(20),
		Color:          "أحمر",
		Material:       "ورق لامع",
		OptionGroups:   map[string]string{"الشحن": "عادي"},
		PrintingMethod: "أوفست",
		PrintLocations: []string{},
	}

	result := Validate(stickerSchema(), sel)
	assert.False(t, result.IsValid)
	assert.Equal(t, []string{LabelPrintLocation}, result.Missing)
}
