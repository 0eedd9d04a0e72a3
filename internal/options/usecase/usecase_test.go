package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matbaa/storefront-service/internal/configurator"
	"github.com/matbaa/storefront-service/internal/model"
	"github.com/matbaa/storefront-service/internal/options/dto"
	"github.com/matbaa/storefront-service/pkg/logger"
)

type fakeRepo struct {
	schemas map[int64]*model.OptionSchema
}

func (r *fakeRepo) ProductExists(_ context.Context, productID int64) (bool, error) {
	_, ok := r.schemas[productID]
	return ok, nil
}

func (r *fakeRepo) FindSchema(_ context.Context, productID int64) (*model.OptionSchema, error) {
	return r.schemas[productID], nil
}

func testSchema() *model.OptionSchema {
	return &model.OptionSchema{
		Sizes: []model.Size{
			{ID: 1, Name: "M", Tiers: []model.SizeTier{
				{ID: 10, SizeID: 1, Quantity: 5, PricePerUnit: 10},
				{ID: 11, SizeID: 1, Quantity: 10, PricePerUnit: 9, TotalPrice: 85},
			}},
			{ID: 2, Name: "L"},
		},
		Colors:    []model.Color{{ID: 21, Name: "أحمر"}},
		Materials: []model.Material{{ID: 31, Name: "ورق لامع", AdditionalPrice: 3}},
		Options: []model.OptionRow{
			{ID: 41, OptionName: "الشحن", OptionValue: "سريع", AdditionalPrice: 2, IsRequired: true},
			{ID: 42, OptionName: "الشحن", OptionValue: "عادي", IsRequired: true},
		},
		PrintingMethods: []model.PrintingMethod{{ID: 51, Name: "أوفست", BasePrice: 1}},
		PrintLocations:  []model.PrintLocation{{ID: 61, Name: "أمامي"}},
	}
}

func newTestUseCase() *optionsUseCase {
	repo := &fakeRepo{schemas: map[int64]*model.OptionSchema{7: testSchema()}}
	return &optionsUseCase{repo: repo, logger: logger.NewNop()}
}

func TestGetSchemaUnknownProduct(t *testing.T) {
	uc := newTestUseCase()

	_, err := uc.GetSchema(context.Background(), 999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestQuoteCompleteSelection(t *testing.T) {
	uc := newTestUseCase()

	tierID := int64(10)
	result, err := uc.Quote(context.Background(), 7, &dto.SelectionInput{
		Size:           "M",
		SizeTierID:     &tierID,
		Color:          "أحمر",
		Material:       "ورق لامع",
		OptionGroups:   map[string]string{"الشحن": "سريع"},
		PrintingMethod: "أوفست",
		PrintLocations: []string{"أمامي"},
	})
	require.NoError(t, err)

	assert.True(t, result.IsValid)
	assert.Empty(t, result.Missing)

	// tier 10 has no backend total, so 5 * 10
	assert.Equal(t, 50.0, result.Base)
	// shipping 2 per unit, 5 units
	assert.Equal(t, 10.0, result.Extras)
	assert.Equal(t, 60.0, result.Total)

	require.NotNil(t, result.IDs.SizeID)
	assert.Equal(t, int64(1), *result.IDs.SizeID)
	assert.Equal(t, []int64{61}, result.IDs.PrintLocations)
	assert.Empty(t, result.IDs.EmbroiderLocations)
	assert.NotNil(t, result.IDs.EmbroiderLocations)

	require.NotNil(t, result.Quantity)
	assert.Equal(t, int64(5), *result.Quantity)
}

func TestQuoteBackendTotalWins(t *testing.T) {
	uc := newTestUseCase()

	tierID := int64(11)
	result, err := uc.Quote(context.Background(), 7, &dto.SelectionInput{
		Size:           "M",
		SizeTierID:     &tierID,
		Color:          "أحمر",
		Material:       "ورق لامع",
		OptionGroups:   map[string]string{"الشحن": "عادي"},
		PrintingMethod: "أوفست",
		PrintLocations: []string{"أمامي"},
	})
	require.NoError(t, err)

	// 85 verbatim, not 10*9
	assert.Equal(t, 85.0, result.Base)
	require.NotNil(t, result.Quantity)
	assert.Equal(t, int64(10), *result.Quantity)
}

func TestQuoteMissingTier(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.Quote(context.Background(), 7, &dto.SelectionInput{
		Size:           "M",
		Color:          "أحمر",
		Material:       "ورق لامع",
		OptionGroups:   map[string]string{"الشحن": "عادي"},
		PrintingMethod: "أوفست",
		PrintLocations: []string{"أمامي"},
	})
	require.NoError(t, err)

	assert.False(t, result.IsValid)
	assert.Contains(t, result.Missing, configurator.LabelSizeQuantity)
}

func TestQuoteEmptySelection(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.Quote(context.Background(), 7, nil)
	require.NoError(t, err)

	assert.False(t, result.IsValid)
	assert.Equal(t, []string{
		configurator.LabelSize,
		configurator.LabelColor,
		configurator.LabelMaterial,
		"الشحن",
		configurator.LabelPrintingMethod,
		configurator.LabelPrintLocation,
	}, result.Missing)
	assert.Nil(t, result.Quantity)
	assert.Equal(t, 0.0, result.Total)
}

func TestQuoteUnknownNamesDegrade(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.Quote(context.Background(), 7, &dto.SelectionInput{
		Size:           "XXL",
		Color:          "بنفسجي",
		Material:       "ورق لامع",
		OptionGroups:   map[string]string{"الشحن": "عادي"},
		PrintingMethod: "أوفست",
		PrintLocations: []string{"أمامي", "جانبي"},
	})
	require.NoError(t, err)

	assert.Nil(t, result.IDs.SizeID)
	assert.Nil(t, result.IDs.ColorID)
	// the known location survives, the unknown one is dropped
	assert.Equal(t, []int64{61}, result.IDs.PrintLocations)
	assert.Nil(t, result.Quantity)
}

func TestQuoteTierlessSizeHasNoQuantity(t *testing.T) {
	uc := newTestUseCase()

	result, err := uc.Quote(context.Background(), 7, &dto.SelectionInput{
		Size:           "L",
		Color:          "أحمر",
		Material:       "ورق لامع",
		OptionGroups:   map[string]string{"الشحن": "عادي"},
		PrintingMethod: "أوفست",
		PrintLocations: []string{"أمامي"},
	})
	require.NoError(t, err)

	assert.True(t, result.IsValid)
	assert.Nil(t, result.Quantity)
}

func TestApplySelectionNormalizesPlaceholder(t *testing.T) {
	sel := ApplySelection(testSchema(), &dto.SelectionInput{
		Size:  "اختر",
		Color: " أحمر ",
	})

	assert.Empty(t, sel.Size)
	assert.Equal(t, "أحمر", sel.Color)
}

func TestApplySelectionRejectsForeignTier(t *testing.T) {
	tierID := int64(10) // belongs to size M
	sel := ApplySelection(testSchema(), &dto.SelectionInput{
		Size:       "L",
		SizeTierID: &tierID,
	})

	assert.Nil(t, sel.SizeTierID)
}
