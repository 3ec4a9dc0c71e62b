package engine

import (
	"testing"

	"coffee-order/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenario_MediumLatte(t *testing.T) {
	s := newLatteSession(t, intPtr(mediumID))
	assertDecimal(t, "4.50", s.Price().FinalPrice)

	s.Adjust(espressoID, dec("1"))
	line, err := s.Confirm(1)
	require.NoError(t, err)

	assertDecimal(t, "4.50", line.BasePrice)
	assertDecimal(t, "0.75", line.PriceAdjustment)
	assertDecimal(t, "5.25", line.FinalPrice)
	assert.Equal(t, "Medium", line.SizeName)
}

func TestScenario_UneditedLatteConfirmsAtBasePrice(t *testing.T) {
	s := newLatteSession(t, intPtr(mediumID))

	line, err := s.Confirm(1)
	require.NoError(t, err)

	assertDecimal(t, "4.50", line.FinalPrice)
	assertDecimal(t, "0", line.PriceAdjustment)
	assert.Empty(t, line.Customizations)
}

func TestScenario_PumpkinSpiceAddIn(t *testing.T) {
	s := newLatteSession(t, intPtr(largeID))
	before := s.Price().Adjustment

	s.Adjust(pumpkinID, dec("2"))

	assertDecimal(t, before.Add(dec("0.60")).String(), s.Price().Adjustment)
}

func TestConfirm_SnapshotAndCustomizations(t *testing.T) {
	s := newLatteSession(t, intPtr(mediumID))
	s.Adjust(espressoID, dec("-2"))
	s.Adjust(pumpkinID, dec("2"))

	line, err := s.Confirm(0)
	require.NoError(t, err)

	assert.Equal(t, 1, line.Quantity)
	assert.Equal(t, latteID, line.ProductID)
	require.NotNil(t, line.SelectedSizeID)
	assert.Equal(t, mediumID, *line.SelectedSizeID)
	assertDecimal(t, "0.08", line.TaxRate)
	assert.NotEmpty(t, line.ID)

	require.Len(t, line.RecipeSnapshot, 2)
	milk := line.RecipeSnapshot[0]
	assert.Equal(t, milkID, milk.IngredientID)
	assert.True(t, milk.WasInDefaultRecipe)
	assertDecimal(t, "8", milk.DefaultAmount)
	assert.False(t, milk.Differs())

	pumpkin := line.RecipeSnapshot[1]
	assert.Equal(t, pumpkinID, pumpkin.IngredientID)
	assert.False(t, pumpkin.WasInDefaultRecipe)
	assert.Equal(t, "pumps", pumpkin.UnitType.String())

	require.Len(t, line.Customizations, 2)
	assert.Equal(t, espressoID, line.Customizations[0].IngredientID)
	assertDecimal(t, "0", line.Customizations[0].Amount)
	assert.Equal(t, pumpkinID, line.Customizations[1].IngredientID)

	assertDecimal(t, "-0.90", line.PriceAdjustment)
	assertDecimal(t, "3.60", line.FinalPrice)
}

func TestConfirm_FreezesSession(t *testing.T) {
	s := newLatteSession(t, intPtr(mediumID))
	line, err := s.Confirm(1)
	require.NoError(t, err)

	s.Adjust(espressoID, dec("3"))

	assertDecimal(t, "2", s.Quantity(espressoID))
	assertDecimal(t, "4.50", line.FinalPrice)
	assert.ErrorIs(t, s.SelectSize(largeID), ErrSessionFrozen)

	again, err := s.Confirm(1)
	assert.ErrorIs(t, err, ErrSessionFrozen)
	assert.Empty(t, again.ID)
}

func TestConfirm_UnitOverrideInSnapshot(t *testing.T) {
	ml := models.CatalogUnit("ml")
	entries := append(latteEntries(), models.RecipeEntry{
		ProductID: latteID, SizeID: intPtr(mediumID), IngredientID: vanillaID,
		DefaultAmount: dec("15"), UnitTypeOverride: &ml, UseDefaultPrice: true,
	})
	s, err := NewSession(SessionInput{
		Product: latte(), Sizes: latteSizes(), Entries: entries,
		Ingredients: catalogIngredients(), SizeID: intPtr(mediumID),
	})
	require.NoError(t, err)

	line, err := s.Confirm(1)
	require.NoError(t, err)

	var found bool
	for _, e := range line.RecipeSnapshot {
		if e.IngredientID == vanillaID {
			found = true
			assert.Equal(t, "ml", e.UnitType.String())
		}
	}
	assert.True(t, found)
}
