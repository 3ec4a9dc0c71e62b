package engine

import (
	"testing"

	"coffee-order/models"

	"github.com/shopspring/decimal"
)

func pricedRecipe() models.EffectiveRecipe {
	return models.EffectiveRecipe{
		espressoID: {ProductID: latteID, IngredientID: espressoID, DefaultAmount: dec("2"), UseDefaultPrice: true},
		vanillaID:  {ProductID: latteID, IngredientID: vanillaID, DefaultAmount: dec("3"), UseDefaultPrice: true},
	}
}

func TestPrice_DefaultsCostNothing(t *testing.T) {
	recipe := pricedRecipe()
	catalog := models.NewIngredientCatalog(catalogIngredients())

	result := Price(dec("4.50"), recipe, Initialize(recipe), catalog)

	assertDecimal(t, "0", result.Adjustment)
	assertDecimal(t, "4.50", result.FinalPrice)
}

func TestPrice_DeltaOnlyCharging(t *testing.T) {
	recipe := pricedRecipe()
	catalog := models.NewIngredientCatalog(catalogIngredients())

	tests := []struct {
		name     string
		espresso string
		want     string
	}{
		{"one extra shot", "3", "0.75"},
		{"three extra shots", "5", "2.25"},
		{"one shot removed", "1", "-0.75"},
		{"all shots removed", "0", "-1.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quantities := Initialize(recipe)
			quantities[espressoID] = dec(tt.espresso)

			result := Price(dec("4.50"), recipe, quantities, catalog)

			assertDecimal(t, tt.want, result.Adjustment)
			assertDecimal(t, dec("4.50").Add(dec(tt.want)).String(), result.FinalPrice)
		})
	}
}

func TestPrice_IncludedIngredientIsSilent(t *testing.T) {
	customPrice := dec("9.99")
	recipe := models.EffectiveRecipe{
		milkID: {ProductID: latteID, IngredientID: milkID, DefaultAmount: dec("8"), UseDefaultPrice: false, CustomPrice: &customPrice},
	}
	catalog := models.NewIngredientCatalog(catalogIngredients())

	for _, qty := range []string{"0", "4", "8", "12", "100"} {
		result := Price(dec("4.50"), recipe, map[int]decimal.Decimal{milkID: dec(qty)}, catalog)
		assertDecimal(t, "0", result.Adjustment)
	}
}

func TestPrice_AddInChargedInFull(t *testing.T) {
	recipe := models.EffectiveRecipe{
		espressoID: {ProductID: latteID, IngredientID: espressoID, DefaultAmount: dec("2"), UseDefaultPrice: true},
		milkID:     {ProductID: latteID, IngredientID: milkID, DefaultAmount: dec("8"), UseDefaultPrice: false},
	}
	catalog := models.NewIngredientCatalog(catalogIngredients())

	quantities := Initialize(recipe)
	quantities[milkID] = dec("16")
	quantities[pumpkinID] = dec("2")

	result := Price(dec("4.50"), recipe, quantities, catalog)

	assertDecimal(t, "0.60", result.Adjustment)
	assertDecimal(t, "5.10", result.FinalPrice)
}

func TestPrice_RatioPartsHaveNoCost(t *testing.T) {
	parts := models.RatioPart()
	recipe := models.EffectiveRecipe{
		vanillaID: {ProductID: latteID, IngredientID: vanillaID, DefaultAmount: dec("1"), UnitTypeOverride: &parts, UseDefaultPrice: true},
	}
	catalog := models.NewIngredientCatalog(catalogIngredients())

	quantities := Initialize(recipe)
	quantities[vanillaID] = dec("4")
	quantities[cinnamonID] = dec("3")

	result := Price(dec("3.00"), recipe, quantities, catalog)

	assertDecimal(t, "0", result.Adjustment)
}

func TestPrice_NoFloor(t *testing.T) {
	recipe := models.EffectiveRecipe{
		espressoID: {ProductID: latteID, IngredientID: espressoID, DefaultAmount: dec("10"), UseDefaultPrice: true},
	}
	catalog := models.NewIngredientCatalog(catalogIngredients())

	result := Price(dec("1.00"), recipe, map[int]decimal.Decimal{espressoID: decimal.Zero}, catalog)

	assertDecimal(t, "-7.50", result.Adjustment)
	assertDecimal(t, "-6.50", result.FinalPrice)
}

func TestPrice_UnknownCatalogEntryContributesNothing(t *testing.T) {
	recipe := models.EffectiveRecipe{
		999: {ProductID: latteID, IngredientID: 999, DefaultAmount: dec("1"), UseDefaultPrice: true},
	}

	result := Price(dec("2.00"), recipe, map[int]decimal.Decimal{999: dec("5"), 998: dec("1")}, models.IngredientCatalog{})

	assertDecimal(t, "0", result.Adjustment)
	assertDecimal(t, "2.00", result.FinalPrice)
}
