package engine

import (
	"testing"

	"coffee-order/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

const (
	latteID      = 1
	mediumID     = 10
	largeID      = 11
	espressoID   = 100
	milkID       = 101
	vanillaID    = 102
	pumpkinID    = 103
	cinnamonID   = 104
	retiredSyrup = 105
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func intPtr(v int) *int {
	return &v
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

func latte() models.Product {
	return models.Product{ID: latteID, Name: "Latte", TaxRate: dec("0.08"), HasSizes: true, IsActive: true}
}

func latteSizes() []models.ProductSize {
	return []models.ProductSize{
		{ID: largeID, ProductID: latteID, SizeName: "Large", SizeOunces: dec("20"), Price: dec("5.25"), DisplayOrder: 2, Available: true},
		{ID: mediumID, ProductID: latteID, SizeName: "Medium", SizeOunces: dec("16"), Price: dec("4.50"), DisplayOrder: 1, Available: true},
	}
}

func catalogIngredients() []models.Ingredient {
	return []models.Ingredient{
		{ID: espressoID, Name: "Espresso", Category: models.CategoryBaseDrink, UnitType: models.CatalogUnit("shots"), UnitCost: dec("0.75"), Available: true},
		{ID: milkID, Name: "Whole Milk", Category: models.CategoryLiquidCreamer, UnitType: models.CatalogUnit("oz"), UnitCost: dec("0.10"), Available: true},
		{ID: vanillaID, Name: "Vanilla Syrup", Category: models.CategorySugar, UnitType: models.CatalogUnit("pumps"), UnitCost: dec("0.25"), Available: true},
		{ID: pumpkinID, Name: "Pumpkin Spice Syrup", Category: models.CategorySugar, UnitType: models.CatalogUnit("pumps"), UnitCost: dec("0.30"), Available: true},
		{ID: cinnamonID, Name: "Cinnamon", Category: models.CategoryTopping, UnitType: models.RatioPart(), UnitCost: dec("0.40"), Available: true},
		{ID: retiredSyrup, Name: "Retired Syrup", Category: models.CategorySugar, UnitType: models.CatalogUnit("pumps"), UnitCost: dec("0.50"), Available: false},
	}
}

func latteEntries() []models.RecipeEntry {
	return []models.RecipeEntry{
		{ID: 1, ProductID: latteID, IngredientID: espressoID, DefaultAmount: dec("2"), IsRequired: true, UseDefaultPrice: true},
		{ID: 2, ProductID: latteID, IngredientID: milkID, DefaultAmount: dec("8"), IsRemovable: true, UseDefaultPrice: false},
		{ID: 3, ProductID: latteID, SizeID: intPtr(largeID), IngredientID: milkID, DefaultAmount: dec("12"), IsRemovable: true, UseDefaultPrice: false},
	}
}

func newLatteSession(t *testing.T, sizeID *int) *Session {
	t.Helper()
	s, err := NewSession(SessionInput{
		ID:          "session-1",
		Product:     latte(),
		Sizes:       latteSizes(),
		Entries:     latteEntries(),
		Ingredients: catalogIngredients(),
		SizeID:      sizeID,
	})
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}
	return s
}
