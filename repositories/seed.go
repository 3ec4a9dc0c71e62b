package repositories

import (
	"coffee-order/models"

	"github.com/shopspring/decimal"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// SeedDemo loads a small coffee menu into the memory store for local runs.
func SeedDemo(m *MemoryStore) {
	for i, u := range []models.UnitType{
		{Name: "shots", DisplayName: "Shots", Abbreviation: "sh"},
		{Name: "pumps", DisplayName: "Pumps", Abbreviation: "pmp"},
		{Name: "oz", DisplayName: "Ounces", Abbreviation: "oz"},
		{Name: "scoops", DisplayName: "Scoops", Abbreviation: "sc"},
	} {
		u.DisplayOrder = i + 1
		m.AddUnitType(u)
	}

	for _, ing := range []models.Ingredient{
		{ID: 1, Name: "Espresso", Category: models.CategoryBaseDrink, UnitType: models.CatalogUnit("shots"), UnitCost: money("0.75")},
		{ID: 2, Name: "Whole Milk", Category: models.CategoryLiquidCreamer, UnitType: models.CatalogUnit("oz"), UnitCost: money("0.10")},
		{ID: 3, Name: "Oat Milk", Category: models.CategoryLiquidCreamer, UnitType: models.CatalogUnit("oz"), UnitCost: money("0.15")},
		{ID: 4, Name: "Vanilla Syrup", Category: models.CategorySugar, UnitType: models.CatalogUnit("pumps"), UnitCost: money("0.25")},
		{ID: 5, Name: "Pumpkin Spice Syrup", Category: models.CategorySugar, UnitType: models.CatalogUnit("pumps"), UnitCost: money("0.30")},
		{ID: 6, Name: "Whipped Cream", Category: models.CategoryTopping, UnitType: models.CatalogUnit("scoops"), UnitCost: money("0.50")},
		{ID: 7, Name: "Brewed Coffee", Category: models.CategoryBaseDrink, UnitType: models.RatioPart(), UnitCost: money("0")},
	} {
		ing.Available = true
		m.AddIngredient(ing)
	}

	m.AddProduct(
		models.Product{ID: 1, Name: "Latte", TaxRate: money("0.08"), HasSizes: true, IsActive: true},
		models.ProductSize{ID: 1, SizeName: "Small", SizeOunces: money("12"), Price: money("3.95"), DisplayOrder: 1, Available: true},
		models.ProductSize{ID: 2, SizeName: "Medium", SizeOunces: money("16"), Price: money("4.50"), DisplayOrder: 2, Available: true},
		models.ProductSize{ID: 3, SizeName: "Large", SizeOunces: money("20"), Price: money("5.25"), DisplayOrder: 3, Available: true},
	)
	large := 3
	m.AddRecipeEntry(models.RecipeEntry{ProductID: 1, IngredientID: 1, DefaultAmount: money("2"), IsRequired: true, IsRemovable: true, IsAddable: true, UseDefaultPrice: true})
	m.AddRecipeEntry(models.RecipeEntry{ProductID: 1, IngredientID: 2, DefaultAmount: money("8"), IsRemovable: true, IsAddable: true})
	m.AddRecipeEntry(models.RecipeEntry{ProductID: 1, SizeID: &large, IngredientID: 2, DefaultAmount: money("12"), IsRemovable: true, IsAddable: true})

	fixedPrice := money("2.75")
	fixedOunces := money("12")
	m.AddProduct(models.Product{ID: 2, Name: "Drip Coffee", Price: &fixedPrice, TaxRate: money("0.08"), FixedSizeOunces: &fixedOunces, IsActive: true})
	m.AddRecipeEntry(models.RecipeEntry{ProductID: 2, IngredientID: 7, DefaultAmount: money("1"), IsRequired: true})
}
