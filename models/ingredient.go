package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type IngredientCategory string

const (
	CategoryBaseDrink     IngredientCategory = "base_drink"
	CategorySugar         IngredientCategory = "sugar"
	CategoryLiquidCreamer IngredientCategory = "liquid_creamer"
	CategoryTopping       IngredientCategory = "topping"
	CategoryAddIn         IngredientCategory = "add_in"
)

var ingredientCategoryOrder = map[IngredientCategory]int{
	CategoryBaseDrink:     0,
	CategorySugar:         1,
	CategoryLiquidCreamer: 2,
	CategoryTopping:       3,
	CategoryAddIn:         4,
}

func ParseIngredientCategory(raw string) (IngredientCategory, error) {
	c := IngredientCategory(raw)
	if _, ok := ingredientCategoryOrder[c]; !ok {
		return "", fmt.Errorf("unknown ingredient category %q", raw)
	}
	return c, nil
}

// Rank orders categories for display; unknown categories sort last.
func (c IngredientCategory) Rank() int {
	if r, ok := ingredientCategoryOrder[c]; ok {
		return r
	}
	return len(ingredientCategoryOrder)
}

type Ingredient struct {
	ID        int                `json:"id"`
	Name      string             `json:"name"`
	Category  IngredientCategory `json:"category"`
	UnitType  UnitRef            `json:"unit_type"`
	UnitCost  decimal.Decimal    `json:"unit_cost"`
	Available bool               `json:"available"`
	CreatedAt time.Time          `json:"created_at"`
}

// IngredientCatalog indexes ingredients by id.
type IngredientCatalog map[int]Ingredient

func NewIngredientCatalog(ingredients []Ingredient) IngredientCatalog {
	catalog := make(IngredientCatalog, len(ingredients))
	for _, ing := range ingredients {
		catalog[ing.ID] = ing
	}
	return catalog
}
