package engine

import "coffee-order/models"

// Resolve builds the effective recipe for a product and optional size.
//
// DEFAULT entries (nil SizeID) form the base layer. When sizeID is set, every
// entry scoped to that size replaces the DEFAULT entry for the same ingredient
// as a whole; no fields are merged. Entries scoped to other sizes or other
// products are ignored. Entries are assumed unique per (scope, ingredient).
func Resolve(productID int, sizeID *int, entries []models.RecipeEntry) models.EffectiveRecipe {
	recipe := make(models.EffectiveRecipe)
	for _, e := range entries {
		if e.ProductID == productID && e.SizeID == nil {
			recipe[e.IngredientID] = e
		}
	}

	if sizeID == nil {
		return recipe
	}

	for _, e := range entries {
		if e.ProductID == productID && e.SizeID != nil && *e.SizeID == *sizeID {
			recipe[e.IngredientID] = e
		}
	}
	return recipe
}
