package engine

import (
	"coffee-order/models"

	"github.com/shopspring/decimal"
)

type PriceResult struct {
	Adjustment decimal.Decimal `json:"adjustment"`
	FinalPrice decimal.Decimal `json:"final_price"`
}

// Price computes the line price of a customized item.
//
// Recipe ingredients flagged UseDefaultPrice are charged on the delta from
// their default amount, since the default is already part of basePrice.
// Recipe ingredients without the flag never change the price, and CustomPrice
// is not consulted. Ingredients outside the recipe are charged in full.
// Ratio-part units and ingredients missing from the catalog contribute nothing.
// The final price is not clamped.
func Price(
	basePrice decimal.Decimal,
	recipe models.EffectiveRecipe,
	quantities map[int]decimal.Decimal,
	catalog models.IngredientCatalog,
) PriceResult {
	adjustment := decimal.Zero

	for id, entry := range recipe {
		if !entry.UseDefaultPrice {
			continue
		}
		ing, ok := catalog[id]
		if !ok || entry.UnitFor(ing).IsRatioPart() {
			continue
		}
		delta := quantities[id].Sub(entry.DefaultAmount)
		adjustment = adjustment.Add(delta.Mul(ing.UnitCost))
	}

	for id, qty := range quantities {
		if _, inRecipe := recipe[id]; inRecipe || !qty.IsPositive() {
			continue
		}
		ing, ok := catalog[id]
		if !ok || ing.UnitType.IsRatioPart() {
			continue
		}
		adjustment = adjustment.Add(qty.Mul(ing.UnitCost))
	}

	return PriceResult{
		Adjustment: adjustment,
		FinalPrice: basePrice.Add(adjustment),
	}
}
