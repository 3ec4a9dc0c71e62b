package engine

import (
	"sort"
	"time"

	"coffee-order/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Confirm freezes the session into a CartLine. The line carries no reference
// back to the recipe store; later cart edits never re-resolve it. A session
// confirms once; later calls return ErrSessionFrozen.
func (s *Session) Confirm(quantity int) (models.CartLine, error) {
	if s.frozen {
		return models.CartLine{}, ErrSessionFrozen
	}
	if quantity < 1 {
		quantity = 1
	}
	price := s.Price()
	s.frozen = true

	line := models.CartLine{
		ID:              uuid.New().String(),
		ProductID:       s.Product.ID,
		ProductName:     s.Product.Name,
		SelectedSizeID:  s.SizeID(),
		BasePrice:       s.basePrice,
		PriceAdjustment: price.Adjustment,
		FinalPrice:      price.FinalPrice,
		TaxRate:         s.Product.TaxRate,
		Quantity:        quantity,
		RecipeSnapshot:  []models.SnapshotEntry{},
		Customizations:  []models.SnapshotEntry{},
		CreatedAt:       time.Now().UTC(),
	}
	if s.sizeID != nil {
		if size, ok := s.findSize(*s.sizeID); ok {
			line.SizeName = size.SizeName
		}
	}

	for id, qty := range s.quantities {
		entry := s.snapshotEntry(id, qty)
		if qty.IsPositive() {
			line.RecipeSnapshot = append(line.RecipeSnapshot, entry)
		}
		if entry.Differs() {
			line.Customizations = append(line.Customizations, entry)
		}
	}
	sortSnapshot(line.RecipeSnapshot)
	sortSnapshot(line.Customizations)
	return line, nil
}

func (s *Session) snapshotEntry(id int, qty decimal.Decimal) models.SnapshotEntry {
	ing := s.catalog[id]
	entry := models.SnapshotEntry{
		IngredientID:   id,
		IngredientName: ing.Name,
		Amount:         qty,
		UnitType:       ing.UnitType,
	}
	if recipeEntry, ok := s.recipe[id]; ok {
		entry.WasInDefaultRecipe = true
		entry.DefaultAmount = recipeEntry.DefaultAmount
		entry.UnitType = recipeEntry.UnitFor(ing)
	}
	return entry
}

func sortSnapshot(entries []models.SnapshotEntry) {
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].WasInDefaultRecipe != entries[j].WasInDefaultRecipe {
			return entries[i].WasInDefaultRecipe
		}
		return entries[i].IngredientID < entries[j].IngredientID
	})
}
