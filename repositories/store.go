package repositories

import (
	"context"
	"errors"

	"coffee-order/models"
)

var (
	ErrNotFound     = errors.New("record not found")
	ErrCartNotFound = errors.New("cart not found")

	// ErrCartContention means a cart kept changing under an update for
	// every retry.
	ErrCartContention = errors.New("cart is being modified concurrently")
)

// CatalogStore is the read/write surface of the catalog and recipe store.
type CatalogStore interface {
	GetUnitTypes(ctx context.Context) ([]models.UnitType, error)
	GetIngredients(ctx context.Context) ([]models.Ingredient, error)
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	GetProductSizes(ctx context.Context, productID int) ([]models.ProductSize, error)
	GetRecipeEntries(ctx context.Context, productID int, scope models.RecipeScope) ([]models.RecipeEntry, error)
	ListRecipeEntries(ctx context.Context, productID int) ([]models.RecipeEntry, error)
	// SetRecipe replaces one (product, scope) layer with entries, which must
	// already be unique by ingredient id.
	SetRecipe(ctx context.Context, shopID string, productID int, scope models.RecipeScope, entries []models.RecipeEntryInput) (models.SetRecipeResult, error)
}

// RecipeDiff splits a recipe save into updates, inserts and deletions given
// the ingredient id to entry id map currently stored for the scope.
type RecipeDiff struct {
	Update map[int]models.RecipeEntryInput
	Insert []models.RecipeEntryInput
	Delete []int
}

func DiffRecipe(existing map[int]int, entries []models.RecipeEntryInput) RecipeDiff {
	diff := RecipeDiff{Update: map[int]models.RecipeEntryInput{}}
	keep := make(map[int]bool, len(entries))

	for _, in := range entries {
		keep[in.IngredientID] = true
		if entryID, ok := existing[in.IngredientID]; ok {
			diff.Update[entryID] = in
			continue
		}
		diff.Insert = append(diff.Insert, in)
	}

	for ingredientID, entryID := range existing {
		if !keep[ingredientID] {
			diff.Delete = append(diff.Delete, entryID)
		}
	}
	return diff
}

func (d RecipeDiff) Result(productID int, scope models.RecipeScope) models.SetRecipeResult {
	return models.SetRecipeResult{
		ProductID: productID,
		Scope:     scope.String(),
		Inserted:  len(d.Insert),
		Updated:   len(d.Update),
		Deleted:   len(d.Delete),
	}
}

func unitOverride(raw string) *models.UnitRef {
	if raw == "" {
		return nil
	}
	ref := models.ParseUnitRef(raw)
	return &ref
}
