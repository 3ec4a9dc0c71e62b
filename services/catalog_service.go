package services

import (
	"context"
	"sort"

	"coffee-order/engine"
	"coffee-order/models"
	"coffee-order/repositories"
)

type CatalogService struct {
	store repositories.CatalogStore
}

func NewCatalogService(store repositories.CatalogStore) *CatalogService {
	return &CatalogService{store: store}
}

func (s *CatalogService) UnitTypes(ctx context.Context) ([]models.UnitType, error) {
	return s.store.GetUnitTypes(ctx)
}

func (s *CatalogService) Ingredients(ctx context.Context) ([]models.Ingredient, error) {
	return s.store.GetIngredients(ctx)
}

func (s *CatalogService) ProductSizes(ctx context.Context, productID int) ([]models.ProductSize, error) {
	if _, err := s.store.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	return s.store.GetProductSizes(ctx, productID)
}

// EffectiveRecipe resolves the recipe a buyer would start from, ordered by
// ingredient id.
func (s *CatalogService) EffectiveRecipe(ctx context.Context, productID int, sizeID *int) ([]models.RecipeEntry, error) {
	if _, err := s.store.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	entries, err := s.store.ListRecipeEntries(ctx, productID)
	if err != nil {
		return nil, err
	}

	recipe := engine.Resolve(productID, sizeID, entries)
	out := make([]models.RecipeEntry, 0, len(recipe))
	for _, entry := range recipe {
		out = append(out, entry)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].IngredientID < out[j].IngredientID })
	return out, nil
}
