package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"coffee-order/models"
	"coffee-order/repositories"

	"github.com/go-playground/validator/v10"
)

// RecipeService is the staff write path for recipe layers.
type RecipeService struct {
	store    repositories.CatalogStore
	shopID   string
	validate *validator.Validate
}

func NewRecipeService(store repositories.CatalogStore, shopID string) *RecipeService {
	return &RecipeService{
		store:    store,
		shopID:   shopID,
		validate: validator.New(),
	}
}

// IsPlaceholderID reports ids that a client sends when it has no real value.
func IsPlaceholderID(id string) bool {
	switch strings.ToLower(strings.TrimSpace(id)) {
	case "", "0", "undefined", "null":
		return true
	}
	return false
}

// DedupeEntries keeps the first entry per ingredient id and returns the ids
// of the rows it dropped.
func DedupeEntries(entries []models.RecipeEntryInput) ([]models.RecipeEntryInput, []int) {
	seen := make(map[int]bool, len(entries))
	out := make([]models.RecipeEntryInput, 0, len(entries))
	var dropped []int
	for _, in := range entries {
		if seen[in.IngredientID] {
			dropped = append(dropped, in.IngredientID)
			continue
		}
		seen[in.IngredientID] = true
		out = append(out, in)
	}
	return out, dropped
}

func (s *RecipeService) GetRecipe(ctx context.Context, productID int, scope models.RecipeScope) ([]models.RecipeEntry, error) {
	if productID <= 0 {
		return nil, fmt.Errorf("%w: product id %d", ErrPlaceholderID, productID)
	}
	if _, err := s.store.GetProduct(ctx, productID); err != nil {
		return nil, err
	}
	return s.store.GetRecipeEntries(ctx, productID, scope)
}

// SetRecipe replaces one recipe layer of a product with entries.
func (s *RecipeService) SetRecipe(ctx context.Context, productID int, scope models.RecipeScope, entries []models.RecipeEntryInput) (models.SetRecipeResult, error) {
	if IsPlaceholderID(s.shopID) {
		return models.SetRecipeResult{}, fmt.Errorf("%w: shop id %q", ErrPlaceholderID, s.shopID)
	}
	if productID <= 0 {
		return models.SetRecipeResult{}, fmt.Errorf("%w: product id %d", ErrPlaceholderID, productID)
	}
	if err := s.validateEntries(entries); err != nil {
		return models.SetRecipeResult{}, err
	}

	if _, err := s.store.GetProduct(ctx, productID); err != nil {
		return models.SetRecipeResult{}, err
	}
	if err := s.checkCatalog(ctx, entries); err != nil {
		return models.SetRecipeResult{}, err
	}
	if !scope.IsDefault() {
		if err := s.checkSize(ctx, productID, *scope.SizeID); err != nil {
			return models.SetRecipeResult{}, err
		}
	}

	deduped, dropped := DedupeEntries(entries)
	for _, id := range dropped {
		log.Printf("Warning: duplicate ingredient %d in recipe for product %d (%s), keeping the first", id, productID, scope)
	}

	result, err := s.store.SetRecipe(ctx, s.shopID, productID, scope, deduped)
	if err != nil {
		return models.SetRecipeResult{}, fmt.Errorf("save recipe for product %d: %w", productID, err)
	}
	result.Dropped = dropped
	return result, nil
}

func (s *RecipeService) validateEntries(entries []models.RecipeEntryInput) error {
	for i, in := range entries {
		if in.IngredientID <= 0 {
			return fmt.Errorf("%w: entry %d has ingredient id %d", ErrPlaceholderID, i, in.IngredientID)
		}
		if err := s.validate.Struct(in); err != nil {
			return fmt.Errorf("%w: entry %d: %v", ErrInvalidRecipe, i, err)
		}
		if in.Amount.IsNegative() {
			return fmt.Errorf("%w: entry %d has negative amount %s", ErrInvalidRecipe, i, in.Amount)
		}
		if in.CustomPrice != nil && in.CustomPrice.IsNegative() {
			return fmt.Errorf("%w: entry %d has negative custom price", ErrInvalidRecipe, i)
		}
	}
	return nil
}

// checkCatalog rejects ingredients and unit overrides the catalog does not
// know. The ratio-part unit is always accepted.
func (s *RecipeService) checkCatalog(ctx context.Context, entries []models.RecipeEntryInput) error {
	ingredients, err := s.store.GetIngredients(ctx)
	if err != nil {
		return err
	}
	catalog := models.NewIngredientCatalog(ingredients)

	var units map[string]bool
	for i, in := range entries {
		if _, ok := catalog[in.IngredientID]; !ok {
			return fmt.Errorf("%w: entry %d has unknown ingredient %d", ErrInvalidRecipe, i, in.IngredientID)
		}
		if in.UnitType == "" || models.ParseUnitRef(in.UnitType).IsRatioPart() {
			continue
		}
		if units == nil {
			if units, err = s.unitNames(ctx); err != nil {
				return err
			}
		}
		if !units[in.UnitType] {
			return fmt.Errorf("%w: entry %d has unknown unit type %q", ErrInvalidRecipe, i, in.UnitType)
		}
	}
	return nil
}

func (s *RecipeService) unitNames(ctx context.Context) (map[string]bool, error) {
	unitTypes, err := s.store.GetUnitTypes(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]bool, len(unitTypes))
	for _, u := range unitTypes {
		names[u.Name] = true
	}
	return names, nil
}

func (s *RecipeService) checkSize(ctx context.Context, productID, sizeID int) error {
	sizes, err := s.store.GetProductSizes(ctx, productID)
	if err != nil {
		return err
	}
	for _, size := range sizes {
		if size.ID == sizeID {
			return nil
		}
	}
	return fmt.Errorf("%w: size %d, product %d", ErrSizeNotInProduct, sizeID, productID)
}
