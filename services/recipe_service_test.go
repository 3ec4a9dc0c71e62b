package services

import (
	"context"
	"strings"
	"testing"

	"coffee-order/models"
	"coffee-order/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsPlaceholderID(t *testing.T) {
	for _, id := range []string{"", "0", "undefined", "null", " NULL "} {
		assert.True(t, IsPlaceholderID(id), id)
	}
	assert.False(t, IsPlaceholderID("main"))
}

func TestDedupeEntries(t *testing.T) {
	entries := []models.RecipeEntryInput{
		{IngredientID: 1, Amount: dec("2")},
		{IngredientID: 2, Amount: dec("8")},
		{IngredientID: 1, Amount: dec("5")},
	}

	out, dropped := DedupeEntries(entries)

	require.Len(t, out, 2)
	assertDecimal(t, "2", out[0].Amount)
	assert.Equal(t, []int{1}, dropped)
}

func TestRecipeService_SetRecipe(t *testing.T) {
	ctx := context.Background()
	store := seededStore()
	svc := NewRecipeService(store, "main")

	result, err := svc.SetRecipe(ctx, latteID, models.DefaultScope(), []models.RecipeEntryInput{
		{IngredientID: espressoID, Amount: dec("3"), UseDefaultPrice: true},
		{IngredientID: espressoID, Amount: dec("9")},
		{IngredientID: vanillaID, Amount: dec("1"), UnitType: "pumps"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 1, result.Deleted)
	assert.Equal(t, []int{espressoID}, result.Dropped)

	entries, err := svc.GetRecipe(ctx, latteID, models.DefaultScope())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assertDecimal(t, "3", entries[0].DefaultAmount)
}

func TestRecipeService_SetRecipeSizeScope(t *testing.T) {
	svc := NewRecipeService(seededStore(), "main")

	result, err := svc.SetRecipe(context.Background(), latteID, models.SizeScope(largeID), []models.RecipeEntryInput{
		{IngredientID: milkID, Amount: dec("14")},
	})
	require.NoError(t, err)
	assert.Equal(t, "3", result.Scope)
	assert.Equal(t, 1, result.Updated)
}

func TestRecipeService_SetRecipeAcceptsCatalogUnits(t *testing.T) {
	ctx := context.Background()
	svc := NewRecipeService(seededStore(), "main")

	_, err := svc.SetRecipe(ctx, dripID, models.DefaultScope(), []models.RecipeEntryInput{
		{IngredientID: brewedID, Amount: dec("2"), UnitType: "Parts"},
		{IngredientID: milkID, Amount: dec("4"), UnitType: "oz"},
	})
	require.NoError(t, err)

	entries, err := svc.GetRecipe(ctx, dripID, models.DefaultScope())
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestRecipeService_SetRecipeRejects(t *testing.T) {
	ctx := context.Background()
	valid := []models.RecipeEntryInput{{IngredientID: espressoID, Amount: dec("2")}}
	negative := dec("-0.50")

	tests := []struct {
		name      string
		shopID    string
		productID int
		scope     models.RecipeScope
		entries   []models.RecipeEntryInput
		want      error
	}{
		{"placeholder shop", "undefined", latteID, models.DefaultScope(), valid, ErrPlaceholderID},
		{"empty shop", "", latteID, models.DefaultScope(), valid, ErrPlaceholderID},
		{"zero product", "main", 0, models.DefaultScope(), valid, ErrPlaceholderID},
		{"zero ingredient", "main", latteID, models.DefaultScope(), []models.RecipeEntryInput{{IngredientID: 0, Amount: dec("1")}}, ErrPlaceholderID},
		{"negative amount", "main", latteID, models.DefaultScope(), []models.RecipeEntryInput{{IngredientID: espressoID, Amount: dec("-1")}}, ErrInvalidRecipe},
		{"negative custom price", "main", latteID, models.DefaultScope(), []models.RecipeEntryInput{{IngredientID: espressoID, Amount: dec("1"), CustomPrice: &negative}}, ErrInvalidRecipe},
		{"long unit name", "main", latteID, models.DefaultScope(), []models.RecipeEntryInput{{IngredientID: espressoID, Amount: dec("1"), UnitType: strings.Repeat("x", 51)}}, ErrInvalidRecipe},
		{"unknown ingredient", "main", latteID, models.DefaultScope(), []models.RecipeEntryInput{{IngredientID: 999, Amount: dec("1")}}, ErrInvalidRecipe},
		{"unknown unit type", "main", latteID, models.DefaultScope(), []models.RecipeEntryInput{{IngredientID: milkID, Amount: dec("1"), UnitType: "gallons"}}, ErrInvalidRecipe},
		{"foreign size", "main", latteID, models.SizeScope(unknownSize), valid, ErrSizeNotInProduct},
		{"unknown product", "main", 42, models.DefaultScope(), valid, repositories.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := seededStore()
			svc := NewRecipeService(store, tt.shopID)

			_, err := svc.SetRecipe(ctx, tt.productID, tt.scope, tt.entries)
			assert.ErrorIs(t, err, tt.want)

			entries, err := store.ListRecipeEntries(ctx, latteID)
			require.NoError(t, err)
			assert.Len(t, entries, 3, "rejected save must not touch stored entries")
		})
	}
}
