package repositories

import (
	"context"
	"fmt"

	"coffee-order/models"

	"github.com/jackc/pgx/v5"
)

const recipeColumns = `id, product_id, size_id, ingredient_id, default_amount, unit_type_override,
	is_required, is_removable, is_addable, use_default_price, custom_price`

func scanRecipeEntries(rows pgx.Rows) ([]models.RecipeEntry, error) {
	defer rows.Close()

	entries := []models.RecipeEntry{}
	for rows.Next() {
		var e models.RecipeEntry
		var override *string
		if err := rows.Scan(
			&e.ID, &e.ProductID, &e.SizeID, &e.IngredientID, &e.DefaultAmount, &override,
			&e.IsRequired, &e.IsRemovable, &e.IsAddable, &e.UseDefaultPrice, &e.CustomPrice,
		); err != nil {
			return nil, fmt.Errorf("scan recipe entry: %w", err)
		}
		if override != nil {
			e.UnitTypeOverride = unitOverride(*override)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *PostgresStore) GetRecipeEntries(ctx context.Context, productID int, scope models.RecipeScope) ([]models.RecipeEntry, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipe_entries
	          WHERE product_id = $1 AND size_id IS NOT DISTINCT FROM $2 ORDER BY id`

	rows, err := r.db.Query(ctx, query, productID, scope.SizeID)
	if err != nil {
		return nil, fmt.Errorf("get recipe entries: %w", err)
	}
	return scanRecipeEntries(rows)
}

func (r *PostgresStore) ListRecipeEntries(ctx context.Context, productID int) ([]models.RecipeEntry, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipe_entries WHERE product_id = $1 ORDER BY id`

	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("list recipe entries: %w", err)
	}
	return scanRecipeEntries(rows)
}

// SetRecipe applies a diff instead of delete-then-insert so unchanged
// ingredients keep their entry ids for concurrent readers.
func (r *PostgresStore) SetRecipe(ctx context.Context, shopID string, productID int, scope models.RecipeScope, entries []models.RecipeEntryInput) (models.SetRecipeResult, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return models.SetRecipeResult{}, fmt.Errorf("set recipe: %w", err)
	}
	defer tx.Rollback(ctx)

	rows, err := tx.Query(ctx, `
		SELECT id, ingredient_id FROM recipe_entries
		WHERE product_id = $1 AND size_id IS NOT DISTINCT FROM $2
		FOR UPDATE`, productID, scope.SizeID)
	if err != nil {
		return models.SetRecipeResult{}, fmt.Errorf("set recipe: load scope: %w", err)
	}
	existing := map[int]int{}
	for rows.Next() {
		var entryID, ingredientID int
		if err := rows.Scan(&entryID, &ingredientID); err != nil {
			rows.Close()
			return models.SetRecipeResult{}, fmt.Errorf("set recipe: scan scope: %w", err)
		}
		existing[ingredientID] = entryID
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return models.SetRecipeResult{}, fmt.Errorf("set recipe: load scope: %w", err)
	}

	diff := DiffRecipe(existing, entries)

	if len(diff.Delete) > 0 {
		if _, err := tx.Exec(ctx, `DELETE FROM recipe_entries WHERE id = ANY($1)`, diff.Delete); err != nil {
			return models.SetRecipeResult{}, fmt.Errorf("set recipe: delete: %w", err)
		}
	}

	for entryID, in := range diff.Update {
		_, err := tx.Exec(ctx, `
			UPDATE recipe_entries SET shop_id = $1, default_amount = $2, unit_type_override = $3,
				is_required = $4, is_removable = $5, is_addable = $6, use_default_price = $7,
				custom_price = $8, updated_at = CURRENT_TIMESTAMP
			WHERE id = $9`,
			shopID, in.Amount, nullableString(in.UnitType),
			in.IsRequired, in.IsRemovable, in.IsAddable, in.UseDefaultPrice, in.CustomPrice, entryID,
		)
		if err != nil {
			return models.SetRecipeResult{}, fmt.Errorf("set recipe: update ingredient %d: %w", in.IngredientID, err)
		}
	}

	for _, in := range diff.Insert {
		_, err := tx.Exec(ctx, `
			INSERT INTO recipe_entries (shop_id, product_id, size_id, ingredient_id, default_amount,
				unit_type_override, is_required, is_removable, is_addable, use_default_price, custom_price)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
			shopID, productID, scope.SizeID, in.IngredientID, in.Amount, nullableString(in.UnitType),
			in.IsRequired, in.IsRemovable, in.IsAddable, in.UseDefaultPrice, in.CustomPrice,
		)
		if err != nil {
			return models.SetRecipeResult{}, fmt.Errorf("set recipe: insert ingredient %d: %w", in.IngredientID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return models.SetRecipeResult{}, fmt.Errorf("set recipe: commit: %w", err)
	}
	return diff.Result(productID, scope), nil
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
