package repositories

import (
	"context"
	"errors"
	"fmt"

	"coffee-order/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	db *pgxpool.Pool
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db}
}

func (r *PostgresStore) GetUnitTypes(ctx context.Context) ([]models.UnitType, error) {
	query := `SELECT name, display_name, abbreviation, display_order FROM unit_types ORDER BY display_order, name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get unit types: %w", err)
	}
	defer rows.Close()

	units := []models.UnitType{}
	for rows.Next() {
		var u models.UnitType
		if err := rows.Scan(&u.Name, &u.DisplayName, &u.Abbreviation, &u.DisplayOrder); err != nil {
			return nil, fmt.Errorf("scan unit type: %w", err)
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

func (r *PostgresStore) GetIngredients(ctx context.Context) ([]models.Ingredient, error) {
	query := `SELECT id, name, category, unit_type, unit_cost, available, created_at
	          FROM ingredients ORDER BY category, name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("get ingredients: %w", err)
	}
	defer rows.Close()

	ingredients := []models.Ingredient{}
	for rows.Next() {
		var ing models.Ingredient
		var category, unitType string
		if err := rows.Scan(&ing.ID, &ing.Name, &category, &unitType, &ing.UnitCost, &ing.Available, &ing.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan ingredient: %w", err)
		}
		ing.Category = models.IngredientCategory(category)
		ing.UnitType = models.ParseUnitRef(unitType)
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}

func (r *PostgresStore) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	query := `SELECT id, name, description, price, tax_rate, has_sizes, fixed_size_ounces, is_active, created_at, updated_at
	          FROM products WHERE id = $1`

	var p models.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.TaxRate, &p.HasSizes,
		&p.FixedSizeOunces, &p.IsActive, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("product %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func (r *PostgresStore) GetProductSizes(ctx context.Context, productID int) ([]models.ProductSize, error) {
	query := `SELECT id, product_id, size_name, size_ounces, price, display_order, available
	          FROM product_sizes WHERE product_id = $1 ORDER BY display_order, id`

	rows, err := r.db.Query(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("get product sizes: %w", err)
	}
	defer rows.Close()

	sizes := []models.ProductSize{}
	for rows.Next() {
		var s models.ProductSize
		if err := rows.Scan(&s.ID, &s.ProductID, &s.SizeName, &s.SizeOunces, &s.Price, &s.DisplayOrder, &s.Available); err != nil {
			return nil, fmt.Errorf("scan product size: %w", err)
		}
		sizes = append(sizes, s)
	}
	return sizes, rows.Err()
}
