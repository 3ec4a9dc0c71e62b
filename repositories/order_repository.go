package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"coffee-order/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// OrderWriter is the checkout collaborator that persists confirmed lines.
type OrderWriter interface {
	CreateOrder(ctx context.Context, cartID string, lines []models.CartLine, totals models.CartTotals) (*models.Order, error)
}

type OrderRepository struct {
	db *pgxpool.Pool
}

func NewOrderRepository(db *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) CreateOrder(ctx context.Context, cartID string, lines []models.CartLine, totals models.CartTotals) (*models.Order, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("create order: %w", err)
	}
	defer tx.Rollback(ctx)

	order := &models.Order{
		CartID:    cartID,
		Subtotal:  totals.Subtotal,
		TaxAmount: totals.Tax,
		Total:     totals.Total,
		Status:    "pending",
		Items:     lines,
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (cart_id, subtotal, tax_amount, total, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		cartID, totals.Subtotal, totals.Tax, totals.Total, order.Status,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create order: insert order: %w", err)
	}

	for _, line := range lines {
		snapshot, err := json.Marshal(line.RecipeSnapshot)
		if err != nil {
			return nil, fmt.Errorf("create order: encode snapshot: %w", err)
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, size_id, quantity, base_price,
				price_adjustment, final_price, tax_rate, recipe_snapshot)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			order.ID, line.ProductID, line.SelectedSizeID, line.Quantity, line.BasePrice,
			line.PriceAdjustment, line.FinalPrice, line.TaxRate, snapshot,
		)
		if err != nil {
			return nil, fmt.Errorf("create order: insert item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("create order: commit: %w", err)
	}
	return order, nil
}

type MemoryOrderRepository struct {
	mu     sync.Mutex
	orders []models.Order
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{}
}

func (r *MemoryOrderRepository) CreateOrder(ctx context.Context, cartID string, lines []models.CartLine, totals models.CartTotals) (*models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	order := models.Order{
		ID:        len(r.orders) + 1,
		CartID:    cartID,
		Subtotal:  totals.Subtotal,
		TaxAmount: totals.Tax,
		Total:     totals.Total,
		Status:    "pending",
		Items:     append([]models.CartLine{}, lines...),
		CreatedAt: time.Now().UTC(),
	}
	r.orders = append(r.orders, order)
	return &order, nil
}

func (r *MemoryOrderRepository) Orders() []models.Order {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]models.Order{}, r.orders...)
}
