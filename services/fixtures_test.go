package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"coffee-order/models"
	"coffee-order/repositories"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// Ids from repositories.SeedDemo.
const (
	latteID     = 1
	dripID      = 2
	smallID     = 1
	largeID     = 3
	espressoID  = 1
	milkID      = 2
	vanillaID   = 4
	brewedID    = 7
	unknownSize = 99
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func intPtr(v int) *int {
	return &v
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), "want %s, got %s", want, got.String())
}

func seededStore() *repositories.MemoryStore {
	store := repositories.NewMemoryStore()
	repositories.SeedDemo(store)
	return store
}

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time {
	return c.now
}

func newServices(store repositories.CatalogStore) (*CustomizationService, *CartService, *repositories.MemoryOrderRepository) {
	orders := repositories.NewMemoryOrderRepository()
	carts := NewCartService(repositories.NewMemoryCartStore(), orders)
	return NewCustomizationService(store, carts, 30*time.Minute), carts, orders
}

// brokenCatalog fails ingredient reads and serves everything else.
type brokenCatalog struct {
	repositories.CatalogStore
}

func (brokenCatalog) GetIngredients(ctx context.Context) ([]models.Ingredient, error) {
	return nil, errors.New("connection refused")
}
