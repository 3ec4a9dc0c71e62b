package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"coffee-order/models"
	"coffee-order/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(id, finalPrice string, quantity int) models.CartLine {
	return models.CartLine{
		ID:         id,
		ProductID:  latteID,
		BasePrice:  dec(finalPrice),
		FinalPrice: dec(finalPrice),
		TaxRate:    dec("0.08"),
		Quantity:   quantity,
	}
}

func TestCartService_LineLifecycle(t *testing.T) {
	ctx := context.Background()
	carts := NewCartService(repositories.NewMemoryCartStore(), repositories.NewMemoryOrderRepository())

	cart, err := carts.AddLine(ctx, "", line("a", "4.50", 1))
	require.NoError(t, err)
	cartID := cart.ID
	require.NotEmpty(t, cartID)

	cart, err = carts.AddLine(ctx, cartID, line("b", "2.75", 2))
	require.NoError(t, err)
	assertDecimal(t, "10.00", cart.Totals.Subtotal)
	assertDecimal(t, "0.80", cart.Totals.Tax)
	assert.Equal(t, 3, cart.Totals.ItemCount)

	cart, err = carts.SetLineQuantity(ctx, cartID, "a", 3)
	require.NoError(t, err)
	assertDecimal(t, "19.00", cart.Totals.Subtotal)
	assertDecimal(t, "4.50", cart.Lines[0].FinalPrice)

	cart, err = carts.RemoveLine(ctx, cartID, "b")
	require.NoError(t, err)
	require.Len(t, cart.Lines, 1)
	assertDecimal(t, "14.58", cart.Totals.Total)

	_, err = carts.RemoveLine(ctx, cartID, "b")
	assert.ErrorIs(t, err, ErrLineNotFound)

	_, err = carts.SetLineQuantity(ctx, cartID, "a", 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestCartService_AddLineKeepsUnknownCartID(t *testing.T) {
	carts := NewCartService(repositories.NewMemoryCartStore(), repositories.NewMemoryOrderRepository())

	cart, err := carts.AddLine(context.Background(), "table-7", line("a", "4.50", 1))
	require.NoError(t, err)
	assert.Equal(t, "table-7", cart.ID)
}

func TestCartService_Checkout(t *testing.T) {
	ctx := context.Background()
	orders := repositories.NewMemoryOrderRepository()
	carts := NewCartService(repositories.NewMemoryCartStore(), orders)

	cart, err := carts.AddLine(ctx, "", line("a", "5.75", 2))
	require.NoError(t, err)

	order, err := carts.Checkout(ctx, cart.ID)
	require.NoError(t, err)
	assertDecimal(t, "11.50", order.Subtotal)
	assertDecimal(t, "0.92", order.TaxAmount)
	assertDecimal(t, "12.42", order.Total)
	require.Len(t, order.Items, 1)
	assert.Len(t, orders.Orders(), 1)

	cleared, err := carts.Get(ctx, cart.ID)
	require.NoError(t, err)
	assert.Empty(t, cleared.Lines)

	_, err = carts.Checkout(ctx, cart.ID)
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = carts.Checkout(ctx, "missing")
	assert.ErrorIs(t, err, repositories.ErrCartNotFound)
}

type failingOrders struct{}

func (failingOrders) CreateOrder(ctx context.Context, cartID string, lines []models.CartLine, totals models.CartTotals) (*models.Order, error) {
	return nil, errors.New("connection reset")
}

func TestCartService_CheckoutFailureRestoresLines(t *testing.T) {
	ctx := context.Background()
	carts := NewCartService(repositories.NewMemoryCartStore(), failingOrders{})

	cart, err := carts.AddLine(ctx, "", line("a", "4.50", 1))
	require.NoError(t, err)
	_, err = carts.AddLine(ctx, cart.ID, line("b", "2.75", 1))
	require.NoError(t, err)

	_, err = carts.Checkout(ctx, cart.ID)
	require.Error(t, err)

	restored, err := carts.Get(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, restored.Lines, 2)
	assert.Equal(t, "a", restored.Lines[0].ID)
	assert.Equal(t, "b", restored.Lines[1].ID)
}

func TestCartService_ConcurrentAddsKeepEveryLine(t *testing.T) {
	ctx := context.Background()
	carts := NewCartService(repositories.NewMemoryCartStore(), repositories.NewMemoryOrderRepository())

	cart, err := carts.AddLine(ctx, "", line("first", "4.50", 1))
	require.NoError(t, err)

	const writers = 100
	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := carts.AddLine(ctx, cart.ID, line(fmt.Sprintf("line-%d", i), "2.75", 1))
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	got, err := carts.Get(ctx, cart.ID)
	require.NoError(t, err)
	assert.Len(t, got.Lines, writers+1)
	assert.Equal(t, writers+1, got.Totals.ItemCount)
}

func TestCartService_Discard(t *testing.T) {
	ctx := context.Background()
	carts := NewCartService(repositories.NewMemoryCartStore(), repositories.NewMemoryOrderRepository())

	cart, err := carts.AddLine(ctx, "", line("a", "4.50", 1))
	require.NoError(t, err)

	require.NoError(t, carts.Discard(ctx, cart.ID))
	assert.ErrorIs(t, carts.Discard(ctx, cart.ID), repositories.ErrCartNotFound)
}

func TestCartService_CheckoutEmptyCart(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryCartStore()
	require.NoError(t, store.Save(ctx, &models.Cart{ID: "empty"}))
	carts := NewCartService(store, repositories.NewMemoryOrderRepository())

	_, err := carts.Checkout(ctx, "empty")
	assert.ErrorIs(t, err, ErrEmptyCart)
}
