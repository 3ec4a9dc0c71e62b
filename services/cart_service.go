package services

import (
	"context"
	"fmt"
	"log"

	"coffee-order/engine"
	"coffee-order/models"
	"coffee-order/repositories"

	"github.com/google/uuid"
)

// CartService holds confirmed lines. Lines keep the price they were confirmed
// at; only their quantity can change afterwards.
type CartService struct {
	carts  repositories.CartStore
	orders repositories.OrderWriter
}

func NewCartService(carts repositories.CartStore, orders repositories.OrderWriter) *CartService {
	return &CartService{carts: carts, orders: orders}
}

func view(cart *models.Cart) models.CartView {
	lines := cart.Lines
	if lines == nil {
		lines = []models.CartLine{}
	}
	return models.CartView{
		ID:     cart.ID,
		Lines:  lines,
		Totals: engine.Totals(lines),
	}
}

// AddLine appends line to the cart, opening a new cart when cartID is empty
// or no longer stored.
func (s *CartService) AddLine(ctx context.Context, cartID string, line models.CartLine) (models.CartView, error) {
	if cartID == "" {
		cartID = uuid.NewString()
	}
	cart, err := s.carts.Update(ctx, cartID, true, func(cart *models.Cart) error {
		cart.Lines = append(cart.Lines, line)
		return nil
	})
	if err != nil {
		return models.CartView{}, err
	}
	return view(cart), nil
}

func (s *CartService) Get(ctx context.Context, cartID string) (models.CartView, error) {
	cart, err := s.carts.Get(ctx, cartID)
	if err != nil {
		return models.CartView{}, err
	}
	return view(cart), nil
}

func (s *CartService) RemoveLine(ctx context.Context, cartID, lineID string) (models.CartView, error) {
	cart, err := s.carts.Update(ctx, cartID, false, func(cart *models.Cart) error {
		idx := lineIndex(cart, lineID)
		if idx < 0 {
			return fmt.Errorf("%w: %s", ErrLineNotFound, lineID)
		}
		cart.Lines = append(cart.Lines[:idx], cart.Lines[idx+1:]...)
		return nil
	})
	if err != nil {
		return models.CartView{}, err
	}
	return view(cart), nil
}

func (s *CartService) SetLineQuantity(ctx context.Context, cartID, lineID string, quantity int) (models.CartView, error) {
	if quantity < 1 {
		return models.CartView{}, ErrInvalidQuantity
	}
	cart, err := s.carts.Update(ctx, cartID, false, func(cart *models.Cart) error {
		idx := lineIndex(cart, lineID)
		if idx < 0 {
			return fmt.Errorf("%w: %s", ErrLineNotFound, lineID)
		}
		cart.Lines[idx].Quantity = quantity
		return nil
	})
	if err != nil {
		return models.CartView{}, err
	}
	return view(cart), nil
}

// Discard drops the cart and every line in it.
func (s *CartService) Discard(ctx context.Context, cartID string) error {
	if _, err := s.carts.Get(ctx, cartID); err != nil {
		return err
	}
	return s.carts.Delete(ctx, cartID)
}

// Checkout takes every line out of the cart atomically and writes them as an
// order. Lines added while the order is written stay in the cart. When the
// order write fails the taken lines are put back.
func (s *CartService) Checkout(ctx context.Context, cartID string) (*models.Order, error) {
	var taken []models.CartLine
	_, err := s.carts.Update(ctx, cartID, false, func(cart *models.Cart) error {
		if len(cart.Lines) == 0 {
			return ErrEmptyCart
		}
		taken = cart.Lines
		cart.Lines = []models.CartLine{}
		return nil
	})
	if err != nil {
		return nil, err
	}

	order, err := s.orders.CreateOrder(ctx, cartID, taken, engine.Totals(taken))
	if err != nil {
		if _, restoreErr := s.carts.Update(ctx, cartID, true, func(cart *models.Cart) error {
			cart.Lines = append(append([]models.CartLine{}, taken...), cart.Lines...)
			return nil
		}); restoreErr != nil {
			log.Printf("Warning: %d lines of cart %s lost after failed checkout: %v", len(taken), cartID, restoreErr)
		}
		return nil, fmt.Errorf("checkout cart %s: %w", cartID, err)
	}
	return order, nil
}

func lineIndex(cart *models.Cart, lineID string) int {
	for i, line := range cart.Lines {
		if line.ID == lineID {
			return i
		}
	}
	return -1
}
