package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"coffee-order/engine"
	"coffee-order/models"
	"coffee-order/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type sessionSlot struct {
	session    *engine.Session
	lastActive time.Time
}

// CustomizationService keeps the open customization dialogs. A session is
// only touched while mu is held.
type CustomizationService struct {
	store repositories.CatalogStore
	carts *CartService
	ttl   time.Duration
	now   func() time.Time

	mu          sync.Mutex
	sessions    map[string]*sessionSlot
	lastCatalog []models.Ingredient
}

func NewCustomizationService(store repositories.CatalogStore, carts *CartService, ttl time.Duration) *CustomizationService {
	return &CustomizationService{
		store:    store,
		carts:    carts,
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]*sessionSlot),
	}
}

// Open loads everything a dialog needs in parallel and starts a session.
// An unreachable ingredient catalog degrades the session instead of failing it.
func (s *CustomizationService) Open(ctx context.Context, productID int, sizeID *int) (models.SessionView, error) {
	var (
		product     *models.Product
		ingredients []models.Ingredient
		sizes       []models.ProductSize
		entries     []models.RecipeEntry
		degraded    bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.store.GetProduct(gctx, productID)
		if err != nil {
			return fmt.Errorf("fetch product %d: %w", productID, err)
		}
		product = p
		return nil
	})
	g.Go(func() error {
		list, err := s.store.GetIngredients(gctx)
		if err != nil {
			log.Printf("Warning: ingredient catalog unavailable for product %d: %v", productID, err)
			degraded = true
			return nil
		}
		ingredients = list
		return nil
	})
	g.Go(func() error {
		list, err := s.store.GetProductSizes(gctx, productID)
		if err != nil {
			return fmt.Errorf("fetch sizes for product %d: %w", productID, err)
		}
		sizes = list
		return nil
	})
	g.Go(func() error {
		list, err := s.store.ListRecipeEntries(gctx, productID)
		if err != nil {
			return fmt.Errorf("fetch recipe for product %d: %w", productID, err)
		}
		entries = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return models.SessionView{}, err
	}

	if !product.IsActive {
		return models.SessionView{}, fmt.Errorf("%w: %d", ErrProductUnavailable, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if degraded {
		ingredients = s.lastCatalog
	} else {
		s.lastCatalog = ingredients
	}

	session, err := engine.NewSession(engine.SessionInput{
		ID:          uuid.NewString(),
		Product:     *product,
		Sizes:       sizes,
		Entries:     entries,
		Ingredients: ingredients,
		SizeID:      sizeID,
		Degraded:    degraded,
	})
	if err != nil {
		return models.SessionView{}, err
	}

	s.evictExpired()
	s.sessions[session.ID] = &sessionSlot{session: session, lastActive: s.now()}
	return session.View(), nil
}

func (s *CustomizationService) View(sessionID string) (models.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(sessionID)
	if err != nil {
		return models.SessionView{}, err
	}
	return session.View(), nil
}

func (s *CustomizationService) Adjust(sessionID string, ingredientID int, delta decimal.Decimal) (models.SessionView, error) {
	return s.dispatch(sessionID, engine.Adjust{IngredientID: ingredientID, Delta: delta})
}

func (s *CustomizationService) SelectSize(sessionID string, sizeID int) (models.SessionView, error) {
	return s.dispatch(sessionID, engine.SelectSize{SizeID: sizeID})
}

func (s *CustomizationService) dispatch(sessionID string, cmd engine.Command) (models.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, err := s.lookup(sessionID)
	if err != nil {
		return models.SessionView{}, err
	}
	if _, err := session.Dispatch(cmd); err != nil {
		return models.SessionView{}, err
	}
	return session.View(), nil
}

func (s *CustomizationService) Discard(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.lookup(sessionID); err != nil {
		return err
	}
	delete(s.sessions, sessionID)
	return nil
}

// Confirm freezes the session into a cart line, adds it to the cart and
// closes the session.
func (s *CustomizationService) Confirm(ctx context.Context, sessionID, cartID string, quantity int) (models.ConfirmResponse, error) {
	s.mu.Lock()
	session, err := s.lookup(sessionID)
	if err != nil {
		s.mu.Unlock()
		return models.ConfirmResponse{}, err
	}
	line, err := session.Dispatch(engine.Confirm{Quantity: quantity})
	if err != nil {
		s.mu.Unlock()
		return models.ConfirmResponse{}, err
	}
	delete(s.sessions, sessionID)
	s.mu.Unlock()

	cart, err := s.carts.AddLine(ctx, cartID, *line)
	if err != nil {
		return models.ConfirmResponse{}, fmt.Errorf("add line to cart: %w", err)
	}
	return models.ConfirmResponse{CartID: cart.ID, Line: *line, Cart: cart}, nil
}

// lookup returns a live session and refreshes its idle clock. Callers hold mu.
func (s *CustomizationService) lookup(sessionID string) (*engine.Session, error) {
	slot, ok := s.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	now := s.now()
	if s.ttl > 0 && now.Sub(slot.lastActive) > s.ttl {
		delete(s.sessions, sessionID)
		return nil, fmt.Errorf("%w: %s expired", ErrSessionNotFound, sessionID)
	}
	slot.lastActive = now
	return slot.session, nil
}

func (s *CustomizationService) evictExpired() {
	if s.ttl <= 0 {
		return
	}
	now := s.now()
	for id, slot := range s.sessions {
		if now.Sub(slot.lastActive) > s.ttl {
			delete(s.sessions, id)
		}
	}
}

// Len reports the number of open sessions.
func (s *CustomizationService) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
