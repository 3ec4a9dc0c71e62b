package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"coffee-order/models"

	"github.com/redis/go-redis/v9"
)

const maxCartUpdateRetries = 64

// CartUpdate edits a cart in place. Returning an error discards the edit.
// It may run more than once for a single Update call.
type CartUpdate func(cart *models.Cart) error

type CartStore interface {
	Get(ctx context.Context, cartID string) (*models.Cart, error)
	Save(ctx context.Context, cart *models.Cart) error
	Delete(ctx context.Context, cartID string) error
	// Update applies fn to the stored cart as one atomic read-modify-write
	// and returns the saved cart. A missing cart is ErrCartNotFound unless
	// create is set, in which case fn starts from an empty cart.
	Update(ctx context.Context, cartID string, create bool, fn CartUpdate) (*models.Cart, error)
}

type MemoryCartStore struct {
	mu    sync.Mutex
	carts map[string]models.Cart
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string]models.Cart)}
}

func (s *MemoryCartStore) Get(ctx context.Context, cartID string) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[cartID]
	if !ok {
		return nil, ErrCartNotFound
	}
	cart.Lines = append([]models.CartLine{}, cart.Lines...)
	return &cart, nil
}

func (s *MemoryCartStore) Save(ctx context.Context, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored := *cart
	stored.Lines = append([]models.CartLine{}, cart.Lines...)
	s.carts[cart.ID] = stored
	return nil
}

func (s *MemoryCartStore) Update(ctx context.Context, cartID string, create bool, fn CartUpdate) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		if !create {
			return nil, ErrCartNotFound
		}
		cart = models.Cart{ID: cartID}
	}
	cart.Lines = append([]models.CartLine{}, cart.Lines...)
	if err := fn(&cart); err != nil {
		return nil, err
	}
	cart.UpdatedAt = time.Now()

	s.carts[cartID] = cart
	out := cart
	out.Lines = append([]models.CartLine{}, cart.Lines...)
	return &out, nil
}

func (s *MemoryCartStore) Delete(ctx context.Context, cartID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, cartID)
	return nil
}

// RedisCartStore keeps each cart as one JSON document with a sliding TTL.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{client: client, ttl: ttl}
}

func cartKey(cartID string) string {
	return "cart:" + cartID
}

func (s *RedisCartStore) Get(ctx context.Context, cartID string) (*models.Cart, error) {
	return readCart(ctx, s.client, cartID)
}

// cartReader is satisfied by both *redis.Client and *redis.Tx.
type cartReader interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

func readCart(ctx context.Context, c cartReader, cartID string) (*models.Cart, error) {
	raw, err := c.Get(ctx, cartKey(cartID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cart: %w", err)
	}

	var cart models.Cart
	if err := json.Unmarshal(raw, &cart); err != nil {
		return nil, fmt.Errorf("decode cart %s: %w", cartID, err)
	}
	return &cart, nil
}

func (s *RedisCartStore) Save(ctx context.Context, cart *models.Cart) error {
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart %s: %w", cart.ID, err)
	}
	if err := s.client.Set(ctx, cartKey(cart.ID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Update runs fn inside a WATCH on the cart key and retries when another
// writer changed the cart before EXEC.
func (s *RedisCartStore) Update(ctx context.Context, cartID string, create bool, fn CartUpdate) (*models.Cart, error) {
	key := cartKey(cartID)
	var saved *models.Cart

	txf := func(tx *redis.Tx) error {
		cart, err := readCart(ctx, tx, cartID)
		switch {
		case errors.Is(err, ErrCartNotFound) && create:
			cart = &models.Cart{ID: cartID}
		case err != nil:
			return err
		}
		if err := fn(cart); err != nil {
			return err
		}
		cart.UpdatedAt = time.Now()

		data, err := json.Marshal(cart)
		if err != nil {
			return fmt.Errorf("encode cart %s: %w", cartID, err)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, s.ttl)
			return nil
		})
		if err != nil {
			return err
		}
		saved = cart
		return nil
	}

	for i := 0; i < maxCartUpdateRetries; i++ {
		err := s.client.Watch(ctx, txf, key)
		if errors.Is(err, redis.TxFailedErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		return saved, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrCartContention, cartID)
}

func (s *RedisCartStore) Delete(ctx context.Context, cartID string) error {
	if err := s.client.Del(ctx, cartKey(cartID)).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
