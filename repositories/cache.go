package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"coffee-order/models"

	"github.com/redis/go-redis/v9"
)

const (
	unitTypesCacheKey   = "catalog:unit_types"
	ingredientsCacheKey = "catalog:ingredients"
)

func sizesCacheKey(productID int) string {
	return fmt.Sprintf("catalog:sizes:p%d", productID)
}

func recipeCacheKey(productID int) string {
	return fmt.Sprintf("catalog:recipe:p%d", productID)
}

// CachedStore serves catalog reads from redis and falls through to the
// wrapped store on a miss. A nil client disables caching.
type CachedStore struct {
	store  CatalogStore
	client *redis.Client
	ttl    time.Duration
}

func NewCachedStore(store CatalogStore, client *redis.Client, ttl time.Duration) *CachedStore {
	return &CachedStore{store: store, client: client, ttl: ttl}
}

func cached[T any](ctx context.Context, c *CachedStore, key string, load func() (T, error)) (T, error) {
	if c.client != nil {
		if raw, err := c.client.Get(ctx, key).Bytes(); err == nil {
			var out T
			if err := json.Unmarshal(raw, &out); err == nil {
				return out, nil
			}
			log.Printf("Warning: dropping unreadable cache entry %s", key)
		}
	}

	out, err := load()
	if err != nil {
		return out, err
	}

	if c.client != nil {
		if data, err := json.Marshal(out); err == nil {
			c.client.Set(ctx, key, data, c.ttl)
		}
	}
	return out, nil
}

func (c *CachedStore) GetUnitTypes(ctx context.Context) ([]models.UnitType, error) {
	return cached(ctx, c, unitTypesCacheKey, func() ([]models.UnitType, error) {
		return c.store.GetUnitTypes(ctx)
	})
}

func (c *CachedStore) GetIngredients(ctx context.Context) ([]models.Ingredient, error) {
	return cached(ctx, c, ingredientsCacheKey, func() ([]models.Ingredient, error) {
		return c.store.GetIngredients(ctx)
	})
}

func (c *CachedStore) GetProduct(ctx context.Context, id int) (*models.Product, error) {
	return c.store.GetProduct(ctx, id)
}

func (c *CachedStore) GetProductSizes(ctx context.Context, productID int) ([]models.ProductSize, error) {
	return cached(ctx, c, sizesCacheKey(productID), func() ([]models.ProductSize, error) {
		return c.store.GetProductSizes(ctx, productID)
	})
}

func (c *CachedStore) GetRecipeEntries(ctx context.Context, productID int, scope models.RecipeScope) ([]models.RecipeEntry, error) {
	return c.store.GetRecipeEntries(ctx, productID, scope)
}

func (c *CachedStore) ListRecipeEntries(ctx context.Context, productID int) ([]models.RecipeEntry, error) {
	return cached(ctx, c, recipeCacheKey(productID), func() ([]models.RecipeEntry, error) {
		return c.store.ListRecipeEntries(ctx, productID)
	})
}

func (c *CachedStore) SetRecipe(ctx context.Context, shopID string, productID int, scope models.RecipeScope, entries []models.RecipeEntryInput) (models.SetRecipeResult, error) {
	result, err := c.store.SetRecipe(ctx, shopID, productID, scope, entries)
	if err != nil {
		return result, err
	}
	c.InvalidateRecipe(ctx, productID)
	return result, nil
}

func (c *CachedStore) InvalidateRecipe(ctx context.Context, productID int) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, recipeCacheKey(productID)).Err(); err != nil {
		log.Printf("Warning: failed to invalidate recipe cache for product %d: %v", productID, err)
	}
}

// InvalidateCatalog drops every cached catalog key and reports how many
// were removed.
func (c *CachedStore) InvalidateCatalog(ctx context.Context) (int, error) {
	if c.client == nil {
		return 0, nil
	}
	removed := 0
	iter := c.client.Scan(ctx, 0, "catalog:*", 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return removed, fmt.Errorf("delete %s: %w", iter.Val(), err)
		}
		removed++
	}
	if err := iter.Err(); err != nil {
		return removed, fmt.Errorf("scan catalog keys: %w", err)
	}
	return removed, nil
}
