package routes

import (
	"coffee-order/config"
	"coffee-order/repositories"
)

// NewDeps connects the configured backends. With memory set it serves the
// demo menu from process memory and touches neither postgres nor redis.
func NewDeps(cfg *config.Config, memory bool) (Deps, func(), error) {
	deps := Deps{
		ShopID:     cfg.ShopID,
		JWTSecret:  cfg.JWTSecret,
		SessionTTL: cfg.SessionTTL,
	}

	if memory {
		store := repositories.NewMemoryStore()
		repositories.SeedDemo(store)
		deps.Store = store
		deps.Carts = repositories.NewMemoryCartStore()
		deps.Orders = repositories.NewMemoryOrderRepository()
		return deps, func() {}, nil
	}

	db, err := config.ConnectDB(cfg)
	if err != nil {
		return Deps{}, nil, err
	}
	rdb := config.ConnectRedis(cfg)

	deps.Store = repositories.NewCachedStore(repositories.NewPostgresStore(db), rdb, cfg.CacheTTL)
	deps.Orders = repositories.NewOrderRepository(db)
	if rdb != nil {
		deps.Carts = repositories.NewRedisCartStore(rdb, cfg.CartTTL)
	} else {
		deps.Carts = repositories.NewMemoryCartStore()
	}

	cleanup := func() {
		config.CloseRedis(rdb)
		config.CloseDB(db)
	}
	return deps, cleanup, nil
}
