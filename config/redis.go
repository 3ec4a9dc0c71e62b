package config

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// ConnectRedis returns nil when redis is unreachable; callers run without cache.
func ConnectRedis(cfg *Config) *redis.Client {
	var opt *redis.Options
	if cfg.RedisURL != "" {
		parsedOpt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Println("Failed to parse Redis URL:", err)
			log.Println("Running without cache")
			return nil
		}
		opt = parsedOpt
	} else {
		opt = &redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		}
	}

	client := redis.NewClient(opt)

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Println("Redis connection failed:", err)
		log.Println("Running without cache")
		client.Close()
		return nil
	}

	log.Println("Redis connected")
	return client
}

func CloseRedis(client *redis.Client) {
	if client != nil {
		client.Close()
	}
}
