package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	Port          string
	DatabaseURL   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	RedisURL      string
	RedisAddr     string
	RedisPassword string
	JWTSecret     string
	ShopID        string
	OriginURL     string
	MigrationsDir string
	SessionTTL    time.Duration
	CartTTL       time.Duration
	CacheTTL      time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	cfg := &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("APP_PORT", getEnv("PORT", "8082")),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5454"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "coffee_order"),
		DBSSLMode:     getEnv("DB_SSLMODE", "disable"),
		RedisURL:      os.Getenv("REDIS_URL"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		ShopID:        getEnv("SHOP_ID", "main"),
		OriginURL:     os.Getenv("ORIGIN_URL"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "database/migration"),
		SessionTTL:    getDuration("SESSION_TTL", 30*time.Minute),
		CartTTL:       getDuration("CART_TTL", 24*time.Hour),
		CacheTTL:      getDuration("CACHE_TTL", 5*time.Minute),
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", cfg.AppEnv)
	log.Printf("Server will run on port: %s", cfg.Port)
	return cfg
}

// DSN prefers DATABASE_URL and falls back to the individual DB_* variables.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return "postgres://" + c.DBUser + ":" + c.DBPassword + "@" + c.DBHost + ":" + c.DBPort +
		"/" + c.DBName + "?sslmode=" + c.DBSSLMode
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("Warning: invalid %s=%q, using %s", key, raw, defaultValue)
	return defaultValue
}
