package config

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func newMigrator(cfg *Config) (*migrate.Migrate, func(), error) {
	sqlDB, err := sql.Open("pgx", cfg.DSN())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open DB for migrations: %w", err)
	}

	driver, err := postgres.WithInstance(sqlDB, &postgres.Config{})
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to create migration driver: %w", err)
	}

	migrationPath, err := filepath.Abs(cfg.MigrationsDir)
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to resolve migration path: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+migrationPath, "postgres", driver)
	if err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("failed to initialize migrator: %w", err)
	}

	return m, func() { sqlDB.Close() }, nil
}

func MigrateUp(cfg *Config) error {
	m, closeFn, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	log.Println("Database migrations applied (or already up to date)")
	return nil
}

func MigrateDown(cfg *Config, steps int) error {
	m, closeFn, err := newMigrator(cfg)
	if err != nil {
		return err
	}
	defer closeFn()

	if steps <= 0 {
		steps = 1
	}
	if err := m.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to roll back migrations: %w", err)
	}

	log.Printf("Rolled back %d migration(s)", steps)
	return nil
}
