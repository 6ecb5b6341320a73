package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"ordertrack_server/config"
	"sync"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
)

// DB wraps the bun database handle.
type DB struct {
	*bun.DB
}

var (
	instance *DB
	initOnce sync.Once
	initErr  error
)

// ordersSchema mirrors the original relational layout: surrogate id plus
// the five textual order columns. Idempotent by construction.
const ordersSchema = `
CREATE TABLE IF NOT EXISTS orders (
	id BIGSERIAL PRIMARY KEY,
	client TEXT NOT NULL,
	product TEXT NOT NULL,
	quantity TEXT,
	price TEXT,
	date TEXT NOT NULL
)`

// Connect establishes a database connection using centralized configuration.
func Connect() (*DB, error) {
	logger := config.GetLogger()
	dbCfg := config.GetConfig().Database

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		dbCfg.User, dbCfg.Password, dbCfg.Host, dbCfg.Port, dbCfg.Name)

	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(dsn),
		pgdriver.WithReadTimeout(dbCfg.ReadTimeout),
		pgdriver.WithWriteTimeout(dbCfg.WriteTimeout),
	))

	// Apply pool settings from configuration
	sqldb.SetMaxOpenConns(dbCfg.MaxConns)
	sqldb.SetMaxIdleConns(dbCfg.MinConns)
	sqldb.SetConnMaxLifetime(dbCfg.MaxLifetime)
	sqldb.SetConnMaxIdleTime(dbCfg.MaxIdleTime)

	db := bun.NewDB(sqldb, pgdialect.New())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("Connected to database successfully")

	return &DB{db}, nil
}

// Initialize sets up the global database instance and bootstraps the
// orders schema. Safe to call repeatedly; only the first call connects.
func Initialize() error {
	initOnce.Do(func() {
		db, err := Connect()
		if err != nil {
			initErr = fmt.Errorf("failed to initialize database: %w", err)
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if _, err := db.ExecContext(ctx, ordersSchema); err != nil {
			initErr = fmt.Errorf("failed to bootstrap orders schema: %w", err)
			return
		}

		instance = db
	})
	return initErr
}

// GetInstance returns the global database instance.
// This is the primary way to access the database throughout the application.
func GetInstance() *DB {
	if instance == nil {
		log.Fatal("Database instance is not initialized. Call Initialize() first.")
	}
	return instance
}

// Close closes the database connection.
func (db *DB) Close() error {
	return db.DB.Close()
}

// CloseInstance closes the global database instance.
func CloseInstance() error {
	if instance != nil {
		return instance.Close()
	}
	return nil
}

// Health checks the database connection health.
func (db *DB) Health() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return db.PingContext(ctx)
}
