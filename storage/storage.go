package storage

import (
	"context"
	"fmt"
	"log"
	"ordertrack_server/config"
	"ordertrack_server/database"
	"ordertrack_server/structs"
	"ordertrack_server/structs/tables"
	"sync"

	"github.com/MonkyMars/gecho"
)

// Supported storage engines. Selected once at startup, never mixed.
const (
	EnginePostgres = "postgres"
	EngineRedis    = "redis"
)

// OrderStorage is the uniform contract every engine satisfies. All
// methods block until the engine answers; connectivity failures surface
// as lib.ErrStorageUnavailable and are never swallowed.
type OrderStorage interface {
	// InsertMany appends the batch without deduplicating against existing
	// identity triples. The batch must be non-empty. Atomic where the
	// engine supports it; returns the number of records inserted.
	InsertMany(ctx context.Context, orders []tables.Order) (int, error)

	// FindAll returns the full record set. No filtering, no pagination;
	// grouping happens downstream. Order is insertion order where the
	// engine naturally preserves it, otherwise unspecified.
	FindAll(ctx context.Context) ([]tables.Order, error)

	// UpdateByKey applies the present patch fields to every record whose
	// (client, product, date) triple matches exactly. Returns the
	// matched count; 0 means the caller should treat it as not found.
	UpdateByKey(ctx context.Context, key structs.OrderKey, patch structs.OrderPatch) (int, error)

	// DeleteByKey physically removes every record matching the triple.
	// Returns the deleted count; 0 means not found.
	DeleteByKey(ctx context.Context, key structs.OrderKey) (int, error)

	// Ping probes engine connectivity for health reporting.
	Ping(ctx context.Context) error
}

var (
	instance OrderStorage
	initOnce sync.Once
	initErr  error
)

// Initialize selects and connects the configured engine. Idempotent:
// repeated calls reuse the first result and never open a second handle.
// A missing or unknown STORAGE_ENGINE is a fatal configuration error.
func Initialize() error {
	initOnce.Do(func() {
		cfg := config.GetConfig()
		logger := config.GetLogger()

		switch cfg.Storage.Engine {
		case EnginePostgres:
			if err := database.Initialize(); err != nil {
				initErr = err
				return
			}
			instance = NewPostgresStorage(database.GetInstance(), logger)
			logger.Info("Order storage initialized", gecho.Field("engine", EnginePostgres))

		case EngineRedis:
			store := NewDocumentStorage(logger)
			if err := store.Ping(context.Background()); err != nil {
				initErr = fmt.Errorf("failed to initialize document storage: %w", err)
				return
			}
			instance = store
			logger.Info("Order storage initialized", gecho.Field("engine", EngineRedis))

		case "":
			initErr = fmt.Errorf("STORAGE_ENGINE is not set; want %q or %q", EnginePostgres, EngineRedis)

		default:
			initErr = fmt.Errorf("unknown storage engine %q; want %q or %q", cfg.Storage.Engine, EnginePostgres, EngineRedis)
		}
	})
	return initErr
}

// GetInstance returns the selected storage engine.
func GetInstance() OrderStorage {
	if instance == nil {
		log.Fatal("Order storage is not initialized. Call Initialize() first.")
	}
	return instance
}
