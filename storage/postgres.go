package storage

import (
	"context"
	"fmt"
	"ordertrack_server/database"
	"ordertrack_server/lib"
	"ordertrack_server/structs"
	"ordertrack_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/uptrace/bun"
)

// PostgresStorage is the relational engine: one orders table, batch
// inserts wrapped in a transaction so the batch is all-or-nothing.
type PostgresStorage struct {
	db     *database.DB
	logger *gecho.Logger
}

func NewPostgresStorage(db *database.DB, logger *gecho.Logger) *PostgresStorage {
	return &PostgresStorage{
		db:     db,
		logger: logger,
	}
}

func (s *PostgresStorage) InsertMany(ctx context.Context, orders []tables.Order) (int, error) {
	if len(orders) == 0 {
		return 0, fmt.Errorf("%w: empty order batch", lib.ErrInvalidInput)
	}

	var inserted int64
	err := database.WithRetry(ctx, func() error {
		return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
			res, err := tx.NewInsert().Model(&orders).Exec(ctx)
			if err != nil {
				return err
			}
			inserted, _ = res.RowsAffected()
			return nil
		})
	})
	if err != nil {
		s.logger.Error("Bulk order insert failed", gecho.Field("error", err), gecho.Field("batch_size", len(orders)))
		return 0, lib.MapStorageError(err)
	}

	return int(inserted), nil
}

func (s *PostgresStorage) FindAll(ctx context.Context) ([]tables.Order, error) {
	var orders []tables.Order
	err := database.WithRetry(ctx, func() error {
		orders = nil // Reset on retry
		return s.db.NewSelect().
			Model(&orders).
			OrderExpr("id ASC").
			Scan(ctx)
	})
	if err != nil {
		s.logger.Error("Order scan failed", gecho.Field("error", err))
		return nil, lib.MapStorageError(err)
	}

	if orders == nil {
		orders = []tables.Order{}
	}
	return orders, nil
}

func (s *PostgresStorage) UpdateByKey(ctx context.Context, key structs.OrderKey, patch structs.OrderPatch) (int, error) {
	// A patch with no fields still needs a matched count for the
	// NotFound mapping, but UPDATE without SET is not valid SQL.
	if patch.Quantity == nil && patch.Price == nil {
		return s.countByKey(ctx, key)
	}

	var matched int64
	err := database.WithRetry(ctx, func() error {
		q := s.db.NewUpdate().
			Model((*tables.Order)(nil)).
			Where("client = ?", key.Client).
			Where("product = ?", key.Product).
			Where("date = ?", key.Date)

		if patch.Quantity != nil {
			q = q.Set("quantity = ?", *patch.Quantity)
		}
		if patch.Price != nil {
			q = q.Set("price = ?", *patch.Price)
		}

		res, err := q.Exec(ctx)
		if err != nil {
			return err
		}
		matched, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		s.logger.Error("Order update failed", gecho.Field("error", err), gecho.Field("client", key.Client))
		return 0, lib.MapStorageError(err)
	}

	return int(matched), nil
}

func (s *PostgresStorage) DeleteByKey(ctx context.Context, key structs.OrderKey) (int, error) {
	var deleted int64
	err := database.WithRetry(ctx, func() error {
		res, err := s.db.NewDelete().
			Model((*tables.Order)(nil)).
			Where("client = ?", key.Client).
			Where("product = ?", key.Product).
			Where("date = ?", key.Date).
			Exec(ctx)
		if err != nil {
			return err
		}
		deleted, _ = res.RowsAffected()
		return nil
	})
	if err != nil {
		s.logger.Error("Order delete failed", gecho.Field("error", err), gecho.Field("client", key.Client))
		return 0, lib.MapStorageError(err)
	}

	return int(deleted), nil
}

func (s *PostgresStorage) Ping(ctx context.Context) error {
	if err := s.db.PingContext(ctx); err != nil {
		return lib.MapStorageError(err)
	}
	return nil
}

func (s *PostgresStorage) countByKey(ctx context.Context, key structs.OrderKey) (int, error) {
	var count int
	err := database.WithRetry(ctx, func() error {
		var err error
		count, err = s.db.NewSelect().
			Model((*tables.Order)(nil)).
			Where("client = ?", key.Client).
			Where("product = ?", key.Product).
			Where("date = ?", key.Date).
			Count(ctx)
		return err
	})
	if err != nil {
		return 0, lib.MapStorageError(err)
	}
	return count, nil
}
