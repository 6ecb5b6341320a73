package storage

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"ordertrack_server/config"
	"ordertrack_server/lib"
	"ordertrack_server/structs"
	"ordertrack_server/structs/tables"
	"strings"
	"sync"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient *redis.Client
	redisOnce   sync.Once
)

// ordersHashKey is the single collection holding all order documents,
// one JSON document per hash field, keyed by a surrogate uuid.
const ordersHashKey = "orders:records"

// DocumentStorage is the document-oriented engine: orders live as JSON
// documents in one Redis hash. Batch inserts ride a MULTI/EXEC pipeline,
// so the batch is atomic. Update and delete scan the collection for
// identity-key matches, which is fine at this scale since reads are full
// scans by contract anyway.
type DocumentStorage struct {
	logger *gecho.Logger
	client *redis.Client
}

func NewDocumentStorage(logger *gecho.Logger) *DocumentStorage {
	return &DocumentStorage{
		logger: logger,
		client: getRedisClient(),
	}
}

// getRedisClient returns a singleton Redis client with proper connection pooling
func getRedisClient() *redis.Client {
	redisOnce.Do(func() {
		cfg := config.GetConfig()
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Address,
			Username: cfg.Cache.Username,
			Password: cfg.Cache.Password,
			DB:       cfg.Cache.DB,

			// Connection pool settings
			PoolSize:        cfg.Cache.PoolSize,
			MinIdleConns:    cfg.Cache.MinIdleConns,
			MaxIdleConns:    cfg.Cache.MaxIdleConns,
			PoolTimeout:     cfg.Cache.PoolTimeout,
			ConnMaxIdleTime: cfg.Cache.IdleTimeout,

			// Timeouts
			DialTimeout:  cfg.Cache.DialTimeout,
			ReadTimeout:  cfg.Cache.ReadTimeout,
			WriteTimeout: cfg.Cache.WriteTimeout,

			// Retry settings
			MaxRetries:      cfg.Cache.MaxRetries,
			MinRetryBackoff: cfg.Cache.MinRetryBackoff,
			MaxRetryBackoff: cfg.Cache.MaxRetryBackoff,
		})
	})
	return redisClient
}

// Close closes the shared Redis connection pool.
func (s *DocumentStorage) Close() error {
	if redisClient != nil {
		return redisClient.Close()
	}
	return nil
}

func (s *DocumentStorage) InsertMany(ctx context.Context, orders []tables.Order) (int, error) {
	if len(orders) == 0 {
		return 0, fmt.Errorf("%w: empty order batch", lib.ErrInvalidInput)
	}

	docs := make(map[string]any, len(orders))
	for i := range orders {
		data, err := json.Marshal(orders[i])
		if err != nil {
			return 0, fmt.Errorf("%w: unencodable order: %v", lib.ErrInvalidInput, err)
		}
		docs[uuid.NewString()] = data
	}

	err := s.withRetry(func() error {
		pipe := s.client.TxPipeline()
		pipe.HSet(ctx, ordersHashKey, docs)
		_, err := pipe.Exec(ctx)
		return err
	}, 3)
	if err != nil {
		s.logger.Error("Bulk order insert failed", gecho.Field("error", err), gecho.Field("batch_size", len(orders)))
		return 0, lib.MapStorageError(err)
	}

	return len(orders), nil
}

func (s *DocumentStorage) FindAll(ctx context.Context) ([]tables.Order, error) {
	var raw map[string]string
	err := s.withRetry(func() error {
		var err error
		raw, err = s.client.HGetAll(ctx, ordersHashKey).Result()
		return err
	}, 3)
	if err != nil {
		s.logger.Error("Order scan failed", gecho.Field("error", err))
		return nil, lib.MapStorageError(err)
	}

	orders := make([]tables.Order, 0, len(raw))
	for id, doc := range raw {
		var order tables.Order
		if err := json.Unmarshal([]byte(doc), &order); err != nil {
			// A corrupt document should not take down the whole listing.
			s.logger.Warn("Skipping undecodable order document",
				gecho.Field("id", id),
				gecho.Field("error", err))
			continue
		}
		orders = append(orders, order)
	}

	return orders, nil
}

func (s *DocumentStorage) UpdateByKey(ctx context.Context, key structs.OrderKey, patch structs.OrderPatch) (int, error) {
	matches, err := s.findByKey(ctx, key)
	if err != nil {
		return 0, err
	}
	if len(matches) == 0 {
		return 0, nil
	}

	updated := make(map[string]any, len(matches))
	for id, order := range matches {
		if patch.Quantity != nil {
			order.Quantity = *patch.Quantity
		}
		if patch.Price != nil {
			order.Price = *patch.Price
		}
		data, err := json.Marshal(order)
		if err != nil {
			return 0, fmt.Errorf("%w: unencodable order: %v", lib.ErrInvalidInput, err)
		}
		updated[id] = data
	}

	err = s.withRetry(func() error {
		return s.client.HSet(ctx, ordersHashKey, updated).Err()
	}, 3)
	if err != nil {
		s.logger.Error("Order update failed", gecho.Field("error", err), gecho.Field("client", key.Client))
		return 0, lib.MapStorageError(err)
	}

	return len(matches), nil
}

func (s *DocumentStorage) DeleteByKey(ctx context.Context, key structs.OrderKey) (int, error) {
	matches, err := s.findByKey(ctx, key)
	if err != nil {
		return 0, err
	}
	if len(matches) == 0 {
		return 0, nil
	}

	fields := make([]string, 0, len(matches))
	for id := range matches {
		fields = append(fields, id)
	}

	err = s.withRetry(func() error {
		return s.client.HDel(ctx, ordersHashKey, fields...).Err()
	}, 3)
	if err != nil {
		s.logger.Error("Order delete failed", gecho.Field("error", err), gecho.Field("client", key.Client))
		return 0, lib.MapStorageError(err)
	}

	return len(matches), nil
}

func (s *DocumentStorage) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return lib.MapStorageError(err)
	}
	return nil
}

// findByKey scans the collection for documents matching the identity
// triple exactly. Exact string equality, case-sensitive, no trimming.
func (s *DocumentStorage) findByKey(ctx context.Context, key structs.OrderKey) (map[string]tables.Order, error) {
	var raw map[string]string
	err := s.withRetry(func() error {
		var err error
		raw, err = s.client.HGetAll(ctx, ordersHashKey).Result()
		return err
	}, 3)
	if err != nil {
		return nil, lib.MapStorageError(err)
	}

	matches := make(map[string]tables.Order)
	for id, doc := range raw {
		var order tables.Order
		if err := json.Unmarshal([]byte(doc), &order); err != nil {
			continue
		}
		if order.Client == key.Client && order.Product == key.Product && order.Date == key.Date {
			matches[id] = order
		}
	}

	return matches, nil
}

// withRetry executes a Redis operation with exponential backoff retry logic
func (s *DocumentStorage) withRetry(operation func() error, maxRetries int) error {
	var lastErr error

	for attempt := 0; attempt <= maxRetries; attempt++ {
		err := operation()
		if err == nil {
			return nil
		}

		lastErr = err

		if attempt == maxRetries {
			break
		}

		// Only retry on network/connection errors, not on logical errors
		if !isRetryableRedisError(err) {
			return err
		}

		maxBackoff := 2000 // max 2000ms = 2s
		base := 100        // 100ms base

		backoff := base * (1 << attempt) // exponential
		backoff = min(backoff, maxBackoff)

		// add jitter ±50%
		jitterBytes := make([]byte, 4)
		if _, err := rand.Read(jitterBytes); err != nil {
			// fallback to no jitter if random fails
			time.Sleep(time.Duration(backoff) * time.Millisecond)
			continue
		}
		jitter := int(uint32(jitterBytes[0])<<24 | uint32(jitterBytes[1])<<16 | uint32(jitterBytes[2])<<8 | uint32(jitterBytes[3]))

		jitter = jitter % (backoff/2 + 1)
		backoffWithJitter := backoff/2 + jitter

		time.Sleep(time.Duration(backoffWithJitter) * time.Millisecond)
	}

	return fmt.Errorf("redis operation failed after %d retries: %w", maxRetries, lastErr)
}

// isRetryableRedisError determines if an error is worth retrying
func isRetryableRedisError(err error) bool {
	if err == nil {
		return false
	}

	// Key not found is a result, not a failure
	if err == redis.Nil {
		return false
	}

	errStr := err.Error()
	retryableErrors := []string{
		"connection refused",
		"connection reset",
		"timeout",
		"broken pipe",
		"no such host",
		"network is unreachable",
	}

	for _, retryableErr := range retryableErrors {
		if strings.Contains(errStr, retryableErr) {
			return true
		}
	}

	return false
}
