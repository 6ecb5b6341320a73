package mocks

import (
	"context"
	"ordertrack_server/structs"
	"ordertrack_server/structs/tables"

	"github.com/stretchr/testify/mock"
)

// MockOrderStorage is a testify mock for the storage.OrderStorage
// interface, used by service and handler tests.
type MockOrderStorage struct {
	mock.Mock
}

func (m *MockOrderStorage) InsertMany(ctx context.Context, orders []tables.Order) (int, error) {
	args := m.Called(ctx, orders)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderStorage) FindAll(ctx context.Context) ([]tables.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]tables.Order), args.Error(1)
}

func (m *MockOrderStorage) UpdateByKey(ctx context.Context, key structs.OrderKey, patch structs.OrderPatch) (int, error) {
	args := m.Called(ctx, key, patch)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderStorage) DeleteByKey(ctx context.Context, key structs.OrderKey) (int, error) {
	args := m.Called(ctx, key)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderStorage) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
