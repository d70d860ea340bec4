package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"versync/core/registry"
)

// Store is a mock implementation of registry.Store
type Store struct {
	mock.Mock
}

func (m *Store) ListChildren(ctx context.Context, parent string) ([]registry.Record, error) {
	args := m.Called(ctx, parent)
	if recs, ok := args.Get(0).([]registry.Record); ok {
		return recs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Store) GetField(ctx context.Context, rec registry.Record, field string, def any) (any, error) {
	args := m.Called(ctx, rec, field, def)
	return args.Get(0), args.Error(1)
}

func (m *Store) SetField(ctx context.Context, rec registry.Record, field string, value any) error {
	args := m.Called(ctx, rec, field, value)
	return args.Error(0)
}
