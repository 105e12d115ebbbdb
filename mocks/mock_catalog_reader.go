package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tradeos/internal/domain"
)

// MockCatalogReader is a mock implementation of port.CatalogReader.
type MockCatalogReader struct {
	mock.Mock
}

func (m *MockCatalogReader) ListProducts(ctx context.Context) ([]domain.CatalogProduct, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CatalogProduct), args.Error(1)
}
