package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tradeos/internal/domain"
	"tradeos/internal/service"
)

// MockExtractService is a mock implementation of service.ExtractService.
type MockExtractService struct {
	mock.Mock
}

func (m *MockExtractService) ExtractProducts(ctx context.Context, req service.ExtractRequest) (*service.ProductExtraction, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ProductExtraction), args.Error(1)
}

func (m *MockExtractService) ExtractClient(ctx context.Context, req service.ExtractRequest) (*domain.ClientData, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientData), args.Error(1)
}
