package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tradeos/internal/domain"
)

// MockFileService is a mock implementation of service.FileService.
type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) Upload(ctx context.Context, name, contentType string, data []byte) (*domain.StoredFile, error) {
	args := m.Called(ctx, name, contentType, data)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoredFile), args.Error(1)
}
