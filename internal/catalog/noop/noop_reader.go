package noop

import (
	"context"

	"tradeos/internal/domain"
	"tradeos/internal/port"
)

type noopReader struct{}

// NewNoopReader creates a CatalogReader that returns an empty catalog. Used
// when no catalog backend is configured; duplicate detection then flags
// nothing.
func NewNoopReader() port.CatalogReader {
	return &noopReader{}
}

func (r *noopReader) ListProducts(_ context.Context) ([]domain.CatalogProduct, error) {
	return []domain.CatalogProduct{}, nil
}
