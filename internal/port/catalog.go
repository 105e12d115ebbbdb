package port

import (
	"context"

	"tradeos/internal/domain"
)

// CatalogReader supplies the existing product catalog for duplicate
// detection. The Notion-backed implementation lives outside this service;
// the extraction core only reads through this contract.
type CatalogReader interface {
	ListProducts(ctx context.Context) ([]domain.CatalogProduct, error)
}
