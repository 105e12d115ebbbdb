package dedupe

import (
	"strings"

	"tradeos/internal/domain"
)

// Detect flags likely duplicates between freshly extracted products and the
// existing catalog. An existing product is a candidate when its name contains
// the new product's name as a substring (case-sensitive). The map only holds
// indices with at least one candidate; entries are surfaced for human review,
// not authoritative dedup, so false negatives on renamed items are expected.
func Detect(newProducts []domain.ProductData, existing []domain.CatalogProduct) map[int][]domain.CatalogProduct {
	matches := make(map[int][]domain.CatalogProduct)

	for i, p := range newProducts {
		if p.Name == "" {
			continue
		}
		var candidates []domain.CatalogProduct
		for _, old := range existing {
			if strings.Contains(old.Name, p.Name) {
				candidates = append(candidates, old)
			}
		}
		if len(candidates) > 0 {
			matches[i] = candidates
		}
	}

	return matches
}
