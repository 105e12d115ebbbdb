package dedupe_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tradeos/internal/dedupe"
	"tradeos/internal/domain"
)

func TestDetect_SubstringMatch(t *testing.T) {
	newProducts := []domain.ProductData{{Name: "LED Bulb"}}
	existing := []domain.CatalogProduct{
		{ID: "1", Name: "LED Bulb 10W"},
		{ID: "2", Name: "Switch"},
	}

	matches := dedupe.Detect(newProducts, existing)

	require.Contains(t, matches, 0)
	require.Len(t, matches[0], 1)
	assert.Equal(t, "LED Bulb 10W", matches[0][0].Name)
}

func TestDetect_NoMatchAbsentFromMap(t *testing.T) {
	newProducts := []domain.ProductData{
		{Name: "LED Bulb"},
		{Name: "Breaker"},
	}
	existing := []domain.CatalogProduct{{ID: "1", Name: "LED Bulb 10W"}}

	matches := dedupe.Detect(newProducts, existing)

	assert.Contains(t, matches, 0)
	assert.NotContains(t, matches, 1)
}

func TestDetect_MultipleCandidates(t *testing.T) {
	newProducts := []domain.ProductData{{Name: "LED"}}
	existing := []domain.CatalogProduct{
		{ID: "1", Name: "LED Bulb"},
		{ID: "2", Name: "LED Strip"},
		{ID: "3", Name: "Cable"},
	}

	matches := dedupe.Detect(newProducts, existing)

	require.Contains(t, matches, 0)
	assert.Len(t, matches[0], 2)
}

func TestDetect_CaseSensitive(t *testing.T) {
	newProducts := []domain.ProductData{{Name: "led bulb"}}
	existing := []domain.CatalogProduct{{ID: "1", Name: "LED Bulb 10W"}}

	// Matching is plain substring, case-sensitive.
	matches := dedupe.Detect(newProducts, existing)

	assert.Empty(t, matches)
}

func TestDetect_EmptyNameNeverMatches(t *testing.T) {
	newProducts := []domain.ProductData{{Name: ""}}
	existing := []domain.CatalogProduct{{ID: "1", Name: "Anything"}}

	matches := dedupe.Detect(newProducts, existing)

	assert.Empty(t, matches)
}

func TestDetect_EmptyInputs(t *testing.T) {
	assert.Empty(t, dedupe.Detect(nil, nil))
	assert.Empty(t, dedupe.Detect([]domain.ProductData{{Name: "x"}}, nil))
	assert.Empty(t, dedupe.Detect(nil, []domain.CatalogProduct{{Name: "x"}}))
}
