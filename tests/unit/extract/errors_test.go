package extract_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tradeos/internal/extract"
)

func TestIsModelNotFound_TypedError(t *testing.T) {
	err := &extract.ModelNotFoundError{Model: "gemini-2.0-flash", Err: errors.New("404")}
	assert.True(t, extract.IsModelNotFound(err))
	assert.True(t, extract.IsModelNotFound(fmt.Errorf("wrapped: %w", err)))
}

func TestIsModelNotFound_MessageMatch(t *testing.T) {
	assert.True(t, extract.IsModelNotFound(errors.New("models/gemini-9.9 is not found for API version v1beta")))
	assert.True(t, extract.IsModelNotFound(errors.New(`{"error":{"status":"NOT_FOUND"}}`)))
	assert.False(t, extract.IsModelNotFound(errors.New("invalid api key")))
}

func TestNewRateLimitError_Defaults(t *testing.T) {
	err := extract.NewRateLimitError("openai", errors.New("429"), 0)
	assert.Equal(t, 60*time.Second, err.RetryAfter)
	assert.Equal(t, "openai", err.Provider)

	err = extract.NewRateLimitError("gemini", errors.New("429"), 30)
	assert.Equal(t, 30*time.Second, err.RetryAfter)
}

func TestRateLimitError_Unwrap(t *testing.T) {
	inner := errors.New("too many requests")
	err := extract.NewRateLimitError("openai", inner, 10)
	assert.ErrorIs(t, err, inner)
}

func TestParseRetryAfterHeader(t *testing.T) {
	assert.Equal(t, 0, extract.ParseRetryAfterHeader(""))
	assert.Equal(t, 0, extract.ParseRetryAfterHeader("soon"))
	assert.Equal(t, 120, extract.ParseRetryAfterHeader("120"))
}
