package extract

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ModelNotFoundError indicates a provider rejected a specific model variant.
// The Gemini extractor moves on to its next variant on this error; anything
// else aborts the provider.
type ModelNotFoundError struct {
	Model string
	Err   error
}

func (e *ModelNotFoundError) Error() string {
	return fmt.Sprintf("model %s not found: %v", e.Model, e.Err)
}

func (e *ModelNotFoundError) Unwrap() error {
	return e.Err
}

// IsModelNotFound reports whether err (or its chain) indicates an unknown
// model, either via ModelNotFoundError or a "not found" message from the API.
func IsModelNotFound(err error) bool {
	var mnf *ModelNotFoundError
	if errors.As(err, &mnf) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") || strings.Contains(msg, "not_found")
}

// RateLimitError indicates a provider returned HTTP 429.
type RateLimitError struct {
	Err        error
	RetryAfter time.Duration
	Provider   string
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("%s rate limited (retry after %s): %v", e.Provider, e.RetryAfter, e.Err)
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

// NewRateLimitError creates a RateLimitError. If retryAfterSecs is 0, defaults to 60s.
func NewRateLimitError(provider string, err error, retryAfterSecs int) *RateLimitError {
	if retryAfterSecs <= 0 {
		retryAfterSecs = 60
	}
	return &RateLimitError{
		Err:        err,
		RetryAfter: time.Duration(retryAfterSecs) * time.Second,
		Provider:   provider,
	}
}

// ParseRetryAfterHeader parses a Retry-After header value into seconds.
// Returns 0 if the value is empty or not a valid integer.
func ParseRetryAfterHeader(val string) int {
	if val == "" {
		return 0
	}
	secs, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return secs
}
