package apperr

import (
	"fmt"
	"time"
)

// NotFoundError signals that a single requested resource does not exist.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return "not found: " + e.Message
}

func NewNotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// BackendError covers every failure to reach or parse a response from the
// search engine. The Message is logged internally; callers see a generic
// "service temporarily unavailable" body so backend internals do not leak.
type BackendError struct {
	Message string
	Err     error
}

func (e *BackendError) Error() string {
	if e.Err != nil {
		return "backend error: " + e.Message + ": " + e.Err.Error()
	}
	return "backend error: " + e.Message
}

func (e *BackendError) Unwrap() error {
	return e.Err
}

func NewBackend(msg string, err error) *BackendError {
	return &BackendError{Message: msg, Err: err}
}

// RateLimitError carries everything the boundary needs to emit the
// X-RateLimit-* headers alongside the 429 body.
type RateLimitError struct {
	Tier    string
	Limit   int
	ResetAt time.Time
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded for %s tier (%d/hour)", e.Tier, e.Limit)
}

func NewRateLimit(tier string, limit int, resetAt time.Time) *RateLimitError {
	return &RateLimitError{Tier: tier, Limit: limit, ResetAt: resetAt}
}

// UnauthorizedError signals a proxy-secret mismatch.
type UnauthorizedError struct {
	Message string
}

func (e *UnauthorizedError) Error() string {
	return "unauthorized: " + e.Message
}

func NewUnauthorized(msg string) *UnauthorizedError {
	return &UnauthorizedError{Message: msg}
}
