package catalog

import (
	"errors"
	"fmt"
)

// Error types
var (
	// ErrContentNotFound indicates the referenced record id does not exist.
	ErrContentNotFound = errors.New("content not found")
)

// ValidationError reports a rejected write payload. It names the offending
// requirement so callers can surface it; it is never conflated with
// not-found or store failures.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid content: %s %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StoreError represents a backing-store transport fault. The library does
// not retry these; idempotent reads may be retried by the caller.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store operation %s failed: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ContentError represents an error related to a content operation.
type ContentError struct {
	ContentID string
	Op        string
	Err       error
}

func (e *ContentError) Error() string {
	return fmt.Sprintf("content operation %s failed for content %s: %v", e.Op, e.ContentID, e.Err)
}

func (e *ContentError) Unwrap() error {
	return e.Err
}
