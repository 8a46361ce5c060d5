package types

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrPointNotFound is returned when a lookup references a point id that
// was never created.
var ErrPointNotFound = errors.New("point not found")

// ValidationError reports malformed or missing request data, keyed by
// field. It is raised before any storage call is made.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "invalid request"
	}

	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e.Fields[k]))
	}

	return "invalid request: " + strings.Join(parts, "; ")
}

// NewValidationError builds a single-field validation failure.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// PersistenceError wraps a storage fault, constraint violation, or
// transaction failure. The atomic-unit contract guarantees the partial
// write was rolled back, so callers surface it and stop.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
