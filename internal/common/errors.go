// Package common defines the shared error taxonomy used across services and
// repositories. Callers match sentinel values with errors.Is and typed errors
// with errors.As.
package common

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrorNotFound is returned when a referenced entity does not exist.
	ErrorNotFound = errors.New("not found")

	// ErrorInternal covers failures that carry no caller-actionable detail.
	ErrorInternal = errors.New("internal error")
)

// ValidationError accumulates per-field violations for one input. A nil or
// empty ValidationError means the input was acceptable; use Err to collapse
// the empty case to nil.
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError returns an empty ValidationError ready for Add calls.
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add records a violation message against a field.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string][]string)
	}
	e.Fields[field] = append(e.Fields[field], msg)
}

// Err returns the error itself when any violation was recorded, nil otherwise.
func (e *ValidationError) Err() error {
	if e == nil || len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, strings.Join(e.Fields[f], ", ")))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// PersistenceError wraps a failure of the underlying store. Op names the
// repository operation that failed, e.g. "users.create".
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence error in %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
