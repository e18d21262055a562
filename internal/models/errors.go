// Cinefilter - Movie Catalog Filtering and Cohort Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinefilter

package models

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested movie identity has no row.
var ErrNotFound = errors.New("not found")

// ErrDataStore marks any failure while executing a query against the store.
// The underlying cause is kept in the chain for logging but never sent to clients.
var ErrDataStore = errors.New("data store error")

// ValidationError reports malformed or missing caller input.
// It is raised before any query executes.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError for field with a formatted message.
func NewValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// DataStoreError wraps err so that errors.Is(result, ErrDataStore) holds
// while err (including context cancellation) stays inspectable.
func DataStoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrDataStore, err)
}

// IsValidationError reports whether err is or wraps a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
