// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package content

import "fmt"

// Error is a content store error.
type Error string

func (e Error) Error() string { return string(e) }

const (
	// ErrNotFound is returned when a record id is unknown.
	ErrNotFound Error = "record not found"

	// ErrValidation is matched by every ValidationError.
	ErrValidation Error = "validation failed"
)

// ValidationError reports an invalid field of a submitted record.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is makes errors.Is(err, ErrValidation) hold for any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}
