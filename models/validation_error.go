// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

// ErrValidation is matched by every [ValidationError] via errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError carries a banner message and the per-field messages of a
// rejected form.
type ValidationError struct {
	Message string
	Fields  FieldErrors
}

// NewValidationError returns nil when fields is empty and message is blank,
// so callers can return its result directly.
func NewValidationError(message string, fields FieldErrors) error {
	if len(fields) == 0 && message == "" {
		return nil
	}
	return &ValidationError{Message: message, Fields: fields}
}

func (e *ValidationError) Error() string {
	switch {
	case len(e.Fields) == 0:
		return e.Message
	case e.Message == "":
		return e.Fields.Error()
	default:
		return e.Message + ": " + e.Fields.Error()
	}
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
