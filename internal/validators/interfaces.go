// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the explicit request structs of the account and
// device flows before they reach the services.
//
// Validators collect every failing field instead of stopping at the first
// one and report them as a *models.ValidationError, so a form can show all
// messages at once.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
