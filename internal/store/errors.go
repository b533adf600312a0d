// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same email is
	// already stored (unique constraint on users.email).
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup by email or id matches no
	// user record.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrDeviceAlreadyExists is returned when the generated device id collides
	// with an existing row.
	ErrDeviceAlreadyExists = errors.New("device already exists")

	// ErrUnknownDeviceOwner is returned when a device references a user that
	// does not exist (foreign key violation).
	ErrUnknownDeviceOwner = errors.New("device owner does not exist")

	// ErrDeviceNotFound is returned when a device with the given id does not
	// exist or belongs to another user.
	ErrDeviceNotFound = errors.New("device was not found")

	// ErrMissingRequiredField is returned on a NOT NULL violation.
	ErrMissingRequiredField = errors.New("required field is missing")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning a single result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDSN is returned when the DSN does not select a known
	// backend.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)
