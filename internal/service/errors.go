// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrEmailAlreadyRegistered = errors.New("email already registered")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	ErrNoUserIDProvided = errors.New("no user ID provided")

	ErrDeviceIDGenerationFailed = errors.New("could not generate a unique device id")
)

// Client-side errors.
var (
	// ErrSessionNotFound is returned when no user is stored as currentUser.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired is returned when the server rejected the stored token.
	// The local session has already been cleared when it is returned.
	ErrSessionExpired = errors.New("session expired")

	ErrServerUnavailable = errors.New("server unavailable")

	ErrTooManyRequests = errors.New("too many requests")
)
