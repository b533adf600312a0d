// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// Private VPN server handlers, middleware and the terminal client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or shown by the client. Keeping them in one place
// ensures consistent wording throughout the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailOrPassword is returned on any login failure. It does not
	// reveal whether the email exists.
	MsgInvalidEmailOrPassword = "Invalid email or password"

	// MsgEmailAlreadyRegistered is the field message for a duplicate email.
	MsgEmailAlreadyRegistered = "Email already registered"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token is
	// either expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when a handler requires a user ID but
	// none is present in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgDeviceNotFound is returned when a toggle targets a device that does
	// not exist or belongs to someone else.
	MsgDeviceNotFound = "Device not found"

	MsgDeviceAlreadyExists = "Device already exists"

	// MsgUnknownUser is returned when the token subject no longer exists.
	MsgUnknownUser = "user not found"

	MsgTooManyRequests = "Too many requests, please slow down"

	MsgVersionIsNotSpecified = "version is not specified"

	MsgNotFound = "not found"
)

// Client-side messages.
const (
	MsgServerUnavailable = "Cannot reach the server. Please try again."

	MsgSessionExpired = "Your session has expired. Please log in again."

	MsgCopied = "Copied!"

	MsgClipboardUnavailable = "Clipboard is not available"

	// MsgLogoutFailed prefixes the cause when the stored session could not be removed.
	MsgLogoutFailed = "Logout failed"
)
