// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the server and the client:
// request context keys, JSON responses, session tokens, password hashing,
// identifier generation, and the resty HTTP client.
package utils
