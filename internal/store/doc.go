// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for the server and the terminal
// client.
//
// Server side, [UserRepository] and [DeviceRepository] run against
// PostgreSQL (pgx) or SQLite (go-sqlite3) depending on the configured DSN.
// Queries are built with squirrel using the placeholder format of the active
// dialect, and driver errors are mapped to the sentinel errors of this package
// by a per-dialect [ErrorClassificator].
//
// Client side, [LocalRecordStore] keeps JSON blobs under string keys in a
// SQLite table. It holds the "currentUser" session and the bearer token.
package store
