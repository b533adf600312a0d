// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose schema migrations of the server
// (PostgreSQL and SQLite flavours) and of the client Local Record Store.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

// Supported server dialects. The values double as goose dialect names.
const (
	DialectPostgres = "postgres"
	DialectSQLite   = "sqlite3"
)

//go:embed postgres/*.sql sqlite/*.sql client/*.sql
var embedMigrations embed.FS

// ErrUnsupportedDialect is returned by [Migrate] for an unknown dialect.
var ErrUnsupportedDialect = errors.New("unsupported migration dialect")

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

// Migrate applies the server schema (users, devices) for the given dialect.
func Migrate(db *sql.DB, dialect string) error {
	switch dialect {
	case DialectPostgres:
		return up(db, DialectPostgres, "postgres")
	case DialectSQLite:
		return up(db, DialectSQLite, "sqlite")
	default:
		return fmt.Errorf("migration error: %w: %q", ErrUnsupportedDialect, dialect)
	}
}

// MigrateClient applies the Local Record Store schema to a SQLite database.
func MigrateClient(db *sql.DB) error {
	return up(db, DialectSQLite, "client")
}

func up(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
