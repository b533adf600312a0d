// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/private-vpn/internal/config"
	"github.com/MKhiriev/private-vpn/internal/logger"
)

// Repositories groups the server repositories sharing one connection.
type Repositories struct {
	UserRepository   UserRepository
	DeviceRepository DeviceRepository

	db *DB
}

// NewRepositories connects to the database selected by cfg.DB.DSN (a
// postgres:// URL opens PostgreSQL, anything else a SQLite file), applies
// the schema migrations and wires the repositories.
func NewRepositories(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Repositories, error) {
	log.Info().Msg("creating repositories...")

	var (
		db  *DB
		err error
	)
	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB.DSN, log)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	log.Info().Str("dialect", db.Dialect()).Msg("repositories created")
	return newRepositories(db, log), nil
}

func newRepositories(db *DB, log *logger.Logger) *Repositories {
	return &Repositories{
		UserRepository:   NewUserRepository(db, log),
		DeviceRepository: NewDeviceRepository(db, log),
		db:               db,
	}
}

// Close releases the underlying connection.
func (r *Repositories) Close() error {
	if r == nil || r.db == nil {
		return nil
	}
	return r.db.Close()
}
