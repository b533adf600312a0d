// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/private-vpn/internal/logger"
)

// localRecordStore is the SQLite implementation of [LocalRecordStore].
// Each key holds one JSON document; a write replaces the whole value.
type localRecordStore struct {
	db     *DB
	logger *logger.Logger
}

// NewLocalRecordStore constructs a [LocalRecordStore] over the "records"
// table of db.
func NewLocalRecordStore(db *DB, logger *logger.Logger) LocalRecordStore {
	return &localRecordStore{
		db:     db,
		logger: logger,
	}
}

func (s *localRecordStore) Read(ctx context.Context, key string, dst any) (bool, error) {
	query, args, err := buildReadRecordQuery(s.db.builder, key)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var raw string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*localRecordStore.Read").Str("key", key).Msg("error reading record")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err = json.Unmarshal([]byte(raw), dst); err != nil {
		// a broken blob reads as empty
		s.logger.Warn().Err(err).Str("func", "*localRecordStore.Read").Str("key", key).Msg("stored record is not valid JSON, treating as absent")
		return false, nil
	}

	return true, nil
}

func (s *localRecordStore) Write(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("error encoding record %q: %w", key, err)
	}

	query, args, err := buildWriteRecordQuery(s.db.builder, key, string(payload), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*localRecordStore.Write").Str("key", key).Msg("error writing record")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

func (s *localRecordStore) Delete(ctx context.Context, key string) error {
	query, args, err := buildDeleteRecordQuery(s.db.builder, key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "*localRecordStore.Delete").Str("key", key).Msg("error deleting record")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
