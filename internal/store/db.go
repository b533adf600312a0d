// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/private-vpn/internal/logger"
	"github.com/MKhiriev/private-vpn/migrations"
)

// DB wraps a *sql.DB with the dialect it speaks, a squirrel statement builder
// using that dialect's placeholders, and the matching error classifier.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func newDB(conn *sql.DB, dialect string, log *logger.Logger) *DB {
	db := &DB{
		DB:      conn,
		dialect: dialect,
		logger:  log,
	}

	switch dialect {
	case migrations.DialectPostgres:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Dialect reports the SQL dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the server schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// MigrateClient applies the Local Record Store schema.
func (db *DB) MigrateClient() error {
	return migrations.MigrateClient(db.DB)
}

// classify maps a driver error to its [ErrorClass].
func (db *DB) classify(err error) ErrorClass {
	if db.errorClassificator == nil {
		return ClassOther
	}
	return db.errorClassificator.Classify(err)
}

const (
	// maxQueryAttempts bounds how often a read is run on a [ClassRetryable] error.
	maxQueryAttempts = 3
	retryBackoff     = 50 * time.Millisecond
)

// withRetry runs op until it succeeds, fails with an error that is not
// [ClassRetryable], maxQueryAttempts is reached or ctx is done. Only
// idempotent reads go through it.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	for attempt := 1; ; attempt++ {
		err := op()
		if err == nil || attempt >= maxQueryAttempts || db.classify(err) != ClassRetryable {
			return err
		}

		db.logger.Warn().Err(err).Int("attempt", attempt).Msg("transient database error, retrying")

		select {
		case <-ctx.Done():
			return err
		case <-time.After(time.Duration(attempt) * retryBackoff):
		}
	}
}

// isPostgresDSN reports whether dsn selects the PostgreSQL backend.
func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
