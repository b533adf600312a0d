// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// ErrorClass is the result of [ErrorClassificator.Classify].
type ErrorClass int

const (
	// ClassOther covers every error without a dedicated class.
	ClassOther ErrorClass = iota
	// ClassUniqueViolation is a unique or primary key constraint violation.
	ClassUniqueViolation
	// ClassForeignKeyViolation is a foreign key constraint violation.
	ClassForeignKeyViolation
	// ClassNotNullViolation is a NOT NULL constraint violation.
	ClassNotNullViolation
	// ClassRetryable is a transient failure (lost connection, deadlock,
	// serialization failure, busy database).
	ClassRetryable
)

// ErrorClassificator maps driver-specific errors to an [ErrorClass].
type ErrorClassificator interface {
	Classify(err error) ErrorClass
}

// PostgresErrorClassifier implements [ErrorClassificator] for pgx errors.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier].
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err as *pgconn.PgError and maps its SQLSTATE code.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClass {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return ClassOther
	}
	return ClassifyPgError(pgErr)
}

// ClassifyPgError maps a PostgreSQL error code to an [ErrorClass].
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClass {
	switch pgErr.Code {
	case pgerrcode.UniqueViolation:
		return ClassUniqueViolation
	case pgerrcode.ForeignKeyViolation:
		return ClassForeignKeyViolation
	case pgerrcode.NotNullViolation:
		return ClassNotNullViolation

	// Class 08 - connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		// Class 40 - transaction rollback
		pgerrcode.TransactionRollback,
		pgerrcode.SerializationFailure,
		pgerrcode.DeadlockDetected,
		// Class 57 - operator intervention
		pgerrcode.CannotConnectNow:
		return ClassRetryable
	}

	return ClassOther
}

// SQLiteErrorClassifier implements [ErrorClassificator] for go-sqlite3
// errors using their extended result codes.
type SQLiteErrorClassifier struct{}

// NewSQLiteErrorClassifier constructs a [SQLiteErrorClassifier].
func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

func (c *SQLiteErrorClassifier) Classify(err error) ErrorClass {
	var sqliteErr sqlite3.Error
	if !errors.As(err, &sqliteErr) {
		return ClassOther
	}

	switch sqliteErr.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		return ClassUniqueViolation
	case sqlite3.ErrConstraintForeignKey:
		return ClassForeignKeyViolation
	case sqlite3.ErrConstraintNotNull:
		return ClassNotNullViolation
	}

	switch sqliteErr.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return ClassRetryable
	}

	return ClassOther
}
