// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/private-vpn/internal/logger"
	"github.com/MKhiriev/private-vpn/models"
)

// deviceRepository is the SQL implementation of [DeviceRepository] over the
// "devices" table. Every read and write is scoped by user_id.
type deviceRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewDeviceRepository constructs a [DeviceRepository] backed by db.
func NewDeviceRepository(db *DB, logger *logger.Logger) DeviceRepository {
	logger.Debug().Msg("creating device repository")
	return &deviceRepository{
		db:     db,
		logger: logger,
	}
}

// CreateDevice inserts device as given. The caller assigns ID, UserID and
// Status; CreatedAt defaults to now.
func (r *deviceRepository) CreateDevice(ctx context.Context, device models.Device) (models.Device, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*deviceRepository.CreateDevice").
		Int64("user_id", device.UserID).
		Str("device_id", device.ID).
		Logger()

	if device.CreatedAt.IsZero() {
		device.CreatedAt = time.Now().UTC()
	}

	query, args, err := buildCreateDeviceQuery(r.db.builder, device)
	if err != nil {
		log.Err(err).Msg("failed to build query")
		return models.Device{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Msg("error inserting device")

		switch r.db.classify(err) {
		case ClassUniqueViolation:
			return models.Device{}, ErrDeviceAlreadyExists
		case ClassForeignKeyViolation:
			return models.Device{}, ErrUnknownDeviceOwner
		case ClassNotNullViolation:
			return models.Device{}, fmt.Errorf("%w: %w", ErrMissingRequiredField, err)
		default:
			return models.Device{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
	}

	return device, nil
}

// ListUserDevices returns an empty, non-nil slice when the user has no
// matching devices.
func (r *deviceRepository) ListUserDevices(ctx context.Context, filter models.DeviceFilter) ([]models.Device, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*deviceRepository.ListUserDevices").
		Int64("user_id", filter.UserID).
		Logger()

	query, args, err := buildListUserDevicesQuery(r.db.builder, filter)
	if err != nil {
		log.Err(err).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows *sql.Rows
	err = r.db.withRetry(ctx, func() error {
		var queryErr error
		rows, queryErr = r.db.QueryContext(ctx, query, args...)
		return queryErr
	})
	if err != nil {
		log.Err(err).Msg("failed to execute query for listing devices")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	devices := make([]models.Device, 0, 16)
	for rows.Next() {
		device, scanErr := scanDevice(rows)
		if scanErr != nil {
			log.Err(scanErr).Msg("failed to scan device row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		devices = append(devices, device)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return devices, nil
}

// ToggleDeviceStatus runs UPDATE … SET status = NOT status in one statement,
// so concurrent toggles never lose an update. A device that does not exist or
// belongs to another user yields [ErrDeviceNotFound].
func (r *deviceRepository) ToggleDeviceStatus(ctx context.Context, userID int64, deviceID string) (models.Device, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "*deviceRepository.ToggleDeviceStatus").
		Int64("user_id", userID).
		Str("device_id", deviceID).
		Logger()

	query, args, err := buildToggleDeviceStatusQuery(r.db.builder, userID, deviceID)
	if err != nil {
		log.Err(err).Msg("failed to build query")
		return models.Device{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	device, err := scanDevice(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Device{}, ErrDeviceNotFound
	}
	if err != nil {
		log.Err(err).Msg("error toggling device status")
		return models.Device{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	log.Debug().Bool("status", device.Status).Msg("device status toggled")
	return device, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDevice(row rowScanner) (models.Device, error) {
	var device models.Device
	err := row.Scan(
		&device.ID,
		&device.UserID,
		&device.Name,
		&device.Type,
		&device.ESP32ID,
		&device.Status,
		&device.CreatedAt,
	)
	return device, err
}
