// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/private-vpn/internal/logger"
	"github.com/MKhiriev/private-vpn/migrations"
	"github.com/MKhiriev/private-vpn/models"
)

func newTestDeviceRepo(t *testing.T) (*deviceRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	return &deviceRepository{
		db:     newDB(db, migrations.DialectPostgres, l),
		logger: l,
	}, mock
}

func testDevice() models.Device {
	return models.Device{
		ID:      "ESP32-1700000000000-ABCDEF1234567",
		Name:    "Kitchen light",
		Type:    models.DeviceTypeLight,
		ESP32ID: "esp-01",
		UserID:  7,
	}
}

func TestCreateDevice_Success(t *testing.T) {
	repo, mock := newTestDeviceRepo(t)
	device := testDevice()

	mock.ExpectExec("INSERT INTO devices").
		WithArgs(device.ID, device.UserID, device.Name, "light", device.ESP32ID, false, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	created, err := repo.CreateDevice(context.Background(), device)
	require.NoError(t, err)
	assert.Equal(t, device.ID, created.ID)
	assert.False(t, created.Status)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateDevice_ClassifiedErrors(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{name: "duplicate id", dbErr: pgError(pgerrcode.UniqueViolation), wantErr: ErrDeviceAlreadyExists},
		{name: "unknown owner", dbErr: pgError(pgerrcode.ForeignKeyViolation), wantErr: ErrUnknownDeviceOwner},
		{name: "missing column", dbErr: pgError(pgerrcode.NotNullViolation), wantErr: ErrMissingRequiredField},
		{name: "other", dbErr: errors.New("boom"), wantErr: ErrExecutingQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestDeviceRepo(t)
			mock.ExpectExec("INSERT INTO devices").WillReturnError(tt.dbErr)

			_, err := repo.CreateDevice(context.Background(), testDevice())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestListUserDevices_Success(t *testing.T) {
	repo, mock := newTestDeviceRepo(t)
	now := time.Now()

	rows := sqlmock.NewRows(deviceColumns).
		AddRow("ESP32-1-A", 7, "Lamp", "light", "esp-1", false, now).
		AddRow("ESP32-2-B", 7, "Fan", "fan", "esp-2", true, now)

	mock.ExpectQuery("SELECT .* FROM devices WHERE user_id = \\$1 ORDER BY created_at, device_id").
		WithArgs(int64(7)).
		WillReturnRows(rows)

	devices, err := repo.ListUserDevices(context.Background(), models.DeviceFilter{UserID: 7})
	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, models.DeviceTypeFan, devices[1].Type)
	assert.True(t, devices[1].Status)
}

func TestListUserDevices_Empty(t *testing.T) {
	repo, mock := newTestDeviceRepo(t)

	mock.ExpectQuery("SELECT .* FROM devices").
		WillReturnRows(sqlmock.NewRows(deviceColumns))

	devices, err := repo.ListUserDevices(context.Background(), models.DeviceFilter{UserID: 7})
	require.NoError(t, err)
	assert.NotNil(t, devices)
	assert.Empty(t, devices)
}

func TestListUserDevices_ScanError(t *testing.T) {
	repo, mock := newTestDeviceRepo(t)

	mock.ExpectQuery("SELECT .* FROM devices").
		WillReturnRows(sqlmock.NewRows([]string{"device_id"}).AddRow("only-one-column"))

	_, err := repo.ListUserDevices(context.Background(), models.DeviceFilter{UserID: 7})
	assert.ErrorIs(t, err, ErrScanningRow)
}

func TestToggleDeviceStatus_Success(t *testing.T) {
	repo, mock := newTestDeviceRepo(t)
	now := time.Now()

	mock.ExpectQuery("UPDATE devices SET status = NOT status").
		WithArgs("ESP32-1-A", int64(7)).
		WillReturnRows(sqlmock.NewRows(deviceColumns).AddRow("ESP32-1-A", 7, "Lamp", "light", "esp-1", true, now))

	device, err := repo.ToggleDeviceStatus(context.Background(), 7, "ESP32-1-A")
	require.NoError(t, err)
	assert.True(t, device.Status)
}

func TestToggleDeviceStatus_NotFound(t *testing.T) {
	repo, mock := newTestDeviceRepo(t)

	mock.ExpectQuery("UPDATE devices").WillReturnError(sql.ErrNoRows)

	_, err := repo.ToggleDeviceStatus(context.Background(), 7, "ESP32-404")
	assert.ErrorIs(t, err, ErrDeviceNotFound)
}

func TestListUserDevices_RetriesTransientError(t *testing.T) {
	repo, mock := newTestDeviceRepo(t)

	mock.ExpectQuery("SELECT .* FROM devices").
		WillReturnError(pgError(pgerrcode.DeadlockDetected))
	mock.ExpectQuery("SELECT .* FROM devices").
		WillReturnRows(sqlmock.NewRows(deviceColumns).AddRow("ESP32-1-A", 7, "Lamp", "light", "esp-1", false, time.Now()))

	devices, err := repo.ListUserDevices(context.Background(), models.DeviceFilter{UserID: 7})
	require.NoError(t, err)
	assert.Len(t, devices, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUserDevices_GivesUpAfterMaxAttempts(t *testing.T) {
	repo, mock := newTestDeviceRepo(t)

	for i := 0; i < maxQueryAttempts; i++ {
		mock.ExpectQuery("SELECT .* FROM devices").
			WillReturnError(pgError(pgerrcode.SerializationFailure))
	}

	_, err := repo.ListUserDevices(context.Background(), models.DeviceFilter{UserID: 7})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListUserDevices_NoRetryOnPermanentError(t *testing.T) {
	repo, mock := newTestDeviceRepo(t)

	mock.ExpectQuery("SELECT .* FROM devices").
		WillReturnError(errors.New("syntax error"))

	_, err := repo.ListUserDevices(context.Background(), models.DeviceFilter{UserID: 7})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NoError(t, mock.ExpectationsWereMet())
}
