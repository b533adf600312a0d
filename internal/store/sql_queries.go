// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/private-vpn/models"
)

const (
	usersTable   = "users"
	devicesTable = "devices"
	recordsTable = "records"
)

var (
	userColumns   = []string{"user_id", "name", "email", "password_hash", "created_at"}
	deviceColumns = []string{"device_id", "user_id", "name", "device_type", "esp32_id", "status", "created_at"}
)

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("name", "email", "password_hash", "created_at").
		Values(user.Name, user.Email, user.PasswordHash, user.CreatedAt).
		Suffix("RETURNING user_id").
		ToSql()
}

func buildFindUserQuery(b sq.StatementBuilderType, where sq.Eq) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(where).
		ToSql()
}

func buildCreateDeviceQuery(b sq.StatementBuilderType, device models.Device) (string, []any, error) {
	return b.Insert(devicesTable).
		Columns(deviceColumns...).
		Values(device.ID, device.UserID, device.Name, string(device.Type), device.ESP32ID, device.Status, device.CreatedAt).
		ToSql()
}

func buildListUserDevicesQuery(b sq.StatementBuilderType, filter models.DeviceFilter) (string, []any, error) {
	query := b.Select(deviceColumns...).
		From(devicesTable).
		Where(sq.Eq{"user_id": filter.UserID})

	if len(filter.Types) > 0 {
		types := make([]string, 0, len(filter.Types))
		for _, t := range filter.Types {
			types = append(types, string(t))
		}
		query = query.Where(sq.Eq{"device_type": types})
	}

	return query.OrderBy("created_at", "device_id").ToSql()
}

func buildToggleDeviceStatusQuery(b sq.StatementBuilderType, userID int64, deviceID string) (string, []any, error) {
	return b.Update(devicesTable).
		Set("status", sq.Expr("NOT status")).
		Where(sq.Eq{"device_id": deviceID, "user_id": userID}).
		Suffix("RETURNING " + strings.Join(deviceColumns, ", ")).
		ToSql()
}

func buildReadRecordQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Select("value").
		From(recordsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildWriteRecordQuery(b sq.StatementBuilderType, key, value string, updatedAt any) (string, []any, error) {
	return b.Insert(recordsTable).
		Columns("key", "value", "updated_at").
		Values(key, value, updatedAt).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildDeleteRecordQuery(b sq.StatementBuilderType, key string) (string, []any, error) {
	return b.Delete(recordsTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}
