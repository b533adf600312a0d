// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/private-vpn/models"
)

var (
	dollarBuilder   = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	questionBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

func Test_buildCreateUserQuery(t *testing.T) {
	now := time.Now()
	user := models.User{Name: "Ann", Email: "ann@example.com", PasswordHash: "hash", CreatedAt: now}

	query, args, err := buildCreateUserQuery(dollarBuilder, user)
	require.NoError(t, err)

	assert.Equal(t, "INSERT INTO users (name,email,password_hash,created_at) VALUES ($1,$2,$3,$4) RETURNING user_id", query)
	assert.Equal(t, []any{"Ann", "ann@example.com", "hash", now}, args)
}

func Test_buildFindUserQuery_Placeholders(t *testing.T) {
	pgQuery, _, err := buildFindUserQuery(dollarBuilder, sq.Eq{"email": "a@b.com"})
	require.NoError(t, err)
	assert.Contains(t, pgQuery, "WHERE email = $1")

	liteQuery, args, err := buildFindUserQuery(questionBuilder, sq.Eq{"user_id": int64(7)})
	require.NoError(t, err)
	assert.Contains(t, liteQuery, "WHERE user_id = ?")
	assert.Equal(t, []any{int64(7)}, args)

	for _, col := range userColumns {
		assert.Contains(t, liteQuery, col)
	}
}

func Test_buildListUserDevicesQuery(t *testing.T) {
	tests := []struct {
		name         string
		filter       models.DeviceFilter
		wantContains []string
		wantArgs     []any
	}{
		{
			name:         "all devices of a user",
			filter:       models.DeviceFilter{UserID: 3},
			wantContains: []string{"FROM devices", "WHERE user_id = $1", "ORDER BY created_at, device_id"},
			wantArgs:     []any{int64(3)},
		},
		{
			name:         "narrowed by type",
			filter:       models.DeviceFilter{UserID: 3, Types: []models.DeviceType{models.DeviceTypeFan, models.DeviceTypeLight}},
			wantContains: []string{"user_id = $1", "device_type IN ($2,$3)"},
			wantArgs:     []any{int64(3), "fan", "light"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListUserDevicesQuery(dollarBuilder, tt.filter)
			require.NoError(t, err)
			for _, part := range tt.wantContains {
				assert.Contains(t, query, part)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func Test_buildToggleDeviceStatusQuery(t *testing.T) {
	query, args, err := buildToggleDeviceStatusQuery(questionBuilder, 9, "ESP32-1-ABC")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "UPDATE devices SET status = NOT status WHERE"))
	assert.Contains(t, query, "device_id = ? AND user_id = ?")
	assert.Contains(t, query, "RETURNING device_id, user_id")
	assert.Equal(t, []any{"ESP32-1-ABC", int64(9)}, args)
}

func Test_buildWriteRecordQuery_Upsert(t *testing.T) {
	query, args, err := buildWriteRecordQuery(questionBuilder, "currentUser", "{}", "now")
	require.NoError(t, err)

	assert.Contains(t, query, "INSERT INTO records (key,value,updated_at) VALUES (?,?,?)")
	assert.Contains(t, query, "ON CONFLICT (key) DO UPDATE")
	assert.Equal(t, []any{"currentUser", "{}", "now"}, args)
}
