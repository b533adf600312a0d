// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/private-vpn/internal/config"
	"github.com/MKhiriev/private-vpn/internal/logger"
	"github.com/MKhiriev/private-vpn/models"
)

func newTestClientStorages(t *testing.T) *ClientStorages {
	t.Helper()

	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "client.db")}}
	storages, err := NewClientStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })
	return storages
}

func TestLocalRecordStore_ReadAbsent(t *testing.T) {
	records := newTestClientStorages(t).Records

	var user models.User
	found, err := records.Read(context.Background(), "currentUser", &user)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, models.User{}, user)
}

func TestLocalRecordStore_WriteReadOverwrite(t *testing.T) {
	records := newTestClientStorages(t).Records
	ctx := context.Background()

	require.NoError(t, records.Write(ctx, "currentUser", models.User{UserID: 1, Name: "Ann", Email: "ann@b.com"}))
	require.NoError(t, records.Write(ctx, "currentUser", models.User{UserID: 2, Name: "Bob", Email: "bob@b.com"}))

	var user models.User
	found, err := records.Read(ctx, "currentUser", &user)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, int64(2), user.UserID)
	assert.Equal(t, "Bob", user.Name)
}

func TestLocalRecordStore_Delete(t *testing.T) {
	records := newTestClientStorages(t).Records
	ctx := context.Background()

	require.NoError(t, records.Write(ctx, "authToken", "jwt"))
	require.NoError(t, records.Delete(ctx, "authToken"))
	// absent key
	require.NoError(t, records.Delete(ctx, "authToken"))

	var token string
	found, err := records.Read(ctx, "authToken", &token)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLocalRecordStore_MalformedJSONReadsAsAbsent(t *testing.T) {
	storages := newTestClientStorages(t)
	ctx := context.Background()

	_, err := storages.db.ExecContext(ctx, "INSERT INTO records (key, value) VALUES (?, ?)", "currentUser", "{not json")
	require.NoError(t, err)

	var user models.User
	found, err := storages.Records.Read(ctx, "currentUser", &user)
	require.NoError(t, err)
	assert.False(t, found)
}
