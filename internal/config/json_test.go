// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1h30m"`, want: 90 * time.Minute},
		{name: "nanoseconds", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(15 * time.Second))
	require.NoError(t, err)
	assert.JSONEq(t, `"15s"`, string(data))
}

func TestParseServerJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"token_sign_key": "json-key",
			"token_duration": "30m",
		},
		"storage": map[string]any{"db": map[string]any{"dsn": "vpn.db"}},
		"server":  map[string]any{"http_address": ":8081", "rate_burst": 7},
	})

	cfg, err := parseServerJSON(path)
	require.NoError(t, err)
	assert.Equal(t, "json-key", cfg.App.TokenSignKey)
	assert.Equal(t, 30*time.Minute, cfg.App.TokenDuration)
	assert.Equal(t, "vpn.db", cfg.Storage.DB.DSN)
	assert.Equal(t, ":8081", cfg.Server.HTTPAddress)
	assert.Equal(t, 7, cfg.Server.RateBurst)
}

func TestParseClientJSON_Malformed(t *testing.T) {
	path := writeTempJSONConfig(t, "not an object")

	_, err := parseClientJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}
