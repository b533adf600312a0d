// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "long id is cut to 20 characters", id: "ESP32-1700000000000-ABCDEF1234567", want: "ESP32-1700000000000-..."},
		{name: "exactly 20 characters", id: "ESP32-1700000000000-", want: "ESP32-1700000000000-..."},
		{name: "short id keeps the ellipsis", id: "ESP32-2-B", want: "ESP32-2-B..."},
		{name: "empty", id: "", want: "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, truncateID(tt.id))
		})
	}
}
