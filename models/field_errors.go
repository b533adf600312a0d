// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"sort"
	"strings"
)

// FieldErrors maps a form field name to the message shown next to it.
// A non-empty FieldErrors is used as an error value by the validators.
type FieldErrors map[string]string

// Error implements error. Fields are listed in a stable order.
func (f FieldErrors) Error() string {
	keys := make([]string, 0, len(f))
	for k := range f {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+f[k])
	}
	return strings.Join(parts, "; ")
}

// Add records msg for field unless the field already has a message.
func (f FieldErrors) Add(field, msg string) {
	if _, exists := f[field]; !exists {
		f[field] = msg
	}
}

// Has reports whether field has a message.
func (f FieldErrors) Has(field string) bool {
	_, ok := f[field]
	return ok
}
