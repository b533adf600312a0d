// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account of the device control dashboard.
//
// The password travels only inbound (registration and login requests); the
// server keeps a bcrypt hash in PasswordHash and clears Password before a
// user is written to any response.
type User struct {
	// UserID is the server-assigned identifier. It is rendered as a JSON
	// string so that clients treat it as an opaque key.
	UserID int64 `json:"id,string"`

	// Name is the display name shown in the dashboard header.
	Name string `json:"name"`

	// Email is the login identifier. Unique across all users, compared
	// case-sensitively.
	Email string `json:"email"`

	// Password is the plain password supplied by the client. Never persisted.
	Password string `json:"password,omitempty"`

	// PasswordHash is the bcrypt hash stored in the users table.
	PasswordHash string `json:"-"`

	// CreatedAt is the moment the account was registered.
	CreatedAt time.Time `json:"createdAt"`
}

// Public returns a copy of u that is safe to send to clients.
func (u User) Public() User {
	u.Password = ""
	u.PasswordHash = ""
	return u
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
