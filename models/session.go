// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Session is the client-side "current user" singleton: a full copy of the
// logged-in user plus the bearer token issued by the server. It carries no
// expiry; the client trusts it until logout or a 401 from the server.
type Session struct {
	User  User
	Token string
}

// IsZero reports whether s holds no user.
func (s Session) IsZero() bool {
	return s.User.UserID == 0 && s.User.Email == ""
}
