// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/private-vpn/internal/adapter"
	"github.com/MKhiriev/private-vpn/internal/store"
	"github.com/MKhiriev/private-vpn/models"
)

// Local record keys of the session.
const (
	CurrentUserKey = "currentUser"
	AuthTokenKey   = "authToken"
)

// sessionKeeper reads and writes the session records and keeps the adapter's
// bearer token in step with them.
type sessionKeeper struct {
	records store.LocalRecordStore
	adapter adapter.ServerAdapter
}

func (s *sessionKeeper) load(ctx context.Context) (models.Session, error) {
	var session models.Session

	found, err := s.records.Read(ctx, CurrentUserKey, &session.User)
	if err != nil {
		return models.Session{}, fmt.Errorf("reading %s: %w", CurrentUserKey, err)
	}
	if !found || session.IsZero() {
		return models.Session{}, ErrSessionNotFound
	}

	if _, err = s.records.Read(ctx, AuthTokenKey, &session.Token); err != nil {
		return models.Session{}, fmt.Errorf("reading %s: %w", AuthTokenKey, err)
	}

	return session, nil
}

func (s *sessionKeeper) save(ctx context.Context, session models.Session) error {
	if err := s.records.Write(ctx, CurrentUserKey, session.User.Public()); err != nil {
		return fmt.Errorf("writing %s: %w", CurrentUserKey, err)
	}
	if err := s.records.Write(ctx, AuthTokenKey, session.Token); err != nil {
		return fmt.Errorf("writing %s: %w", AuthTokenKey, err)
	}
	return nil
}

func (s *sessionKeeper) clear(ctx context.Context) error {
	s.adapter.SetToken("")

	return errors.Join(
		s.records.Delete(ctx, CurrentUserKey),
		s.records.Delete(ctx, AuthTokenKey),
	)
}

// expire clears the session after the server rejected the token and returns
// ErrSessionExpired joined with cause.
func (s *sessionKeeper) expire(ctx context.Context, cause error) error {
	if err := s.clear(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrSessionExpired, errors.Join(cause, err))
	}
	return fmt.Errorf("%w: %w", ErrSessionExpired, cause)
}
