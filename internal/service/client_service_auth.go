// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/private-vpn/internal/adapter"
	"github.com/MKhiriev/private-vpn/internal/logger"
	"github.com/MKhiriev/private-vpn/internal/store"
	"github.com/MKhiriev/private-vpn/internal/validators"
	"github.com/MKhiriev/private-vpn/models"
)

type clientAuthService struct {
	session   *sessionKeeper
	adapter   adapter.ServerAdapter
	validator validators.Validator

	logger *logger.Logger
}

func NewClientAuthService(records store.LocalRecordStore, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		session:   &sessionKeeper{records: records, adapter: serverAdapter},
		adapter:   serverAdapter,
		validator: validators.NewAccountValidator(),
		logger:    logger,
	}
}

func (a *clientAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.Session, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Session{}, err
	}

	user, err := a.adapter.Register(ctx, req)
	if err != nil {
		a.logger.Err(err).Str("email", req.Email).Msg("registration on server failed")
		return models.Session{}, mapAdapterError(err)
	}

	session := models.Session{User: user, Token: a.adapter.Token()}
	if err = a.session.save(ctx, session); err != nil {
		return models.Session{}, err
	}

	a.logger.Info().Int64("user_id", user.UserID).Msg("registered and signed in")
	return session, nil
}

func (a *clientAuthService) Login(ctx context.Context, req models.LoginRequest) (models.Session, error) {
	if err := a.validator.Validate(ctx, req); err != nil {
		return models.Session{}, err
	}

	user, err := a.adapter.Login(ctx, req)
	if errors.Is(err, adapter.ErrUnauthorized) {
		a.logger.Info().Str("email", req.Email).Msg("login rejected")
		return models.Session{}, ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Err(err).Str("email", req.Email).Msg("login on server failed")
		return models.Session{}, mapAdapterError(err)
	}

	session := models.Session{User: user, Token: a.adapter.Token()}
	if err = a.session.save(ctx, session); err != nil {
		return models.Session{}, err
	}

	a.logger.Info().Int64("user_id", user.UserID).Msg("signed in")
	return session, nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	if err := a.session.clear(ctx); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	a.logger.Info().Msg("signed out")
	return nil
}

func (a *clientAuthService) CurrentSession(ctx context.Context) (models.Session, error) {
	return a.session.load(ctx)
}

func (a *clientAuthService) RestoreSession(ctx context.Context) (models.Session, error) {
	session, err := a.session.load(ctx)
	if err != nil {
		return models.Session{}, err
	}

	a.adapter.SetToken(session.Token)
	a.logger.Info().Int64("user_id", session.User.UserID).Msg("session restored")
	return session, nil
}
