// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/private-vpn/models"
)

func fieldErrors(t *testing.T, err error) models.FieldErrors {
	t.Helper()

	var ve *models.ValidationError
	require.True(t, errors.As(err, &ve), "expected *models.ValidationError, got %v", err)
	require.ErrorIs(t, err, models.ErrValidation)
	return ve.Fields
}

func validRegisterRequest() models.RegisterRequest {
	return models.RegisterRequest{
		Name:            "Ann",
		Email:           "ann@example.com",
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
}

func TestAccountValidator_Dispatch(t *testing.T) {
	v := NewAccountValidator()
	ctx := context.Background()

	req := validRegisterRequest()
	assert.NoError(t, v.Validate(ctx, req))
	assert.NoError(t, v.Validate(ctx, &req))
	assert.NoError(t, v.Validate(ctx, models.LoginRequest{Email: "a@b.com", Password: "x"}))
	assert.ErrorIs(t, v.Validate(ctx, "a string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, req, "nickname"), ErrUnknownField)
}

func TestAccountValidator_RegisterRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *models.RegisterRequest)
		want   models.FieldErrors
	}{
		{
			name:   "blank name",
			mutate: func(r *models.RegisterRequest) { r.Name = "   " },
			want:   models.FieldErrors{FieldName: MsgNameRequired},
		},
		{
			name:   "empty email",
			mutate: func(r *models.RegisterRequest) { r.Email = "" },
			want:   models.FieldErrors{FieldEmail: MsgEmailRequired},
		},
		{
			name:   "malformed email",
			mutate: func(r *models.RegisterRequest) { r.Email = "ann.example.com" },
			want:   models.FieldErrors{FieldEmail: MsgEmailInvalid},
		},
		{
			name: "empty password",
			mutate: func(r *models.RegisterRequest) {
				r.Password = ""
				r.ConfirmPassword = ""
			},
			want: models.FieldErrors{FieldPassword: MsgPasswordRequired},
		},
		{
			name: "short password",
			mutate: func(r *models.RegisterRequest) {
				r.Password = "12345"
				r.ConfirmPassword = "12345"
			},
			want: models.FieldErrors{FieldPassword: MsgPasswordTooShort},
		},
		{
			name: "password length counts characters, not bytes",
			mutate: func(r *models.RegisterRequest) {
				r.Password = "ééé"
				r.ConfirmPassword = "ééé"
			},
			want: models.FieldErrors{FieldPassword: MsgPasswordTooShort},
		},
		{
			name:   "mismatched confirmation",
			mutate: func(r *models.RegisterRequest) { r.ConfirmPassword = "secret2" },
			want:   models.FieldErrors{FieldConfirmPassword: MsgPasswordsDoNotMatch},
		},
		{
			name: "all errors are collected",
			mutate: func(r *models.RegisterRequest) {
				*r = models.RegisterRequest{Email: "nope", Password: "123", ConfirmPassword: "321"}
			},
			want: models.FieldErrors{
				FieldName:            MsgNameRequired,
				FieldEmail:           MsgEmailInvalid,
				FieldPassword:        MsgPasswordTooShort,
				FieldConfirmPassword: MsgPasswordsDoNotMatch,
			},
		},
	}

	v := NewAccountValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRegisterRequest()
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			assert.Equal(t, tt.want, fieldErrors(t, err))
		})
	}
}

func TestAccountValidator_RegisterRequest_MultibytePassword(t *testing.T) {
	req := validRegisterRequest()
	req.Password = "пароль"
	req.ConfirmPassword = "пароль"

	assert.NoError(t, NewAccountValidator().Validate(context.Background(), req))
}

func TestAccountValidator_RegisterRequest_ScopedFields(t *testing.T) {
	req := models.RegisterRequest{Email: "bad"}

	err := NewAccountValidator().Validate(context.Background(), req, FieldName)
	assert.Equal(t, models.FieldErrors{FieldName: MsgNameRequired}, fieldErrors(t, err))
}

func TestAccountValidator_LoginRequest(t *testing.T) {
	err := NewAccountValidator().Validate(context.Background(), models.LoginRequest{})
	assert.Equal(t, models.FieldErrors{
		FieldEmail:    MsgEmailRequired,
		FieldPassword: MsgPasswordRequired,
	}, fieldErrors(t, err))
}
