// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/private-vpn/models"
)

// emailPattern accepts anything shaped like x@y.z without whitespace.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// AccountValidator validates registration and login requests.
type AccountValidator struct{}

// NewAccountValidator constructs an AccountValidator.
func NewAccountValidator() Validator {
	return &AccountValidator{}
}

// Validate supports models.RegisterRequest and models.LoginRequest (value or
// pointer). With no fields given, every field of the request is checked.
func (v *AccountValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegisterRequest(ctx, value, fields...)
	case *models.RegisterRequest:
		return v.validateRegisterRequest(ctx, *value, fields...)

	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *AccountValidator) validateRegisterRequest(ctx context.Context, req models.RegisterRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPassword, FieldConfirmPassword}
	}

	errs := models.FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(req.Name) == "" {
				errs.Add(FieldName, MsgNameRequired)
			}
		case FieldEmail:
			validateEmail(errs, req.Email)
		case FieldPassword:
			if req.Password == "" {
				errs.Add(FieldPassword, MsgPasswordRequired)
			} else if utf8.RuneCountInString(req.Password) < MinPasswordLength {
				errs.Add(FieldPassword, MsgPasswordTooShort)
			}
		case FieldConfirmPassword:
			if req.Password != req.ConfirmPassword {
				errs.Add(FieldConfirmPassword, MsgPasswordsDoNotMatch)
			}
		default:
			return ErrUnknownField
		}
	}

	return models.NewValidationError("", errs)
}

func (v *AccountValidator) validateLoginRequest(ctx context.Context, req models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	errs := models.FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldEmail:
			if strings.TrimSpace(req.Email) == "" {
				errs.Add(FieldEmail, MsgEmailRequired)
			}
		case FieldPassword:
			if req.Password == "" {
				errs.Add(FieldPassword, MsgPasswordRequired)
			}
		default:
			return ErrUnknownField
		}
	}

	return models.NewValidationError("", errs)
}

func validateEmail(errs models.FieldErrors, email string) {
	switch {
	case strings.TrimSpace(email) == "":
		errs.Add(FieldEmail, MsgEmailRequired)
	case !emailPattern.MatchString(email):
		errs.Add(FieldEmail, MsgEmailInvalid)
	}
}
