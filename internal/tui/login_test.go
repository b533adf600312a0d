// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"testing"

	"github.com/MKhiriev/private-vpn/internal/service"
	"github.com/MKhiriev/private-vpn/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLoginModel_InvalidCredentials(t *testing.T) {
	c := newTestClient(t)
	c.auth.EXPECT().Login(gomock.Any(), models.LoginRequest{Email: "a@b.com", Password: "secret1"}).
		Return(models.Session{}, service.ErrInvalidCredentials)

	m := NewLoginModel(context.Background(), c.auth)
	m.inputs[loginEmail].SetValue(" a@b.com ")
	m.inputs[loginPassword].SetValue("secret1")

	_, cmd := m.Update(keyPress("enter"))
	assert.True(t, m.submitting)

	_, cmd = m.Update(run(t, cmd))

	assert.Nil(t, cmd, "no navigation on failure")
	assert.False(t, m.submitting)
	assert.Contains(t, m.View(), "Invalid email or password")
}

func TestLoginModel_SuccessOpensDashboard(t *testing.T) {
	c := newTestClient(t)
	c.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(alice, nil)

	m := NewLoginModel(context.Background(), c.auth)
	m.inputs[loginEmail].SetValue("alice@example.com")
	m.inputs[loginPassword].SetValue("secret1")

	_, cmd := m.Update(keyPress("enter"))
	_, cmd = m.Update(run(t, cmd))

	expectNavigate(t, cmd, RouteDashboard)
	assert.Empty(t, m.inputs[loginPassword].Value(), "form is cleared after login")
}

func TestLoginModel_FieldErrors(t *testing.T) {
	c := newTestClient(t)
	c.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.Session{},
		&models.ValidationError{Fields: models.FieldErrors{"email": "Email is required"}})

	m := NewLoginModel(context.Background(), c.auth)
	_, cmd := m.Update(keyPress("enter"))
	m.Update(run(t, cmd))

	assert.Contains(t, m.View(), "Email is required")
}

func TestLoginModel_Notice(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)

	m.Update(loginNotice{text: "Your session has expired. Please log in again."})

	assert.Contains(t, m.View(), "Your session has expired")
}

func TestLoginModel_Keys(t *testing.T) {
	m := NewLoginModel(context.Background(), nil)

	m.Update(keyPress("tab"))
	require.Equal(t, loginPassword, m.focus)
	m.Update(keyPress("tab"))
	require.Equal(t, loginEmail, m.focus)

	_, cmd := m.Update(keyPress("ctrl+r"))
	expectNavigate(t, cmd, RouteRegister)

	_, cmd = m.Update(keyPress("esc"))
	expectNavigate(t, cmd, RouteHome)
}
