// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/private-vpn/internal/adapter"
	"github.com/MKhiriev/private-vpn/internal/logger"
	"github.com/MKhiriev/private-vpn/internal/mock"
	"github.com/MKhiriev/private-vpn/internal/store"
	"github.com/MKhiriev/private-vpn/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientDeviceSvc(t *testing.T, ctrl *gomock.Controller) (ClientDeviceService, *mock.MockLocalRecordStore, *mock.MockServerAdapter) {
	t.Helper()
	records := mock.NewMockLocalRecordStore(ctrl)
	serverAdapter := mock.NewMockServerAdapter(ctrl)

	return NewClientDeviceService(records, serverAdapter, logger.Nop()), records, serverAdapter
}

func validDeviceRequest() models.RegisterDeviceRequest {
	return models.RegisterDeviceRequest{Name: "Living Room Light", Type: models.DeviceTypeLight, ESP32ID: "AA:BB:CC:DD:EE:FF"}
}

func TestClientDeviceService_RegisterDevice_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, records, serverAdapter := newTestClientDeviceSvc(t, ctrl)
	ctx := context.Background()
	expectStoredSession(records, models.Session{User: alice, Token: "jwt"})

	serverAdapter.EXPECT().RegisterDevice(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.RegisterDeviceRequest) (models.Device, error) {
			assert.Equal(t, alice.UserID, req.UserID)
			return models.Device{ID: "ESP32-1-ABC", Name: req.Name, Type: req.Type, UserID: req.UserID}, nil
		},
	)

	device, err := svc.RegisterDevice(ctx, validDeviceRequest())
	require.NoError(t, err)
	assert.Equal(t, "ESP32-1-ABC", device.ID)
	assert.False(t, device.Status)
}

func TestClientDeviceService_RegisterDevice_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, records, _ := newTestClientDeviceSvc(t, ctrl)
	expectNoSession(records)

	_, err := svc.RegisterDevice(context.Background(), validDeviceRequest())
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestClientDeviceService_RegisterDevice_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, records, _ := newTestClientDeviceSvc(t, ctrl)
	expectStoredSession(records, models.Session{User: alice, Token: "jwt"})

	_, err := svc.RegisterDevice(context.Background(), models.RegisterDeviceRequest{Name: "Fan"})

	var ve *models.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Please fill in all fields", ve.Message)
}

func TestClientDeviceService_Unauthorized_ClearsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, records, serverAdapter := newTestClientDeviceSvc(t, ctrl)
	ctx := context.Background()
	expectStoredSession(records, models.Session{User: alice, Token: "stale"})

	serverAdapter.EXPECT().Dashboard(ctx).Return(models.Dashboard{}, fmt.Errorf("%w: token is expired or invalid", adapter.ErrUnauthorized))
	serverAdapter.EXPECT().SetToken("")
	records.EXPECT().Delete(ctx, CurrentUserKey).Return(nil)
	records.EXPECT().Delete(ctx, AuthTokenKey).Return(nil)

	_, err := svc.Dashboard(ctx)
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}

func TestClientDeviceService_Dashboard_WithFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, records, serverAdapter := newTestClientDeviceSvc(t, ctrl)
	ctx := context.Background()
	expectStoredSession(records, models.Session{User: alice, Token: "jwt"})

	want := models.NewDashboard([]models.Device{{ID: "ESP32-1-A", Type: models.DeviceTypeFan, Status: true}})
	serverAdapter.EXPECT().Dashboard(ctx, models.DeviceTypeFan).Return(want, nil)

	got, err := svc.Dashboard(ctx, models.DeviceTypeFan)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestClientDeviceService_ToggleDevice(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, records, serverAdapter := newTestClientDeviceSvc(t, ctrl)
	ctx := context.Background()
	expectStoredSession(records, models.Session{User: alice, Token: "jwt"})

	serverAdapter.EXPECT().ToggleDevice(ctx, "ESP32-1-A").Return(models.Device{ID: "ESP32-1-A", Status: true}, nil)
	serverAdapter.EXPECT().ToggleDevice(ctx, "ESP32-9-Z").Return(models.Device{}, fmt.Errorf("%w: Device not found", adapter.ErrNotFound))

	device, err := svc.ToggleDevice(ctx, "ESP32-1-A")
	require.NoError(t, err)
	assert.True(t, device.Status)

	_, err = svc.ToggleDevice(ctx, "ESP32-9-Z")
	assert.ErrorIs(t, err, store.ErrDeviceNotFound)
}

func TestMapAdapterError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"bad request", adapter.ErrBadRequest, ErrInvalidDataProvided},
		{"unauthorized", adapter.ErrUnauthorized, ErrTokenIsExpiredOrInvalid},
		{"not found", adapter.ErrNotFound, store.ErrDeviceNotFound},
		{"conflict", adapter.ErrConflict, ErrEmailAlreadyRegistered},
		{"too many", adapter.ErrTooManyRequests, ErrTooManyRequests},
		{"internal", adapter.ErrInternalServerError, adapter.ErrInternalServerError},
		{"transport", errors.New("dial tcp: refused"), ErrServerUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapAdapterError(tt.in), tt.want)
		})
	}

	assert.NoError(t, mapAdapterError(nil))
}

func TestClientAppInfoService(t *testing.T) {
	ctrl := gomock.NewController(t)
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	build := models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc123")
	svc := NewClientAppInfoService(serverAdapter, build)

	serverAdapter.EXPECT().Version(gomock.Any()).Return("2.0.0", nil)
	version, err := svc.ServerVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", version)
	assert.Equal(t, "1.0.0", svc.BuildInfo().BuildVersion())

	serverAdapter.EXPECT().Version(gomock.Any()).Return("", errors.New("refused"))
	_, err = svc.ServerVersion(context.Background())
	assert.ErrorIs(t, err, ErrServerUnavailable)
}
