// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/private-vpn/internal/config"
	"github.com/MKhiriev/private-vpn/internal/logger"
	"github.com/MKhiriev/private-vpn/internal/store"
)

type Services struct {
	AuthService    AuthService
	DeviceService  DeviceService
	AppInfoService AppInfoService
}

func NewServices(repositories *store.Repositories, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	deviceService := NewDeviceValidationService().Wrap(
		NewDeviceService(repositories.DeviceRepository, logger),
	)

	return &Services{
		AuthService:    NewAuthService(repositories.UserRepository, cfg.App, logger),
		DeviceService:  deviceService,
		AppInfoService: appInfoService,
	}, nil
}
