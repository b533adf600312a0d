// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/private-vpn/internal/adapter"
	"github.com/MKhiriev/private-vpn/internal/logger"
	"github.com/MKhiriev/private-vpn/internal/store"
	"github.com/MKhiriev/private-vpn/models"
)

type ClientServices struct {
	AuthService    ClientAuthService
	DeviceService  ClientDeviceService
	AppInfoService ClientAppInfoService
}

func NewClientServices(records store.LocalRecordStore, serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		AuthService:    NewClientAuthService(records, serverAdapter, logger),
		DeviceService:  NewClientDeviceService(records, serverAdapter, logger),
		AppInfoService: NewClientAppInfoService(serverAdapter, buildInfo),
	}
}
