// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/private-vpn/internal/adapter"
	"github.com/MKhiriev/private-vpn/models"
)

type clientAppInfoService struct {
	adapter   adapter.ServerAdapter
	buildInfo models.AppBuildInfo
}

func NewClientAppInfoService(serverAdapter adapter.ServerAdapter, buildInfo models.AppBuildInfo) ClientAppInfoService {
	return &clientAppInfoService{adapter: serverAdapter, buildInfo: buildInfo}
}

func (s *clientAppInfoService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.adapter.Version(ctx)
	if err != nil {
		return "", mapAdapterError(err)
	}
	return version, nil
}

func (s *clientAppInfoService) BuildInfo() models.AppBuildInfo {
	return s.buildInfo
}
