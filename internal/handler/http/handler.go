// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/private-vpn/internal/config"
	"github.com/MKhiriev/private-vpn/internal/logger"
	"github.com/MKhiriev/private-vpn/internal/service"
	"github.com/MKhiriev/private-vpn/internal/utils"
)

type traceIDGenerator interface {
	Generate() string
}

type Handler struct {
	services *service.Services
	cfg      config.Server

	limiter  *ipRateLimiter
	traceIDs traceIDGenerator

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		limiter:  newIPRateLimiter(cfg.RateLimit, cfg.RateBurst),
		traceIDs: utils.NewUUIDGenerator(),
		logger:   logger,
	}
}
