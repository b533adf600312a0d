// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router.
//
//	GET  /                               landing page
//	GET  /api/version                    application version
//	POST /api/user/register              rate limited
//	POST /api/user/login                 rate limited
//	GET  /api/user                       auth
//	POST /api/devices                    auth
//	GET  /api/devices[?type=...]         auth
//	POST /api/devices/{deviceID}/toggle  auth
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	router.Get("/", h.landingPage)
	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.withRateLimit)
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/user", h.currentUser)
		r.Post("/api/devices", h.registerDevice)
		r.Get("/api/devices", h.dashboard)
		r.Post("/api/devices/{deviceID}/toggle", h.toggleDevice)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
