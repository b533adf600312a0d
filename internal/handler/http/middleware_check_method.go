// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/private-vpn/internal/logger"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler to be registered as the router's
// MethodNotAllowed handler. Instead of chi's 405 it answers 404 so that an
// unsupported method looks the same as an unknown path.
//
// Parameterised routes are matched too (e.g. a GET on
// /api/devices/{deviceID}/toggle).
func CheckHTTPMethod(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		pathKnown := false
		for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete} {
			if method != r.Method && router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				pathKnown = true
				break
			}
		}

		logger.FromRequest(r).Debug().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Bool("path_known", pathKnown).
			Msg("method not supported")

		writeError(w, r, ErrRouteNotFound)
	}
}
