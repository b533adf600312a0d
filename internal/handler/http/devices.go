// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/private-vpn/internal/logger"
	"github.com/MKhiriev/private-vpn/internal/service"
	"github.com/MKhiriev/private-vpn/internal/utils"
	"github.com/MKhiriev/private-vpn/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) registerDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrNoUserIDProvided)
		return
	}

	var req models.RegisterDeviceRequest
	if err := utils.ReadJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid JSON was passed")
		writeError(w, r, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, err))
		return
	}
	req.UserID = userID

	device, err := h.services.DeviceService.RegisterDevice(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, device, http.StatusCreated)
}

// dashboard accepts the type filter both as repeated parameters
// (?type=light&type=fan) and as a comma separated list (?type=light,fan).
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrNoUserIDProvided)
		return
	}

	filter := models.DeviceFilter{UserID: userID}
	for _, raw := range r.URL.Query()["type"] {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				filter.Types = append(filter.Types, models.DeviceType(t))
			}
		}
	}

	dashboard, err := h.services.DeviceService.Dashboard(ctx, filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, dashboard, http.StatusOK)
}

func (h *Handler) toggleDevice(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		writeError(w, r, service.ErrNoUserIDProvided)
		return
	}

	device, err := h.services.DeviceService.ToggleDevice(ctx, userID, chi.URLParam(r, "deviceID"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, device, http.StatusOK)
}
