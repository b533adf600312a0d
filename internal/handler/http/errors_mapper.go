// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/private-vpn/internal/app"
	"github.com/MKhiriev/private-vpn/internal/logger"
	"github.com/MKhiriev/private-vpn/internal/service"
	"github.com/MKhiriev/private-vpn/internal/store"
	"github.com/MKhiriev/private-vpn/internal/utils"
	"github.com/MKhiriev/private-vpn/models"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

// errorMappings is checked in order; the first match wins. A duplicate email
// is also a validation error, so it must come before models.ErrValidation.
var errorMappings = []errorMapping{
	{service.ErrEmailAlreadyRegistered, http.StatusConflict, app.MsgEmailAlreadyRegistered},
	{store.ErrEmailAlreadyExists, http.StatusConflict, app.MsgEmailAlreadyRegistered},
	{store.ErrDeviceAlreadyExists, http.StatusConflict, app.MsgDeviceAlreadyExists},

	{models.ErrValidation, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{utils.ErrEmptyBody, http.StatusBadRequest, app.MsgInvalidDataProvided},

	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.MsgInvalidEmailOrPassword},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.MsgTokenIsExpiredOrInvalid},
	{service.ErrNoUserIDProvided, http.StatusUnauthorized, app.MsgNoUserIDProvided},
	{store.ErrNoUserWasFound, http.StatusUnauthorized, app.MsgUnknownUser},
	{store.ErrUnknownDeviceOwner, http.StatusUnauthorized, app.MsgUnknownUser},

	{store.ErrDeviceNotFound, http.StatusNotFound, app.MsgDeviceNotFound},
	{ErrRouteNotFound, http.StatusNotFound, app.MsgNotFound},

	{ErrTooManyRequests, http.StatusTooManyRequests, app.MsgTooManyRequests},

	{service.ErrVersionIsNotSpecified, http.StatusInternalServerError, app.MsgVersionIsNotSpecified},
	{service.ErrDeviceIDGenerationFailed, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError, app.MsgInternalServerError},
}

func lookupError(err error) (int, string) {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func statusFromError(err error) int {
	status, _ := lookupError(err)
	return status
}

// writeError answers with the status mapped from err and a models.ErrorResponse
// body. A *models.ValidationError in the chain contributes its per-field messages
// and, when set, its banner; internals of other errors are never exposed.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status, message := lookupError(err)

	body := models.ErrorResponse{Message: message}
	var ve *models.ValidationError
	if errors.As(err, &ve) {
		if ve.Message != "" {
			body.Message = ve.Message
		}
		body.Fields = ve.Fields
	}

	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, werr := utils.WriteJSON(w, body, status); werr != nil {
		log.Err(werr).Msg("writing error response failed")
	}
}
