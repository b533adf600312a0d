// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/private-vpn/internal/adapter"
	"github.com/MKhiriev/private-vpn/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service
// business error. The original error stays in the chain so a
// *models.ValidationError decoded from the response body remains reachable.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)

	case errors.Is(err, adapter.ErrUnauthorized):
		return fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)

	case errors.Is(err, adapter.ErrNotFound):
		return fmt.Errorf("%w: %w", store.ErrDeviceNotFound, err)

	case errors.Is(err, adapter.ErrConflict):
		return fmt.Errorf("%w: %w", ErrEmailAlreadyRegistered, err)

	case errors.Is(err, adapter.ErrTooManyRequests):
		return fmt.Errorf("%w: %w", ErrTooManyRequests, err)

	case errors.Is(err, adapter.ErrForbidden),
		errors.Is(err, adapter.ErrInternalServerError),
		errors.Is(err, adapter.ErrBadGateway),
		errors.Is(err, adapter.ErrUnexpectedStatus):
		return err
	}

	return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
}
