// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-marketplace/internal/adapter"
	"github.com/MKhiriev/go-marketplace/internal/app"
	"github.com/MKhiriev/go-marketplace/internal/validators"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		var validationErr *validators.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("%w: %w", ErrInvalidRequest, validationErr)
		}
		return fmt.Errorf("%w: %s", ErrInvalidRequest, msg)

	case errors.Is(err, adapter.ErrUnauthorized):
		switch msg {
		case app.MsgInvalidCredentials:
			return ErrInvalidCredentials
		case app.MsgNoToken:
			return ErrNotAuthenticated
		case app.MsgTokenIsExpired:
			return ErrTokenIsExpired
		case app.MsgTokenIsExpiredOrInvalid, app.MsgMalformedAuthorization:
			return ErrTokenIsExpiredOrInvalid
		}

	case errors.Is(err, adapter.ErrForbidden):
		switch msg {
		case app.MsgNotAllowedToUpdateProduct:
			return ErrNotAllowedToUpdateProduct
		case app.MsgNotAllowedToDeleteProduct:
			return ErrNotAllowedToDeleteProduct
		}

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgProductNotFound:
			return ErrProductNotFound
		case app.MsgFavoriteNotFound:
			return ErrFavoriteNotFound
		}

	case errors.Is(err, adapter.ErrConflict):
		switch msg {
		case app.MsgUserAlreadyExists:
			return ErrUserAlreadyExists
		case app.MsgFavoriteAlreadyExists:
			return ErrFavoriteAlreadyExists
		}

	case errors.Is(err, adapter.ErrTooManyRequests):
		return ErrTooManyRequests

	case errors.Is(err, adapter.ErrServiceUnavailable):
		return ErrServerUnavailable

	case errors.Is(err, adapter.ErrInternalServerError):
		return ErrUnexpectedServerFail
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}
