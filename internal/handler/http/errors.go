// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"

	"github.com/MKhiriev/go-marketplace/internal/app"
)

// Sentinel errors raised by the transport layer itself. Their text is
// written to the response body unchanged.
var (
	// ErrInvalidRequestBody is returned when the body is not valid JSON.
	ErrInvalidRequestBody = errors.New(app.MsgInvalidRequestBody)

	// ErrNoToken is returned by the auth middleware when the request carries
	// no "Authorization" header at all.
	ErrNoToken = errors.New(app.MsgNoToken)

	// ErrMalformedAuthorization is returned when the "Authorization" header
	// is not of the form "Bearer <token>".
	ErrMalformedAuthorization = errors.New(app.MsgMalformedAuthorization)

	// ErrRouteNotFound is returned for unmatched paths and methods.
	ErrRouteNotFound = errors.New(app.MsgRouteNotFound)
)
