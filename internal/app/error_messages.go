// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// marketplace server handlers, services and the API client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or log entries to describe the outcome of an operation.
// Keeping them in one place ensures consistent wording throughout the API and
// lets the client map response bodies back to typed errors.
package app

const (
	// MsgInvalidRequestBody is returned when the request body cannot be
	// decoded as JSON.
	MsgInvalidRequestBody = "Invalid request body"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "Internal server error"

	// MsgRouteNotFound is returned for unmatched routes and methods.
	MsgRouteNotFound = "Route not found"

	// MsgUserAlreadyExists is returned when registration hits an existing
	// username or email.
	MsgUserAlreadyExists = "User already exists with this email or username"

	// MsgInvalidCredentials is returned for any failed login. It never tells
	// an unknown email apart from a wrong password.
	MsgInvalidCredentials = "Invalid email or password"

	// MsgNoToken is returned when an auth-required route is called without
	// an Authorization header.
	MsgNoToken = "Access denied. No token provided."

	// MsgMalformedAuthorization is returned when the Authorization header is
	// not of the form "Bearer <token>".
	MsgMalformedAuthorization = "Invalid authorization header"

	// MsgTokenIsExpired is returned when a JWT bearer token is syntactically
	// valid but its expiry time has passed.
	MsgTokenIsExpired = "Token is expired"

	// MsgTokenIsExpiredOrInvalid is returned when a JWT bearer token cannot
	// be verified (e.g. wrong signature or issuer).
	MsgTokenIsExpiredOrInvalid = "Invalid or expired token"

	// MsgProductNotFound is returned when the addressed product does not exist.
	MsgProductNotFound = "Product not found"

	// MsgNotAllowedToUpdateProduct is returned when a non-owner updates a product.
	MsgNotAllowedToUpdateProduct = "Not authorized to update this product"

	// MsgNotAllowedToDeleteProduct is returned when a non-owner deletes a product.
	MsgNotAllowedToDeleteProduct = "Not authorized to delete this product"

	// MsgFavoriteAlreadyExists is returned when a product is favorited twice.
	MsgFavoriteAlreadyExists = "Product already in favorites"

	// MsgFavoriteNotFound is returned when removing a favorite that does not exist.
	MsgFavoriteNotFound = "Favorite not found"
)

// Success messages.
const (
	MsgUserRegistered       = "User registered successfully"
	MsgLoginSuccessful      = "Login successful"
	MsgProductDeleted       = "Product deleted successfully"
	MsgAddedToFavorites     = "Added to favorites"
	MsgRemovedFromFavorites = "Removed from favorites"
	MsgAPIIsRunning         = "Micro Marketplace API is running"
)
