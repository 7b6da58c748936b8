// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the marketplace API.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation built on resty ([NewHTTPServerAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401). The
// server's error message is kept in the wrapped error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-marketplace/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the marketplace
// API. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token that will be attached to all subsequent
	// requests. An empty token makes subsequent requests anonymous.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Register creates an account. On success the returned token is stored
	// via SetToken.
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)

	// Login authenticates by email and password. On success the returned
	// token is stored via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)

	// ListProducts fetches one page of products. With a token set, products
	// carry the caller's favorite flag.
	ListProducts(ctx context.Context, filter models.ProductFilter) (models.ProductPage, error)

	// GetProduct fetches a single product. Returns [ErrNotFound] (wrapped)
	// for unknown ids.
	GetProduct(ctx context.Context, id int64) (models.Product, error)

	CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error)

	// UpdateProduct sends only the fields set in update. Returns
	// [ErrForbidden] (wrapped) when the caller is not the seller.
	UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error)

	DeleteProduct(ctx context.Context, id int64) error

	ListFavorites(ctx context.Context, page models.PageRequest) (models.FavoritePage, error)

	// AddFavorite returns [ErrConflict] (wrapped) when the product is already
	// a favorite.
	AddFavorite(ctx context.Context, productID int64) error

	RemoveFavorite(ctx context.Context, productID int64) error
}
