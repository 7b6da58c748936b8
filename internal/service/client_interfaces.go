package service

import (
	"context"

	"github.com/MKhiriev/go-marketplace/models"
)

// ClientAuthService defines the client-side contract for account management
// and for the session that survives between CLI invocations.
type ClientAuthService interface {
	// Register creates a new account on the server, persists the returned
	// token as the local session and drops every cached read.
	Register(ctx context.Context, req models.RegisterRequest) (models.Identity, error)

	// Login authenticates against the server and replaces the local session.
	// Cached reads carry the previous viewer's favorite flags, so the cache
	// is flushed as well.
	Login(ctx context.Context, req models.LoginRequest) (models.Identity, error)

	// Logout removes the local session and forgets the token. It succeeds
	// when nobody is logged in.
	Logout(ctx context.Context) error

	// Restore loads the saved session and attaches its token to the adapter.
	// Returns ErrNotLoggedIn when no session was saved.
	Restore(ctx context.Context) (models.Session, error)
}

// ClientProductService defines the client-side contract for browsing and
// managing products. Reads go through the product cache; every successful
// mutation invalidates it.
type ClientProductService interface {
	ListProducts(ctx context.Context, filter models.ProductFilter) (models.ProductPage, error)
	GetProduct(ctx context.Context, id int64) (models.Product, error)
	CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error)
	UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error)
	DeleteProduct(ctx context.Context, id int64) error
}

// ClientFavoriteService defines the client-side contract for the
// authenticated user's favorites.
type ClientFavoriteService interface {
	// ListFavorites is never cached.
	ListFavorites(ctx context.Context, page models.PageRequest) (models.FavoritePage, error)

	// AddFavorite and RemoveFavorite change the favorite flag of the product,
	// so its cached copies are invalidated on success.
	AddFavorite(ctx context.Context, productID int64) error
	RemoveFavorite(ctx context.Context, productID int64) error
}
