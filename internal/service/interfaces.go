package service

import (
	"context"

	"github.com/MKhiriev/go-marketplace/models"
)

type AuthService interface {
	Register(ctx context.Context, req models.RegisterRequest) (models.AuthResponse, error)
	Login(ctx context.Context, req models.LoginRequest) (models.AuthResponse, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProductService implements the product catalogue. Mutations are allowed to
// the product's seller only.
type ProductService interface {
	ListProducts(ctx context.Context, filter models.ProductFilter, viewerID int64) (models.ProductPage, error)
	GetProduct(ctx context.Context, id, viewerID int64) (models.Product, error)
	CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error)
	UpdateProduct(ctx context.Context, userID, id int64, update models.ProductUpdate) (models.Product, error)
	DeleteProduct(ctx context.Context, userID, id int64) error
}

type FavoriteService interface {
	ListFavorites(ctx context.Context, userID int64, page, limit int) (models.FavoritePage, error)
	AddFavorite(ctx context.Context, userID, productID int64) error
	RemoveFavorite(ctx context.Context, userID, productID int64) error
}

// AppInfoService reports build information and readiness of the server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string

	// Ping returns ErrStorageUnavailable when the database cannot be reached.
	Ping(ctx context.Context) error
}

// SeedService replaces the stored data with the demo data set.
type SeedService interface {
	Seed(ctx context.Context) (models.SeedReport, error)
}
