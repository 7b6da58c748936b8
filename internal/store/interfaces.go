package store

import (
	"context"

	"github.com/MKhiriev/go-marketplace/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists marketplace accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with ID and CreatedAt set.
	// A duplicate username or email yields ErrUserAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByEmail returns ErrNoUserWasFound when no account matches.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)

	// ExistsByEmailOrUsername reports whether either value is taken.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
}

// ProductRepository persists product listings.
type ProductRepository interface {
	// ListProducts returns one page of products matching query and the
	// total number of matching rows.
	ListProducts(ctx context.Context, query models.ProductQuery) ([]models.Product, int64, error)

	// GetProduct returns ErrProductNotFound when id does not exist.
	// IsFavorited is resolved for viewerID (0 for anonymous).
	GetProduct(ctx context.Context, id, viewerID int64) (models.Product, error)

	ProductExists(ctx context.Context, id int64) (bool, error)

	// CreateProduct inserts input and returns the stored product.
	CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error)

	// UpdateProduct writes the present fields of update.
	UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) error

	// DeleteProduct removes the product and, by cascade, its favorites.
	DeleteProduct(ctx context.Context, id int64) error
}

// FavoriteRepository persists the user to product favorite relation.
type FavoriteRepository interface {
	// ListFavorites returns one page of userID's favorites, most recent
	// first, and the total number of favorites.
	ListFavorites(ctx context.Context, userID int64, page models.PageRequest) ([]models.Product, int64, error)

	// AddFavorite yields ErrFavoriteAlreadyExists for a duplicate pair and
	// ErrProductNotFound when the product vanished.
	AddFavorite(ctx context.Context, userID, productID int64) error

	// RemoveFavorite yields ErrFavoriteNotFound when the pair is absent.
	RemoveFavorite(ctx context.Context, userID, productID int64) error
}

// Maintenance covers database level operations outside any repository.
type Maintenance interface {
	Ping(ctx context.Context) error
	Reset(ctx context.Context) error
}
