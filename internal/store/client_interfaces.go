package store

import (
	"context"

	"github.com/MKhiriev/go-marketplace/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionStore keeps the client's bearer token between invocations.
type SessionStore interface {
	// Load returns ErrLocalSessionNotFound when nothing was saved.
	Load(ctx context.Context) (models.Session, error)
	Save(ctx context.Context, session models.Session) error
	Clear(ctx context.Context) error
}

// ProductCache holds product reads on the client. Every mutating call must
// be followed by an explicit invalidation.
type ProductCache interface {
	GetList(key string) (models.ProductPage, bool)
	SetList(key string, page models.ProductPage)
	GetProduct(id int64) (models.Product, bool)
	SetProduct(product models.Product)
	InvalidateProduct(id int64)
	InvalidateAll()
}
