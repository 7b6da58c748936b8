package service

import (
	"github.com/MKhiriev/go-marketplace/internal/adapter"
	"github.com/MKhiriev/go-marketplace/internal/store"
)

type ClientServices struct {
	AuthService     ClientAuthService
	ProductService  ClientProductService
	FavoriteService ClientFavoriteService
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter) *ClientServices {
	return &ClientServices{
		AuthService:     NewClientAuthService(localStore, serverAdapter),
		ProductService:  NewClientProductService(localStore, serverAdapter),
		FavoriteService: NewClientFavoriteService(localStore, serverAdapter),
	}
}
