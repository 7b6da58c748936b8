package service

import (
	"context"

	"github.com/MKhiriev/go-marketplace/internal/adapter"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/models"
)

type clientFavoriteService struct {
	cache   store.ProductCache
	adapter adapter.ServerAdapter
}

func NewClientFavoriteService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter) ClientFavoriteService {
	return &clientFavoriteService{cache: localStore.Cache, adapter: serverAdapter}
}

func (f *clientFavoriteService) ListFavorites(ctx context.Context, page models.PageRequest) (models.FavoritePage, error) {
	favorites, err := f.adapter.ListFavorites(ctx, page)
	if err != nil {
		return models.FavoritePage{}, mapAdapterError(err)
	}

	return favorites, nil
}

func (f *clientFavoriteService) AddFavorite(ctx context.Context, productID int64) error {
	if err := f.adapter.AddFavorite(ctx, productID); err != nil {
		return mapAdapterError(err)
	}

	f.cache.InvalidateProduct(productID)
	return nil
}

func (f *clientFavoriteService) RemoveFavorite(ctx context.Context, productID int64) error {
	if err := f.adapter.RemoveFavorite(ctx, productID); err != nil {
		return mapAdapterError(err)
	}

	f.cache.InvalidateProduct(productID)
	return nil
}
