package service

import (
	"context"

	"github.com/MKhiriev/go-marketplace/internal/adapter"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/models"
)

type clientProductService struct {
	cache   store.ProductCache
	adapter adapter.ServerAdapter
}

func NewClientProductService(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter) ClientProductService {
	return &clientProductService{cache: localStore.Cache, adapter: serverAdapter}
}

func (p *clientProductService) ListProducts(ctx context.Context, filter models.ProductFilter) (models.ProductPage, error) {
	key := filter.Key()
	if page, ok := p.cache.GetList(key); ok {
		return page, nil
	}

	page, err := p.adapter.ListProducts(ctx, filter)
	if err != nil {
		return models.ProductPage{}, mapAdapterError(err)
	}

	p.cache.SetList(key, page)
	return page, nil
}

func (p *clientProductService) GetProduct(ctx context.Context, id int64) (models.Product, error) {
	if product, ok := p.cache.GetProduct(id); ok {
		return product, nil
	}

	product, err := p.adapter.GetProduct(ctx, id)
	if err != nil {
		return models.Product{}, mapAdapterError(err)
	}

	p.cache.SetProduct(product)
	return product, nil
}

func (p *clientProductService) CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error) {
	product, err := p.adapter.CreateProduct(ctx, input)
	if err != nil {
		return models.Product{}, mapAdapterError(err)
	}

	// a new product can land on any cached listing page
	p.cache.InvalidateProduct(product.ID)
	return product, nil
}

func (p *clientProductService) UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) (models.Product, error) {
	product, err := p.adapter.UpdateProduct(ctx, id, update)
	if err != nil {
		return models.Product{}, mapAdapterError(err)
	}

	p.cache.InvalidateProduct(id)
	p.cache.SetProduct(product)
	return product, nil
}

func (p *clientProductService) DeleteProduct(ctx context.Context, id int64) error {
	if err := p.adapter.DeleteProduct(ctx, id); err != nil {
		return mapAdapterError(err)
	}

	p.cache.InvalidateProduct(id)
	return nil
}
