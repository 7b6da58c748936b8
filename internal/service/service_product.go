// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/models"
)

type productService struct {
	productRepository store.ProductRepository

	logger *logger.Logger
}

func NewProductService(productRepository store.ProductRepository, logger *logger.Logger) ProductService {
	return &productService{
		productRepository: productRepository,
		logger:            logger,
	}
}

// ListProducts normalizes filter and returns the matching page. viewerID 0
// lists anonymously and no product is flagged as favorited.
func (p *productService) ListProducts(ctx context.Context, filter models.ProductFilter, viewerID int64) (models.ProductPage, error) {
	query := newProductQuery(filter, viewerID)

	products, total, err := p.productRepository.ListProducts(ctx, query)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*productService.ListProducts").Msg("listing products failed")
		return models.ProductPage{}, fmt.Errorf("listing products failed: %w", err)
	}

	return models.ProductPage{
		Products:   products,
		Pagination: models.NewPagination(query.PageRequest, total),
	}, nil
}

func (p *productService) GetProduct(ctx context.Context, id, viewerID int64) (models.Product, error) {
	product, err := p.productRepository.GetProduct(ctx, id, viewerID)
	if err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			return models.Product{}, ErrProductNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*productService.GetProduct").Int64("id", id).Msg("getting product failed")
		return models.Product{}, fmt.Errorf("getting product failed: %w", err)
	}

	return product, nil
}

// CreateProduct stores a validated input. input.SellerID must be the
// authenticated user.
func (p *productService) CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error) {
	product, err := p.productRepository.CreateProduct(ctx, input)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*productService.CreateProduct").
			Int64("seller_id", input.SellerID).
			Msg("product creation failed")
		return models.Product{}, fmt.Errorf("product creation failed: %w", err)
	}

	return product, nil
}

// UpdateProduct applies update to the product when userID is its seller.
//
// Returns ErrProductNotFound or ErrNotAllowedToUpdateProduct before anything
// is written.
func (p *productService) UpdateProduct(ctx context.Context, userID, id int64, update models.ProductUpdate) (models.Product, error) {
	log := logger.FromContext(ctx)

	if err := p.checkOwnership(ctx, userID, id, ErrNotAllowedToUpdateProduct); err != nil {
		return models.Product{}, err
	}

	if err := p.productRepository.UpdateProduct(ctx, id, update); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			return models.Product{}, ErrProductNotFound
		}
		log.Err(err).Str("func", "*productService.UpdateProduct").Int64("id", id).Msg("product update failed")
		return models.Product{}, fmt.Errorf("product update failed: %w", err)
	}

	return p.GetProduct(ctx, id, userID)
}

// DeleteProduct removes the product and its favorites when userID is its
// seller.
func (p *productService) DeleteProduct(ctx context.Context, userID, id int64) error {
	if err := p.checkOwnership(ctx, userID, id, ErrNotAllowedToDeleteProduct); err != nil {
		return err
	}

	if err := p.productRepository.DeleteProduct(ctx, id); err != nil {
		if errors.Is(err, store.ErrProductNotFound) {
			return ErrProductNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*productService.DeleteProduct").Int64("id", id).Msg("product deletion failed")
		return fmt.Errorf("product deletion failed: %w", err)
	}

	return nil
}

func (p *productService) checkOwnership(ctx context.Context, userID, id int64, notAllowed error) error {
	product, err := p.GetProduct(ctx, id, 0)
	if err != nil {
		return err
	}

	if !product.IsOwnedBy(userID) {
		logger.FromContext(ctx).Warn().
			Int64("id", id).
			Int64("user_id", userID).
			Msg("user is not the seller of the product")
		return notAllowed
	}

	return nil
}

// newProductQuery turns raw listing parameters into a normalized query.
// Unknown sort columns fall back to created_at and only "asc" (in any case)
// sorts ascending.
func newProductQuery(filter models.ProductFilter, viewerID int64) models.ProductQuery {
	query := models.ProductQuery{
		PageRequest: models.NewPageRequest(filter.Page, filter.Limit, models.DefaultProductsLimit),
		Search:      strings.TrimSpace(filter.Search),
		Category:    strings.TrimSpace(filter.Category),
		SortBy:      models.SortByCreatedAt,
		Order:       models.OrderDesc,
		ViewerID:    viewerID,
	}

	switch filter.SortBy {
	case models.SortByTitle, models.SortByPrice, models.SortByCreatedAt:
		query.SortBy = filter.SortBy
	}

	if strings.EqualFold(filter.Order, models.OrderAsc) {
		query.Order = models.OrderAsc
	}

	return query
}
