// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/models"
)

type favoriteService struct {
	favoriteRepository store.FavoriteRepository
	productRepository  store.ProductRepository

	logger *logger.Logger
}

func NewFavoriteService(favoriteRepository store.FavoriteRepository, productRepository store.ProductRepository, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		productRepository:  productRepository,
		logger:             logger,
	}
}

// ListFavorites returns the user's favorites, most recently added first.
func (f *favoriteService) ListFavorites(ctx context.Context, userID int64, page, limit int) (models.FavoritePage, error) {
	req := models.NewPageRequest(page, limit, models.DefaultFavoritesLimit)

	favorites, total, err := f.favoriteRepository.ListFavorites(ctx, userID, req)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*favoriteService.ListFavorites").Int64("user_id", userID).Msg("listing favorites failed")
		return models.FavoritePage{}, fmt.Errorf("listing favorites failed: %w", err)
	}

	return models.FavoritePage{
		Favorites:  favorites,
		Pagination: models.NewPagination(req, total),
	}, nil
}

// AddFavorite saves productID for userID.
//
// Returns ErrProductNotFound for unknown products and ErrFavoriteAlreadyExists
// for duplicates. A product deleted between the existence check and the
// insert is reported by the foreign key as not found.
func (f *favoriteService) AddFavorite(ctx context.Context, userID, productID int64) error {
	log := logger.FromContext(ctx)

	exists, err := f.productRepository.ProductExists(ctx, productID)
	if err != nil {
		log.Err(err).Str("func", "*favoriteService.AddFavorite").Int64("product_id", productID).Msg("product existence check failed")
		return fmt.Errorf("product existence check failed: %w", err)
	}
	if !exists {
		return ErrProductNotFound
	}

	if err = f.favoriteRepository.AddFavorite(ctx, userID, productID); err != nil {
		switch {
		case errors.Is(err, store.ErrFavoriteAlreadyExists):
			return ErrFavoriteAlreadyExists
		case errors.Is(err, store.ErrProductNotFound):
			return ErrProductNotFound
		}
		log.Err(err).Str("func", "*favoriteService.AddFavorite").Int64("product_id", productID).Msg("adding favorite failed")
		return fmt.Errorf("adding favorite failed: %w", err)
	}

	return nil
}

func (f *favoriteService) RemoveFavorite(ctx context.Context, userID, productID int64) error {
	if err := f.favoriteRepository.RemoveFavorite(ctx, userID, productID); err != nil {
		if errors.Is(err, store.ErrFavoriteNotFound) {
			return ErrFavoriteNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*favoriteService.RemoveFavorite").Int64("product_id", productID).Msg("removing favorite failed")
		return fmt.Errorf("removing favorite failed: %w", err)
	}

	return nil
}
