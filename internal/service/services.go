package service

import (
	"fmt"

	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/store"
)

type Services struct {
	AppInfoService  AppInfoService
	AuthService     AuthService
	ProductService  ProductService
	FavoriteService FavoriteService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(storages.Maintenance, cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	return &Services{
		AppInfoService:  appInfoService,
		AuthService:     NewAuthService(storages.UserRepository, cfg.App, logger),
		ProductService:  NewProductService(storages.ProductRepository, logger),
		FavoriteService: NewFavoriteService(storages.FavoriteRepository, storages.ProductRepository, logger),
	}, nil
}
