package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/store"
	"github.com/MKhiriev/go-marketplace/internal/utils"
	"github.com/MKhiriev/go-marketplace/models"
)

type seedService struct {
	storages         *store.Storages
	passwordHashCost int

	logger *logger.Logger
}

func NewSeedService(storages *store.Storages, cfg config.App, logger *logger.Logger) SeedService {
	return &seedService{
		storages:         storages,
		passwordHashCost: cfg.PasswordHashCost,
		logger:           logger,
	}
}

// Seed wipes every table and inserts the demo users, products and
// favorites. All demo accounts share the same password.
func (s *seedService) Seed(ctx context.Context) (models.SeedReport, error) {
	if err := s.storages.Maintenance.Reset(ctx); err != nil {
		return models.SeedReport{}, fmt.Errorf("resetting storage failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(DemoPassword, s.passwordHashCost)
	if err != nil {
		return models.SeedReport{}, fmt.Errorf("hashing demo password failed: %w", err)
	}

	var report models.SeedReport

	users := make([]models.User, 0, len(demoUsers))
	for _, u := range demoUsers {
		user, err := s.storages.UserRepository.CreateUser(ctx, models.User{
			Username:     u.username,
			Email:        u.email,
			PasswordHash: passwordHash,
		})
		if err != nil {
			return report, fmt.Errorf("creating user %s failed: %w", u.username, err)
		}
		users = append(users, user)
		report.Users = append(report.Users, user.Identity())
		s.logger.Info().Str("username", user.Username).Str("email", user.Email).Msg("created user")
	}

	products := make([]models.Product, 0, len(demoProducts))
	for _, p := range demoProducts {
		input := p.input
		input.SellerID = users[p.seller].ID

		product, err := s.storages.ProductRepository.CreateProduct(ctx, input)
		if err != nil {
			return report, fmt.Errorf("creating product %q failed: %w", input.Title, err)
		}
		products = append(products, product)
		report.Products++
		s.logger.Debug().Int64("id", product.ID).Str("title", product.Title).Msg("created product")
	}

	for _, f := range demoFavorites {
		userID, productID := users[f.user].ID, products[f.product].ID
		if err := s.storages.FavoriteRepository.AddFavorite(ctx, userID, productID); err != nil {
			return report, fmt.Errorf("adding favorite (%d, %d) failed: %w", userID, productID, err)
		}
		report.Favorites++
	}

	s.logger.Info().
		Int("users", len(report.Users)).
		Int("products", report.Products).
		Int("favorites", report.Favorites).
		Msg("database seeded")

	return report, nil
}
