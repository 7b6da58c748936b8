// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/internal/service"
	"github.com/MKhiriev/go-marketplace/internal/store"
)

func main() {
	log := logger.NewLogger("go-marketplace-seed")
	cfg, err := config.GetSeedConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	report, err := service.NewSeedService(storages, cfg.App, log).Seed(ctx)
	if err != nil {
		log.Error().Err(err).Msg("seeding failed")
		return
	}

	fmt.Println("Database seeded successfully")
	fmt.Printf("Products: %d, favorites: %d\n", report.Products, report.Favorites)
	fmt.Println("Demo accounts:")
	for _, u := range report.Users {
		fmt.Printf("  %s / %s (%s)\n", u.Email, service.DemoPassword, u.Username)
	}
}
