package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
)

// Storages groups every server-side repository so it can be handed to the
// service layer as one value.
type Storages struct {
	UserRepository     UserRepository
	ProductRepository  ProductRepository
	FavoriteRepository FavoriteRepository
	Maintenance        Maintenance

	db *DB
}

// NewStorages connects to the configured database, applies the migrations
// and wires the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnect(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return NewStoragesFromDB(db, logger), nil
}

// NewStoragesFromDB wires the repositories over an already migrated db.
func NewStoragesFromDB(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:     NewUserRepository(db, logger),
		ProductRepository:  NewProductRepository(db, logger),
		FavoriteRepository: NewFavoriteRepository(db, logger),
		Maintenance:        db,
		db:                 db,
	}
}

// Close releases the database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
