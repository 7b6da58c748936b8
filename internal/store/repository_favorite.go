package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/models"
)

// favoriteRepository is the SQL implementation of [FavoriteRepository]
// over the "favorites" table.
type favoriteRepository struct {
	*DB
	logger *logger.Logger
}

// NewFavoriteRepository constructs a [FavoriteRepository] backed by db.
func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{
		DB:     db,
		logger: logger,
	}
}

// ListFavorites returns a page of favorited products, each flagged as
// favorited and carrying the favorite creation time.
func (f *favoriteRepository) ListFavorites(ctx context.Context, userID int64, page models.PageRequest) ([]models.Product, int64, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountFavoritesQuery(f.builder, userID)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.ListFavorites").Msg("failed to build count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = f.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*favoriteRepository.ListFavorites").Int64("user_id", userID).Msg("failed to count favorites")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	favorites := make([]models.Product, 0, page.Limit)
	if total == 0 {
		return favorites, 0, nil
	}

	query, args, err := buildListFavoritesQuery(f.builder, userID, page)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.ListFavorites").Msg("failed to build query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := f.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.ListFavorites").Int64("user_id", userID).Msg("failed to execute query for listing favorites")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var favoritedAt sql.NullTime
		product, err := scanProduct(rows, &favoritedAt)
		if err != nil {
			log.Err(err).Str("func", "*favoriteRepository.ListFavorites").Msg("failed to scan favorite row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		product.IsFavorited = true
		if favoritedAt.Valid {
			product.FavoritedAt = &favoritedAt.Time
		}
		favorites = append(favorites, product)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*favoriteRepository.ListFavorites").Msg("error iterating favorite rows")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return favorites, total, nil
}

// AddFavorite inserts the (userID, productID) pair.
func (f *favoriteRepository) AddFavorite(ctx context.Context, userID, productID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildAddFavoriteQuery(f.builder, userID, productID, timeNow())
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.AddFavorite").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = f.ExecContext(ctx, query, args...); err != nil {
		switch f.classify(err) {
		case UniqueViolation:
			return ErrFavoriteAlreadyExists
		case ForeignKeyViolation:
			return ErrProductNotFound
		}

		log.Err(err).
			Str("func", "*favoriteRepository.AddFavorite").
			Int64("user_id", userID).
			Int64("product_id", productID).
			Msg("failed to insert favorite")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// RemoveFavorite deletes the (userID, productID) pair.
func (f *favoriteRepository) RemoveFavorite(ctx context.Context, userID, productID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildRemoveFavoriteQuery(f.builder, userID, productID)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.RemoveFavorite").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := f.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*favoriteRepository.RemoveFavorite").
			Int64("user_id", userID).
			Int64("product_id", productID).
			Msg("failed to delete favorite")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result, ErrFavoriteNotFound)
}
