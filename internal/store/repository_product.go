package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/models"
)

// productRepository is the SQL implementation of [ProductRepository] over
// the "products" table.
type productRepository struct {
	*DB
	logger *logger.Logger
}

// NewProductRepository constructs a [ProductRepository] backed by db.
func NewProductRepository(db *DB, logger *logger.Logger) ProductRepository {
	logger.Debug().Msg("creating product repository")
	return &productRepository{
		DB:     db,
		logger: logger,
	}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanProduct reads the productColumns projection followed by extra.
func scanProduct(row rowScanner, extra ...any) (models.Product, error) {
	var (
		product    models.Product
		sellerID   sql.NullInt64
		sellerName sql.NullString
	)

	dest := []any{
		&product.ID,
		&product.Title,
		&product.Description,
		&product.Price,
		&product.Image,
		&product.Category,
		&sellerID,
		&sellerName,
		&product.CreatedAt,
		&product.UpdatedAt,
	}

	if err := row.Scan(append(dest, extra...)...); err != nil {
		return models.Product{}, err
	}

	if sellerID.Valid {
		product.SellerID = &sellerID.Int64
	}
	if sellerName.Valid {
		product.SellerName = &sellerName.String
	}

	return product, nil
}

// ListProducts runs the count and the page query of a listing.
func (p *productRepository) ListProducts(ctx context.Context, q models.ProductQuery) ([]models.Product, int64, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountProductsQuery(p.builder, q)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("failed to build count query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = p.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("failed to count products")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	products := make([]models.Product, 0, q.Limit)
	if total == 0 {
		return products, 0, nil
	}

	query, args, err := buildListProductsQuery(p.builder, q)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("failed to build query")
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := p.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("failed to execute query for listing products")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var favorited bool
		product, err := scanProduct(rows, &favorited)
		if err != nil {
			log.Err(err).Str("func", "*productRepository.ListProducts").Msg("failed to scan product row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		product.IsFavorited = favorited
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*productRepository.ListProducts").Msg("error iterating product rows")
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return products, total, nil
}

// GetProduct returns a single product with the favorite flag for viewerID.
func (p *productRepository) GetProduct(ctx context.Context, id, viewerID int64) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetProductQuery(p.builder, id, viewerID)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.GetProduct").Msg("failed to build query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var favorited bool
	product, err := scanProduct(p.QueryRowContext(ctx, query, args...), &favorited)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Product{}, ErrProductNotFound
		}

		log.Err(err).Str("func", "*productRepository.GetProduct").Int64("product_id", id).Msg("failed to scan product row")
		return models.Product{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	product.IsFavorited = favorited

	return product, nil
}

func (p *productRepository) ProductExists(ctx context.Context, id int64) (bool, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildProductExistsQuery(p.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.ProductExists").Msg("failed to build query")
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found int
	if err = p.QueryRowContext(ctx, query, args...).Scan(&found); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		log.Err(err).Str("func", "*productRepository.ProductExists").Int64("product_id", id).Msg("failed to query product")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

// CreateProduct inserts a product and reads it back with the seller name.
func (p *productRepository) CreateProduct(ctx context.Context, input models.ProductInput) (models.Product, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateProductQuery(p.builder, input, timeNow())
	if err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Msg("failed to build query")
		return models.Product{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var id int64
	if err = p.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		log.Err(err).Str("func", "*productRepository.CreateProduct").Int64("seller_id", input.SellerID).Msg("failed to insert product")
		return models.Product{}, p.mutationError(err)
	}

	return p.GetProduct(ctx, id, input.SellerID)
}

// UpdateProduct applies update to product id.
func (p *productRepository) UpdateProduct(ctx context.Context, id int64, update models.ProductUpdate) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateProductQuery(p.builder, id, update, timeNow())
	if err != nil {
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.UpdateProduct").Int64("product_id", id).Msg("failed to update product")
		return p.mutationError(err)
	}

	return requireAffected(result, ErrProductNotFound)
}

// DeleteProduct removes product id.
func (p *productRepository) DeleteProduct(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteProductQuery(p.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.DeleteProduct").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := p.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*productRepository.DeleteProduct").Int64("product_id", id).Msg("failed to delete product")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return requireAffected(result, ErrProductNotFound)
}

// mutationError translates constraint failures of product writes.
func (p *productRepository) mutationError(err error) error {
	switch p.classify(err) {
	case CheckViolation:
		return fmt.Errorf("%w: %w", ErrConstraintViolation, err)
	case ForeignKeyViolation:
		return fmt.Errorf("%w: seller does not exist: %w", ErrConstraintViolation, err)
	default:
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
}

// requireAffected returns notFound when result reports zero affected rows.
func requireAffected(result sql.Result, notFound error) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return notFound
	}
	return nil
}
