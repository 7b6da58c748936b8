package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-marketplace/internal/config"
	"github.com/MKhiriev/go-marketplace/internal/logger"
	"github.com/MKhiriev/go-marketplace/migrations"
)

// timeNow is the clock used for created_at and updated_at values.
var timeNow = func() time.Time {
	return time.Now().UTC()
}

// DB wraps a *sql.DB with the dialect specific pieces every repository
// needs: an error classifier and a squirrel statement builder using the
// right placeholder format.
type DB struct {
	*sql.DB
	dialect            string
	errorClassificator ErrorClassificator
	builder            squirrel.StatementBuilderType
	logger             *logger.Logger
}

// NewConnect opens the database selected by cfg.DSN. postgres:// and
// postgresql:// URLs use pgx, everything else is a SQLite path.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch dialectFromDSN(cfg.DSN) {
	case migrations.DialectPostgres:
		return NewConnectPostgres(ctx, cfg, log)
	case migrations.DialectSQLite:
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, cfg.DSN)
	}
}

func dialectFromDSN(dsn string) string {
	dsn = strings.TrimSpace(dsn)
	switch {
	case dsn == "":
		return ""
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		return migrations.DialectPostgres
	default:
		return migrations.DialectSQLite
	}
}

// Dialect returns the migrations dialect of the connection.
func (db *DB) Dialect() string {
	return db.dialect
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// Ping checks that the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	return db.PingContext(ctx)
}

// Reset removes every row from the marketplace tables and restarts the
// identifier sequences. It is used by the demo data seeder.
func (db *DB) Reset(ctx context.Context) error {
	log := logger.FromContext(ctx)

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*DB.Reset").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, stmt := range resetStatements(db.dialect) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			log.Err(err).Str("func", "*DB.Reset").Str("statement", stmt).Msg("failed to reset table")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Err(err).Str("func", "*DB.Reset").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func resetStatements(dialect string) []string {
	if dialect == migrations.DialectPostgres {
		return []string{truncateAllPostgres}
	}
	return []string{
		deleteAllFavorites,
		deleteAllProducts,
		deleteAllUsers,
		resetSQLiteSequences,
	}
}

// classify returns the classification of err for the connection's dialect.
func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return Unclassified
	}
	return db.errorClassificator.Classify(err)
}
