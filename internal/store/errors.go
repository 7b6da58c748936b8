package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when an INSERT into "users" violates
	// the uniqueness of the username or the email.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrNoUserWasFound is returned when a query expected to match one user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrProductNotFound is returned when the targeted product row does not
	// exist, including foreign key failures referencing a product.
	ErrProductNotFound = errors.New("product was not found")

	// ErrFavoriteAlreadyExists is returned when the (user, product) pair is
	// already present in "favorites".
	ErrFavoriteAlreadyExists = errors.New("favorite already exists")

	// ErrFavoriteNotFound is returned when a DELETE on "favorites" affects
	// no rows.
	ErrFavoriteNotFound = errors.New("favorite was not found")

	// ErrConstraintViolation is returned for CHECK or NOT NULL violations
	// that slipped past request validation.
	ErrConstraintViolation = errors.New("constraint violation")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrUnsupportedDSN is returned when the DSN selects no known driver.
	ErrUnsupportedDSN = errors.New("unsupported database DSN")
)

// Client-side storage errors.
var (
	// ErrLocalSessionNotFound is returned when no session was saved yet.
	ErrLocalSessionNotFound = errors.New("local session not found")
)
