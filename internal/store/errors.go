package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrUserAlreadyExists is returned when a registration collides with an
	// existing login or email.
	ErrUserAlreadyExists = errors.New("user with this login or email already exists")

	// ErrDBNotConfigured is returned when the connection URL or the
	// service-role credential is missing.
	ErrDBNotConfigured = errors.New("database is not configured")

	// ErrDBUnreachable is returned when the database is configured but a
	// connection cannot be established or was lost mid-query.
	ErrDBUnreachable = errors.New("database is unreachable")

	// ErrLeadStoreNotConfigured is returned when writing to the lead
	// aggregation store while no store URL is set.
	ErrLeadStoreNotConfigured = errors.New("lead store is not configured")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails.
	ErrScanningRows = errors.New("failed to scan rows")
)
