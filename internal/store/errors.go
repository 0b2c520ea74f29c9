package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an insert or update would give
	// two users the same email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a statement fails in the database.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when iterating over a multi-row result
	// fails.
	ErrScanningRows = errors.New("failed to scan user rows")

	// ErrUnknownField is returned when a projection names a field the users
	// table does not have.
	ErrUnknownField = errors.New("unknown user field")
)
