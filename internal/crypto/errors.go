package crypto

import "errors"

var (
	// ErrHashingFailed is returned when salt generation or hashing fails.
	ErrHashingFailed = errors.New("password hashing failed")

	// ErrComparisonFailed is returned when a stored hash cannot be compared
	// against a candidate, e.g. because the hash is malformed.
	ErrComparisonFailed = errors.New("password comparison failed")

	// ErrInvalidCost is returned by [ValidateCost] for a work factor outside
	// the range accepted by bcrypt.
	ErrInvalidCost = errors.New("invalid bcrypt cost")
)
