// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost is the bcrypt work factor used when none is configured.
const DefaultCost = 10

// bcryptHasher is the bcrypt implementation of [PasswordHasher].
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a [PasswordHasher] using bcrypt with the given
// work factor. A zero cost selects [DefaultCost].
func NewBcryptHasher(cost int) (PasswordHasher, error) {
	if cost == 0 {
		cost = DefaultCost
	}
	if err := ValidateCost(cost); err != nil {
		return nil, err
	}

	return &bcryptHasher{cost: cost}, nil
}

// ValidateCost checks that cost is within bcrypt.MinCost..bcrypt.MaxCost.
func ValidateCost(cost int) error {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return fmt.Errorf("%w: %d (allowed %d..%d)", ErrInvalidCost, cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

// Hash implements [PasswordHasher]. bcrypt draws a 16-byte salt from
// crypto/rand and encodes it together with the cost and the digest.
func (b *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password exceeds 72 bytes", ErrHashingFailed)
		}
		return "", fmt.Errorf("%w: %w", ErrHashingFailed, err)
	}

	return string(hash), nil
}

// Compare implements [PasswordHasher].
func (b *bcryptHasher) Compare(hash, candidate string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %w", ErrComparisonFailed, err)
	}
}

// IsHash implements [PasswordHasher] by checking that value parses as a
// bcrypt hash.
func (b *bcryptHasher) IsHash(value string) bool {
	_, err := bcrypt.Cost([]byte(value))
	return err == nil
}

// Cost returns the work factor encoded in a bcrypt hash.
func Cost(hash string) (int, error) {
	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrComparisonFailed, err)
	}
	return cost, nil
}
