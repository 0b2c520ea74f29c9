package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into self-describing adaptive
// hashes and checks candidates against them.
//
// Implementations must be safe for concurrent use.
type PasswordHasher interface {
	// Hash generates a fresh salt and returns the encoded hash of password
	// (cost, salt and digest in one string). Failures wrap
	// [ErrHashingFailed] and never include the password itself.
	Hash(password string) (string, error)

	// Compare reports whether candidate matches hash. A mismatch is
	// (false, nil); a malformed hash or any other failure of the underlying
	// primitive is returned as an error wrapping [ErrComparisonFailed].
	Compare(hash, candidate string) (bool, error)

	// IsHash reports whether value already looks like a hash produced by
	// this hasher.
	IsHash(value string) bool
}
