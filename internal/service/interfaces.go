package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-user-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// UserService owns the write pipeline of user records
// (normalize, defaults, validate, hash-if-changed, persist) and the
// password and listing queries built on top of it.
type UserService interface {
	// Create stores a new user. The password is always hashed.
	Create(ctx context.Context, user models.User) (models.User, error)
	// Update overwrites the record with user.UserID. The password is hashed
	// only when it differs from the stored hash; an empty password keeps it.
	Update(ctx context.Context, user models.User) (models.User, error)

	// GetByID and GetByEmail return the default projection plus the hidden
	// fields listed in include.
	GetByID(ctx context.Context, userID int64, include ...models.Field) (models.User, error)
	GetByEmail(ctx context.Context, email string, include ...models.Field) (models.User, error)

	// ComparePassword reports whether candidate matches the stored hash of
	// user. A mismatch is (false, nil); a malformed hash is an error.
	ComparePassword(ctx context.Context, user models.User, candidate string) (bool, error)
	// Authenticate loads the user by email and compares candidate.
	Authenticate(ctx context.Context, email, candidate string) (models.User, error)
	// Verify marks the user holding token as verified.
	Verify(ctx context.Context, token string) (models.User, error)
	// SetLoginAttempts stores the lockout state decided by the caller. A zero
	// blockExpires means "not blocked" and is stored as the current time.
	SetLoginAttempts(ctx context.Context, userID int64, attempts int, blockExpires time.Time) (models.User, error)

	Search(ctx context.Context, query string, page, limit int) (models.Page, error)
	Paginate(ctx context.Context, req models.ListRequest) (models.Page, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
