package store

import (
	"context"

	"github.com/MKhiriev/go-user-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository persists user records in the "users" table.
//
// Read methods take the list of fields to load; fields outside the list are
// left zero in the returned record. A nil list means [models.DefaultProjection].
type UserRepository interface {
	// CreateUser inserts user and returns the stored record with every field.
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// UpdateUser overwrites the mutable fields of the record with user.UserID.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByID(ctx context.Context, userID int64, fields []models.Field) (models.User, error)
	FindUserByEmail(ctx context.Context, email string, fields []models.Field) (models.User, error)
	FindUserByVerification(ctx context.Context, token string, fields []models.Field) (models.User, error)
	// ListUsers returns one page of users matching the filters of req.
	// req must already be normalized.
	ListUsers(ctx context.Context, req models.ListRequest) (models.Page, error)
}
