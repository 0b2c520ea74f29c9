// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the user records REST API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrValidation] for
// 422, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-user-records/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_client_mock.go -package=mock

// UserClient talks to the user records server. Implementations keep the
// bearer token returned by Login and attach it to authenticated calls.
type UserClient interface {
	// SetToken stores the bearer token used by Update.
	SetToken(token string)
	// Token returns the stored bearer token or "".
	Token() string

	// Create registers a user and returns the stored record without the
	// password hash. Only the attributes of [models.CreateUserRequest] are
	// sent.
	Create(ctx context.Context, user models.User) (models.User, error)
	Get(ctx context.Context, userID int64) (models.User, error)
	// Update requires a token issued for the same user. Only the attributes
	// of [models.UpdateUserRequest] are sent.
	Update(ctx context.Context, user models.User) (models.User, error)
	List(ctx context.Context, req models.ListRequest) (models.Page, error)

	// Login checks the credentials and stores the returned bearer token.
	Login(ctx context.Context, email, password string) (models.User, error)
	Verify(ctx context.Context, token string) (models.User, error)

	Version(ctx context.Context) (models.VersionResponse, error)
}
