// Package utils holds small helpers shared by the HTTP layer, the services
// and the client adapter: context keys, JSON responses, JWT handling, token
// generation and the resty client wrapper.
package utils

import (
	"context"
)

// contextKey is a private type for context keys, so that keys set here never
// collide with string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// UserIDCtxKey stores the ID of the authenticated user, taken from the
// bearer token subject.
var UserIDCtxKey = contextKey("userID")

// WithUserID returns a copy of ctx carrying userID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, UserIDCtxKey, userID)
}

// GetUserIDFromContext returns the authenticated user ID and whether it was
// present with the right type.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(UserIDCtxKey).(int64)
	return userID, ok
}
