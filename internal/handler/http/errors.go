package http

import "errors"

var (
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")
	ErrInvalidUserID            = errors.New("invalid user id")
	ErrInvalidQueryParam        = errors.New("invalid query parameter")
	ErrInvalidRequestBody       = errors.New("invalid request body")
	ErrForeignUser              = errors.New("user can only modify own record")
	ErrRouteNotFound            = errors.New("route not found")
	ErrMethodNotAllowed         = errors.New("method not allowed")
)
