package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")
	ErrUserNotFound        = errors.New("user not found")

	// ErrPasswordNotLoaded is returned by ComparePassword for a record read
	// without the password field.
	ErrPasswordNotLoaded = errors.New("password hash is not loaded")

	ErrHashingPassword = errors.New("hashing user password")
	ErrSavingUser      = errors.New("saving user failed")
	ErrLoadingUser     = errors.New("loading user failed")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
