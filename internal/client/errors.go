package client

import "errors"

var (
	ErrMissingCommand  = errors.New("missing command")
	ErrUnknownCommand  = errors.New("unknown command")
	ErrMissingArgument = errors.New("missing argument")
)
