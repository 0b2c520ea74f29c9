package adapter

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-user-records/models"
)

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrValidation          = errors.New("validation failed")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

// APIError is a non-2xx answer of the server. It unwraps to the sentinel
// matching its status.
type APIError struct {
	StatusCode int
	Message    string
	Fields     []models.FieldErrorResponse

	sentinel error
}

func (e *APIError) Error() string {
	var b strings.Builder
	if e.sentinel != nil {
		b.WriteString(e.sentinel.Error())
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	for _, f := range e.Fields {
		b.WriteString("; ")
		b.WriteString(f.Field)
		b.WriteString(": ")
		b.WriteString(f.Message)
	}
	return b.String()
}

func (e *APIError) Unwrap() error {
	return e.sentinel
}

// FieldMessage returns the server message for field, or "".
func (e *APIError) FieldMessage(field string) string {
	for _, f := range e.Fields {
		if f.Field == field {
			return f.Message
		}
	}
	return ""
}
