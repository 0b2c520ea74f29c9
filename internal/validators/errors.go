package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")

	ErrRequired     = errors.New("field is required")
	ErrInvalidEmail = errors.New("not a valid email address")
	ErrInvalidURL   = errors.New("NOT_A_VALID_URL")
	ErrInvalidRole  = errors.New("not a valid role")
	ErrRoleReserved = errors.New("role cannot be self-assigned")
	ErrEmailTaken   = errors.New("email already exists")

	// ErrPasswordTooLong rejects passwords bcrypt cannot hash.
	ErrPasswordTooLong = errors.New("password must not exceed 72 bytes")
)

// FieldError describes why one field was rejected.
type FieldError struct {
	Field   string
	Message string
	Err     error
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// ValidationError lists every field that failed validation. A write that
// returns it was not persisted.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field string, err error) *ValidationError {
	v := &ValidationError{}
	v.Add(field, err)
	return v
}

// Add records err against field.
func (v *ValidationError) Add(field string, err error) {
	v.Fields = append(v.Fields, FieldError{Field: field, Message: err.Error(), Err: err})
}

// Has reports whether field has at least one error.
func (v *ValidationError) Has(field string) bool {
	for _, f := range v.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}

// OrNil returns v when it holds errors and nil otherwise.
func (v *ValidationError) OrNil() error {
	if v == nil || len(v.Fields) == 0 {
		return nil
	}
	return v
}

func (v *ValidationError) Error() string {
	parts := make([]string, 0, len(v.Fields))
	for _, f := range v.Fields {
		parts = append(parts, f.Error())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes ErrValidation and every per-field error, so errors.Is works
// for both the generic and the specific sentinel.
func (v *ValidationError) Unwrap() []error {
	errs := make([]error, 0, len(v.Fields)+1)
	errs = append(errs, ErrValidation)
	for _, f := range v.Fields {
		errs = append(errs, f)
	}
	return errs
}
