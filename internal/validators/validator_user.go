package validators

import (
	"context"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/MKhiriev/go-user-records/models"
)

// Field names reported in ValidationError. They match the JSON names of
// [models.User].
const (
	FieldName       = "name"
	FieldEmail      = "email"
	FieldPassword   = "password"
	FieldRole       = "role"
	FieldURLTwitter = "urlTwitter"
	FieldURLGitHub  = "urlGitHub"
)

// MaxPasswordBytes is the longest password bcrypt accepts. A bcrypt hash is
// 60 bytes, so stored hashes always pass.
const MaxPasswordBytes = 72

var allUserFields = []string{FieldName, FieldEmail, FieldPassword, FieldRole, FieldURLTwitter, FieldURLGitHub}

// UserValidator checks the write-time constraints of [models.User].
// Uniqueness of the email is not checked here; the store enforces it.
type UserValidator struct {
	validate *validator.Validate
}

// NewUserValidator constructs a [Validator] for user records.
func NewUserValidator() Validator {
	return &UserValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// NormalizeUser lowercases the fields that are stored lowercased.
func NormalizeUser(user *models.User) {
	user.Email = strings.ToLower(user.Email)
	user.URLTwitter = strings.ToLower(user.URLTwitter)
	user.URLGitHub = strings.ToLower(user.URLGitHub)
}

// Validate implements [Validator]. It accepts models.User or *models.User and
// checks the named fields (all of them when none are given). Every failing
// field is collected into one *ValidationError.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = allUserFields
	}

	verr := &ValidationError{}
	for _, f := range fields {
		switch f {
		case FieldName:
			if user.Name == "" {
				verr.Add(FieldName, ErrRequired)
			}
		case FieldEmail:
			if user.Email == "" {
				verr.Add(FieldEmail, ErrRequired)
			} else if v.validate.Var(user.Email, "email") != nil {
				verr.Add(FieldEmail, ErrInvalidEmail)
			}
		case FieldPassword:
			if user.Password == "" {
				verr.Add(FieldPassword, ErrRequired)
			} else if len(user.Password) > MaxPasswordBytes {
				verr.Add(FieldPassword, ErrPasswordTooLong)
			}
		case FieldRole:
			if !user.Role.IsValid() {
				verr.Add(FieldRole, ErrInvalidRole)
			}
		case FieldURLTwitter:
			if !v.isOptionalURL(user.URLTwitter) {
				verr.Add(FieldURLTwitter, ErrInvalidURL)
			}
		case FieldURLGitHub:
			if !v.isOptionalURL(user.URLGitHub) {
				verr.Add(FieldURLGitHub, ErrInvalidURL)
			}
		default:
			return ErrUnknownField
		}
	}

	return verr.OrNil()
}

// isOptionalURL accepts the empty string and URLs with or without a scheme
// whose host is a fully qualified domain name or an IP address.
func (v *UserValidator) isOptionalURL(value string) bool {
	if value == "" {
		return true
	}

	candidate := value
	if !strings.Contains(candidate, "://") {
		candidate = "http://" + candidate
	}

	if v.validate.Var(candidate, "url") != nil {
		return false
	}

	u, err := url.Parse(candidate)
	if err != nil {
		return false
	}

	host := u.Hostname()
	return v.validate.Var(host, "fqdn") == nil || v.validate.Var(host, "ip") == nil
}
