package models

// FieldErrorResponse describes one rejected field in an API error payload.
type FieldErrorResponse struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the JSON body returned for rejected writes.
type ErrorResponse struct {
	Message string               `json:"message"`
	Errors  []FieldErrorResponse `json:"errors,omitempty"`
}

// LoginRequest carries credentials for the login endpoint.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// VerifyRequest carries the verification token for the verify endpoint.
type VerifyRequest struct {
	Verification string `json:"verification"`
}

// CreateUserRequest is the registration payload. It carries only the
// attributes a registrant may choose; verification and lockout state are
// always assigned by the server.
type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`

	// Role is optional and limited to [SelfAssignableRoles].
	Role Role `json:"role,omitempty"`

	Phone      string `json:"phone,omitempty"`
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
	URLTwitter string `json:"urlTwitter,omitempty"`
	URLGitHub  string `json:"urlGitHub,omitempty"`
}

// NewCreateUserRequest copies the registrant-settable attributes of u.
func NewCreateUserRequest(u User) CreateUserRequest {
	return CreateUserRequest{
		Name:       u.Name,
		Email:      u.Email,
		Password:   u.Password,
		Role:       u.Role,
		Phone:      u.Phone,
		City:       u.City,
		Country:    u.Country,
		URLTwitter: u.URLTwitter,
		URLGitHub:  u.URLGitHub,
	}
}

// User converts the request into a record for the user service.
func (r CreateUserRequest) User() User {
	return User{
		Name:       r.Name,
		Email:      r.Email,
		Password:   r.Password,
		Role:       r.Role,
		Phone:      r.Phone,
		City:       r.City,
		Country:    r.Country,
		URLTwitter: r.URLTwitter,
		URLGitHub:  r.URLGitHub,
	}
}

// UpdateUserRequest is the profile payload an owner may send for their own
// account. An empty password keeps the stored one. Role, verification and
// lockout state cannot be changed through it.
type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`

	Phone      string `json:"phone,omitempty"`
	City       string `json:"city,omitempty"`
	Country    string `json:"country,omitempty"`
	URLTwitter string `json:"urlTwitter,omitempty"`
	URLGitHub  string `json:"urlGitHub,omitempty"`
}

// NewUpdateUserRequest copies the owner-editable attributes of u.
func NewUpdateUserRequest(u User) UpdateUserRequest {
	return UpdateUserRequest{
		Name:       u.Name,
		Email:      u.Email,
		Password:   u.Password,
		Phone:      u.Phone,
		City:       u.City,
		Country:    u.Country,
		URLTwitter: u.URLTwitter,
		URLGitHub:  u.URLGitHub,
	}
}

// User converts the request into a partial record for userID. Fields left
// zero are kept from the stored record by the user service.
func (r UpdateUserRequest) User(userID int64) User {
	return User{
		UserID:     userID,
		Name:       r.Name,
		Email:      r.Email,
		Password:   r.Password,
		Phone:      r.Phone,
		City:       r.City,
		Country:    r.Country,
		URLTwitter: r.URLTwitter,
		URLGitHub:  r.URLGitHub,
	}
}
