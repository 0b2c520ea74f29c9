// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents a registered account.
//
// Password, LoginAttempts and BlockExpires are not part of the default read
// projection: repository reads leave them zero unless they are requested
// explicitly (see [Field] and [DefaultProjection]).
type User struct {
	// UserID is the server-assigned identifier of the account.
	UserID int64 `json:"id"`

	// Name is the display name of the user. Required.
	Name string `json:"name"`

	// Email is the unique login of the user. It is stored lowercased and
	// must be a syntactically valid address.
	Email string `json:"email"`

	// Password holds the plaintext password on input and the bcrypt hash once
	// the record has been persisted. It is never a plaintext value at rest.
	Password string `json:"password,omitempty"`

	// Role is one of [RoleProgrammer], [RoleCompany], [RoleAdmin].
	Role Role `json:"role"`

	// Verification is an opaque token used by the email verification flow.
	Verification string `json:"verification,omitempty"`

	// Verified reports whether the verification flow has been completed.
	Verified bool `json:"verified"`

	Phone   string `json:"phone,omitempty"`
	City    string `json:"city,omitempty"`
	Country string `json:"country,omitempty"`

	// URLTwitter and URLGitHub are optional profile links. An empty string
	// means "no value"; anything else must be a valid URL.
	URLTwitter string `json:"urlTwitter,omitempty"`
	URLGitHub  string `json:"urlGitHub,omitempty"`

	// LoginAttempts and BlockExpires are reserved for brute-force lockout,
	// which is owned by the caller.
	LoginAttempts int       `json:"loginAttempts,omitempty"`
	BlockExpires  time.Time `json:"blockExpires,omitzero"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// WithoutSecrets returns a copy of u with the password hash cleared.
// It is used before a record leaves the process boundary.
func (u User) WithoutSecrets() User {
	u.Password = ""
	return u
}

// Public returns a copy of u that is safe to show to anyone: the password
// hash and the verification token are cleared.
func (u User) Public() User {
	u.Password = ""
	u.Verification = ""
	return u
}
