// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Field names a persisted attribute of [User]. Field values double as
// column names in the "users" table.
type Field string

const (
	FieldUserID        Field = "user_id"
	FieldName          Field = "name"
	FieldEmail         Field = "email"
	FieldPassword      Field = "password"
	FieldRole          Field = "role"
	FieldVerification  Field = "verification"
	FieldVerified      Field = "verified"
	FieldPhone         Field = "phone"
	FieldCity          Field = "city"
	FieldCountry       Field = "country"
	FieldURLTwitter    Field = "url_twitter"
	FieldURLGitHub     Field = "url_github"
	FieldLoginAttempts Field = "login_attempts"
	FieldBlockExpires  Field = "block_expires"
	FieldCreatedAt     Field = "created_at"
	FieldUpdatedAt     Field = "updated_at"
)

// DefaultProjection is the ordered set of fields returned by reads when the
// caller does not ask for anything else. Password, LoginAttempts and
// BlockExpires are deliberately absent.
var DefaultProjection = []Field{
	FieldUserID,
	FieldName,
	FieldEmail,
	FieldRole,
	FieldVerification,
	FieldVerified,
	FieldPhone,
	FieldCity,
	FieldCountry,
	FieldURLTwitter,
	FieldURLGitHub,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// HiddenFields are excluded from [DefaultProjection] and must be requested
// explicitly.
var HiddenFields = []Field{FieldPassword, FieldLoginAttempts, FieldBlockExpires}

// Projection returns DefaultProjection extended with every hidden field
// listed in include. Unknown or already present fields are ignored.
func Projection(include ...Field) []Field {
	fields := make([]Field, 0, len(DefaultProjection)+len(HiddenFields))
	fields = append(fields, DefaultProjection...)

	for _, hidden := range HiddenFields {
		for _, f := range include {
			if f == hidden {
				fields = append(fields, hidden)
				break
			}
		}
	}

	return fields
}

// FullProjection returns every persisted field.
func FullProjection() []Field {
	return Projection(HiddenFields...)
}
