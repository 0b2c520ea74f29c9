// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-user-records/models"
)

func Test_buildInsertUserQuery(t *testing.T) {
	blockExpires := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	user := models.User{
		Name:         "Ada",
		Email:        "ada@x.com",
		Password:     "$2a$10$hash",
		Role:         models.RoleProgrammer,
		Verification: "token",
		URLTwitter:   "twitter.com/ada",
		BlockExpires: blockExpires,
	}

	query, args, err := buildInsertUserQuery(user)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO users (name,email,password,role,verification,verified,"))
	assert.Contains(t, query, "VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)")
	assert.Contains(t, query, "RETURNING user_id, name, email, role")
	assert.Contains(t, query, "password, login_attempts, block_expires")

	require.Len(t, args, 13)
	assert.Equal(t, "Ada", args[0])
	assert.Equal(t, "ada@x.com", args[1])
	assert.Equal(t, "$2a$10$hash", args[2])
	assert.Equal(t, "programmer", args[3])
	assert.Equal(t, "token", args[4])
	assert.Equal(t, false, args[5])
	assert.Equal(t, "twitter.com/ada", args[9])
	assert.Equal(t, blockExpires, args[12])
}

func Test_buildUpdateUserQuery(t *testing.T) {
	user := models.User{UserID: 7, Name: "Ada", Email: "ada@x.com", Password: "hash", Role: models.RoleAdmin}

	query, args, err := buildUpdateUserQuery(user)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "UPDATE users SET name = $1, email = $2, password = $3, role = $4"))
	assert.Contains(t, query, "updated_at = NOW()")
	assert.Contains(t, query, "WHERE user_id = $14")
	assert.Contains(t, query, "RETURNING user_id")

	require.Len(t, args, 14)
	assert.Equal(t, "admin", args[3])
	assert.Equal(t, int64(7), args[13])
}

func Test_buildSelectUserQuery(t *testing.T) {
	tests := []struct {
		name        string
		fields      []models.Field
		wantColumns []string
		hidden      []string
	}{
		{
			name:        "default projection hides secrets",
			fields:      nil,
			wantColumns: []string{"user_id", "name", "email", "role", "verification", "verified", "url_twitter", "created_at"},
			hidden:      []string{"password", "login_attempts", "block_expires"},
		},
		{
			name:        "password on request",
			fields:      models.Projection(models.FieldPassword),
			wantColumns: []string{"user_id", "email", "password"},
			hidden:      []string{"login_attempts", "block_expires"},
		},
		{
			name:        "full projection",
			fields:      models.FullProjection(),
			wantColumns: []string{"password", "login_attempts", "block_expires"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildSelectUserQuery(tt.fields, sq.Eq{"email": "ada@x.com"})
			require.NoError(t, err)

			assert.Contains(t, query, "FROM users WHERE email = $1 LIMIT 1")
			require.Equal(t, []any{"ada@x.com"}, args)

			selectPart := strings.SplitN(query, " FROM ", 2)[0]
			for _, col := range tt.wantColumns {
				assert.Contains(t, selectPart, col)
			}
			for _, col := range tt.hidden {
				assert.NotContains(t, selectPart, col)
			}
		})
	}
}

func Test_buildSelectUserQuery_UnknownField(t *testing.T) {
	_, _, err := buildSelectUserQuery([]models.Field{"nickname"}, sq.Eq{"user_id": 1})
	require.ErrorIs(t, err, ErrUnknownField)
}

func Test_buildCountUsersQuery(t *testing.T) {
	verified := true

	tests := []struct {
		name      string
		req       models.ListRequest
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "no filters",
			req:       models.ListRequest{},
			wantQuery: "SELECT COUNT(*) FROM users",
			wantArgs:  nil,
		},
		{
			name:      "role and verified",
			req:       models.ListRequest{Role: models.RoleCompany, Verified: &verified},
			wantQuery: "SELECT COUNT(*) FROM users WHERE (role = $1 AND verified = $2)",
			wantArgs:  []any{"company", true},
		},
		{
			name: "text search",
			req:  models.ListRequest{Query: "  ada  "},
			wantQuery: "SELECT COUNT(*) FROM users WHERE ((" + searchDocument +
				" ILIKE $1 OR verification = $2))",
			wantArgs: []any{"%ada%", "ada"},
		},
		{
			name: "wildcards are literal",
			req:  models.ListRequest{Query: `50%_off\`},
			wantQuery: "SELECT COUNT(*) FROM users WHERE ((" + searchDocument +
				" ILIKE $1 OR verification = $2))",
			wantArgs: []any{`%50\%\_off\\%`, `50%_off\`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildCountUsersQuery(tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, len(tt.wantArgs), len(args))
			for i := range tt.wantArgs {
				assert.Equal(t, tt.wantArgs[i], args[i])
			}
		})
	}
}

func Test_searchCondition(t *testing.T) {
	query, args, err := searchCondition("lovelace").ToSql()
	require.NoError(t, err)

	assert.Equal(t, "("+searchDocument+" ILIKE ? OR verification = ?)", query)
	assert.Equal(t, []any{"%lovelace%", "lovelace"}, args)
	assert.Contains(t, searchDocument, "email")
	assert.NotContains(t, searchDocument, "verification")
}

func Test_buildListUsersQuery(t *testing.T) {
	req := models.ListRequest{Query: "ada", Role: models.RoleProgrammer, Page: 3, Limit: 20}

	query, args, err := buildListUsersQuery(req)
	require.NoError(t, err)

	assert.Contains(t, query, "FROM users WHERE (role = $1 AND ")
	assert.Contains(t, query, searchDocument+" ILIKE $2 OR verification = $3")
	assert.True(t, strings.HasSuffix(query, "ORDER BY user_id LIMIT 20 OFFSET 40"))
	assert.NotContains(t, strings.SplitN(query, " FROM ", 2)[0], "password")
	assert.Equal(t, []any{"programmer", "%ada%", "ada"}, args)
}

func Test_scanTargets(t *testing.T) {
	var user models.User

	assert.Len(t, scanTargets(&user, nil), len(models.DefaultProjection))
	assert.Len(t, scanTargets(&user, models.FullProjection()), len(models.FullProjection()))

	dest := scanTargets(&user, []models.Field{models.FieldEmail, models.FieldPassword})
	require.Len(t, dest, 2)
	*(dest[0].(*string)) = "ada@x.com"
	*(dest[1].(*string)) = "hash"
	assert.Equal(t, "ada@x.com", user.Email)
	assert.Equal(t, "hash", user.Password)
}
