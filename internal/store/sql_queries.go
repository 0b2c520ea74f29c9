package store

import (
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-user-records/models"
)

const usersTable = "users"

// searchDocument must match the expression of users_substring_search_idx,
// otherwise Postgres cannot use the trigram index.
const searchDocument = "(email || ' ' || name || ' ' || role)"

var likeEscaper = strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)

// searchCondition matches q as a case-insensitive substring of email, name
// and role. The verification token only matches exactly.
func searchCondition(q string) sq.Sqlizer {
	return sq.Expr(
		"("+searchDocument+" ILIKE ? OR verification = ?)",
		"%"+likeEscaper.Replace(q)+"%", q,
	)
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// columns converts a projection into column names. An empty projection
// selects models.DefaultProjection.
func columns(fields []models.Field) ([]string, error) {
	if len(fields) == 0 {
		fields = models.DefaultProjection
	}

	cols := make([]string, 0, len(fields))
	for _, f := range fields {
		if !isKnownField(f) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownField, f)
		}
		cols = append(cols, string(f))
	}
	return cols, nil
}

func isKnownField(f models.Field) bool {
	for _, known := range models.FullProjection() {
		if f == known {
			return true
		}
	}
	return false
}

func returning(fields []models.Field) string {
	cols := make([]string, 0, len(fields))
	for _, f := range fields {
		cols = append(cols, string(f))
	}
	return "RETURNING " + strings.Join(cols, ", ")
}

func buildInsertUserQuery(user models.User) (string, []any, error) {
	return psql.Insert(usersTable).
		Columns(
			string(models.FieldName),
			string(models.FieldEmail),
			string(models.FieldPassword),
			string(models.FieldRole),
			string(models.FieldVerification),
			string(models.FieldVerified),
			string(models.FieldPhone),
			string(models.FieldCity),
			string(models.FieldCountry),
			string(models.FieldURLTwitter),
			string(models.FieldURLGitHub),
			string(models.FieldLoginAttempts),
			string(models.FieldBlockExpires),
		).
		Values(
			user.Name,
			user.Email,
			user.Password,
			string(user.Role),
			user.Verification,
			user.Verified,
			user.Phone,
			user.City,
			user.Country,
			user.URLTwitter,
			user.URLGitHub,
			user.LoginAttempts,
			user.BlockExpires,
		).
		Suffix(returning(models.FullProjection())).
		ToSql()
}

func buildUpdateUserQuery(user models.User) (string, []any, error) {
	return psql.Update(usersTable).
		Set(string(models.FieldName), user.Name).
		Set(string(models.FieldEmail), user.Email).
		Set(string(models.FieldPassword), user.Password).
		Set(string(models.FieldRole), string(user.Role)).
		Set(string(models.FieldVerification), user.Verification).
		Set(string(models.FieldVerified), user.Verified).
		Set(string(models.FieldPhone), user.Phone).
		Set(string(models.FieldCity), user.City).
		Set(string(models.FieldCountry), user.Country).
		Set(string(models.FieldURLTwitter), user.URLTwitter).
		Set(string(models.FieldURLGitHub), user.URLGitHub).
		Set(string(models.FieldLoginAttempts), user.LoginAttempts).
		Set(string(models.FieldBlockExpires), user.BlockExpires).
		Set(string(models.FieldUpdatedAt), sq.Expr("NOW()")).
		Where(sq.Eq{string(models.FieldUserID): user.UserID}).
		Suffix(returning(models.FullProjection())).
		ToSql()
}

// buildSelectUserQuery selects a single user matching where.
func buildSelectUserQuery(fields []models.Field, where sq.Sqlizer) (string, []any, error) {
	cols, err := columns(fields)
	if err != nil {
		return "", nil, err
	}

	return psql.Select(cols...).
		From(usersTable).
		Where(where).
		Limit(1).
		ToSql()
}

// listFilters translates the filters of req into WHERE conditions.
func listFilters(req models.ListRequest) sq.And {
	filters := sq.And{}

	if req.Role != "" {
		filters = append(filters, sq.Eq{string(models.FieldRole): string(req.Role)})
	}
	if req.Verified != nil {
		filters = append(filters, sq.Eq{string(models.FieldVerified): *req.Verified})
	}
	if q := strings.TrimSpace(req.Query); q != "" {
		filters = append(filters, searchCondition(q))
	}

	return filters
}

func buildCountUsersQuery(req models.ListRequest) (string, []any, error) {
	query := psql.Select("COUNT(*)").From(usersTable)
	if filters := listFilters(req); len(filters) > 0 {
		query = query.Where(filters)
	}
	return query.ToSql()
}

func buildListUsersQuery(req models.ListRequest) (string, []any, error) {
	cols, err := columns(models.DefaultProjection)
	if err != nil {
		return "", nil, err
	}

	query := psql.Select(cols...).From(usersTable)
	if filters := listFilters(req); len(filters) > 0 {
		query = query.Where(filters)
	}

	return query.
		OrderBy(string(models.FieldUserID)).
		Limit(uint64(req.Limit)).
		Offset(uint64(req.Offset())).
		ToSql()
}

// scanTargets returns the scan destinations for fields, in order.
func scanTargets(user *models.User, fields []models.Field) []any {
	if len(fields) == 0 {
		fields = models.DefaultProjection
	}

	dest := make([]any, 0, len(fields))
	for _, f := range fields {
		switch f {
		case models.FieldUserID:
			dest = append(dest, &user.UserID)
		case models.FieldName:
			dest = append(dest, &user.Name)
		case models.FieldEmail:
			dest = append(dest, &user.Email)
		case models.FieldPassword:
			dest = append(dest, &user.Password)
		case models.FieldRole:
			dest = append(dest, &user.Role)
		case models.FieldVerification:
			dest = append(dest, &user.Verification)
		case models.FieldVerified:
			dest = append(dest, &user.Verified)
		case models.FieldPhone:
			dest = append(dest, &user.Phone)
		case models.FieldCity:
			dest = append(dest, &user.City)
		case models.FieldCountry:
			dest = append(dest, &user.Country)
		case models.FieldURLTwitter:
			dest = append(dest, &user.URLTwitter)
		case models.FieldURLGitHub:
			dest = append(dest, &user.URLGitHub)
		case models.FieldLoginAttempts:
			dest = append(dest, &user.LoginAttempts)
		case models.FieldBlockExpires:
			dest = append(dest, &user.BlockExpires)
		case models.FieldCreatedAt:
			dest = append(dest, &user.CreatedAt)
		case models.FieldUpdatedAt:
			dest = append(dest, &user.UpdatedAt)
		}
	}
	return dest
}
