package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"

	"github.com/MKhiriev/go-user-records/internal/logger"
	"github.com/MKhiriev/go-user-records/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by db.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts user and returns the canonical database representation
// of the new account, including the generated ID and timestamps.
//
// A unique_violation (23505) on email is reported as [ErrEmailAlreadyExists].
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error building insert query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	fields := models.FullProjection()
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(scanTargets(&created, fields)...); err != nil {
		return models.User{}, r.writeError(ctx, "*userRepository.CreateUser", err)
	}

	return created, nil
}

// UpdateUser overwrites every mutable column of the row identified by
// user.UserID and refreshes updated_at.
func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(user)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error building update query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.User
	fields := models.FullProjection()
	if err = r.db.QueryRowContext(ctx, query, args...).Scan(scanTargets(&updated, fields)...); err != nil {
		return models.User{}, r.writeError(ctx, "*userRepository.UpdateUser", err)
	}

	return updated, nil
}

func (r *userRepository) FindUserByID(ctx context.Context, userID int64, fields []models.Field) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByID", fields, sq.Eq{string(models.FieldUserID): userID})
}

func (r *userRepository) FindUserByEmail(ctx context.Context, email string, fields []models.Field) (models.User, error) {
	return r.findOne(ctx, "*userRepository.FindUserByEmail", fields, sq.Eq{string(models.FieldEmail): email})
}

// FindUserByVerification looks up a user by a non-empty verification token.
func (r *userRepository) FindUserByVerification(ctx context.Context, token string, fields []models.Field) (models.User, error) {
	if token == "" {
		return models.User{}, ErrNoUserWasFound
	}
	return r.findOne(ctx, "*userRepository.FindUserByVerification", fields, sq.Eq{string(models.FieldVerification): token})
}

// ListUsers runs a COUNT query and a LIMIT/OFFSET query with the same
// filters and combines them into a [models.Page].
func (r *userRepository) ListUsers(ctx context.Context, req models.ListRequest) (models.Page, error) {
	log := logger.FromContext(ctx)

	countQuery, countArgs, err := buildCountUsersQuery(req)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error building count query")
		return models.Page{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int64
	if err = r.db.QueryRowContext(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error counting users")
		return models.Page{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	// nothing to fetch past the last record
	if total == 0 || int64(req.Offset()) >= total {
		return models.NewPage(nil, total, req), nil
	}

	listQuery, listArgs, err := buildListUsersQuery(req)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error building list query")
		return models.Page{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, listQuery, listArgs...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error listing users")
		return models.Page{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, req.Limit)
	for rows.Next() {
		var user models.User
		if err = rows.Scan(scanTargets(&user, models.DefaultProjection)...); err != nil {
			log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error scanning user row")
			return models.Page{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("error iterating user rows")
		return models.Page{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return models.NewPage(users, total, req), nil
}

func (r *userRepository) findOne(ctx context.Context, caller string, fields []models.Field, where sq.Sqlizer) (models.User, error) {
	log := logger.FromContext(ctx)

	if len(fields) == 0 {
		fields = models.DefaultProjection
	}

	query, args, err := buildSelectUserQuery(fields, where)
	if err != nil {
		log.Err(err).Str("func", caller).Msg("error building select query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(scanTargets(&found, fields)...)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", caller).Str("classification", r.classify(err).String()).Msg("error selecting user")
		if postgresError(err) == pgerrcode.NoDataFound {
			return models.User{}, ErrNoUserWasFound
		}
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return found, nil
}

// writeError converts a failure of INSERT/UPDATE ... RETURNING into a store
// error.
func (r *userRepository) writeError(ctx context.Context, caller string, err error) error {
	log := logger.FromContext(ctx)

	switch {
	case errors.Is(err, sql.ErrNoRows):
		return ErrNoUserWasFound
	case postgresError(err) == pgerrcode.UniqueViolation:
		log.Warn().Str("func", caller).Msg("email already exists")
		return ErrEmailAlreadyExists
	default:
		log.Err(err).Str("func", caller).Str("classification", r.classify(err).String()).Msg("error writing user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

func (r *userRepository) classify(err error) ErrorClassification {
	if r.db == nil || r.db.errorClassificator == nil {
		return NonRetryable
	}
	return r.db.errorClassificator.Classify(err)
}
