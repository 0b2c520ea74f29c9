package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-user-records/internal/crypto"
	"github.com/MKhiriev/go-user-records/internal/logger"
	"github.com/MKhiriev/go-user-records/internal/store"
	"github.com/MKhiriev/go-user-records/internal/utils"
	"github.com/MKhiriev/go-user-records/internal/validators"
	"github.com/MKhiriev/go-user-records/models"
)

// userService is the concrete implementation of [UserService].
//
// Every write runs the same steps in order: normalize, apply defaults,
// validate, hash the password when it changed, persist. A failing step
// aborts the write, so a record that fails validation or hashing never
// reaches the repository.
type userService struct {
	repository store.UserRepository
	validator  validators.Validator
	hasher     crypto.PasswordHasher
	tokens     tokenGenerator

	// now supplies the default for BlockExpires.
	now func() time.Time

	logger *logger.Logger
}

type tokenGenerator interface {
	Generate() string
}

func NewUserService(repository store.UserRepository, validator validators.Validator, hasher crypto.PasswordHasher, logger *logger.Logger) UserService {
	return &userService{
		repository: repository,
		validator:  validator,
		hasher:     hasher,
		tokens:     utils.NewUUIDGenerator(),
		now:        time.Now,
		logger:     logger,
	}
}

func (s *userService) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	user.UserID = 0
	validators.NormalizeUser(&user)

	if user.Role == "" {
		user.Role = models.DefaultRole
	}
	if user.BlockExpires.IsZero() {
		user.BlockExpires = s.now()
	}
	if user.Verification == "" && !user.Verified {
		user.Verification = s.tokens.Generate()
	}

	if err := s.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Str("email", user.Email).Msg("user rejected by validation")
		return models.User{}, err
	}

	hash, err := s.hasher.Hash(user.Password)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
	}
	user.Password = hash

	created, err := s.repository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, persistError(err)
	}

	log.Info().Int64("user_id", created.UserID).Msg("user created")
	return created, nil
}

// Update merges user into the stored record. Fields the caller cannot
// express with a zero value keep their stored value: an empty password,
// role or verification token, a zero BlockExpires and LoginAttempts.
// Verified is never cleared here; it changes through Verify. Lockout state
// is reset through SetLoginAttempts.
func (s *userService) Update(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.UserID <= 0 {
		return models.User{}, ErrInvalidDataProvided
	}

	stored, err := s.repository.FindUserByID(ctx, user.UserID, models.FullProjection())
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("loading user for update failed")
		return models.User{}, loadError(err)
	}

	validators.NormalizeUser(&user)

	passwordChanged := user.Password != "" && user.Password != stored.Password
	if !passwordChanged {
		user.Password = stored.Password
	}
	if user.Role == "" {
		user.Role = stored.Role
	}
	if user.Verification == "" {
		user.Verification = stored.Verification
	}
	if user.LoginAttempts == 0 {
		user.LoginAttempts = stored.LoginAttempts
	}
	if user.BlockExpires.IsZero() {
		user.BlockExpires = stored.BlockExpires
	}
	user.Verified = user.Verified || stored.Verified
	user.CreatedAt = stored.CreatedAt

	if err = s.validator.Validate(ctx, user); err != nil {
		log.Debug().Err(err).Int64("user_id", user.UserID).Msg("user rejected by validation")
		return models.User{}, err
	}

	if passwordChanged {
		hash, err := s.hasher.Hash(user.Password)
		if err != nil {
			log.Err(err).Int64("user_id", user.UserID).Msg("password hashing failed")
			return models.User{}, fmt.Errorf("%w: %w", ErrHashingPassword, err)
		}
		user.Password = hash
	}

	updated, err := s.repository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("user update ended with error")
		return models.User{}, persistError(err)
	}

	log.Info().Int64("user_id", updated.UserID).Bool("password_changed", passwordChanged).Msg("user updated")
	return updated, nil
}

func (s *userService) GetByID(ctx context.Context, userID int64, include ...models.Field) (models.User, error) {
	if userID <= 0 {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.repository.FindUserByID(ctx, userID, models.Projection(include...))
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, loadError(err)
	}

	return user, nil
}

func (s *userService) GetByEmail(ctx context.Context, email string, include ...models.Field) (models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.repository.FindUserByEmail(ctx, email, models.Projection(include...))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, loadError(err)
	}

	return user, nil
}

// ComparePassword never touches LoginAttempts or BlockExpires; lockout is
// the caller's business.
func (s *userService) ComparePassword(ctx context.Context, user models.User, candidate string) (bool, error) {
	if user.Password == "" {
		return false, ErrPasswordNotLoaded
	}

	ok, err := s.hasher.Compare(user.Password, candidate)
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.UserID).Msg("password comparison failed")
		return false, err
	}

	return ok, nil
}

// Authenticate reports an unknown email as ErrWrongPassword so that the
// response does not reveal which emails are registered.
func (s *userService) Authenticate(ctx context.Context, email, candidate string) (models.User, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(email) == "" || candidate == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.GetByEmail(ctx, email, models.FieldPassword)
	if errors.Is(err, ErrUserNotFound) {
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		return models.User{}, err
	}

	ok, err := s.ComparePassword(ctx, user, candidate)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		log.Info().Int64("user_id", user.UserID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return user.WithoutSecrets(), nil
}

// Verify is idempotent: an already verified user is returned unchanged.
func (s *userService) Verify(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	token = strings.TrimSpace(token)
	if token == "" {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.repository.FindUserByVerification(ctx, token, models.FullProjection())
	if err != nil {
		log.Err(err).Msg("user search by verification token failed")
		return models.User{}, loadError(err)
	}
	if user.Verified {
		return user.WithoutSecrets(), nil
	}

	user.Verified = true
	verified, err := s.repository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("marking user verified failed")
		return models.User{}, persistError(err)
	}

	log.Info().Int64("user_id", verified.UserID).Msg("user verified")
	return verified.WithoutSecrets(), nil
}

func (s *userService) SetLoginAttempts(ctx context.Context, userID int64, attempts int, blockExpires time.Time) (models.User, error) {
	log := logger.FromContext(ctx)

	if userID <= 0 || attempts < 0 {
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := s.repository.FindUserByID(ctx, userID, models.FullProjection())
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("loading user for login attempts failed")
		return models.User{}, loadError(err)
	}

	if blockExpires.IsZero() {
		blockExpires = s.now()
	}
	user.LoginAttempts = attempts
	user.BlockExpires = blockExpires

	updated, err := s.repository.UpdateUser(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("saving login attempts failed")
		return models.User{}, persistError(err)
	}

	log.Debug().Int64("user_id", userID).Int("login_attempts", attempts).Msg("login attempts stored")
	return updated.WithoutSecrets(), nil
}

func (s *userService) Search(ctx context.Context, query string, page, limit int) (models.Page, error) {
	return s.Paginate(ctx, models.ListRequest{Query: query, Page: page, Limit: limit})
}

func (s *userService) Paginate(ctx context.Context, req models.ListRequest) (models.Page, error) {
	req = req.Normalize()
	req.Query = strings.TrimSpace(req.Query)

	if req.Role != "" && !req.Role.IsValid() {
		return models.Page{}, fmt.Errorf("%w: unknown role %q", ErrInvalidDataProvided, req.Role)
	}

	page, err := s.repository.ListUsers(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("query", req.Query).Msg("listing users failed")
		return models.Page{}, fmt.Errorf("%w: %w", ErrLoadingUser, err)
	}

	return page, nil
}

// persistError converts repository write errors. A duplicate email becomes
// a validation error on the email field.
func persistError(err error) error {
	switch {
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return validators.NewValidationError(validators.FieldEmail, validators.ErrEmailTaken)
	case errors.Is(err, store.ErrNoUserWasFound):
		return ErrUserNotFound
	default:
		return fmt.Errorf("%w: %w", ErrSavingUser, err)
	}
}

func loadError(err error) error {
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrUserNotFound
	}
	return fmt.Errorf("%w: %w", ErrLoadingUser, err)
}
