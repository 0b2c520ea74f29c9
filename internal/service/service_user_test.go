package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-user-records/internal/crypto"
	"github.com/MKhiriev/go-user-records/internal/logger"
	"github.com/MKhiriev/go-user-records/internal/mock"
	"github.com/MKhiriev/go-user-records/internal/store"
	"github.com/MKhiriev/go-user-records/internal/utils"
	"github.com/MKhiriev/go-user-records/internal/validators"
	"github.com/MKhiriev/go-user-records/models"
)

var fixedNow = time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)

func newTestUserService(t *testing.T) (*userService, *mock.MockUserRepository) {
	t.Helper()

	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)

	hasher, err := crypto.NewBcryptHasher(bcrypt.MinCost)
	require.NoError(t, err)

	svc := &userService{
		repository: repo,
		validator:  validators.NewUserValidator(),
		hasher:     hasher,
		tokens:     utils.NewUUIDGenerator(),
		now:        func() time.Time { return fixedNow },
		logger:     logger.Nop(),
	}
	return svc, repo
}

// insertAs echoes the inserted user back as the database would.
func insertAs(id int64) func(context.Context, models.User) (models.User, error) {
	return func(_ context.Context, u models.User) (models.User, error) {
		u.UserID = id
		u.CreatedAt = fixedNow
		u.UpdatedAt = fixedNow
		return u, nil
	}
}

func echoUpdate(_ context.Context, u models.User) (models.User, error) {
	u.UpdatedAt = fixedNow.Add(time.Minute)
	return u, nil
}

func TestCreate_AdaScenario(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(insertAs(1))

	created, err := svc.Create(ctx, models.User{Name: "Ada", Email: "ADA@X.COM", Password: "secret123"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), created.UserID)
	assert.Equal(t, "ada@x.com", created.Email)
	assert.Equal(t, models.RoleProgrammer, created.Role)
	assert.False(t, created.Verified)
	assert.NotEqual(t, "secret123", created.Password)
	assert.True(t, strings.HasPrefix(created.Password, "$2a$"))
	assert.Equal(t, fixedNow, created.BlockExpires)
	assert.NotEmpty(t, created.Verification)

	ok, err := svc.ComparePassword(ctx, created, "secret123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.ComparePassword(ctx, created, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCreate_HashesEveryPassword(t *testing.T) {
	passwords := []string{"secret123", "p", "пароль", strings.Repeat("x", 72)}

	for i, password := range passwords {
		t.Run(fmt.Sprintf("password_%d", i), func(t *testing.T) {
			svc, repo := newTestUserService(t)
			ctx := context.Background()

			repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(insertAs(1))

			created, err := svc.Create(ctx, models.User{Name: "Ada", Email: "ada@x.com", Password: password})
			require.NoError(t, err)
			assert.NotEqual(t, password, created.Password)

			ok, err := svc.ComparePassword(ctx, created, password)
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = svc.ComparePassword(ctx, created, "definitely-wrong")
			require.NoError(t, err)
			assert.False(t, ok)
		})
	}
}

func TestCreate_KeepsExplicitFields(t *testing.T) {
	svc, repo := newTestUserService(t)

	blockExpires := fixedNow.Add(time.Hour)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(insertAs(2))

	created, err := svc.Create(context.Background(), models.User{
		UserID:       99,
		Name:         "Acme",
		Email:        "hr@acme.io",
		Password:     "secret123",
		Role:         models.RoleCompany,
		Verification: "given-token",
		URLGitHub:    "GitHub.com/Acme",
		BlockExpires: blockExpires,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(2), created.UserID)
	assert.Equal(t, models.RoleCompany, created.Role)
	assert.Equal(t, "given-token", created.Verification)
	assert.Equal(t, "github.com/acme", created.URLGitHub)
	assert.Equal(t, blockExpires, created.BlockExpires)
}

func TestCreate_ValidationStopsTheWrite(t *testing.T) {
	tests := []struct {
		name    string
		user    models.User
		field   string
		wantErr error
	}{
		{
			name:    "role outside the enum",
			user:    models.User{Name: "Ada", Email: "ada@x.com", Password: "secret123", Role: "superuser"},
			field:   validators.FieldRole,
			wantErr: validators.ErrInvalidRole,
		},
		{
			name:    "twitter not a url",
			user:    models.User{Name: "Ada", Email: "ada@x.com", Password: "secret123", URLTwitter: "not-a-url"},
			field:   validators.FieldURLTwitter,
			wantErr: validators.ErrInvalidURL,
		},
		{
			name:    "missing password",
			user:    models.User{Name: "Ada", Email: "ada@x.com"},
			field:   validators.FieldPassword,
			wantErr: validators.ErrRequired,
		},
		{
			name:    "bad email",
			user:    models.User{Name: "Ada", Email: "ada", Password: "secret123"},
			field:   validators.FieldEmail,
			wantErr: validators.ErrInvalidEmail,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no repository expectations: the write must not happen
			svc, _ := newTestUserService(t)

			_, err := svc.Create(context.Background(), tt.user)
			require.ErrorIs(t, err, tt.wantErr)

			var verr *validators.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.True(t, verr.Has(tt.field))
		})
	}
}

func TestCreate_EmptyURLsAccepted(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(insertAs(1))

	created, err := svc.Create(context.Background(), models.User{
		Name: "Ada", Email: "ada@x.com", Password: "secret123", URLTwitter: "", URLGitHub: "",
	})
	require.NoError(t, err)
	assert.Empty(t, created.URLTwitter)
	assert.Empty(t, created.URLGitHub)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).DoAndReturn(insertAs(1)),
		repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "ada@x.com", u.Email)
				return models.User{}, store.ErrEmailAlreadyExists
			}),
	)

	first, err := svc.Create(ctx, models.User{Name: "Ada", Email: "ada@x.com", Password: "secret123"})
	require.NoError(t, err)

	_, err = svc.Create(ctx, models.User{Name: "Imposter", Email: "ADA@X.COM", Password: "other"})
	require.ErrorIs(t, err, validators.ErrEmailTaken)
	require.ErrorIs(t, err, validators.ErrValidation)

	var verr *validators.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has(validators.FieldEmail))

	ok, err := svc.ComparePassword(ctx, first, "secret123")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCreate_RepositoryFailure(t *testing.T) {
	svc, repo := newTestUserService(t)

	dbErr := errors.New("connection reset")
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	_, err := svc.Create(context.Background(), models.User{Name: "Ada", Email: "ada@x.com", Password: "secret123"})
	require.ErrorIs(t, err, ErrSavingUser)
	require.ErrorIs(t, err, dbErr)
}

func TestCreate_HashingFailureAbortsWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := &userService{
		repository: repo,
		validator:  validators.NewUserValidator(),
		hasher:     hasher,
		tokens:     utils.NewUUIDGenerator(),
		now:        func() time.Time { return fixedNow },
		logger:     logger.Nop(),
	}

	hasher.EXPECT().Hash("secret123").Return("", crypto.ErrHashingFailed)

	_, err := svc.Create(context.Background(), models.User{Name: "Ada", Email: "ada@x.com", Password: "secret123"})
	require.ErrorIs(t, err, ErrHashingPassword)
	require.ErrorIs(t, err, crypto.ErrHashingFailed)
	assert.NotContains(t, err.Error(), "secret123")
	assert.Equal(t, 1, strings.Count(err.Error(), crypto.ErrHashingFailed.Error()))
}

func TestCreate_PasswordTooLongIsValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := &userService{
		repository: repo,
		validator:  validators.NewUserValidator(),
		hasher:     hasher,
		tokens:     utils.NewUUIDGenerator(),
		now:        func() time.Time { return fixedNow },
		logger:     logger.Nop(),
	}

	_, err := svc.Create(context.Background(), models.User{Name: "Ada", Email: "ada@x.com", Password: strings.Repeat("a", 73)})
	require.ErrorIs(t, err, validators.ErrValidation)
	require.ErrorIs(t, err, validators.ErrPasswordTooLong)
	assert.NotErrorIs(t, err, ErrHashingPassword)
}

func storedUser(t *testing.T, svc *userService, password string) models.User {
	t.Helper()

	hash, err := svc.hasher.Hash(password)
	require.NoError(t, err)

	return models.User{
		UserID:        1,
		Name:          "Ada",
		Email:         "ada@x.com",
		Password:      hash,
		Role:          models.RoleProgrammer,
		Verification:  "token-1",
		LoginAttempts: 2,
		BlockExpires:  fixedNow,
		CreatedAt:     fixedNow,
		UpdatedAt:     fixedNow,
	}
}

func TestUpdate_ResaveKeepsHash(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()
	stored := storedUser(t, svc, "secret123")

	repo.EXPECT().FindUserByID(gomock.Any(), int64(1), models.FullProjection()).Return(stored, nil).Times(2)
	repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate).Times(2)

	// the record as loaded, with the hash in place
	resaved := stored
	resaved.City = "London"
	updated, err := svc.Update(ctx, resaved)
	require.NoError(t, err)
	assert.Equal(t, stored.Password, updated.Password)
	assert.Equal(t, "London", updated.City)

	// the record loaded without the password
	withoutPassword := stored.WithoutSecrets()
	withoutPassword.Country = "UK"
	updated, err = svc.Update(ctx, withoutPassword)
	require.NoError(t, err)
	assert.Equal(t, stored.Password, updated.Password)
	assert.Equal(t, 2, updated.LoginAttempts)
	assert.Equal(t, "token-1", updated.Verification)
	assert.Equal(t, fixedNow, updated.CreatedAt)
}

func TestUpdate_NewPasswordIsHashed(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()
	stored := storedUser(t, svc, "secret123")

	repo.EXPECT().FindUserByID(gomock.Any(), int64(1), gomock.Any()).Return(stored, nil)
	repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

	change := stored.WithoutSecrets()
	change.Password = "new-secret"

	updated, err := svc.Update(ctx, change)
	require.NoError(t, err)
	assert.NotEqual(t, stored.Password, updated.Password)
	assert.NotEqual(t, "new-secret", updated.Password)

	ok, err := svc.ComparePassword(ctx, updated, "new-secret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.ComparePassword(ctx, updated, "secret123")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdate_NeverClearsVerified(t *testing.T) {
	svc, repo := newTestUserService(t)
	stored := storedUser(t, svc, "secret123")
	stored.Verified = true

	repo.EXPECT().FindUserByID(gomock.Any(), int64(1), gomock.Any()).Return(stored, nil)
	repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

	change := stored.WithoutSecrets()
	change.Verified = false

	updated, err := svc.Update(context.Background(), change)
	require.NoError(t, err)
	assert.True(t, updated.Verified)
}

func TestUpdate_Errors(t *testing.T) {
	t.Run("no id", func(t *testing.T) {
		svc, _ := newTestUserService(t)

		_, err := svc.Update(context.Background(), models.User{Name: "Ada"})
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, repo := newTestUserService(t)
		repo.EXPECT().FindUserByID(gomock.Any(), int64(5), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)

		_, err := svc.Update(context.Background(), models.User{UserID: 5})
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("invalid role", func(t *testing.T) {
		svc, repo := newTestUserService(t)
		stored := storedUser(t, svc, "secret123")
		repo.EXPECT().FindUserByID(gomock.Any(), int64(1), gomock.Any()).Return(stored, nil)

		change := stored
		change.Role = "root"
		_, err := svc.Update(context.Background(), change)
		require.ErrorIs(t, err, validators.ErrInvalidRole)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		svc, repo := newTestUserService(t)
		stored := storedUser(t, svc, "secret123")
		repo.EXPECT().FindUserByID(gomock.Any(), int64(1), gomock.Any()).Return(stored, nil)
		repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

		change := stored
		change.Email = "grace@x.com"
		_, err := svc.Update(context.Background(), change)
		require.ErrorIs(t, err, validators.ErrEmailTaken)
	})
}

func TestGetByID_Projection(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByID(gomock.Any(), int64(1), models.DefaultProjection).Return(models.User{UserID: 1}, nil)
	repo.EXPECT().FindUserByID(gomock.Any(), int64(1), models.Projection(models.FieldPassword)).Return(models.User{UserID: 1, Password: "hash"}, nil)

	user, err := svc.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, user.Password)

	user, err = svc.GetByID(ctx, 1, models.FieldPassword)
	require.NoError(t, err)
	assert.Equal(t, "hash", user.Password)

	_, err = svc.GetByID(ctx, 0)
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestGetByEmail(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	repo.EXPECT().FindUserByEmail(gomock.Any(), "ada@x.com", models.DefaultProjection).Return(models.User{UserID: 1}, nil)
	repo.EXPECT().FindUserByEmail(gomock.Any(), "ghost@x.com", gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)
	repo.EXPECT().FindUserByEmail(gomock.Any(), "down@x.com", gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)

	user, err := svc.GetByEmail(ctx, " ADA@x.com ")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)

	_, err = svc.GetByEmail(ctx, "ghost@x.com")
	require.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.GetByEmail(ctx, "down@x.com")
	require.ErrorIs(t, err, ErrLoadingUser)
	require.ErrorIs(t, err, store.ErrExecutingQuery)

	_, err = svc.GetByEmail(ctx, "")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestComparePassword_ErrorIsDistinctFromFalse(t *testing.T) {
	svc, _ := newTestUserService(t)
	ctx := context.Background()

	ok, err := svc.ComparePassword(ctx, models.User{UserID: 1, Password: "not-a-bcrypt-hash"}, "secret123")
	require.ErrorIs(t, err, crypto.ErrComparisonFailed)
	assert.False(t, ok)

	ok, err = svc.ComparePassword(ctx, models.User{UserID: 1}, "secret123")
	require.ErrorIs(t, err, ErrPasswordNotLoaded)
	assert.False(t, ok)
}

func TestComparePassword_DoesNotTouchLockoutFields(t *testing.T) {
	svc, _ := newTestUserService(t)
	user := storedUser(t, svc, "secret123")
	before := user

	_, err := svc.ComparePassword(context.Background(), user, "wrong")
	require.NoError(t, err)
	assert.Equal(t, before, user)
}

func TestAuthenticate(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()
	stored := storedUser(t, svc, "secret123")

	repo.EXPECT().FindUserByEmail(gomock.Any(), "ada@x.com", models.Projection(models.FieldPassword)).Return(stored, nil).Times(2)
	repo.EXPECT().FindUserByEmail(gomock.Any(), "ghost@x.com", gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)

	user, err := svc.Authenticate(ctx, "ADA@X.COM", "secret123")
	require.NoError(t, err)
	assert.Equal(t, int64(1), user.UserID)
	assert.Empty(t, user.Password)

	_, err = svc.Authenticate(ctx, "ada@x.com", "wrong")
	require.ErrorIs(t, err, ErrWrongPassword)

	_, err = svc.Authenticate(ctx, "ghost@x.com", "secret123")
	require.ErrorIs(t, err, ErrWrongPassword)

	_, err = svc.Authenticate(ctx, "", "secret123")
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestVerify(t *testing.T) {
	t.Run("marks the user verified and keeps the hash", func(t *testing.T) {
		svc, repo := newTestUserService(t)
		stored := storedUser(t, svc, "secret123")

		repo.EXPECT().FindUserByVerification(gomock.Any(), "token-1", models.FullProjection()).Return(stored, nil)
		repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, u models.User) (models.User, error) {
				assert.True(t, u.Verified)
				assert.Equal(t, stored.Password, u.Password)
				return echoUpdate(ctx, u)
			})

		user, err := svc.Verify(context.Background(), "token-1")
		require.NoError(t, err)
		assert.True(t, user.Verified)
		assert.Empty(t, user.Password)
	})

	t.Run("already verified", func(t *testing.T) {
		svc, repo := newTestUserService(t)
		stored := storedUser(t, svc, "secret123")
		stored.Verified = true

		repo.EXPECT().FindUserByVerification(gomock.Any(), "token-1", gomock.Any()).Return(stored, nil)

		user, err := svc.Verify(context.Background(), "token-1")
		require.NoError(t, err)
		assert.True(t, user.Verified)
	})

	t.Run("unknown token", func(t *testing.T) {
		svc, repo := newTestUserService(t)
		repo.EXPECT().FindUserByVerification(gomock.Any(), "nope", gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)

		_, err := svc.Verify(context.Background(), "nope")
		require.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("empty token", func(t *testing.T) {
		svc, _ := newTestUserService(t)

		_, err := svc.Verify(context.Background(), "  ")
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	})
}

func TestSetLoginAttempts(t *testing.T) {
	t.Run("reset to zero after a successful login", func(t *testing.T) {
		svc, repo := newTestUserService(t)
		stored := storedUser(t, svc, "secret123")
		stored.LoginAttempts = 5
		stored.BlockExpires = fixedNow.Add(time.Hour)

		repo.EXPECT().FindUserByID(gomock.Any(), int64(1), models.FullProjection()).Return(stored, nil)
		repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, u models.User) (models.User, error) {
				assert.Equal(t, 0, u.LoginAttempts)
				assert.Equal(t, fixedNow, u.BlockExpires)
				assert.Equal(t, stored.Password, u.Password)
				assert.Equal(t, stored.Role, u.Role)
				return echoUpdate(ctx, u)
			})

		user, err := svc.SetLoginAttempts(context.Background(), 1, 0, time.Time{})
		require.NoError(t, err)
		assert.Equal(t, 0, user.LoginAttempts)
		assert.Empty(t, user.Password)
	})

	t.Run("block until a given time", func(t *testing.T) {
		svc, repo := newTestUserService(t)
		stored := storedUser(t, svc, "secret123")
		until := fixedNow.Add(2 * time.Hour)

		repo.EXPECT().FindUserByID(gomock.Any(), int64(1), gomock.Any()).Return(stored, nil)
		repo.EXPECT().UpdateUser(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		user, err := svc.SetLoginAttempts(context.Background(), 1, 5, until)
		require.NoError(t, err)
		assert.Equal(t, 5, user.LoginAttempts)
		assert.Equal(t, until, user.BlockExpires)
	})

	t.Run("invalid arguments", func(t *testing.T) {
		svc, _ := newTestUserService(t)

		_, err := svc.SetLoginAttempts(context.Background(), 0, 1, time.Time{})
		require.ErrorIs(t, err, ErrInvalidDataProvided)

		_, err = svc.SetLoginAttempts(context.Background(), 1, -1, time.Time{})
		require.ErrorIs(t, err, ErrInvalidDataProvided)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, repo := newTestUserService(t)
		repo.EXPECT().FindUserByID(gomock.Any(), int64(9), gomock.Any()).Return(models.User{}, store.ErrNoUserWasFound)

		_, err := svc.SetLoginAttempts(context.Background(), 9, 0, time.Time{})
		require.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestPaginate(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	verified := true
	repo.EXPECT().ListUsers(gomock.Any(), models.ListRequest{Role: models.RoleAdmin, Verified: &verified, Page: 1, Limit: models.DefaultPageLimit}).
		Return(models.Page{Users: []models.User{{UserID: 1}}, Total: 1, Page: 1, Limit: 10, Pages: 1}, nil)
	repo.EXPECT().ListUsers(gomock.Any(), models.ListRequest{Query: "ada", Page: 2, Limit: models.MaxPageLimit}).
		Return(models.Page{Total: 0, Page: 2, Limit: 100}, nil)

	page, err := svc.Paginate(ctx, models.ListRequest{Role: models.RoleAdmin, Verified: &verified})
	require.NoError(t, err)
	assert.Equal(t, int64(1), page.Total)

	_, err = svc.Search(ctx, " ada ", 2, 1000)
	require.NoError(t, err)

	_, err = svc.Paginate(ctx, models.ListRequest{Role: "root"})
	require.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestPaginate_HugePageKeepsOffsetInRange(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().ListUsers(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.ListRequest) (models.Page, error) {
			assert.Equal(t, models.MaxPage, req.Page)
			assert.GreaterOrEqual(t, req.Offset(), 0)
			return models.Page{Page: req.Page, Limit: req.Limit}, nil
		})

	_, err := svc.Search(context.Background(), "", math.MaxInt, models.MaxPageLimit)
	require.NoError(t, err)
}

func TestPaginate_RepositoryFailure(t *testing.T) {
	svc, repo := newTestUserService(t)

	repo.EXPECT().ListUsers(gomock.Any(), gomock.Any()).Return(models.Page{}, store.ErrExecutingQuery)

	_, err := svc.Search(context.Background(), "ada", 1, 10)
	require.ErrorIs(t, err, ErrLoadingUser)
}
