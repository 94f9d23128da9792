package auth_test

import (
	"context"
	"errors"
	"testing"

	"go-payroll/internal/auth"
	autherrors "go-payroll/internal/auth/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type fakeAuthRepository struct {
	createFn     func(ctx context.Context, user *auth.User) error
	getByEmailFn func(ctx context.Context, email string) (*auth.User, error)
	getByIDFn    func(ctx context.Context, id uuid.UUID) (*auth.User, error)
}

func (f *fakeAuthRepository) Create(ctx context.Context, user *auth.User) error {
	if f.createFn != nil {
		return f.createFn(ctx, user)
	}
	return nil
}

func (f *fakeAuthRepository) GetByEmail(ctx context.Context, email string) (*auth.User, error) {
	if f.getByEmailFn != nil {
		return f.getByEmailFn(ctx, email)
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeAuthRepository) GetByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	if f.getByIDFn != nil {
		return f.getByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func TestAuthService_Login(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	password := "password123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	user := &auth.User{
		ID:       uuid.New(),
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: string(hashed),
		IsActive: true,
	}

	repo := &fakeAuthRepository{
		getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
			if email == user.Email {
				return user, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	service := auth.NewService(repo)

	t.Run("success", func(t *testing.T) {
		accessToken, refreshToken, resp, err := service.Login(ctx, user.Email, password)

		assert.NoError(t, err)
		assert.NotEmpty(t, accessToken)
		assert.NotEmpty(t, refreshToken)
		assert.Equal(t, user.Email, resp.Email)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, _, _, err := service.Login(ctx, user.Email, "wrongpass")
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, _, _, err := service.Login(ctx, "nobody@example.com", password)
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})

	t.Run("inactive user", func(t *testing.T) {
		user.IsActive = false
		defer func() { user.IsActive = true }()

		_, _, _, err := service.Login(ctx, user.Email, password)
		assert.ErrorIs(t, err, autherrors.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	ctx := context.Background()

	password := "password123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	user := &auth.User{
		ID:       uuid.New(),
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: string(hashed),
		IsActive: true,
	}

	repo := &fakeAuthRepository{
		getByEmailFn: func(ctx context.Context, email string) (*auth.User, error) {
			return user, nil
		},
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*auth.User, error) {
			if id == user.ID {
				return user, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	service := auth.NewService(repo)

	_, refreshToken, _, err := service.Login(ctx, user.Email, password)
	assert.NoError(t, err)

	newAccess, newRefresh, resp, err := service.RefreshToken(ctx, refreshToken)

	assert.NoError(t, err)
	assert.NotEmpty(t, newAccess)
	assert.NotEmpty(t, newRefresh)
	assert.Equal(t, user.ID.String(), resp.ID)

	_, _, _, err = service.RefreshToken(ctx, "not-a-token")
	assert.ErrorIs(t, err, autherrors.ErrInvalidRefreshToken)
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success hashes password and lowercases email", func(t *testing.T) {
		var created *auth.User
		repo := &fakeAuthRepository{
			createFn: func(ctx context.Context, user *auth.User) error {
				created = user
				return nil
			},
		}
		service := auth.NewService(repo)

		resp, err := service.Register(ctx, auth.RegisterRequest{
			Name:     "Admin",
			Email:    "  Admin@Example.COM",
			Password: "password123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "admin@example.com", resp.Email)
		assert.NotNil(t, created)
		assert.NotEqual(t, "password123", created.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.Password), []byte("password123")))
	})

	t.Run("duplicate email", func(t *testing.T) {
		repo := &fakeAuthRepository{
			createFn: func(ctx context.Context, user *auth.User) error {
				return errors.New(`duplicate key value violates unique constraint "idx_users_email"`)
			},
		}
		service := auth.NewService(repo)

		_, err := service.Register(ctx, auth.RegisterRequest{
			Name:     "Admin",
			Email:    "admin@example.com",
			Password: "password123",
		})

		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyExists)
	})
}
