package service_test

import (
	"context"
	"testing"
	"time"

	"vehicle-rental-backend/internal/domain"
	"vehicle-rental-backend/internal/security"
	"vehicle-rental-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const testJWTSecret = "unit-test-secret-key-for-token-manager!!"

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testJWTSecret, time.Hour)

	activeUser := func() *domain.User {
		return &domain.User{
			ID:           5,
			Username:     "agent1",
			PasswordHash: hashPassword(t, "correct horse"),
			Role:         domain.RoleAgent,
			Status:       domain.UserStatusActive,
		}
	}

	t.Run("Success issues valid token", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByUsername", ctx, "agent1").Return(activeUser(), nil)
		svc := service.NewAuthService(userRepo, tokens)

		token, user, err := svc.Login(ctx, "agent1", "correct horse")
		assert.NoError(t, err)
		assert.Equal(t, int64(5), user.ID)

		claims, err := tokens.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(5), claims.UserID)
		assert.Equal(t, domain.RoleAgent, claims.Role)
	})

	t.Run("Wrong password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByUsername", ctx, "agent1").Return(activeUser(), nil)
		svc := service.NewAuthService(userRepo, tokens)

		_, _, err := svc.Login(ctx, "agent1", "wrong")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Unknown username", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("GetByUsername", ctx, "ghost").Return(nil, domain.ErrNotFound)
		svc := service.NewAuthService(userRepo, tokens)

		_, _, err := svc.Login(ctx, "ghost", "correct horse")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})

	t.Run("Inactive user", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		u := activeUser()
		u.Status = domain.UserStatusInactive
		userRepo.On("GetByUsername", ctx, "agent1").Return(u, nil)
		svc := service.NewAuthService(userRepo, tokens)

		_, _, err := svc.Login(ctx, "agent1", "correct horse")
		assert.ErrorIs(t, err, service.ErrInvalidCredentials)
	})
}

func TestAuthService_CreateUser(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testJWTSecret, time.Hour)

	t.Run("Hashes password and defaults status", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(nil)
		svc := service.NewAuthService(userRepo, tokens)

		u := &domain.User{Username: "newagent", Role: domain.RoleAgent}
		err := svc.CreateUser(ctx, u, "longenough")
		assert.NoError(t, err)
		assert.Equal(t, domain.UserStatusActive, u.Status)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("longenough")))
	})

	t.Run("Short password rejected", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		err := svc.CreateUser(ctx, &domain.User{Username: "x", Role: domain.RoleAgent}, "short")
		assert.ErrorIs(t, err, domain.ErrValidation)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unknown role rejected", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := service.NewAuthService(userRepo, tokens)

		err := svc.CreateUser(ctx, &domain.User{Username: "x", Role: domain.Role("Viewer")}, "longenough")
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
