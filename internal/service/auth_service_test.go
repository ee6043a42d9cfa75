package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/user-management/internal/config"
	"github.com/spec-kit/user-management/internal/domain"
	"github.com/spec-kit/user-management/internal/repository"
	"github.com/spec-kit/user-management/internal/service"
	apperrors "github.com/spec-kit/user-management/pkg/util"
)

func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "service-test-secret",
			AccessTokenTTLMinutes: 60,
			BcryptCost:            bcrypt.MinCost,
		},
	}
}

func errorCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	return domainErr.Code
}

func TestAuthService_Signup(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	svc := service.NewAuthService(testConfig(), users, nil)
	ctx := context.Background()

	user, token, exp, err := svc.Signup(ctx, "A@B.com", "Aa1!aaaa", "  A B  ")
	require.NoError(t, err)
	assert.False(t, exp.IsZero())

	assert.Equal(t, "a@b.com", user.Email, "email is case-normalized")
	assert.Equal(t, "A B", user.FullName, "surrounding whitespace stripped")
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Equal(t, domain.UserStatusActive, user.Status)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "Aa1!aaaa", user.PasswordHash)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.Subject)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestAuthService_SignupDuplicateEmail(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	svc := service.NewAuthService(testConfig(), users, nil)
	ctx := context.Background()

	_, _, _, err := svc.Signup(ctx, "dup@example.com", "Aa1!aaaa", "First User")
	require.NoError(t, err)

	// Case-variant email must still collide.
	_, _, _, err = svc.Signup(ctx, "Dup@Example.com", "Aa1!aaaa", "Second User")
	assert.Equal(t, "CONFLICT", errorCode(t, err))

	total, err := users.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total, "exactly one record after duplicate signup")
}

func TestAuthService_Login(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	svc := service.NewAuthService(testConfig(), users, nil)
	ctx := context.Background()

	created, _, _, err := svc.Signup(ctx, "login@example.com", "Aa1!aaaa", "Login User")
	require.NoError(t, err)

	user, token, _, err := svc.Login(ctx, "LOGIN@example.com", "Aa1!aaaa")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)

	claims, err := svc.TokenManager().ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.Subject)
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	svc := service.NewAuthService(testConfig(), users, nil)
	ctx := context.Background()

	_, _, _, err := svc.Signup(ctx, "known@example.com", "Aa1!aaaa", "Known User")
	require.NoError(t, err)

	_, _, _, wrongPassword := svc.Login(ctx, "known@example.com", "Bb2!bbbb")
	_, _, _, unknownEmail := svc.Login(ctx, "nobody@example.com", "Aa1!aaaa")

	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, wrongPassword))
	assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, unknownEmail))
	assert.Equal(t, wrongPassword.Error(), unknownEmail.Error())
}

func TestAuthService_LoginInactiveAccount(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	svc := service.NewAuthService(testConfig(), users, nil)
	ctx := context.Background()

	created, _, _, err := svc.Signup(ctx, "inactive@example.com", "Aa1!aaaa", "Inactive User")
	require.NoError(t, err)

	created.Status = domain.UserStatusInactive
	require.NoError(t, users.Update(ctx, created))

	_, token, _, err := svc.Login(ctx, "inactive@example.com", "Aa1!aaaa")
	assert.Equal(t, "ACCOUNT_INACTIVE", errorCode(t, err))
	assert.Empty(t, token, "no token issued for an inactive account")
}

func TestAuthService_CurrentUserReflectsLiveRecord(t *testing.T) {
	users := repository.NewMemoryUserRepository()
	svc := service.NewAuthService(testConfig(), users, nil)
	ctx := context.Background()

	created, _, _, err := svc.Signup(ctx, "live@example.com", "Aa1!aaaa", "Live User")
	require.NoError(t, err)

	created.Status = domain.UserStatusInactive
	created.Role = domain.RoleAdmin
	require.NoError(t, users.Update(ctx, created))

	current, err := svc.CurrentUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.UserStatusInactive, current.Status)
	assert.Equal(t, domain.RoleAdmin, current.Role)
}

func TestAuthService_CurrentUserUnknownID(t *testing.T) {
	svc := service.NewAuthService(testConfig(), repository.NewMemoryUserRepository(), nil)
	_, err := svc.CurrentUser(context.Background(), "missing")
	assert.Equal(t, "NOT_FOUND", errorCode(t, err))
}
