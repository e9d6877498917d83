package service

import (
	"testing"
	"time"

	"github.com/furnimart/furnimart-backend/config"
	"github.com/furnimart/furnimart-backend/internal/app/repository"
	"github.com/furnimart/furnimart-backend/internal/db"
	"github.com/furnimart/furnimart-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAuthServiceTest(t *testing.T) AuthService {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	userRepo := repository.NewUserRepository(testDB)
	jwtCfg := &config.JWTConfig{
		Secret:             "test-secret",
		AccessTokenExpiry:  15 * time.Minute,
		RefreshTokenExpiry: 7 * 24 * time.Hour,
	}
	return NewAuthService(userRepo, jwtCfg)
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	authService := setupAuthServiceTest(t)

	user, tokens, err := authService.Register(RegisterInput{
		Email:    "buyer@example.com",
		Password: "password123",
		Name:     "Test Buyer",
		Phone:    "010-1234-5678",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.NotEqual(t, "password123", user.PasswordHash)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEmpty(t, tokens.RefreshToken)

	// Token carries the user identity
	claims, err := util.ValidateToken(tokens.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, "buyer@example.com", claims.Email)

	// Login with the same credentials
	loggedIn, _, err := authService.Login(LoginInput{
		Email:    "buyer@example.com",
		Password: "password123",
	})
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	authService := setupAuthServiceTest(t)

	_, _, err := authService.Register(RegisterInput{
		Email:    "buyer@example.com",
		Password: "password123",
		Name:     "First",
	})
	require.NoError(t, err)

	_, _, err = authService.Register(RegisterInput{
		Email:    "buyer@example.com",
		Password: "password456",
		Name:     "Second",
	})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestAuthService_LoginInvalidCredentials(t *testing.T) {
	authService := setupAuthServiceTest(t)

	_, _, err := authService.Register(RegisterInput{
		Email:    "buyer@example.com",
		Password: "password123",
		Name:     "Test Buyer",
	})
	require.NoError(t, err)

	_, _, err = authService.Login(LoginInput{
		Email:    "buyer@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = authService.Login(LoginInput{
		Email:    "unknown@example.com",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_RefreshTokens(t *testing.T) {
	authService := setupAuthServiceTest(t)

	user, tokens, err := authService.Register(RegisterInput{
		Email:    "buyer@example.com",
		Password: "password123",
		Name:     "Test Buyer",
	})
	require.NoError(t, err)

	refreshed, err := authService.RefreshTokens(tokens.RefreshToken)
	require.NoError(t, err)

	claims, err := util.ValidateToken(refreshed.AccessToken, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	_, err = authService.RefreshTokens("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_UpdateProfile(t *testing.T) {
	authService := setupAuthServiceTest(t)

	user, _, err := authService.Register(RegisterInput{
		Email:    "buyer@example.com",
		Password: "password123",
		Name:     "Before",
	})
	require.NoError(t, err)

	updated, err := authService.UpdateProfile(user.ID, UpdateProfileInput{
		Name:         "After",
		Phone:        "010-9999-0000",
		ProfileImage: "https://cdn.example.com/avatar.jpg",
	})
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Name)
	assert.Equal(t, "010-9999-0000", updated.Phone)

	// Empty fields leave existing values in place
	updated, err = authService.UpdateProfile(user.ID, UpdateProfileInput{})
	require.NoError(t, err)
	assert.Equal(t, "After", updated.Name)
}

func TestAuthService_ChangePassword(t *testing.T) {
	authService := setupAuthServiceTest(t)

	user, _, err := authService.Register(RegisterInput{
		Email:    "buyer@example.com",
		Password: "password123",
		Name:     "Test Buyer",
	})
	require.NoError(t, err)

	err = authService.ChangePassword(user.ID, "wrong-password", "newpassword1")
	assert.ErrorIs(t, err, ErrWrongPassword)

	require.NoError(t, authService.ChangePassword(user.ID, "password123", "newpassword1"))

	_, _, err = authService.Login(LoginInput{Email: "buyer@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = authService.Login(LoginInput{Email: "buyer@example.com", Password: "newpassword1"})
	assert.NoError(t, err)
}
