package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/influmatch/influmatch-backend/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.RefreshToken{}))
	return db
}

func register(t *testing.T, service *AuthService, email string) *models.AuthResponse {
	t.Helper()
	resp, err := service.Register(&models.RegisterRequest{
		Email:    email,
		Password: "secret123",
		FullName: "Priya Sharma",
	})
	require.NoError(t, err)
	return resp
}

func TestRegisterIssuesTokenPair(t *testing.T) {
	service := NewAuthService(newTestDB(t))

	resp := register(t, service, "brand@example.com")

	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Positive(t, resp.ExpiresIn)
	assert.Equal(t, "brand@example.com", resp.User.Email)
	assert.True(t, resp.User.IsActive)
	assert.NotEqual(t, "secret123", resp.User.PasswordHash, "password must be stored hashed")
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	service := NewAuthService(newTestDB(t))
	register(t, service, "brand@example.com")

	_, err := service.Register(&models.RegisterRequest{
		Email:    "brand@example.com",
		Password: "another",
	})
	require.Error(t, err)
	assert.Equal(t, "email already registered", err.Error())
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(db)
	registered := register(t, service, "brand@example.com")

	resp, err := service.Login(&models.LoginRequest{Email: "brand@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)

	_, err = service.Login(&models.LoginRequest{Email: "brand@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())

	_, err = service.Login(&models.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())

	require.NoError(t, service.SetUserActive(registered.User.ID, false))
	_, err = service.Login(&models.LoginRequest{Email: "brand@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.Equal(t, "account is deactivated", err.Error())
}

func TestValidateToken(t *testing.T) {
	service := NewAuthService(newTestDB(t))
	resp := register(t, service, "brand@example.com")

	info, err := service.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, info.UserID)
	assert.Equal(t, "brand@example.com", info.Email)
	assert.True(t, info.ExpiresAt.After(time.Now()))

	_, err = service.ValidateToken("not-a-jwt")
	assert.Error(t, err)
}

func TestLogoutWithoutTokenInvalidatesAccessTokens(t *testing.T) {
	service := NewAuthService(newTestDB(t))
	resp := register(t, service, "brand@example.com")

	// Bumping the token version makes previously issued access tokens stale.
	require.NoError(t, service.Logout("", resp.User.ID))

	_, err := service.ValidateToken(resp.AccessToken)
	require.Error(t, err)
	assert.Equal(t, "token version mismatch", err.Error())
}

func TestRefreshTokenIsSingleUse(t *testing.T) {
	service := NewAuthService(newTestDB(t))
	resp := register(t, service, "brand@example.com")

	rotated, err := service.RefreshToken(resp.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, resp.RefreshToken, rotated.RefreshToken)

	_, err = service.RefreshToken(resp.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, "invalid refresh token", err.Error())

	_, err = service.RefreshToken(rotated.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshTokenExpired(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(db)
	resp := register(t, service, "brand@example.com")

	require.NoError(t, db.Model(&models.RefreshToken{}).
		Where("token = ?", resp.RefreshToken).
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	_, err := service.RefreshToken(resp.RefreshToken)
	require.Error(t, err)
	assert.Equal(t, "refresh token expired", err.Error())
}

func TestChangePassword(t *testing.T) {
	service := NewAuthService(newTestDB(t))
	resp := register(t, service, "brand@example.com")

	err := service.ChangePassword(resp.User.ID, "wrong", "newsecret")
	require.Error(t, err)
	assert.Equal(t, "current password is incorrect", err.Error())

	require.NoError(t, service.ChangePassword(resp.User.ID, "secret123", "newsecret"))

	_, err = service.Login(&models.LoginRequest{Email: "brand@example.com", Password: "newsecret"})
	require.NoError(t, err)

	// Outstanding access tokens are invalidated by the version bump.
	_, err = service.ValidateToken(resp.AccessToken)
	require.Error(t, err)
	assert.Equal(t, "token version mismatch", err.Error())
}

func TestCreateAdminUserIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	service := NewAuthService(db)

	require.NoError(t, service.CreateAdminUser())
	require.NoError(t, service.CreateAdminUser())

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("is_admin = ?", true).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
