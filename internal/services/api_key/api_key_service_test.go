package api_key

import (
	"testing"

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

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.APIKey{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, active bool) *models.User {
	t.Helper()
	user := &models.User{Email: "agent@example.com", PasswordHash: "x", IsActive: active}
	require.NoError(t, db.Create(user).Error)
	return user
}

func TestGenerateAPIKeyReplacesExistingKey(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, true)
	service := NewService(db)

	first, err := service.GenerateAPIKey(user.ID)
	require.NoError(t, err)
	assert.Len(t, first.Key, 64)
	assert.True(t, first.IsActive)

	second, err := service.GenerateAPIKey(user.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.Key, second.Key)

	// One key per user: the first key stops working.
	var count int64
	require.NoError(t, db.Model(&models.APIKey{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)

	_, err = service.ValidateAPIKey(first.Key)
	require.Error(t, err)
	assert.Equal(t, "invalid API key", err.Error())
}

func TestGenerateAPIKeyRequiresActiveUser(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, false)

	_, err := NewService(db).GenerateAPIKey(user.ID)
	require.Error(t, err)
	assert.Equal(t, "user is not active", err.Error())
}

func TestValidateAPIKey(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, true)
	service := NewService(db)

	key, err := service.GenerateAPIKey(user.ID)
	require.NoError(t, err)

	got, err := service.ValidateAPIKey(key.Key)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	// Validation stamps last-used.
	stored, err := service.GetAPIKeyByUserID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotNil(t, stored.LastUsedAt)

	_, err = service.ValidateAPIKey("nonexistent")
	require.Error(t, err)
	assert.Equal(t, "invalid API key", err.Error())
}

func TestValidateAPIKeyRejectsDeactivatedOwner(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, true)
	service := NewService(db)

	key, err := service.GenerateAPIKey(user.ID)
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.User{}).Where("id = ?", user.ID).Update("is_active", false).Error)

	_, err = service.ValidateAPIKey(key.Key)
	require.Error(t, err)
	assert.Equal(t, "user is not active", err.Error())
}

func TestDeleteAPIKey(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, true)
	service := NewService(db)

	_, err := service.GenerateAPIKey(user.ID)
	require.NoError(t, err)

	require.NoError(t, service.DeleteAPIKey(user.ID))

	got, err := service.GetAPIKeyByUserID(user.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	err = service.DeleteAPIKey(user.ID)
	require.Error(t, err)
	assert.Equal(t, "API key not found", err.Error())
}
