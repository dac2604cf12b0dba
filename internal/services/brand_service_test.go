package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/influmatch/influmatch-backend/internal/database/repository"
	"github.com/influmatch/influmatch-backend/internal/models"
)

func TestGetMyBrandReturnsNilBeforeFirstSave(t *testing.T) {
	db := newTestDB(t)
	user := &models.User{Email: "new@example.com", PasswordHash: "x", IsActive: true}
	require.NoError(t, db.Create(user).Error)
	service := NewBrandService(repository.NewBrandRepository(db))

	brand, err := service.GetMyBrand(user.ID)
	require.NoError(t, err)
	assert.Nil(t, brand)

	id, err := service.ResolveBrandID(user.ID)
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestUpsertMyBrandCreatesThenUpdates(t *testing.T) {
	db := newTestDB(t)
	user := &models.User{Email: "owner@example.com", PasswordHash: "x", IsActive: true}
	require.NoError(t, db.Create(user).Error)
	service := NewBrandService(repository.NewBrandRepository(db))

	created, err := service.UpsertMyBrand(user.ID, &models.UpsertBrandRequest{
		Name:     "Glow Cosmetics",
		Industry: "Beauty & Personal Care",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Glow Cosmetics", created.Name)

	updated, err := service.UpsertMyBrand(user.ID, &models.UpsertBrandRequest{
		Name:        "Glow Cosmetics India",
		Website:     "https://glowcosmetics.in",
		ContactName: "Priya Sharma",
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID, "second save must update, not create")
	assert.Equal(t, "Glow Cosmetics India", updated.Name)
	assert.Equal(t, "https://glowcosmetics.in", updated.Website)

	var count int64
	require.NoError(t, db.Model(&models.Brand{}).Where("user_id = ?", user.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
