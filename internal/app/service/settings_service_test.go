package service

import (
	"testing"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/repository"
	"github.com/furnimart/furnimart-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSettingsServiceTest(t *testing.T) (SettingsService, *model.User) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	settingsRepo := repository.NewSettingsRepository(testDB)
	settingsService := NewSettingsService(settingsRepo)

	user := &model.User{
		Email:        "buyer@example.com",
		PasswordHash: "hash",
		Name:         "Test Buyer",
		Role:         model.RoleUser,
	}
	testDB.Create(user)

	return settingsService, user
}

func TestSettingsService_LazyCreateDefaults(t *testing.T) {
	settingsService, user := setupSettingsServiceTest(t)

	settings, err := settingsService.GetSettings(user.ID)
	require.NoError(t, err)
	assert.NotZero(t, settings.ID)
	assert.True(t, settings.OrderUpdates)
	assert.False(t, settings.Promotions)
	assert.False(t, settings.Newsletter)
	assert.True(t, settings.ReviewReminders)

	// Second read returns the same row.
	again, err := settingsService.GetSettings(user.ID)
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)
}

func TestSettingsService_PartialUpdate(t *testing.T) {
	settingsService, user := setupSettingsServiceTest(t)

	on := true
	off := false
	updated, err := settingsService.UpdateSettings(user.ID, SettingsInput{
		Promotions:   &on,
		OrderUpdates: &off,
	})
	require.NoError(t, err)

	assert.True(t, updated.Promotions)
	assert.False(t, updated.OrderUpdates)
	// Untouched fields keep their defaults.
	assert.True(t, updated.ReviewReminders)
	assert.False(t, updated.Newsletter)
}
