package service

import (
	"testing"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/repository"
	"github.com/furnimart/furnimart-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupWishlistServiceTest(t *testing.T) (WishlistService, *model.User, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	wishlistRepo := repository.NewWishlistRepository(testDB)
	productRepo := repository.NewProductRepository(testDB)
	wishlistService := NewWishlistService(wishlistRepo, productRepo)

	user := &model.User{
		Email:        "buyer@example.com",
		PasswordHash: "hash",
		Name:         "Test Buyer",
		Role:         model.RoleUser,
	}
	testDB.Create(user)

	return wishlistService, user, testDB
}

func TestWishlistService_AddAndGet(t *testing.T) {
	wishlistService, user, testDB := setupWishlistServiceTest(t)

	product := createTestProduct(t, testDB, "oak-chair")

	item, err := wishlistService.AddToWishlist(user.ID, product.ID)
	require.NoError(t, err)
	assert.Equal(t, product.ID, item.ProductID)
	// Product preloaded for the response
	assert.Equal(t, product.Name, item.Product.Name)

	items, err := wishlistService.GetWishlist(user.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, product.ID, items[0].ProductID)
}

func TestWishlistService_AddDuplicate(t *testing.T) {
	wishlistService, user, testDB := setupWishlistServiceTest(t)

	product := createTestProduct(t, testDB, "oak-chair")

	_, err := wishlistService.AddToWishlist(user.ID, product.ID)
	require.NoError(t, err)

	_, err = wishlistService.AddToWishlist(user.ID, product.ID)
	assert.ErrorIs(t, err, ErrWishlistItemExists)
}

func TestWishlistService_AddUnknownProduct(t *testing.T) {
	wishlistService, user, _ := setupWishlistServiceTest(t)

	_, err := wishlistService.AddToWishlist(user.ID, 9999)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestWishlistService_Remove(t *testing.T) {
	wishlistService, user, testDB := setupWishlistServiceTest(t)

	product := createTestProduct(t, testDB, "oak-chair")

	_, err := wishlistService.AddToWishlist(user.ID, product.ID)
	require.NoError(t, err)

	require.NoError(t, wishlistService.RemoveFromWishlist(user.ID, product.ID))

	items, err := wishlistService.GetWishlist(user.ID)
	require.NoError(t, err)
	assert.Len(t, items, 0)

	// Removing again fails
	err = wishlistService.RemoveFromWishlist(user.ID, product.ID)
	assert.ErrorIs(t, err, ErrWishlistItemNotFound)
}
