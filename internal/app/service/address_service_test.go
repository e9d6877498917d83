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

func setupAddressServiceTest(t *testing.T) (AddressService, *model.User, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	addressRepo := repository.NewAddressRepository(testDB)
	addressService := NewAddressService(addressRepo)

	user := &model.User{
		Email:        "buyer@example.com",
		PasswordHash: "hash",
		Name:         "Test Buyer",
		Role:         model.RoleUser,
	}
	testDB.Create(user)

	return addressService, user, testDB
}

func testAddressInput(city string) AddressInput {
	return AddressInput{
		FirstName:  "길동",
		LastName:   "홍",
		Address1:   "테스트로 1",
		City:       city,
		PostalCode: "06000",
		Country:    "KR",
	}
}

func TestAddressService_FirstAddressBecomesDefault(t *testing.T) {
	addressService, user, _ := setupAddressServiceTest(t)

	first, err := addressService.CreateAddress(user.ID, testAddressInput("서울"))
	require.NoError(t, err)
	assert.True(t, first.IsDefault)
	assert.Equal(t, model.AddressTypeShipping, first.Type)

	second, err := addressService.CreateAddress(user.ID, testAddressInput("부산"))
	require.NoError(t, err)
	assert.False(t, second.IsDefault)
}

func TestAddressService_ExplicitDefaultDisplacesPrevious(t *testing.T) {
	addressService, user, _ := setupAddressServiceTest(t)

	first, err := addressService.CreateAddress(user.ID, testAddressInput("서울"))
	require.NoError(t, err)

	input := testAddressInput("부산")
	input.IsDefault = true
	second, err := addressService.CreateAddress(user.ID, input)
	require.NoError(t, err)
	assert.True(t, second.IsDefault)

	addresses, err := addressService.GetUserAddresses(user.ID)
	require.NoError(t, err)
	require.Len(t, addresses, 2)

	defaults := 0
	for _, a := range addresses {
		if a.IsDefault {
			defaults++
			assert.Equal(t, second.ID, a.ID)
		}
		_ = first
	}
	assert.Equal(t, 1, defaults)
}

func TestAddressService_SetDefaultAddress(t *testing.T) {
	addressService, user, _ := setupAddressServiceTest(t)

	first, err := addressService.CreateAddress(user.ID, testAddressInput("서울"))
	require.NoError(t, err)
	second, err := addressService.CreateAddress(user.ID, testAddressInput("부산"))
	require.NoError(t, err)

	require.NoError(t, addressService.SetDefaultAddress(second.ID, user.ID))

	addresses, err := addressService.GetUserAddresses(user.ID)
	require.NoError(t, err)
	for _, a := range addresses {
		if a.ID == second.ID {
			assert.True(t, a.IsDefault)
		}
		if a.ID == first.ID {
			assert.False(t, a.IsDefault)
		}
	}
}

func TestAddressService_DeleteDefaultPromotesRemaining(t *testing.T) {
	addressService, user, _ := setupAddressServiceTest(t)

	first, err := addressService.CreateAddress(user.ID, testAddressInput("서울"))
	require.NoError(t, err)
	second, err := addressService.CreateAddress(user.ID, testAddressInput("부산"))
	require.NoError(t, err)
	assert.False(t, second.IsDefault)

	require.NoError(t, addressService.DeleteAddress(first.ID, user.ID))

	addresses, err := addressService.GetUserAddresses(user.ID)
	require.NoError(t, err)
	require.Len(t, addresses, 1)
	assert.Equal(t, second.ID, addresses[0].ID)
	assert.True(t, addresses[0].IsDefault)
}

func TestAddressService_OwnershipChecks(t *testing.T) {
	addressService, user, testDB := setupAddressServiceTest(t)

	address, err := addressService.CreateAddress(user.ID, testAddressInput("서울"))
	require.NoError(t, err)

	other := &model.User{Email: "other@example.com", PasswordHash: "hash", Name: "Other", Role: model.RoleUser}
	testDB.Create(other)

	_, err = addressService.UpdateAddress(address.ID, other.ID, testAddressInput("부산"))
	assert.ErrorIs(t, err, ErrNotAddressOwner)

	err = addressService.DeleteAddress(address.ID, other.ID)
	assert.ErrorIs(t, err, ErrNotAddressOwner)

	err = addressService.SetDefaultAddress(9999, user.ID)
	assert.ErrorIs(t, err, ErrAddressNotFound)
}

func TestAddressService_InvalidType(t *testing.T) {
	addressService, user, _ := setupAddressServiceTest(t)

	input := testAddressInput("서울")
	input.Type = "warehouse"
	_, err := addressService.CreateAddress(user.ID, input)
	assert.ErrorIs(t, err, ErrInvalidAddressType)
}
