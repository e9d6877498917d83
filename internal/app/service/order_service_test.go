package service

import (
	"testing"
	"time"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/repository"
	"github.com/furnimart/furnimart-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOrderServiceTest(t *testing.T) (OrderService, *model.User, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	orderRepo := repository.NewOrderRepository(testDB)
	orderService := NewOrderService(orderRepo)

	user := &model.User{
		Email:        "buyer@example.com",
		PasswordHash: "hash",
		Name:         "Test Buyer",
		Role:         model.RoleUser,
	}
	testDB.Create(user)

	return orderService, user, testDB
}

func TestOrderService_GetUserOrders_StatusFilter(t *testing.T) {
	orderService, user, testDB := setupOrderServiceTest(t)

	product := createTestProduct(t, testDB, "oak-chair")
	base := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	createTestOrder(t, testDB, user.ID, model.OrderStatusProcessing, base, product)
	createTestOrder(t, testDB, user.ID, model.OrderStatusShipped, base.Add(time.Hour), product)
	createTestOrder(t, testDB, user.ID, model.OrderStatusCompleted, base.Add(2*time.Hour), product)

	// All tab
	orders, err := orderService.GetUserOrders(user.ID, "")
	require.NoError(t, err)
	assert.Len(t, orders, 3)
	// Newest first
	assert.Equal(t, model.OrderStatusCompleted, orders[0].Status)

	// Status tab
	orders, err = orderService.GetUserOrders(user.ID, "shipped")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, model.OrderStatusShipped, orders[0].Status)
}

func TestOrderService_GetUserOrders_InvalidStatus(t *testing.T) {
	orderService, user, _ := setupOrderServiceTest(t)

	_, err := orderService.GetUserOrders(user.ID, "delivered")
	assert.ErrorIs(t, err, ErrInvalidOrderStatus)
}

func TestOrderService_GetOrderByID_Ownership(t *testing.T) {
	orderService, user, testDB := setupOrderServiceTest(t)

	product := createTestProduct(t, testDB, "oak-chair")
	order := createTestOrder(t, testDB, user.ID, model.OrderStatusCompleted, time.Now(), product)

	found, err := orderService.GetOrderByID(order.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, order.OrderNumber, found.OrderNumber)
	assert.Len(t, found.Items, 1)

	other := &model.User{Email: "other@example.com", PasswordHash: "hash", Name: "Other", Role: model.RoleUser}
	testDB.Create(other)

	_, err = orderService.GetOrderByID(order.ID, other.ID)
	assert.ErrorIs(t, err, ErrNotOrderOwner)

	_, err = orderService.GetOrderByID(9999, user.ID)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_UpdateOrderStatus(t *testing.T) {
	orderService, user, testDB := setupOrderServiceTest(t)

	product := createTestProduct(t, testDB, "oak-chair")
	order := createTestOrder(t, testDB, user.ID, model.OrderStatusProcessing, time.Now(), product)

	require.NoError(t, orderService.UpdateOrderStatus(order.ID, model.OrderStatusShipped))

	reloaded, err := orderService.GetOrderByID(order.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusShipped, reloaded.Status)

	assert.ErrorIs(t, orderService.UpdateOrderStatus(order.ID, "bogus"), ErrInvalidOrderStatus)
	assert.ErrorIs(t, orderService.UpdateOrderStatus(9999, model.OrderStatusShipped), ErrOrderNotFound)
}

func TestOrderService_CompleteShippedOrders(t *testing.T) {
	orderService, user, testDB := setupOrderServiceTest(t)

	product := createTestProduct(t, testDB, "oak-chair")

	// Shipped long ago: should complete.
	oldShipped := time.Now().Add(-10 * 24 * time.Hour)
	stale := createTestOrder(t, testDB, user.ID, model.OrderStatusShipped, oldShipped, product)
	testDB.Model(stale).Update("shipped_at", oldShipped)

	// Shipped recently: stays shipped.
	recentShipped := time.Now().Add(-24 * time.Hour)
	recent := createTestOrder(t, testDB, user.ID, model.OrderStatusShipped, recentShipped, product)
	testDB.Model(recent).Update("shipped_at", recentShipped)

	// Never shipped: untouched.
	createTestOrder(t, testDB, user.ID, model.OrderStatusProcessing, time.Now(), product)

	count, err := orderService.CompleteShippedOrders()
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	reloaded, err := orderService.GetOrderByID(stale.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusCompleted, reloaded.Status)

	reloaded, err = orderService.GetOrderByID(recent.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, model.OrderStatusShipped, reloaded.Status)
}
