package service

import (
	"errors"
	"time"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/repository"
	"github.com/furnimart/furnimart-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrNotOrderOwner      = errors.New("order belongs to another user")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

// completionDelay is how long a shipped order waits before the scheduler
// marks it completed.
const completionDelay = 7 * 24 * time.Hour

type OrderService interface {
	GetUserOrders(userID uint, status string) ([]model.Order, error)
	GetOrderByID(orderID, userID uint) (*model.Order, error)
	UpdateOrderStatus(orderID uint, status model.OrderStatus) error
	CompleteShippedOrders() (int, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
}

func NewOrderService(orderRepo repository.OrderRepository) OrderService {
	return &orderService{orderRepo: orderRepo}
}

// GetUserOrders returns the user's orders filtered by status. An empty
// status returns everything.
func (s *orderService) GetUserOrders(userID uint, status string) ([]model.Order, error) {
	orderStatus := model.OrderStatus(status)
	if status != "" && !orderStatus.Valid() {
		return nil, ErrInvalidOrderStatus
	}

	orders, err := s.orderRepo.FindByUserID(userID, orderStatus)
	if err != nil {
		logger.Error("Failed to fetch user orders", err, map[string]interface{}{
			"user_id": userID,
			"status":  status,
		})
		return nil, err
	}
	return orders, nil
}

func (s *orderService) GetOrderByID(orderID, userID uint) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		logger.Error("Failed to fetch order", err, map[string]interface{}{
			"order_id": orderID,
		})
		return nil, err
	}

	if order.UserID != userID {
		logger.Warn("Unauthorized order access attempt", map[string]interface{}{
			"order_id": orderID,
			"user_id":  userID,
			"owner_id": order.UserID,
		})
		return nil, ErrNotOrderOwner
	}
	return order, nil
}

func (s *orderService) UpdateOrderStatus(orderID uint, status model.OrderStatus) error {
	if !status.Valid() {
		return ErrInvalidOrderStatus
	}

	if _, err := s.orderRepo.FindByID(orderID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrderNotFound
		}
		return err
	}

	logger.Info("Updating order status", map[string]interface{}{
		"order_id": orderID,
		"status":   status,
	})
	return s.orderRepo.UpdateStatus(orderID, status)
}

// CompleteShippedOrders moves orders shipped more than completionDelay ago
// to completed status. Completed orders feed review eligibility, so this is
// what eventually lets buyers review slow-confirmed deliveries. Returns the
// number of orders completed.
func (s *orderService) CompleteShippedOrders() (int, error) {
	cutoff := time.Now().Add(-completionDelay)

	orders, err := s.orderRepo.FindShippedBefore(cutoff)
	if err != nil {
		logger.Error("Failed to fetch shipped orders for completion", err, nil)
		return 0, err
	}

	completed := 0
	for _, order := range orders {
		if err := s.orderRepo.UpdateStatus(order.ID, model.OrderStatusCompleted); err != nil {
			logger.Error("Failed to complete shipped order", err, map[string]interface{}{
				"order_id": order.ID,
			})
			continue
		}
		completed++
	}

	if completed > 0 {
		logger.Info("Completed shipped orders", map[string]interface{}{
			"count": completed,
		})
	}
	return completed, nil
}
