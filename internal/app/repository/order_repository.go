package repository

import (
	"time"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/pkg/logger"
	"gorm.io/gorm"
)

type OrderRepository interface {
	Create(order *model.Order) error
	FindByID(id uint) (*model.Order, error)
	FindByUserID(userID uint, status model.OrderStatus) ([]model.Order, error)
	FindCompletedByUserID(userID uint) ([]model.Order, error)
	FindShippedBefore(cutoff time.Time) ([]model.Order, error)
	UpdateStatus(id uint, status model.OrderStatus) error
}

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) preloadOrder() *gorm.DB {
	return r.db.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("order_items.id ASC")
	})
}

func (r *orderRepository) Create(order *model.Order) error {
	logger.Debug("Creating order in database", map[string]interface{}{
		"user_id":      order.UserID,
		"order_number": order.OrderNumber,
		"total_amount": order.TotalAmount,
	})

	if err := r.db.Create(order).Error; err != nil {
		logger.Error("Failed to create order in database", err, map[string]interface{}{
			"user_id":      order.UserID,
			"order_number": order.OrderNumber,
		})
		return err
	}
	return nil
}

func (r *orderRepository) FindByID(id uint) (*model.Order, error) {
	var order model.Order
	if err := r.preloadOrder().First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// FindByUserID returns the user's orders, newest first. An empty status
// returns all orders (the UI's "All" tab).
func (r *orderRepository) FindByUserID(userID uint, status model.OrderStatus) ([]model.Order, error) {
	var orders []model.Order

	query := r.preloadOrder().Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	err := query.Order("order_date DESC").Find(&orders).Error
	if err != nil {
		logger.Error("Failed to find orders by user ID in database", err, map[string]interface{}{
			"user_id": userID,
			"status":  status,
		})
		return nil, err
	}

	return orders, nil
}

// FindCompletedByUserID returns the user's completed orders in chronological
// order, items preloaded in their stored order. This is the traversal order
// the reviewable-item projection preserves.
func (r *orderRepository) FindCompletedByUserID(userID uint) ([]model.Order, error) {
	var orders []model.Order

	err := r.preloadOrder().
		Where("user_id = ? AND status = ?", userID, model.OrderStatusCompleted).
		Order("order_date ASC").
		Find(&orders).Error
	if err != nil {
		logger.Error("Failed to find completed orders by user ID in database", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	return orders, nil
}

// FindShippedBefore returns orders shipped at or before the cutoff that are
// still in shipped status. Used by the completion scheduler.
func (r *orderRepository) FindShippedBefore(cutoff time.Time) ([]model.Order, error) {
	var orders []model.Order
	err := r.db.
		Where("status = ? AND shipped_at IS NOT NULL AND shipped_at <= ?", model.OrderStatusShipped, cutoff).
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *orderRepository) UpdateStatus(id uint, status model.OrderStatus) error {
	logger.Debug("Updating order status in database", map[string]interface{}{
		"order_id": id,
		"status":   status,
	})

	if err := r.db.Model(&model.Order{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		logger.Error("Failed to update order status in database", err, map[string]interface{}{
			"order_id": id,
			"status":   status,
		})
		return err
	}
	return nil
}
