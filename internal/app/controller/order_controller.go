package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/furnimart/furnimart-backend/internal/app/model"
	"github.com/furnimart/furnimart-backend/internal/app/service"
	apperrors "github.com/furnimart/furnimart-backend/internal/errors"
	"github.com/furnimart/furnimart-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type OrderController struct {
	orderService service.OrderService
}

func NewOrderController(orderService service.OrderService) *OrderController {
	return &OrderController{
		orderService: orderService,
	}
}

// GetMyOrders 내 주문 목록 조회
// @Summary 내 주문 목록 (상태 필터 지원)
// @Tags Orders
// @Produce json
// @Param status query string false "주문 상태 (processing/shipped/completed/cancelled)"
// @Success 200 {object} object
// @Router /orders [get]
func (ctrl *OrderController) GetMyOrders(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	status := c.Query("status")

	orders, err := ctrl.orderService.GetUserOrders(userID, status)
	if err != nil {
		if errors.Is(err, service.ErrInvalidOrderStatus) {
			apperrors.BadRequest(c, apperrors.OrderInvalidStatus, "잘못된 주문 상태입니다")
			return
		}
		apperrors.InternalError(c, "주문 조회에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  orders,
		"total": len(orders),
	})
}

// GetOrder 주문 상세 조회
// @Summary 주문 상세
// @Tags Orders
// @Produce json
// @Param id path int true "주문 ID"
// @Success 200 {object} model.Order
// @Router /orders/{id} [get]
func (ctrl *OrderController) GetOrder(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 주문 ID입니다")
		return
	}

	order, err := ctrl.orderService.GetOrderByID(uint(orderID), userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			apperrors.NotFound(c, apperrors.OrderNotFound, "주문을 찾을 수 없습니다")
		case errors.Is(err, service.ErrNotOrderOwner):
			apperrors.Forbidden(c, "본인의 주문만 조회할 수 있습니다")
		default:
			apperrors.InternalError(c, "주문 조회에 실패했습니다")
		}
		return
	}

	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus 주문 상태 변경 (관리자)
// @Summary 주문 상태 변경
// @Tags Orders
// @Accept json
// @Param id path int true "주문 ID"
// @Success 200 {object} object
// @Router /admin/orders/{id}/status [put]
func (ctrl *OrderController) UpdateOrderStatus(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 주문 ID입니다")
		return
	}

	var input struct {
		Status model.OrderStatus `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	if err := ctrl.orderService.UpdateOrderStatus(uint(orderID), input.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			apperrors.NotFound(c, apperrors.OrderNotFound, "주문을 찾을 수 없습니다")
		case errors.Is(err, service.ErrInvalidOrderStatus):
			apperrors.BadRequest(c, apperrors.OrderInvalidStatus, "잘못된 주문 상태입니다")
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "주문 상태 변경")
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": input.Status})
}
