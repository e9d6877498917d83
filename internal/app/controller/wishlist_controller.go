package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/furnimart/furnimart-backend/internal/app/service"
	apperrors "github.com/furnimart/furnimart-backend/internal/errors"
	"github.com/furnimart/furnimart-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type WishlistController struct {
	wishlistService service.WishlistService
}

func NewWishlistController(wishlistService service.WishlistService) *WishlistController {
	return &WishlistController{
		wishlistService: wishlistService,
	}
}

// GetWishlist 찜 목록 조회
// @Summary 내 찜 목록
// @Tags Wishlist
// @Produce json
// @Success 200 {object} object
// @Router /wishlist [get]
func (ctrl *WishlistController) GetWishlist(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	items, err := ctrl.wishlistService.GetWishlist(userID)
	if err != nil {
		apperrors.InternalError(c, "찜 목록 조회에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  items,
		"total": len(items),
	})
}

// AddToWishlist 찜하기
// @Summary 상품 찜하기
// @Tags Wishlist
// @Accept json
// @Produce json
// @Success 201 {object} model.WishlistItem
// @Router /wishlist [post]
func (ctrl *WishlistController) AddToWishlist(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	var input struct {
		ProductID uint `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	item, err := ctrl.wishlistService.AddToWishlist(userID, input.ProductID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrProductNotFound):
			apperrors.NotFound(c, apperrors.ProductNotFound, "상품을 찾을 수 없습니다")
		case errors.Is(err, service.ErrWishlistItemExists):
			apperrors.Conflict(c, apperrors.WishlistItemExists, "이미 찜한 상품입니다")
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "찜하기")
		}
		return
	}

	c.JSON(http.StatusCreated, item)
}

// RemoveFromWishlist 찜 해제
// @Summary 상품 찜 해제
// @Tags Wishlist
// @Param product_id path int true "상품 ID"
// @Success 204
// @Router /wishlist/{product_id} [delete]
func (ctrl *WishlistController) RemoveFromWishlist(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	productID, err := strconv.ParseUint(c.Param("product_id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 상품 ID입니다")
		return
	}

	if err := ctrl.wishlistService.RemoveFromWishlist(userID, uint(productID)); err != nil {
		if errors.Is(err, service.ErrWishlistItemNotFound) {
			apperrors.NotFound(c, apperrors.WishlistItemNotFound, "찜 목록에 없는 상품입니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "찜 해제")
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
