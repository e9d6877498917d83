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

type ReviewController struct {
	reviewService service.ReviewService
}

func NewReviewController(reviewService service.ReviewService) *ReviewController {
	return &ReviewController{
		reviewService: reviewService,
	}
}

// GetReviewableItems 리뷰 작성 가능한 상품 목록 조회
// @Summary 리뷰 작성 가능 항목
// @Tags Reviews
// @Produce json
// @Success 200 {object} object
// @Router /reviews/reviewable [get]
func (ctrl *ReviewController) GetReviewableItems(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	items, err := ctrl.reviewService.GetReviewableItems(userID)
	if err != nil {
		apperrors.InternalError(c, "리뷰 작성 가능 항목 조회에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  items,
		"total": len(items),
	})
}

// GetMyReviews 내 리뷰 목록 조회
// @Summary 내 리뷰 목록
// @Tags Reviews
// @Produce json
// @Param page query int false "페이지" default(1)
// @Param page_size query int false "페이지 크기" default(20)
// @Success 200 {object} object
// @Router /reviews/me [get]
func (ctrl *ReviewController) GetMyReviews(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	page, pageSize := paginationParams(c)

	reviews, total, err := ctrl.reviewService.GetUserReviews(userID, page, pageSize)
	if err != nil {
		apperrors.InternalError(c, "리뷰 조회에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      reviews,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// GetProductReviews 상품 리뷰 목록 조회
// @Summary 상품 리뷰 목록
// @Tags Reviews
// @Produce json
// @Param id path int true "상품 ID"
// @Param page query int false "페이지" default(1)
// @Param page_size query int false "페이지 크기" default(20)
// @Success 200 {object} object
// @Router /products/{id}/reviews [get]
func (ctrl *ReviewController) GetProductReviews(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 상품 ID입니다")
		return
	}

	page, pageSize := paginationParams(c)

	reviews, total, err := ctrl.reviewService.GetProductReviews(uint(productID), page, pageSize)
	if err != nil {
		apperrors.InternalError(c, "상품 리뷰 조회에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":      reviews,
		"total":     total,
		"page":      page,
		"page_size": pageSize,
	})
}

// CreateReview 리뷰 작성
// @Summary 리뷰 작성
// @Tags Reviews
// @Accept json
// @Produce json
// @Param review body service.CreateReviewInput true "리뷰 정보"
// @Success 201 {object} model.ProductReview
// @Router /reviews [post]
func (ctrl *ReviewController) CreateReview(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	var input service.CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	review, err := ctrl.reviewService.CreateReview(userID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewProductMissing):
			apperrors.BadRequest(c, apperrors.ReviewProductMissing, "리뷰할 상품을 선택해주세요")
		case errors.Is(err, service.ErrInvalidRating):
			apperrors.BadRequest(c, apperrors.ReviewInvalidRating, "평점은 0보다 크고 5 이하여야 합니다")
		case errors.Is(err, service.ErrProductNotReviewable):
			apperrors.BadRequest(c, apperrors.ReviewNotReviewable, "구매 이력이 없거나 이미 리뷰를 작성한 상품입니다")
		case errors.Is(err, service.ErrReviewAlreadyExists):
			apperrors.Conflict(c, apperrors.ReviewAlreadyExists, "이미 이 상품에 대한 리뷰를 작성했습니다")
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "리뷰 생성")
		}
		return
	}

	c.JSON(http.StatusCreated, review)
}

// UpdateReview 리뷰 수정
// @Summary 리뷰 수정
// @Tags Reviews
// @Accept json
// @Produce json
// @Param id path int true "리뷰 ID"
// @Param review body service.UpdateReviewInput true "수정할 정보"
// @Success 200 {object} model.ProductReview
// @Router /reviews/{id} [put]
func (ctrl *ReviewController) UpdateReview(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 리뷰 ID입니다")
		return
	}

	var input service.UpdateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	review, err := ctrl.reviewService.UpdateReview(uint(reviewID), userID, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrReviewNotFound):
			apperrors.NotFound(c, apperrors.ReviewNotFound, "리뷰를 찾을 수 없습니다")
		case errors.Is(err, service.ErrNotReviewOwner):
			apperrors.Forbidden(c, "본인의 리뷰만 수정할 수 있습니다")
		case errors.Is(err, service.ErrInvalidRating):
			apperrors.BadRequest(c, apperrors.ReviewInvalidRating, "평점은 0보다 크고 5 이하여야 합니다")
		default:
			apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "리뷰 수정")
		}
		return
	}

	c.JSON(http.StatusOK, review)
}

// DeleteReview 리뷰 삭제
// @Summary 리뷰 삭제
// @Tags Reviews
// @Param id path int true "리뷰 ID"
// @Success 204
// @Router /reviews/{id} [delete]
func (ctrl *ReviewController) DeleteReview(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 리뷰 ID입니다")
		return
	}

	if err := ctrl.reviewService.DeleteReview(uint(reviewID), userID); err != nil {
		if errors.Is(err, service.ErrNotReviewOwner) {
			apperrors.Forbidden(c, "본인의 리뷰만 삭제할 수 있습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "리뷰 삭제")
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// MarkHelpful 리뷰 도움됨 표시
// @Summary 리뷰 도움됨 카운트 증가
// @Tags Reviews
// @Param id path int true "리뷰 ID"
// @Success 200 {object} model.ProductReview
// @Router /reviews/{id}/helpful [post]
func (ctrl *ReviewController) MarkHelpful(c *gin.Context) {
	reviewID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 리뷰 ID입니다")
		return
	}

	review, err := ctrl.reviewService.MarkHelpful(uint(reviewID))
	if err != nil {
		if errors.Is(err, service.ErrReviewNotFound) {
			apperrors.NotFound(c, apperrors.ReviewNotFound, "리뷰를 찾을 수 없습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "리뷰 도움됨")
		return
	}

	c.JSON(http.StatusOK, review)
}

// paginationParams page/page_size 쿼리 파라미터 파싱
func paginationParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
