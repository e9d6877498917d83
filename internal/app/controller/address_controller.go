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

type AddressController struct {
	addressService service.AddressService
}

func NewAddressController(addressService service.AddressService) *AddressController {
	return &AddressController{
		addressService: addressService,
	}
}

// GetAddresses 배송지 목록 조회
// @Summary 내 배송지 목록
// @Tags Addresses
// @Produce json
// @Success 200 {object} object
// @Router /addresses [get]
func (ctrl *AddressController) GetAddresses(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	addresses, err := ctrl.addressService.GetUserAddresses(userID)
	if err != nil {
		apperrors.InternalError(c, "배송지 조회에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  addresses,
		"total": len(addresses),
	})
}

// CreateAddress 배송지 등록
// @Summary 배송지 등록
// @Tags Addresses
// @Accept json
// @Produce json
// @Param address body service.AddressInput true "배송지 정보"
// @Success 201 {object} model.Address
// @Router /addresses [post]
func (ctrl *AddressController) CreateAddress(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	var input service.AddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	address, err := ctrl.addressService.CreateAddress(userID, input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAddressType) {
			apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "잘못된 배송지 유형입니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "배송지 등록")
		return
	}

	c.JSON(http.StatusCreated, address)
}

// UpdateAddress 배송지 수정
// @Summary 배송지 수정
// @Tags Addresses
// @Accept json
// @Produce json
// @Param id path int true "배송지 ID"
// @Param address body service.AddressInput true "수정할 정보"
// @Success 200 {object} model.Address
// @Router /addresses/{id} [put]
func (ctrl *AddressController) UpdateAddress(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	addressID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 배송지 ID입니다")
		return
	}

	var input service.AddressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	address, err := ctrl.addressService.UpdateAddress(uint(addressID), userID, input)
	if err != nil {
		respondAddressError(c, err, "배송지 수정")
		return
	}

	c.JSON(http.StatusOK, address)
}

// DeleteAddress 배송지 삭제
// @Summary 배송지 삭제
// @Tags Addresses
// @Param id path int true "배송지 ID"
// @Success 204
// @Router /addresses/{id} [delete]
func (ctrl *AddressController) DeleteAddress(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	addressID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 배송지 ID입니다")
		return
	}

	if err := ctrl.addressService.DeleteAddress(uint(addressID), userID); err != nil {
		respondAddressError(c, err, "배송지 삭제")
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// SetDefaultAddress 기본 배송지 지정
// @Summary 기본 배송지 지정
// @Tags Addresses
// @Param id path int true "배송지 ID"
// @Success 200 {object} object
// @Router /addresses/{id}/default [put]
func (ctrl *AddressController) SetDefaultAddress(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	addressID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "잘못된 배송지 ID입니다")
		return
	}

	if err := ctrl.addressService.SetDefaultAddress(uint(addressID), userID); err != nil {
		respondAddressError(c, err, "기본 배송지 지정")
		return
	}

	c.JSON(http.StatusOK, gin.H{"is_default": true})
}

// respondAddressError 배송지 서비스 에러를 HTTP 응답으로 변환
func respondAddressError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, service.ErrAddressNotFound):
		apperrors.NotFound(c, apperrors.AddressNotFound, "배송지를 찾을 수 없습니다")
	case errors.Is(err, service.ErrNotAddressOwner):
		apperrors.Forbidden(c, "본인의 배송지만 관리할 수 있습니다")
	case errors.Is(err, service.ErrInvalidAddressType):
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "잘못된 배송지 유형입니다")
	default:
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, context)
	}
}
