package controller

import (
	"net/http"

	"github.com/furnimart/furnimart-backend/internal/app/service"
	apperrors "github.com/furnimart/furnimart-backend/internal/errors"
	"github.com/furnimart/furnimart-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	settingsService service.SettingsService
}

func NewSettingsController(settingsService service.SettingsService) *SettingsController {
	return &SettingsController{
		settingsService: settingsService,
	}
}

// GetSettings 알림 설정 조회
// @Summary 내 알림 설정 (최초 조회 시 기본값 생성)
// @Tags Settings
// @Produce json
// @Success 200 {object} model.NotificationSettings
// @Router /settings/notifications [get]
func (ctrl *SettingsController) GetSettings(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	settings, err := ctrl.settingsService.GetSettings(userID)
	if err != nil {
		apperrors.InternalError(c, "알림 설정 조회에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, settings)
}

// UpdateSettings 알림 설정 수정
// @Summary 알림 설정 수정 (부분 수정 지원)
// @Tags Settings
// @Accept json
// @Produce json
// @Param settings body service.SettingsInput true "수정할 설정"
// @Success 200 {object} model.NotificationSettings
// @Router /settings/notifications [put]
func (ctrl *SettingsController) UpdateSettings(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	var input service.SettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	settings, err := ctrl.settingsService.UpdateSettings(userID, input)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "알림 설정 수정")
		return
	}

	c.JSON(http.StatusOK, settings)
}
