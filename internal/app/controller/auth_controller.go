package controller

import (
	"errors"
	"net/http"

	"github.com/furnimart/furnimart-backend/internal/app/service"
	apperrors "github.com/furnimart/furnimart-backend/internal/errors"
	"github.com/furnimart/furnimart-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Register 회원가입
// @Summary 회원가입
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body service.RegisterInput true "회원 정보"
// @Success 201 {object} object
// @Router /auth/register [post]
func (ctrl *AuthController) Register(c *gin.Context) {
	var input service.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	user, tokens, err := ctrl.authService.Register(input)
	if err != nil {
		if errors.Is(err, service.ErrEmailAlreadyExists) {
			apperrors.Conflict(c, apperrors.AuthEmailAlreadyExists, "이미 가입된 이메일입니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "회원가입")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":          user,
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}

// Login 로그인
// @Summary 로그인
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body service.LoginInput true "로그인 정보"
// @Success 200 {object} object
// @Router /auth/login [post]
func (ctrl *AuthController) Login(c *gin.Context) {
	var input service.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	user, tokens, err := ctrl.authService.Login(input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthInvalidCredentials, "이메일 또는 비밀번호가 올바르지 않습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "로그인")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":          user,
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}

// Logout 로그아웃
// @Summary 로그아웃 (토큰 폐기)
// @Tags Auth
// @Success 204
// @Router /auth/logout [post]
func (ctrl *AuthController) Logout(c *gin.Context) {
	token, exists := middleware.GetToken(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	if err := ctrl.authService.Logout(c.Request.Context(), token); err != nil {
		apperrors.InternalError(c, "로그아웃 처리에 실패했습니다")
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// Refresh 토큰 갱신
// @Summary 리프레시 토큰으로 새 토큰 발급
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} object
// @Router /auth/refresh [post]
func (ctrl *AuthController) Refresh(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	tokens, err := ctrl.authService.RefreshTokens(input.RefreshToken)
	if err != nil {
		apperrors.RespondWithError(c, http.StatusUnauthorized, apperrors.AuthTokenInvalid, "유효하지 않은 리프레시 토큰입니다")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token":  tokens.AccessToken,
		"refresh_token": tokens.RefreshToken,
	})
}

// GetProfile 내 프로필 조회
// @Summary 내 프로필
// @Tags Auth
// @Produce json
// @Success 200 {object} model.User
// @Router /users/me [get]
func (ctrl *AuthController) GetProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	user, err := ctrl.authService.GetUserByID(userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "사용자를 찾을 수 없습니다")
			return
		}
		apperrors.InternalError(c, "프로필 조회에 실패했습니다")
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile 내 프로필 수정
// @Summary 프로필 수정
// @Tags Auth
// @Accept json
// @Produce json
// @Param profile body service.UpdateProfileInput true "수정할 정보"
// @Success 200 {object} model.User
// @Router /users/me [put]
func (ctrl *AuthController) UpdateProfile(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	var input service.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	user, err := ctrl.authService.UpdateProfile(userID, input)
	if err != nil {
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "프로필 수정")
		return
	}

	c.JSON(http.StatusOK, user)
}

// ChangePassword 비밀번호 변경
// @Summary 비밀번호 변경
// @Tags Auth
// @Accept json
// @Success 204
// @Router /users/me/password [put]
func (ctrl *AuthController) ChangePassword(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.Unauthorized(c, "로그인이 필요합니다")
		return
	}

	var input struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "입력값이 올바르지 않습니다")
		return
	}

	if err := ctrl.authService.ChangePassword(userID, input.CurrentPassword, input.NewPassword); err != nil {
		if errors.Is(err, service.ErrWrongPassword) {
			apperrors.BadRequest(c, apperrors.AuthInvalidCredentials, "현재 비밀번호가 올바르지 않습니다")
			return
		}
		apperrors.ParseAndRespond(c, http.StatusInternalServerError, err, "비밀번호 변경")
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
