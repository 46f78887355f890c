package public

import (
	"time"

	"github.com/geoda-coffee/storefront/internal/constants"
	handlershared "github.com/geoda-coffee/storefront/internal/http/handlers/shared"
	"github.com/geoda-coffee/storefront/internal/http/response"
	"github.com/geoda-coffee/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// UserRegisterRequest 注册请求
type UserRegisterRequest struct {
	Email           string                              `json:"email" binding:"required"`
	Password        string                              `json:"password" binding:"required"`
	ConfirmPassword string                              `json:"confirm_password"`
	FullName        string                              `json:"full_name"`
	CaptchaPayload  handlershared.CaptchaPayloadRequest `json:"captcha_payload"`
}

// UserRegister 用户注册
func (h *Handler) UserRegister(c *gin.Context) {
	var req UserRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	if err := h.CaptchaService.Verify(constants.CaptchaSceneRegister, req.CaptchaPayload.ToServicePayload()); err != nil {
		respondAuthError(c, err, "error.captcha_verify_failed")
		return
	}

	result, err := h.UserAuthService.SignUp(c.Request.Context(), service.SignUpInput{
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		FullName:        req.FullName,
	})
	if err != nil {
		respondAuthError(c, err, "error.register_failed")
		return
	}
	successWithKey(c, "success.register", authResultResponse(result))
}

// UserLoginRequest 登录请求
type UserLoginRequest struct {
	Email      string `json:"email" binding:"required"`
	Password   string `json:"password" binding:"required"`
	RememberMe bool   `json:"remember_me"`
}

// UserLogin 用户登录
func (h *Handler) UserLogin(c *gin.Context) {
	var req UserLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}

	result, err := h.UserAuthService.SignIn(c.Request.Context(), service.SignInInput{
		Email:      req.Email,
		Password:   req.Password,
		RememberMe: req.RememberMe,
	})
	if err != nil {
		respondAuthError(c, err, "error.login_failed")
		return
	}
	successWithKey(c, "success.login", authResultResponse(result))
}

// UserLogout 退出登录，使当前账号所有 Token 失效
func (h *Handler) UserLogout(c *gin.Context) {
	if err := h.UserAuthService.SignOut(c.Request.Context(), currentSession(c)); err != nil {
		respondAuthError(c, err, "error.logout_failed")
		return
	}
	successWithKey(c, "success.logout", gin.H{"logged_out": true})
}

// GetCurrentUser 获取当前登录用户
func (h *Handler) GetCurrentUser(c *gin.Context) {
	current, err := h.UserAuthService.CurrentSession(c.Request.Context(), currentSession(c))
	if err != nil {
		respondAuthError(c, err, "error.profile_fetch_failed")
		return
	}
	response.Success(c, current)
}

func authResultResponse(result *service.AuthResult) gin.H {
	return gin.H{
		"user":       result.User,
		"profile":    result.Profile,
		"token":      result.Token,
		"expires_at": result.ExpiresAt.Format(time.RFC3339),
	}
}
