package public

import (
	"errors"

	"github.com/geoda-coffee/storefront/internal/http/response"
	"github.com/geoda-coffee/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// GetImageCaptcha 获取验证码配置与图片挑战
func (h *Handler) GetImageCaptcha(c *gin.Context) {
	setting := h.CaptchaService.PublicSetting()
	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		if errors.Is(err, service.ErrCaptchaDisabled) {
			response.Success(c, gin.H{"setting": setting})
			return
		}
		respondError(c, response.CodeInternal, "error.captcha_generate_failed", err)
		return
	}

	response.Success(c, gin.H{
		"setting":      setting,
		"captcha_id":   challenge.CaptchaID,
		"image_base64": challenge.ImageBase64,
	})
}
