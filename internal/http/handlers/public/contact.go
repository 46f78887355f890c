package public

import (
	"github.com/geoda-coffee/storefront/internal/constants"
	handlershared "github.com/geoda-coffee/storefront/internal/http/handlers/shared"
	"github.com/geoda-coffee/storefront/internal/http/response"
	"github.com/geoda-coffee/storefront/internal/i18n"
	"github.com/geoda-coffee/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// ContactRequest 联系表单请求
type ContactRequest struct {
	FullName       string                              `json:"full_name"`
	Email          string                              `json:"email"`
	Subject        string                              `json:"subject"`
	Message        string                              `json:"message"`
	CaptchaPayload handlershared.CaptchaPayloadRequest `json:"captcha_payload"`
}

// SubmitContact 提交联系表单
func (h *Handler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	if err := h.CaptchaService.Verify(constants.CaptchaSceneContact, req.CaptchaPayload.ToServicePayload()); err != nil {
		respondWithMappedError(c, err, captchaErrorRules, response.CodeInternal, "error.captcha_verify_failed")
		return
	}
	contact, err := h.ContactService.Submit(c.Request.Context(), service.ContactInput{
		FullName: req.FullName,
		Email:    req.Email,
		Subject:  req.Subject,
		Message:  req.Message,
		Locale:   i18n.ResolveLocale(c),
	})
	if err != nil {
		respondWithMappedError(c, err, nil, response.CodeInternal, "error.contact_submit_failed")
		return
	}
	successWithKey(c, "success.contact_sent", gin.H{"id": contact.ID})
}
