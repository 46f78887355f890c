package public

import (
	"github.com/geoda-coffee/storefront/internal/http/response"
	"github.com/geoda-coffee/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// UpdateProfileRequest 更新资料请求
type UpdateProfileRequest struct {
	FullName          string `json:"full_name"`
	PhoneNumber       string `json:"phone_number"`
	Address           string `json:"address"`
	ProfilePictureURL string `json:"profile_picture_url"`
}

// GetProfile 获取个人资料
func (h *Handler) GetProfile(c *gin.Context) {
	profile, err := h.ProfileService.GetProfile(c.Request.Context(), currentSession(c))
	if err != nil {
		respondProfileError(c, err, "error.profile_fetch_failed")
		return
	}
	response.Success(c, profile)
}

// UpdateProfile 更新个人资料
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	profile, err := h.ProfileService.UpdateProfile(c.Request.Context(), currentSession(c), service.UpdateProfileInput{
		FullName:          req.FullName,
		PhoneNumber:       req.PhoneNumber,
		Address:           req.Address,
		ProfilePictureURL: req.ProfilePictureURL,
	})
	if err != nil {
		respondProfileError(c, err, "error.profile_update_failed")
		return
	}
	successWithKey(c, "success.profile_updated", profile)
}
