package service

import (
	"context"
	"strings"

	"github.com/geoda-coffee/storefront/internal/logger"
	"github.com/geoda-coffee/storefront/internal/models"
	"github.com/geoda-coffee/storefront/internal/repository"
)

// UpdateProfileInput 更新资料输入
type UpdateProfileInput struct {
	FullName          string
	PhoneNumber       string
	Address           string
	ProfilePictureURL string
}

// ProfileService 用户资料服务
type ProfileService struct {
	profileRepo repository.ProfileRepository
}

// NewProfileService 创建用户资料服务
func NewProfileService(profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{profileRepo: profileRepo}
}

// GetProfile 获取当前用户资料
func (s *ProfileService) GetProfile(ctx context.Context, sess Session) (*models.UserProfile, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.GetByUserID(ctx, sess.UserID)
	if err != nil {
		logger.Errorw("profile_fetch_failed", "user_id", sess.UserID, "error", err)
		return nil, ErrProfileFetchFailed
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

// UpdateProfile 校验并更新资料，校验失败时不写库
func (s *ProfileService) UpdateProfile(ctx context.Context, sess Session, input UpdateProfileInput) (*models.UserProfile, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	fullName := strings.TrimSpace(input.FullName)
	phone := strings.TrimSpace(input.PhoneNumber)
	address := strings.TrimSpace(input.Address)
	pictureURL := strings.TrimSpace(input.ProfilePictureURL)

	v := &ValidationError{}
	checkLength(v, "full_name", fullName, 2, 100)
	checkLength(v, "phone_number", phone, 0, 20)
	checkLength(v, "address", address, 0, 500)
	checkOptionalURL(v, "profile_picture_url", pictureURL)
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	profile, err := s.GetProfile(ctx, sess)
	if err != nil {
		return nil, err
	}
	profile.FullName = fullName
	profile.PhoneNumber = phone
	profile.Address = address
	profile.ProfilePictureURL = pictureURL
	if err := s.profileRepo.Update(ctx, profile); err != nil {
		logger.Errorw("profile_update_failed", "user_id", sess.UserID, "error", err)
		return nil, ErrProfileUpdateFailed
	}
	return profile, nil
}
