package repository

import (
	"context"
	"errors"

	"github.com/geoda-coffee/storefront/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository 用户资料数据访问接口
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.UserProfile, error)
	Create(ctx context.Context, profile *models.UserProfile) error
	Update(ctx context.Context, profile *models.UserProfile) error
	WithTx(tx *gorm.DB) *GormProfileRepository
}

// GormProfileRepository GORM 实现
type GormProfileRepository struct {
	db *gorm.DB
}

// NewProfileRepository 创建用户资料仓库
func NewProfileRepository(db *gorm.DB) *GormProfileRepository {
	return &GormProfileRepository{db: db}
}

// WithTx 绑定事务
func (r *GormProfileRepository) WithTx(tx *gorm.DB) *GormProfileRepository {
	if tx == nil {
		return r
	}
	return &GormProfileRepository{db: tx}
}

// GetByUserID 获取用户资料
func (r *GormProfileRepository) GetByUserID(ctx context.Context, userID uint) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// Create 创建用户资料
func (r *GormProfileRepository) Create(ctx context.Context, profile *models.UserProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// Update 更新可编辑字段
func (r *GormProfileRepository) Update(ctx context.Context, profile *models.UserProfile) error {
	if profile == nil {
		return nil
	}
	return r.db.WithContext(ctx).Model(&models.UserProfile{}).
		Where("id = ?", profile.ID).
		Updates(map[string]interface{}{
			"full_name":           profile.FullName,
			"phone_number":        profile.PhoneNumber,
			"address":             profile.Address,
			"profile_picture_url": profile.ProfilePictureURL,
		}).Error
}
