package repository

import (
	"context"
	"errors"

	"github.com/geoda-coffee/storefront/internal/models"

	"gorm.io/gorm"
)

// ContactRepository 联系表单数据访问接口
type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	GetByID(ctx context.Context, id uint) (*models.Contact, error)
}

// GormContactRepository GORM 实现
type GormContactRepository struct {
	db *gorm.DB
}

// NewContactRepository 创建联系表单仓库
func NewContactRepository(db *gorm.DB) *GormContactRepository {
	return &GormContactRepository{db: db}
}

// Create 保存留言
func (r *GormContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	return r.db.WithContext(ctx).Create(contact).Error
}

// GetByID 根据 ID 获取留言
func (r *GormContactRepository) GetByID(ctx context.Context, id uint) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.WithContext(ctx).First(&contact, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &contact, nil
}
