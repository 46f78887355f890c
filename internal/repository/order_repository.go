package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/geoda-coffee/storefront/internal/models"

	"gorm.io/gorm"
)

// OrderRepository 订单数据访问接口
type OrderRepository interface {
	Create(ctx context.Context, order *models.Order, items []models.OrderItem) error
	GetByID(ctx context.Context, id uint) (*models.Order, error)
	GetByOrderNoAndUser(ctx context.Context, orderNo string, userID uint) (*models.Order, error)
	ListByUser(ctx context.Context, filter OrderListFilter) ([]models.Order, int64, error)
	ResolveReceiverEmail(ctx context.Context, orderID uint) (string, error)
	WithTx(tx *gorm.DB) *GormOrderRepository
}

// GormOrderRepository GORM 实现
type GormOrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓库
func NewOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// WithTx 绑定事务
func (r *GormOrderRepository) WithTx(tx *gorm.DB) *GormOrderRepository {
	if tx == nil {
		return r
	}
	return &GormOrderRepository{db: tx}
}

func withItems(query *gorm.DB) *gorm.DB {
	return query.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC")
	})
}

// Create 创建订单与订单项
func (r *GormOrderRepository) Create(ctx context.Context, order *models.Order, items []models.OrderItem) error {
	db := r.db.WithContext(ctx)
	if err := db.Omit("Items").Create(order).Error; err != nil {
		return err
	}
	for i := range items {
		items[i].OrderID = order.ID
	}
	if len(items) > 0 {
		if err := db.Create(&items).Error; err != nil {
			return err
		}
	}
	order.Items = items
	return nil
}

// GetByID 根据 ID 获取订单
func (r *GormOrderRepository) GetByID(ctx context.Context, id uint) (*models.Order, error) {
	var order models.Order
	if err := withItems(r.db.WithContext(ctx)).First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// GetByOrderNoAndUser 按订单号获取用户订单
func (r *GormOrderRepository) GetByOrderNoAndUser(ctx context.Context, orderNo string, userID uint) (*models.Order, error) {
	var order models.Order
	err := withItems(r.db.WithContext(ctx)).
		Where("order_no = ? AND user_id = ?", orderNo, userID).
		First(&order).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// ListByUser 用户订单列表，最新在前
func (r *GormOrderRepository) ListByUser(ctx context.Context, filter OrderListFilter) ([]models.Order, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Order{}).Where("user_id = ?", filter.UserID)
	if status := strings.TrimSpace(filter.Status); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = withItems(query).Scopes(paginate(filter.Page, filter.PageSize))

	var orders []models.Order
	if err := query.Order("created_at DESC, id DESC").Find(&orders).Error; err != nil {
		return nil, 0, err
	}
	return orders, total, nil
}

// ResolveReceiverEmail 解析订单通知的收件邮箱
func (r *GormOrderRepository) ResolveReceiverEmail(ctx context.Context, orderID uint) (string, error) {
	if orderID == 0 {
		return "", nil
	}
	var row struct {
		Email string
	}
	err := r.db.WithContext(ctx).Model(&models.Order{}).
		Select("users.email").
		Joins("JOIN users ON users.id = orders.user_id").
		Where("orders.id = ?", orderID).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimSpace(row.Email), nil
}
