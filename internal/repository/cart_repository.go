package repository

import (
	"context"
	"errors"
	"time"

	"github.com/geoda-coffee/storefront/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CartRepository 购物车数据访问接口
type CartRepository interface {
	GetByUser(ctx context.Context, userID uint) (*models.Cart, error)
	GetOrCreate(ctx context.Context, userID uint) (*models.Cart, error)
	LockCart(ctx context.Context, cartID uint) (*models.Cart, error)
	SumQuantityByUser(ctx context.Context, userID uint) (int64, error)
	ListItems(ctx context.Context, cartID uint) ([]models.CartItem, error)
	GetItem(ctx context.Context, cartID, itemID uint) (*models.CartItem, error)
	IncrementItem(ctx context.Context, cartID, productID, variantID uint, maxQuantity int) (bool, error)
	UpdateItemQuantity(ctx context.Context, cartID, itemID uint, quantity int) (int64, error)
	DeleteItem(ctx context.Context, cartID, itemID uint) (int64, error)
	Clear(ctx context.Context, cartID uint) (int64, error)
	WithTx(tx *gorm.DB) *GormCartRepository
}

// GormCartRepository GORM 实现
type GormCartRepository struct {
	db *gorm.DB
}

// NewCartRepository 创建购物车仓库
func NewCartRepository(db *gorm.DB) *GormCartRepository {
	return &GormCartRepository{db: db}
}

// WithTx 绑定事务
func (r *GormCartRepository) WithTx(tx *gorm.DB) *GormCartRepository {
	if tx == nil {
		return r
	}
	return &GormCartRepository{db: tx}
}

// GetByUser 获取用户购物车，不存在时返回 nil
func (r *GormCartRepository) GetByUser(ctx context.Context, userID uint) (*models.Cart, error) {
	var cart models.Cart
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// GetOrCreate 获取或创建用户购物车，并发创建由唯一索引兜底
func (r *GormCartRepository) GetOrCreate(ctx context.Context, userID uint) (*models.Cart, error) {
	db := r.db.WithContext(ctx)
	cart := models.Cart{UserID: userID}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&cart).Error; err != nil {
		return nil, err
	}
	var stored models.Cart
	if err := db.Where("user_id = ?", userID).First(&stored).Error; err != nil {
		return nil, err
	}
	return &stored, nil
}

// LockCart 在事务内对购物车加行锁，不存在时返回 nil。
// SQLite 不支持行级锁，方言会忽略该子句。
func (r *GormCartRepository) LockCart(ctx context.Context, cartID uint) (*models.Cart, error) {
	var cart models.Cart
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", cartID).
		First(&cart).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &cart, nil
}

// SumQuantityByUser 汇总用户购物车中可购买商品的件数，口径与购物车视图一致
func (r *GormCartRepository) SumQuantityByUser(ctx context.Context, userID uint) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.CartItem{}).
		Select("COALESCE(SUM(cart_items.quantity), 0)").
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Joins("JOIN products ON products.id = cart_items.product_id AND products.is_active = ? AND products.deleted_at IS NULL", true).
		Joins("LEFT JOIN product_variants ON product_variants.id = cart_items.variant_id AND product_variants.product_id = cart_items.product_id").
		Where("carts.user_id = ?", userID).
		Where("cart_items.variant_id = 0 OR product_variants.id IS NOT NULL").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// ListItems 获取购物车项，附带商品与所选规格
func (r *GormCartRepository) ListItems(ctx context.Context, cartID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC, id ASC")
		}).
		Where("cart_id = ?", cartID).
		Order("created_at ASC, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	for i := range items {
		attachVariant(&items[i])
	}
	return items, nil
}

// GetItem 获取购物车中的单个条目
func (r *GormCartRepository) GetItem(ctx context.Context, cartID, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := r.db.WithContext(ctx).
		Preload("Product").
		Preload("Product.Variants").
		Where("id = ? AND cart_id = ?", itemID, cartID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	attachVariant(&item)
	return &item, nil
}

// IncrementItem 原子地插入数量为 1 的条目或在已有条目上加 1。
// maxQuantity > 0 时，已有条目数量达到上限则不更新并返回 false。
func (r *GormCartRepository) IncrementItem(ctx context.Context, cartID, productID, variantID uint, maxQuantity int) (bool, error) {
	now := time.Now()
	item := models.CartItem{
		CartID:    cartID,
		ProductID: productID,
		VariantID: variantID,
		Quantity:  1,
		CreatedAt: now,
		UpdatedAt: now,
	}
	onConflict := clause.OnConflict{
		Columns: []clause.Column{{Name: "cart_id"}, {Name: "product_id"}, {Name: "variant_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("cart_items.quantity + 1"),
			"updated_at": now,
		}),
	}
	if maxQuantity > 0 {
		onConflict.Where = clause.Where{Exprs: []clause.Expression{
			clause.Expr{SQL: "cart_items.quantity < ?", Vars: []interface{}{maxQuantity}},
		}}
	}
	result := r.db.WithContext(ctx).Clauses(onConflict).Create(&item)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// UpdateItemQuantity 设置条目数量，商品库存不足时不更新
func (r *GormCartRepository) UpdateItemQuantity(ctx context.Context, cartID, itemID uint, quantity int) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.CartItem{}).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Where("EXISTS (SELECT 1 FROM products WHERE products.id = cart_items.product_id AND products.stock_quantity >= ?)", quantity).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// DeleteItem 删除条目
func (r *GormCartRepository) DeleteItem(ctx context.Context, cartID, itemID uint) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

// Clear 清空购物车
func (r *GormCartRepository) Clear(ctx context.Context, cartID uint) (int64, error) {
	result := r.db.WithContext(ctx).Where("cart_id = ?", cartID).Delete(&models.CartItem{})
	return result.RowsAffected, result.Error
}

func attachVariant(item *models.CartItem) {
	if item == nil || item.Product == nil || item.VariantID == 0 {
		return
	}
	item.Variant = item.Product.FindVariant(item.VariantID)
}
