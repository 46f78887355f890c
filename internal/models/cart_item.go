package models

import "time"

// CartItem 购物车项，(cart_id, product_id, variant_id) 唯一
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`                                           // 主键
	CartID    uint      `gorm:"not null;uniqueIndex:idx_cart_line" json:"cart_id"`              // 购物车ID
	ProductID uint      `gorm:"not null;uniqueIndex:idx_cart_line" json:"product_id"`           // 商品ID
	VariantID uint      `gorm:"not null;default:0;uniqueIndex:idx_cart_line" json:"variant_id"` // 规格ID（0 表示未选规格）
	Quantity  int       `gorm:"not null;default:1" json:"quantity"`                             // 数量
	CreatedAt time.Time `gorm:"index" json:"created_at"`                                        // 创建时间
	UpdatedAt time.Time `json:"updated_at"`                                                     // 更新时间

	Product *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"` // 关联商品
	Variant *ProductVariant `gorm:"-" json:"variant,omitempty"`                    // 所选规格（由仓库层填充）
}

// TableName 指定表名
func (CartItem) TableName() string {
	return "cart_items"
}
