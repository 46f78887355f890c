package models

import "time"

// OrderItem 订单项表，成交价在下单时固化
type OrderItem struct {
	ID              uint      `gorm:"primarykey" json:"id"`                                            // 主键
	OrderID         uint      `gorm:"index;not null" json:"order_id"`                                  // 订单ID
	ProductID       uint      `gorm:"index;not null" json:"product_id"`                                // 商品ID
	VariantID       uint      `gorm:"not null;default:0" json:"variant_id"`                            // 规格ID
	ProductName     string    `gorm:"type:varchar(200);not null" json:"product_name"`                  // 商品名称快照
	WeightGrams     int       `gorm:"not null;default:0" json:"weight_grams"`                          // 规格重量快照
	Quantity        int       `gorm:"not null" json:"quantity"`                                        // 数量
	PriceAtPurchase Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price_at_purchase"`  // 成交单价
	CreatedAt       time.Time `json:"created_at"`                                                      // 创建时间
}

// TableName 指定表名
func (OrderItem) TableName() string {
	return "order_items"
}
