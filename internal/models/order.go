package models

import (
	"time"

	"gorm.io/gorm"
)

// Order 订单表（结账时生成的不可变快照，仅状态可由履约流程变更）
type Order struct {
	ID              uint           `gorm:"primarykey" json:"id"`                                            // 主键
	OrderNo         string         `gorm:"uniqueIndex;not null" json:"order_no"`                            // 订单号
	UserID          uint           `gorm:"index;not null" json:"user_id"`                                   // 用户ID
	TotalPrice      Money          `gorm:"type:decimal(20,2);not null;default:0" json:"total_price"`        // 总价
	PaymentMethod   string         `gorm:"type:varchar(20);not null" json:"payment_method"`                 // 支付方式
	ShippingAddress string         `gorm:"type:varchar(500);not null" json:"shipping_address"`              // 收货地址快照
	Status          string         `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"` // 订单状态
	CreatedAt       time.Time      `gorm:"index" json:"created_at"`                                         // 创建时间
	UpdatedAt       time.Time      `json:"updated_at"`                                                      // 更新时间
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`                                                  // 软删除时间

	Items []OrderItem `gorm:"foreignKey:OrderID" json:"items,omitempty"` // 订单项
}

// TableName 指定表名
func (Order) TableName() string {
	return "orders"
}
