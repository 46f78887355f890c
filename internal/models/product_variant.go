package models

import "time"

// ProductVariant 商品规格表（重量 + 规格价）
type ProductVariant struct {
	ID           uint      `gorm:"primarykey" json:"id"`                                        // 主键
	ProductID    uint      `gorm:"not null;index" json:"product_id"`                            // 商品ID
	WeightGrams  int       `gorm:"not null" json:"weight_grams"`                                // 重量（克）
	PriceVariant Money     `gorm:"type:decimal(20,2);not null;default:0" json:"price_variant"`  // 规格价，覆盖商品基础价
	SortOrder    int       `gorm:"default:0;index" json:"sort_order"`                           // 排序权重
	CreatedAt    time.Time `json:"created_at"`                                                  // 创建时间
	UpdatedAt    time.Time `json:"updated_at"`                                                  // 更新时间
}

// TableName 指定表名
func (ProductVariant) TableName() string {
	return "product_variants"
}
