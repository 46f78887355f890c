package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID            uint           `gorm:"primarykey" json:"id"`                                      // 主键
	Name          string         `gorm:"type:varchar(200);not null" json:"name"`                    // 名称
	Description   string         `gorm:"type:text" json:"description"`                              // 描述
	Price         Money          `gorm:"type:decimal(20,2);not null;default:0" json:"price"`        // 基础价格（IDR）
	RoastType     string         `gorm:"type:varchar(20);index" json:"roast_type"`                  // 烘焙程度（Light/Medium/Dark，可为空）
	ImageURL      string         `gorm:"type:varchar(500)" json:"image_url"`                        // 图片地址
	StockQuantity int            `gorm:"not null;default:0" json:"stock_quantity"`                  // 库存
	IsActive      bool           `gorm:"default:true;index" json:"is_active"`                       // 是否上架
	CreatedAt     time.Time      `gorm:"index" json:"created_at"`                                   // 创建时间
	UpdatedAt     time.Time      `json:"updated_at"`                                                // 更新时间
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`                                            // 软删除时间

	Variants []ProductVariant `gorm:"foreignKey:ProductID" json:"variants,omitempty"` // 规格列表
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}

// DefaultVariant 返回排序第一的规格
func (p *Product) DefaultVariant() *ProductVariant {
	if p == nil || len(p.Variants) == 0 {
		return nil
	}
	return &p.Variants[0]
}

// FindVariant 按 ID 查找规格
func (p *Product) FindVariant(variantID uint) *ProductVariant {
	if p == nil || variantID == 0 {
		return nil
	}
	for i := range p.Variants {
		if p.Variants[i].ID == variantID {
			return &p.Variants[i]
		}
	}
	return nil
}
