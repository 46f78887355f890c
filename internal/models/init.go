package models

import (
	"github.com/geoda-coffee/storefront/internal/constants"
	"github.com/geoda-coffee/storefront/internal/logger"

	"gorm.io/gorm"
)

// DefaultCatalog 默认咖啡目录（价格单位 IDR）
func DefaultCatalog() []Product {
	return []Product{
		{
			Name:          "Gayo Arabica",
			Description:   "Single origin Aceh Gayo, notes of jasmine and brown sugar.",
			Price:         NewMoney(45000),
			RoastType:     constants.RoastLight,
			StockQuantity: 40,
			IsActive:      true,
			Variants: []ProductVariant{
				{WeightGrams: 250, PriceVariant: NewMoney(45000), SortOrder: 1},
				{WeightGrams: 500, PriceVariant: NewMoney(85000), SortOrder: 2},
				{WeightGrams: 1000, PriceVariant: NewMoney(160000), SortOrder: 3},
			},
		},
		{
			Name:          "Toraja Kalosi",
			Description:   "Full body from South Sulawesi with dark chocolate finish.",
			Price:         NewMoney(55000),
			RoastType:     constants.RoastMedium,
			StockQuantity: 30,
			IsActive:      true,
			Variants: []ProductVariant{
				{WeightGrams: 250, PriceVariant: NewMoney(55000), SortOrder: 1},
				{WeightGrams: 500, PriceVariant: NewMoney(105000), SortOrder: 2},
			},
		},
		{
			Name:          "Kintamani Bali",
			Description:   "Citrus bright cup grown alongside orange groves in Bali.",
			Price:         NewMoney(60000),
			RoastType:     constants.RoastLight,
			StockQuantity: 25,
			IsActive:      true,
		},
		{
			Name:          "Flores Bajawa",
			Description:   "Smoky, bold and syrupy. Ideal for espresso.",
			Price:         NewMoney(120000),
			RoastType:     constants.RoastDark,
			StockQuantity: 15,
			IsActive:      true,
			Variants: []ProductVariant{
				{WeightGrams: 500, PriceVariant: NewMoney(120000), SortOrder: 1},
				{WeightGrams: 1000, PriceVariant: NewMoney(225000), SortOrder: 2},
			},
		},
		{
			Name:          "Kopi Tubruk Blend",
			Description:   "House robusta blend for traditional tubruk brewing.",
			Price:         NewMoney(35000),
			StockQuantity: 60,
			IsActive:      true,
		},
		{
			Name:          "Java Preanger",
			Description:   "Heritage West Java arabica, spicy with a clean finish.",
			Price:         NewMoney(75000),
			RoastType:     constants.RoastMedium,
			StockQuantity: 0,
			IsActive:      true,
		},
	}
}

// SeedCatalog 按商品名称补齐目录，已存在的商品跳过，返回新建数量
func SeedCatalog(db *gorm.DB, products []Product) (int, error) {
	created := 0
	for i := range products {
		product := products[i]
		var count int64
		if err := db.Model(&Product{}).Where("name = ?", product.Name).Count(&count).Error; err != nil {
			return created, err
		}
		if count > 0 {
			continue
		}
		if err := db.Create(&product).Error; err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

// InitDefaultCatalog 商品表为空时写入默认目录
func InitDefaultCatalog() error {
	var count int64
	if err := DB.Model(&Product{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	created, err := SeedCatalog(DB, DefaultCatalog())
	if err != nil {
		return err
	}
	logger.Infow("default_catalog_created", "products", created)
	return nil
}
