package service

import (
	"strings"

	"github.com/geoda-coffee/storefront/internal/constants"
	"github.com/geoda-coffee/storefront/internal/models"

	"github.com/shopspring/decimal"
)

var (
	priceBucketLow  = decimal.NewFromInt(50000)
	priceBucketHigh = decimal.NewFromInt(100000)
)

// ProductFilter 商品目录筛选条件，各条件之间为与关系
type ProductFilter struct {
	Search      string
	Roast       string
	PriceBucket string
	InStockOnly bool
}

// NormalizeProductFilter 规范化筛选参数，未知取值视为不筛选
func NormalizeProductFilter(filter ProductFilter) ProductFilter {
	filter.Search = strings.TrimSpace(filter.Search)
	filter.Roast = normalizeRoast(filter.Roast)
	switch strings.ToLower(strings.TrimSpace(filter.PriceBucket)) {
	case constants.PriceBucketUnder50:
		filter.PriceBucket = constants.PriceBucketUnder50
	case constants.PriceBucket50To100:
		filter.PriceBucket = constants.PriceBucket50To100
	case constants.PriceBucketOver100:
		filter.PriceBucket = constants.PriceBucketOver100
	default:
		filter.PriceBucket = constants.PriceBucketAll
	}
	return filter
}

// FilterProducts 在内存中按条件过滤商品，保持原有顺序
func FilterProducts(products []models.Product, filter ProductFilter) []models.Product {
	filter = NormalizeProductFilter(filter)
	search := strings.ToLower(filter.Search)
	result := make([]models.Product, 0, len(products))
	for _, p := range products {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if filter.Roast != "" && p.RoastType != filter.Roast {
			continue
		}
		if !matchPriceBucket(p.Price, filter.PriceBucket) {
			continue
		}
		if filter.InStockOnly && p.StockQuantity <= 0 {
			continue
		}
		result = append(result, p)
	}
	return result
}

// matchPriceBucket 按商品基础价判断价格区间
func matchPriceBucket(price models.Money, bucket string) bool {
	switch bucket {
	case constants.PriceBucketUnder50:
		return price.Decimal.LessThan(priceBucketLow)
	case constants.PriceBucket50To100:
		return price.Decimal.GreaterThanOrEqual(priceBucketLow) && price.Decimal.LessThanOrEqual(priceBucketHigh)
	case constants.PriceBucketOver100:
		return price.Decimal.GreaterThan(priceBucketHigh)
	default:
		return true
	}
}

func normalizeRoast(value string) string {
	value = strings.TrimSpace(value)
	for _, roast := range constants.RoastTypes {
		if strings.EqualFold(roast, value) {
			return roast
		}
	}
	return ""
}
