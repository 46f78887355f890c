package cache

import (
	"context"
	"time"

	"github.com/geoda-coffee/storefront/internal/models"
)

const catalogActiveProductsKey = "catalog:products:active"

// GetActiveProducts 读取上架商品列表缓存
func (s *Store) GetActiveProducts(ctx context.Context) ([]models.Product, bool, error) {
	var products []models.Product
	hit, err := s.GetJSON(ctx, catalogActiveProductsKey, &products)
	if err != nil || !hit {
		return nil, hit, err
	}
	return products, true, nil
}

// SetActiveProducts 写入上架商品列表缓存
func (s *Store) SetActiveProducts(ctx context.Context, products []models.Product, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	return s.SetJSON(ctx, catalogActiveProductsKey, products, ttl)
}

// InvalidateCatalog 清除商品目录缓存，库存变化后调用
func (s *Store) InvalidateCatalog(ctx context.Context) error {
	return s.Del(ctx, catalogActiveProductsKey)
}
