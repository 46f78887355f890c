package service

import (
	"context"
	"time"

	"github.com/geoda-coffee/storefront/internal/cache"
	"github.com/geoda-coffee/storefront/internal/logger"
	"github.com/geoda-coffee/storefront/internal/models"
	"github.com/geoda-coffee/storefront/internal/repository"
)

// ProductService 商品目录服务
type ProductService struct {
	repo     repository.ProductRepository
	cache    *cache.Store
	cacheTTL time.Duration
}

// NewProductService 创建商品服务
func NewProductService(repo repository.ProductRepository, store *cache.Store, cacheTTL time.Duration) *ProductService {
	return &ProductService{repo: repo, cache: store, cacheTTL: cacheTTL}
}

// ProductView 商品展示视图
type ProductView struct {
	models.Product
	DefaultVariantID uint         `json:"default_variant_id"`
	DisplayPrice     models.Money `json:"display_price"`
	InStock          bool         `json:"in_stock"`
}

// NewProductView 构建展示视图，展示价取默认规格价
func NewProductView(product models.Product) ProductView {
	view := ProductView{
		Product:      product,
		DisplayPrice: product.Price,
		InStock:      product.StockQuantity > 0,
	}
	if variant := product.DefaultVariant(); variant != nil {
		view.DefaultVariantID = variant.ID
		view.DisplayPrice = variant.PriceVariant
	}
	return view
}

// ListProducts 获取上架商品并按条件过滤
func (s *ProductService) ListProducts(ctx context.Context, filter ProductFilter) ([]ProductView, error) {
	products, err := s.activeProducts(ctx)
	if err != nil {
		return nil, err
	}
	filtered := FilterProducts(products, filter)
	views := make([]ProductView, 0, len(filtered))
	for _, p := range filtered {
		views = append(views, NewProductView(p))
	}
	return views, nil
}

// GetProduct 获取上架商品详情
func (s *ProductService) GetProduct(ctx context.Context, id uint) (*ProductView, error) {
	if id == 0 {
		return nil, ErrProductNotFound
	}
	product, err := s.repo.GetActiveByID(ctx, id)
	if err != nil {
		logger.Errorw("product_get_failed", "product_id", id, "error", err)
		return nil, ErrProductFetchFailed
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	view := NewProductView(*product)
	return &view, nil
}

func (s *ProductService) activeProducts(ctx context.Context) ([]models.Product, error) {
	if cached, hit, err := s.cache.GetActiveProducts(ctx); err != nil {
		logger.Warnw("catalog_cache_get_failed", "error", err)
	} else if hit {
		return cached, nil
	}
	products, err := s.repo.List(ctx, repository.ProductListFilter{OnlyActive: true, WithVariants: true})
	if err != nil {
		logger.Errorw("product_list_failed", "error", err)
		return nil, ErrProductFetchFailed
	}
	if err := s.cache.SetActiveProducts(ctx, products, s.cacheTTL); err != nil {
		logger.Warnw("catalog_cache_set_failed", "error", err)
	}
	return products, nil
}
