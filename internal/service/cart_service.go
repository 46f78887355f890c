package service

import (
	"context"

	"github.com/geoda-coffee/storefront/internal/logger"
	"github.com/geoda-coffee/storefront/internal/models"
	"github.com/geoda-coffee/storefront/internal/repository"
)

// CartItemDetail 购物车项详情（用于响应）
type CartItemDetail struct {
	ID           uint                   `json:"id"`
	ProductID    uint                   `json:"product_id"`
	VariantID    uint                   `json:"variant_id"`
	Quantity     int                    `json:"quantity"`
	UnitPrice    models.Money           `json:"unit_price"`
	LineTotal    models.Money           `json:"line_total"`
	CanIncrement bool                   `json:"can_increment"`
	Product      *models.Product        `json:"product"`
	Variant      *models.ProductVariant `json:"variant,omitempty"`
}

// CartView 购物车视图，合计每次读取时重新计算
type CartView struct {
	Items     []CartItemDetail `json:"items"`
	ItemCount int              `json:"item_count"`
	Total     models.Money     `json:"total"`
}

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// EffectivePrice 有规格时取规格价，否则取商品基础价
func EffectivePrice(item models.CartItem) models.Money {
	if item.Variant != nil {
		return item.Variant.PriceVariant
	}
	if item.Product != nil {
		return item.Product.Price
	}
	return models.Money{}
}

// Count 购物车商品总件数，匿名会话直接返回 0
func (s *CartService) Count(ctx context.Context, sess Session) (int64, error) {
	if !sess.Authenticated() {
		return 0, nil
	}
	total, err := s.cartRepo.SumQuantityByUser(ctx, sess.UserID)
	if err != nil {
		logger.Errorw("cart_count_failed", "user_id", sess.UserID, "error", err)
		return 0, ErrCartFetchFailed
	}
	return total, nil
}

// AddItem 加入购物车，已有条目数量加 1，返回写入后的总件数
func (s *CartService) AddItem(ctx context.Context, sess Session, productID, variantID uint) (int64, error) {
	if err := requireSession(sess); err != nil {
		return 0, err
	}
	if productID == 0 {
		return 0, ErrProductNotFound
	}
	product, err := s.productRepo.GetActiveByID(ctx, productID)
	if err != nil {
		logger.Errorw("cart_add_product_fetch_failed", "product_id", productID, "error", err)
		return 0, ErrCartAddFailed
	}
	if product == nil {
		return 0, ErrProductNotFound
	}
	if variantID != 0 && product.FindVariant(variantID) == nil {
		return 0, ErrVariantNotFound
	}
	if product.StockQuantity <= 0 {
		return 0, ErrProductOutOfStock
	}

	cart, err := s.cartRepo.GetOrCreate(ctx, sess.UserID)
	if err != nil {
		logger.Errorw("cart_get_or_create_failed", "user_id", sess.UserID, "error", err)
		return 0, ErrCartAddFailed
	}
	written, err := s.cartRepo.IncrementItem(ctx, cart.ID, productID, variantID, product.StockQuantity)
	if err != nil {
		logger.Errorw("cart_increment_failed", "user_id", sess.UserID, "product_id", productID, "variant_id", variantID, "error", err)
		return 0, ErrCartAddFailed
	}
	if !written {
		return 0, ErrCartQuantityExceedsStock
	}

	count, err := s.cartRepo.SumQuantityByUser(ctx, sess.UserID)
	if err != nil {
		logger.Errorw("cart_count_failed", "user_id", sess.UserID, "error", err)
		return 0, ErrCartFetchFailed
	}
	return count, nil
}

// GetCart 获取购物车视图，已下架或删除的商品不展示
func (s *CartService) GetCart(ctx context.Context, sess Session) (*CartView, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	items, err := s.loadItems(ctx, sess.UserID)
	if err != nil {
		logger.Errorw("cart_fetch_failed", "user_id", sess.UserID, "error", err)
		return nil, ErrCartFetchFailed
	}
	return buildCartView(items), nil
}

// UpdateQuantity 设置条目数量，数量小于 1 时不做任何修改
func (s *CartService) UpdateQuantity(ctx context.Context, sess Session, itemID uint, quantity int) (*CartView, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	if quantity >= 1 {
		cart, err := s.cartRepo.GetByUser(ctx, sess.UserID)
		if err != nil {
			logger.Errorw("cart_fetch_failed", "user_id", sess.UserID, "error", err)
			return nil, ErrCartUpdateFailed
		}
		if cart == nil {
			return nil, ErrCartItemNotFound
		}
		item, err := s.cartRepo.GetItem(ctx, cart.ID, itemID)
		if err != nil {
			logger.Errorw("cart_item_fetch_failed", "user_id", sess.UserID, "item_id", itemID, "error", err)
			return nil, ErrCartUpdateFailed
		}
		if item == nil || item.Product == nil {
			return nil, ErrCartItemNotFound
		}
		if quantity > item.Product.StockQuantity {
			return nil, ErrCartQuantityExceedsStock
		}
		affected, err := s.cartRepo.UpdateItemQuantity(ctx, cart.ID, itemID, quantity)
		if err != nil {
			logger.Errorw("cart_item_update_failed", "user_id", sess.UserID, "item_id", itemID, "error", err)
			return nil, ErrCartUpdateFailed
		}
		// 条目已确认存在，未命中说明库存在此期间被买走
		if affected == 0 {
			return nil, ErrCartQuantityExceedsStock
		}
	}
	return s.GetCart(ctx, sess)
}

// RemoveItem 删除购物车条目
func (s *CartService) RemoveItem(ctx context.Context, sess Session, itemID uint) (*CartView, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	cart, err := s.cartRepo.GetByUser(ctx, sess.UserID)
	if err != nil {
		logger.Errorw("cart_fetch_failed", "user_id", sess.UserID, "error", err)
		return nil, ErrCartRemoveFailed
	}
	if cart == nil {
		return nil, ErrCartItemNotFound
	}
	affected, err := s.cartRepo.DeleteItem(ctx, cart.ID, itemID)
	if err != nil {
		logger.Errorw("cart_item_delete_failed", "user_id", sess.UserID, "item_id", itemID, "error", err)
		return nil, ErrCartRemoveFailed
	}
	if affected == 0 {
		return nil, ErrCartItemNotFound
	}
	return s.GetCart(ctx, sess)
}

func (s *CartService) loadItems(ctx context.Context, userID uint) ([]models.CartItem, error) {
	cart, err := s.cartRepo.GetByUser(ctx, userID)
	if err != nil || cart == nil {
		return nil, err
	}
	return s.cartRepo.ListItems(ctx, cart.ID)
}

func buildCartView(items []models.CartItem) *CartView {
	view := &CartView{Items: make([]CartItemDetail, 0, len(items))}
	for _, item := range items {
		if !purchasable(item) {
			continue
		}
		unitPrice := EffectivePrice(item)
		lineTotal := unitPrice.Times(item.Quantity)
		view.Items = append(view.Items, CartItemDetail{
			ID:           item.ID,
			ProductID:    item.ProductID,
			VariantID:    item.VariantID,
			Quantity:     item.Quantity,
			UnitPrice:    unitPrice,
			LineTotal:    lineTotal,
			CanIncrement: item.Quantity < item.Product.StockQuantity,
			Product:      item.Product,
			Variant:      item.Variant,
		})
		view.ItemCount += item.Quantity
		view.Total = view.Total.Plus(lineTotal)
	}
	return view
}

// purchasable 商品存在且上架；选了规格时规格也须存在
func purchasable(item models.CartItem) bool {
	if item.Product == nil || !item.Product.IsActive {
		return false
	}
	return item.VariantID == 0 || item.Variant != nil
}
