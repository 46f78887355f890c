package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/geoda-coffee/storefront/internal/cache"
	"github.com/geoda-coffee/storefront/internal/config"
	"github.com/geoda-coffee/storefront/internal/constants"
	"github.com/geoda-coffee/storefront/internal/logger"
	"github.com/geoda-coffee/storefront/internal/models"
	"github.com/geoda-coffee/storefront/internal/queue"
	"github.com/geoda-coffee/storefront/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderService 订单服务
type OrderService struct {
	cfg         config.OrderConfig
	db          *gorm.DB
	orderRepo   repository.OrderRepository
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	profileRepo repository.ProfileRepository
	cache       *cache.Store
	queueClient *queue.Client
}

// NewOrderService 创建订单服务
func NewOrderService(cfg config.OrderConfig, db *gorm.DB, orderRepo repository.OrderRepository, cartRepo repository.CartRepository, productRepo repository.ProductRepository, profileRepo repository.ProfileRepository, store *cache.Store, queueClient *queue.Client) *OrderService {
	return &OrderService{
		cfg:         cfg,
		db:          db,
		orderRepo:   orderRepo,
		cartRepo:    cartRepo,
		productRepo: productRepo,
		profileRepo: profileRepo,
		cache:       store,
		queueClient: queueClient,
	}
}

// PlaceOrder 将购物车转为订单。
// 扣减库存、写订单与订单项、清空购物车在同一事务内完成，任一步失败全部回滚。
func (s *OrderService) PlaceOrder(ctx context.Context, sess Session, paymentMethod string) (*models.Order, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	method, err := normalizePaymentMethod(paymentMethod)
	if err != nil {
		return nil, err
	}

	profile, err := s.profileRepo.GetByUserID(ctx, sess.UserID)
	if err != nil {
		logger.Errorw("order_profile_fetch_failed", "user_id", sess.UserID, "error", err)
		return nil, ErrOrderCreateFailed
	}
	if !profile.ReadyForCheckout() {
		return nil, ErrProfileIncomplete
	}
	cart, err := s.cartRepo.GetByUser(ctx, sess.UserID)
	if err != nil {
		logger.Errorw("order_cart_fetch_failed", "user_id", sess.UserID, "error", err)
		return nil, ErrOrderCreateFailed
	}
	if cart == nil {
		return nil, ErrCartEmpty
	}

	var order *models.Order
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cartRepo := s.cartRepo.WithTx(tx)
		// 锁住购物车，重复提交的第二笔交易等待后只会读到空车
		locked, err := cartRepo.LockCart(ctx, cart.ID)
		if err != nil {
			return err
		}
		if locked == nil {
			return ErrCartEmpty
		}
		items, err := cartRepo.ListItems(ctx, cart.ID)
		if err != nil {
			return err
		}
		lines := make([]models.CartItem, 0, len(items))
		for _, item := range items {
			if purchasable(item) {
				lines = append(lines, item)
			}
		}
		if len(lines) == 0 {
			return ErrCartEmpty
		}
		if s.cfg.MaxItems > 0 && len(lines) > s.cfg.MaxItems {
			return ErrOrderTooManyItems
		}

		if err := decrementStock(ctx, s.productRepo.WithTx(tx), lines); err != nil {
			return err
		}

		built, orderItems := buildOrder(s.cfg.OrderNoPrefix, sess.UserID, method, profile.Address, lines)
		if err := s.orderRepo.WithTx(tx).Create(ctx, built, orderItems); err != nil {
			return err
		}
		cleared, err := cartRepo.Clear(ctx, cart.ID)
		if err != nil {
			return err
		}
		if err := checkCartCleared(cleared, len(items)); err != nil {
			return err
		}
		order = built
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrCartEmpty), errors.Is(err, ErrOrderTooManyItems), errors.Is(err, ErrProductOutOfStock):
			return nil, err
		default:
			logger.Errorw("order_place_failed", "user_id", sess.UserID, "error", err)
			return nil, ErrOrderCreateFailed
		}
	}

	s.afterOrderPlaced(ctx, sess, order)
	return order, nil
}

// ListByUser 分页获取用户订单，最新在前
func (s *OrderService) ListByUser(ctx context.Context, sess Session, page, pageSize int) ([]models.Order, int64, error) {
	if err := requireSession(sess); err != nil {
		return nil, 0, err
	}
	orders, total, err := s.orderRepo.ListByUser(ctx, repository.OrderListFilter{
		Page:     page,
		PageSize: pageSize,
		UserID:   sess.UserID,
	})
	if err != nil {
		logger.Errorw("order_list_failed", "user_id", sess.UserID, "error", err)
		return nil, 0, ErrOrderFetchFailed
	}
	return orders, total, nil
}

// GetByOrderNo 获取用户自己的订单详情
func (s *OrderService) GetByOrderNo(ctx context.Context, sess Session, orderNo string) (*models.Order, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	orderNo = strings.TrimSpace(orderNo)
	if orderNo == "" {
		return nil, ErrOrderNotFound
	}
	order, err := s.orderRepo.GetByOrderNoAndUser(ctx, orderNo, sess.UserID)
	if err != nil {
		logger.Errorw("order_get_failed", "user_id", sess.UserID, "order_no", orderNo, "error", err)
		return nil, ErrOrderFetchFailed
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

func (s *OrderService) afterOrderPlaced(ctx context.Context, sess Session, order *models.Order) {
	if err := s.cache.InvalidateCatalog(ctx); err != nil {
		logger.Warnw("catalog_cache_invalidate_failed", "order_no", order.OrderNo, "error", err)
	}
	payload := queue.OrderPlacedEmailPayload{
		OrderID: order.ID,
		OrderNo: order.OrderNo,
		Locale:  sess.Locale,
	}
	if err := s.queueClient.EnqueueOrderPlacedEmail(ctx, payload); err != nil {
		logger.Warnw("order_placed_email_enqueue_failed", "order_no", order.OrderNo, "error", err)
	}
}

// decrementStock 按商品汇总数量后条件扣减库存，按商品 ID 顺序加锁
func decrementStock(ctx context.Context, productRepo repository.ProductRepository, lines []models.CartItem) error {
	quantities := make(map[uint]int, len(lines))
	for _, line := range lines {
		quantities[line.ProductID] += line.Quantity
	}
	productIDs := make([]uint, 0, len(quantities))
	for id := range quantities {
		productIDs = append(productIDs, id)
	}
	sort.Slice(productIDs, func(i, j int) bool { return productIDs[i] < productIDs[j] })

	for _, id := range productIDs {
		affected, err := productRepo.DecrementStock(ctx, id, quantities[id])
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrProductOutOfStock
		}
	}
	return nil
}

func buildOrder(prefix string, userID uint, method, address string, lines []models.CartItem) (*models.Order, []models.OrderItem) {
	items := make([]models.OrderItem, 0, len(lines))
	total := models.Money{}
	for _, line := range lines {
		price := EffectivePrice(line)
		total = total.Plus(price.Times(line.Quantity))
		item := models.OrderItem{
			ProductID:       line.ProductID,
			VariantID:       line.VariantID,
			ProductName:     line.Product.Name,
			Quantity:        line.Quantity,
			PriceAtPurchase: price,
		}
		if line.Variant != nil {
			item.WeightGrams = line.Variant.WeightGrams
		}
		items = append(items, item)
	}
	order := &models.Order{
		OrderNo:         generateOrderNo(prefix),
		UserID:          userID,
		TotalPrice:      total,
		PaymentMethod:   method,
		ShippingAddress: address,
		Status:          constants.OrderStatusPending,
	}
	return order, items
}

func normalizePaymentMethod(method string) (string, error) {
	method = strings.ToLower(strings.TrimSpace(method))
	if method == "" {
		return "", NewFieldError("payment_method", "validation.payment_method_required")
	}
	for _, allowed := range constants.PaymentMethods {
		if method == allowed {
			return method, nil
		}
	}
	return "", NewFieldError("payment_method", "validation.payment_method_invalid")
}

func generateOrderNo(prefix string) string {
	if prefix == "" {
		prefix = "GC"
	}
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("%s%s%s", prefix, time.Now().Format("20060102150405"), suffix)
}

// checkCartCleared 清空的条目数少于读取到的条目数时，说明购物车已被另一笔订单消费
func checkCartCleared(cleared int64, listed int) error {
	if cleared < int64(listed) {
		return ErrCartEmpty
	}
	return nil
}
