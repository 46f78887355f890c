package provider

import (
	"context"
	"time"

	"github.com/geoda-coffee/storefront/internal/cache"
	"github.com/geoda-coffee/storefront/internal/config"
	"github.com/geoda-coffee/storefront/internal/logger"
	"github.com/geoda-coffee/storefront/internal/queue"
	"github.com/geoda-coffee/storefront/internal/repository"
	"github.com/geoda-coffee/storefront/internal/service"

	"gorm.io/gorm"
)

// Container 依赖注入容器
type Container struct {
	Config      *config.Config
	DB          *gorm.DB
	Cache       *cache.Store
	QueueClient *queue.Client

	// Repositories
	UserRepo    repository.UserRepository
	ProfileRepo repository.ProfileRepository
	ProductRepo repository.ProductRepository
	CartRepo    repository.CartRepository
	OrderRepo   repository.OrderRepository
	ContactRepo repository.ContactRepository

	// Services
	UserAuthService *service.UserAuthService
	ProfileService  *service.ProfileService
	ProductService  *service.ProductService
	CartService     *service.CartService
	CheckoutService *service.CheckoutService
	OrderService    *service.OrderService
	ContactService  *service.ContactService
	EmailService    *service.EmailService
	CaptchaService  *service.CaptchaService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config, db *gorm.DB) *Container {
	// 初始化缓存，连接失败时降级为不缓存
	store := cache.NewStore(&cfg.Redis)
	if store.Enabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := store.Ping(ctx); err != nil {
			logger.Warnw("provider_init_redis_failed", "error", err)
		}
		cancel()
	}

	// 初始化队列客户端
	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
		queueClient = nil
	}

	c := &Container{
		Config:      cfg,
		DB:          db,
		Cache:       store,
		QueueClient: queueClient,
	}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := c.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ProfileRepo = repository.NewProfileRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.ContactRepo = repository.NewContactRepository(db)
}

func (c *Container) initServices() {
	cfg := c.Config
	catalogTTL := time.Duration(cfg.Catalog.CacheTTLSeconds) * time.Second

	c.EmailService = service.NewEmailService(&cfg.Email)
	c.CaptchaService = service.NewCaptchaService(cfg.Captcha)
	c.UserAuthService = service.NewUserAuthService(cfg, c.DB, c.UserRepo, c.ProfileRepo, c.Cache)
	c.ProfileService = service.NewProfileService(c.ProfileRepo)
	c.ProductService = service.NewProductService(c.ProductRepo, c.Cache, catalogTTL)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.CheckoutService = service.NewCheckoutService(c.CartService, c.ProfileRepo)
	c.OrderService = service.NewOrderService(cfg.Order, c.DB, c.OrderRepo, c.CartRepo, c.ProductRepo, c.ProfileRepo, c.Cache, c.QueueClient)
	c.ContactService = service.NewContactService(c.ContactRepo, c.QueueClient)
}

// Close 释放外部连接
func (c *Container) Close() {
	if c == nil {
		return
	}
	if err := c.QueueClient.Close(); err != nil {
		logger.Warnw("provider_close_queue_client_failed", "error", err)
	}
	if err := c.Cache.Close(); err != nil {
		logger.Warnw("provider_close_redis_failed", "error", err)
	}
}
