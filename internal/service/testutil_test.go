package service

import (
	"fmt"
	"strings"
	"testing"

	"github.com/geoda-coffee/storefront/internal/config"
	"github.com/geoda-coffee/storefront/internal/constants"
	"github.com/geoda-coffee/storefront/internal/models"
	"github.com/geoda-coffee/storefront/internal/repository"

	"github.com/glebarez/sqlite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func init() {
	passwordHashCost = bcrypt.MinCost
}

// testEnv 绑定同一内存库的仓库与服务
type testEnv struct {
	db          *gorm.DB
	cfg         *config.Config
	userRepo    *repository.GormUserRepository
	profileRepo *repository.GormProfileRepository
	productRepo *repository.GormProductRepository
	cartRepo    *repository.GormCartRepository
	orderRepo   *repository.GormOrderRepository
	contactRepo *repository.GormContactRepository

	auth     *UserAuthService
	profile  *ProfileService
	product  *ProductService
	cart     *CartService
	checkout *CheckoutService
	order    *OrderService
	contact  *ContactService
}

func openServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(1)
	}
	if err := db.AutoMigrate(models.AllModels()...); err != nil {
		t.Fatalf("migrate failed: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func testConfig() *config.Config {
	return &config.Config{
		UserJWT: config.JWTConfig{
			SecretKey:             "test-secret-for-geoda",
			ExpireHours:           24,
			RememberMeExpireHours: 168,
		},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{MinLength: 6, MaxLength: 128},
		},
		Order: config.OrderConfig{OrderNoPrefix: "GC", MaxItems: 50},
	}
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := openServiceTestDB(t)
	cfg := testConfig()
	env := &testEnv{
		db:          db,
		cfg:         cfg,
		userRepo:    repository.NewUserRepository(db),
		profileRepo: repository.NewProfileRepository(db),
		productRepo: repository.NewProductRepository(db),
		cartRepo:    repository.NewCartRepository(db),
		orderRepo:   repository.NewOrderRepository(db),
		contactRepo: repository.NewContactRepository(db),
	}
	// 缓存与队列传 nil，均按未启用处理
	env.auth = NewUserAuthService(cfg, db, env.userRepo, env.profileRepo, nil)
	env.profile = NewProfileService(env.profileRepo)
	env.product = NewProductService(env.productRepo, nil, 0)
	env.cart = NewCartService(env.cartRepo, env.productRepo)
	env.checkout = NewCheckoutService(env.cart, env.profileRepo)
	env.order = NewOrderService(cfg.Order, db, env.orderRepo, env.cartRepo, env.productRepo, env.profileRepo, nil, nil)
	env.contact = NewContactService(env.contactRepo, nil)
	return env
}

// createUser 直接写库创建用户与资料，返回会话
func (e *testEnv) createUser(t *testing.T, email string, phone, address string) Session {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("rahasia123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password failed: %v", err)
	}
	user := &models.User{Email: email, PasswordHash: string(hash), Status: constants.UserStatusActive}
	if err := e.db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	profile := &models.UserProfile{UserID: user.ID, FullName: "Budi Santoso", PhoneNumber: phone, Address: address}
	if err := e.db.Create(profile).Error; err != nil {
		t.Fatalf("create profile failed: %v", err)
	}
	return Session{UserID: user.ID, Email: email, Locale: "id-ID"}
}

func (e *testEnv) createProduct(t *testing.T, name string, price int64, stock int, variants ...models.ProductVariant) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:          name,
		Description:   name + " single origin",
		Price:         models.NewMoney(price),
		StockQuantity: stock,
		IsActive:      true,
		Variants:      variants,
	}
	if err := e.db.Create(product).Error; err != nil {
		t.Fatalf("create product failed: %v", err)
	}
	return product
}

func (e *testEnv) stockOf(t *testing.T, productID uint) int {
	t.Helper()
	var product models.Product
	if err := e.db.First(&product, productID).Error; err != nil {
		t.Fatalf("load product failed: %v", err)
	}
	return product.StockQuantity
}
