//go:build integration
// +build integration

package repository

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/geoda-coffee/storefront/internal/constants"
	"github.com/geoda-coffee/storefront/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// setupPostgresIntegrationDB 初始化 PostgreSQL 集成测试数据库。
func setupPostgresIntegrationDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := strings.TrimSpace(os.Getenv("TEST_POSTGRES_DSN"))
	if dsn == "" {
		t.Skip("skip postgres integration test: TEST_POSTGRES_DSN is empty")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open postgres failed: %v", err)
	}

	cleanupModels := models.AllModels()
	_ = db.Migrator().DropTable(cleanupModels...)
	if err := db.AutoMigrate(cleanupModels...); err != nil {
		t.Fatalf("migrate postgres models failed: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(cleanupModels...)
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func TestPostgresCheckoutTransaction(t *testing.T) {
	db := setupPostgresIntegrationDB(t)
	ctx := context.Background()

	user := &models.User{Email: "pg@example.com", PasswordHash: "x", Status: constants.UserStatusActive}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("create user failed: %v", err)
	}
	product := createTestProduct(t, db, "Gayo Arabica", 45000, 3,
		models.ProductVariant{WeightGrams: 250, PriceVariant: models.NewMoney(48000), SortOrder: 1},
	)

	cartRepo := NewCartRepository(db)
	cart, err := cartRepo.GetOrCreate(ctx, user.ID)
	if err != nil {
		t.Fatalf("get or create cart failed: %v", err)
	}
	for i := 0; i < 2; i++ {
		ok, err := cartRepo.IncrementItem(ctx, cart.ID, product.ID, product.Variants[0].ID, product.StockQuantity)
		if err != nil || !ok {
			t.Fatalf("increment item failed: ok=%v err=%v", ok, err)
		}
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		productRepo := NewProductRepository(db).WithTx(tx)
		affected, err := productRepo.DecrementStock(ctx, product.ID, 2)
		if err != nil || affected != 1 {
			t.Fatalf("decrement stock failed: affected=%d err=%v", affected, err)
		}
		order := &models.Order{
			OrderNo:         "GCPG0001",
			UserID:          user.ID,
			TotalPrice:      models.NewMoney(96000),
			PaymentMethod:   constants.PaymentMethodBankTransfer,
			ShippingAddress: "Jl. Asia Afrika No. 8, Bandung",
			Status:          constants.OrderStatusPending,
		}
		items := []models.OrderItem{{
			ProductID:       product.ID,
			VariantID:       product.Variants[0].ID,
			ProductName:     product.Name,
			WeightGrams:     250,
			Quantity:        2,
			PriceAtPurchase: models.NewMoney(48000),
		}}
		if err := NewOrderRepository(db).WithTx(tx).Create(ctx, order, items); err != nil {
			return err
		}
		_, err = NewCartRepository(db).WithTx(tx).Clear(ctx, cart.ID)
		return err
	})
	if err != nil {
		t.Fatalf("checkout transaction failed: %v", err)
	}

	orders, total, err := NewOrderRepository(db).ListByUser(ctx, OrderListFilter{UserID: user.ID, Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if total != 1 || len(orders) != 1 || len(orders[0].Items) != 1 {
		t.Fatalf("unexpected orders: total=%d orders=%+v", total, orders)
	}
	if !orders[0].Items[0].PriceAtPurchase.Equal(models.NewMoney(48000).Decimal) {
		t.Fatalf("price at purchase want 48000 got %s", orders[0].Items[0].PriceAtPurchase.String())
	}

	count, err := cartRepo.SumQuantityByUser(ctx, user.ID)
	if err != nil || count != 0 {
		t.Fatalf("cart should be empty: count=%d err=%v", count, err)
	}

	// 库存不足时条件更新不命中
	affected, err := NewProductRepository(db).DecrementStock(ctx, product.ID, 5)
	if err != nil || affected != 0 {
		t.Fatalf("oversell should not update: affected=%d err=%v", affected, err)
	}
}
