package repository

import (
	"context"
	"testing"
	"time"

	"github.com/geoda-coffee/storefront/internal/constants"
	"github.com/geoda-coffee/storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestOrder(t *testing.T, repo *GormOrderRepository, userID uint, orderNo string, createdAt time.Time) *models.Order {
	t.Helper()
	order := &models.Order{
		OrderNo:         orderNo,
		UserID:          userID,
		TotalPrice:      models.NewMoney(20000),
		PaymentMethod:   constants.PaymentMethodCOD,
		ShippingAddress: "Jl. Kemang Raya 1",
		Status:          constants.OrderStatusPending,
		CreatedAt:       createdAt,
	}
	items := []models.OrderItem{{ProductID: 1, ProductName: "Gayo", Quantity: 1, PriceAtPurchase: models.NewMoney(20000)}}
	require.NoError(t, repo.Create(context.Background(), order, items))
	return order
}

func TestOrderListByUserNewestFirstWithItems(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()
	now := time.Now()

	createTestOrder(t, repo, 1, "GC-OLD", now.Add(-2*time.Hour))
	createTestOrder(t, repo, 1, "GC-NEW", now)
	createTestOrder(t, repo, 2, "GC-OTHER", now)

	orders, total, err := repo.ListByUser(ctx, OrderListFilter{UserID: 1, Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	require.Len(t, orders, 2)
	assert.Equal(t, "GC-NEW", orders[0].OrderNo)
	assert.Equal(t, "GC-OLD", orders[1].OrderNo)
	require.Len(t, orders[0].Items, 1)
	assert.Equal(t, "Gayo", orders[0].Items[0].ProductName)
}

func TestOrderGetByOrderNoAndUserScopesOwner(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()
	createTestOrder(t, repo, 1, "GC-MINE", time.Now())

	got, err := repo.GetByOrderNoAndUser(ctx, "GC-MINE", 2)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = repo.GetByOrderNoAndUser(ctx, "GC-MINE", 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Items, 1)
}

func TestOrderResolveReceiverEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewOrderRepository(db)
	ctx := context.Background()
	user := &models.User{Email: "budi@example.com", PasswordHash: "x"}
	require.NoError(t, db.Create(user).Error)
	order := createTestOrder(t, repo, user.ID, "GC-MAIL", time.Now())

	email, err := repo.ResolveReceiverEmail(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "budi@example.com", email)

	email, err = repo.ResolveReceiverEmail(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, email)
}
