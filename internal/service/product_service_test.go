package service

import (
	"context"
	"testing"

	"github.com/geoda-coffee/storefront/internal/constants"
	"github.com/geoda-coffee/storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Gayo Arabica", Description: "Fruity and bright", RoastType: constants.RoastLight, Price: models.NewMoney(45000), StockQuantity: 10},
		{ID: 2, Name: "Toraja Kalosi", Description: "Earthy with dark chocolate", RoastType: constants.RoastMedium, Price: models.NewMoney(50000), StockQuantity: 0},
		{ID: 3, Name: "Kintamani Bali", Description: "Citrus notes", RoastType: constants.RoastMedium, Price: models.NewMoney(100000), StockQuantity: 3},
		{ID: 4, Name: "Flores Bajawa", Description: "Smoky and bold", RoastType: constants.RoastDark, Price: models.NewMoney(125000), StockQuantity: 7},
		{ID: 5, Name: "Kopi Tubruk Blend", Description: "House blend", Price: models.NewMoney(35000), StockQuantity: 4},
	}
}

func productIDs(products []models.Product) []uint {
	ids := make([]uint, 0, len(products))
	for _, p := range products {
		ids = append(ids, p.ID)
	}
	return ids
}

func TestFilterProducts(t *testing.T) {
	products := catalogFixture()
	cases := []struct {
		name   string
		filter ProductFilter
		want   []uint
	}{
		{name: "no_filter", filter: ProductFilter{}, want: []uint{1, 2, 3, 4, 5}},
		{name: "search_name_case_insensitive", filter: ProductFilter{Search: "  gayo "}, want: []uint{1}},
		{name: "search_description", filter: ProductFilter{Search: "CHOCOLATE"}, want: []uint{2}},
		{name: "roast_case_insensitive", filter: ProductFilter{Roast: "medium"}, want: []uint{2, 3}},
		{name: "unknown_roast_ignored", filter: ProductFilter{Roast: "espresso"}, want: []uint{1, 2, 3, 4, 5}},
		{name: "under50", filter: ProductFilter{PriceBucket: constants.PriceBucketUnder50}, want: []uint{1, 5}},
		{name: "50_to_100_inclusive", filter: ProductFilter{PriceBucket: constants.PriceBucket50To100}, want: []uint{2, 3}},
		{name: "over100", filter: ProductFilter{PriceBucket: constants.PriceBucketOver100}, want: []uint{4}},
		{name: "unknown_bucket_is_all", filter: ProductFilter{PriceBucket: "cheap"}, want: []uint{1, 2, 3, 4, 5}},
		{name: "in_stock_only", filter: ProductFilter{InStockOnly: true}, want: []uint{1, 3, 4, 5}},
		{
			name:   "combined",
			filter: ProductFilter{Roast: constants.RoastMedium, PriceBucket: constants.PriceBucket50To100, InStockOnly: true},
			want:   []uint{3},
		},
		{name: "no_match", filter: ProductFilter{Search: "sumatra"}, want: []uint{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FilterProducts(products, tc.filter)
			assert.Equal(t, tc.want, productIDs(got))
		})
	}
}

func TestNormalizeProductFilter(t *testing.T) {
	got := NormalizeProductFilter(ProductFilter{Search: "  toraja ", Roast: "DARK", PriceBucket: " OVER100 "})
	assert.Equal(t, "toraja", got.Search)
	assert.Equal(t, constants.RoastDark, got.Roast)
	assert.Equal(t, constants.PriceBucketOver100, got.PriceBucket)

	got = NormalizeProductFilter(ProductFilter{})
	assert.Equal(t, constants.PriceBucketAll, got.PriceBucket)
	assert.Empty(t, got.Roast)
}

func TestProductServiceListAndGet(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	light := env.createProduct(t, "Gayo Arabica", 45000, 10,
		models.ProductVariant{WeightGrams: 250, PriceVariant: models.NewMoney(48000), SortOrder: 1},
		models.ProductVariant{WeightGrams: 500, PriceVariant: models.NewMoney(90000), SortOrder: 2},
	)
	soldOut := env.createProduct(t, "Toraja Kalosi", 60000, 0)
	hidden := env.createProduct(t, "Flores Bajawa", 70000, 5)
	require.NoError(t, env.db.Model(hidden).Update("is_active", false).Error)

	views, err := env.product.ListProducts(ctx, ProductFilter{})
	require.NoError(t, err)
	require.Len(t, views, 2)

	byID := map[uint]ProductView{}
	for _, v := range views {
		byID[v.ID] = v
	}
	assert.NotContains(t, byID, hidden.ID)
	assert.Equal(t, light.Variants[0].ID, byID[light.ID].DefaultVariantID)
	assert.True(t, byID[light.ID].DisplayPrice.Equal(models.NewMoney(48000).Decimal))
	assert.True(t, byID[light.ID].InStock)
	assert.False(t, byID[soldOut.ID].InStock)
	assert.True(t, byID[soldOut.ID].DisplayPrice.Equal(models.NewMoney(60000).Decimal))

	views, err = env.product.ListProducts(ctx, ProductFilter{InStockOnly: true})
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, light.ID, views[0].ID)

	detail, err := env.product.GetProduct(ctx, light.ID)
	require.NoError(t, err)
	require.Len(t, detail.Variants, 2)

	_, err = env.product.GetProduct(ctx, hidden.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
	_, err = env.product.GetProduct(ctx, 0)
	assert.ErrorIs(t, err, ErrProductNotFound)
}
