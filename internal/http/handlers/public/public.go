package public

import (
	"strconv"
	"strings"

	"github.com/geoda-coffee/storefront/internal/http/response"
	"github.com/geoda-coffee/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProducts 获取商品目录，支持搜索、烘焙程度、价格区间与仅看有货
func (h *Handler) GetProducts(c *gin.Context) {
	inStock, _ := strconv.ParseBool(strings.TrimSpace(c.Query("in_stock")))
	filter := service.ProductFilter{
		Search:      c.Query("q"),
		Roast:       c.Query("roast"),
		PriceBucket: c.Query("price"),
		InStockOnly: inStock,
	}
	products, err := h.ProductService.ListProducts(c.Request.Context(), filter)
	if err != nil {
		respondError(c, response.CodeInternal, "error.product_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{
		"items":  products,
		"total":  len(products),
		"filter": service.NormalizeProductFilter(filter),
	})
}

// GetProduct 获取商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := parseUintParam(c, "id", "error.product_not_found")
	if !ok {
		return
	}
	product, err := h.ProductService.GetProduct(c.Request.Context(), id)
	if err != nil {
		respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "error.product_fetch_failed")
		return
	}
	response.Success(c, product)
}
