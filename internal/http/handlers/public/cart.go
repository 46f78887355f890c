package public

import (
	"github.com/geoda-coffee/storefront/internal/http/response"
	"github.com/geoda-coffee/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// CartAddRequest 加入购物车请求
type CartAddRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	VariantID uint `json:"variant_id"`
}

// CartQuantityRequest 修改数量请求，数量小于 1 时不做修改
type CartQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCartCount 获取购物车件数，未登录返回 0
func (h *Handler) GetCartCount(c *gin.Context) {
	count, err := h.CartService.Count(c.Request.Context(), currentSession(c))
	if err != nil {
		respondError(c, response.CodeInternal, "error.cart_fetch_failed", err)
		return
	}
	response.Success(c, gin.H{"count": count})
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	cart, err := h.CartService.GetCart(c.Request.Context(), currentSession(c))
	if err != nil {
		respondCartError(c, err, "error.cart_fetch_failed")
		return
	}
	response.Success(c, cart)
}

// AddCartItem 加入购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	sess := currentSession(c)
	if !sess.Authenticated() {
		respondWithMappedError(c, service.ErrAuthRequired, cartAddErrorRules, response.CodeInternal, "error.cart_add_failed")
		return
	}
	var req CartAddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	count, err := h.CartService.AddItem(c.Request.Context(), sess, req.ProductID, req.VariantID)
	if err != nil {
		respondWithMappedError(c, err, cartAddErrorRules, response.CodeInternal, "error.cart_add_failed")
		return
	}
	successWithKey(c, "success.cart_added", gin.H{"count": count})
}

// UpdateCartItem 修改购物车条目数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	itemID, ok := parseUintParam(c, "id", "error.cart_item_not_found")
	if !ok {
		return
	}
	var req CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	cart, err := h.CartService.UpdateQuantity(c.Request.Context(), currentSession(c), itemID, req.Quantity)
	if err != nil {
		respondCartError(c, err, "error.cart_update_failed")
		return
	}
	successWithKey(c, "success.cart_updated", cart)
}

// RemoveCartItem 删除购物车条目
func (h *Handler) RemoveCartItem(c *gin.Context) {
	itemID, ok := parseUintParam(c, "id", "error.cart_item_not_found")
	if !ok {
		return
	}
	cart, err := h.CartService.RemoveItem(c.Request.Context(), currentSession(c), itemID)
	if err != nil {
		respondCartError(c, err, "error.cart_remove_failed")
		return
	}
	successWithKey(c, "success.cart_removed", cart)
}
