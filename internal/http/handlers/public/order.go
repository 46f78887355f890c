package public

import (
	handlershared "github.com/geoda-coffee/storefront/internal/http/handlers/shared"
	"github.com/geoda-coffee/storefront/internal/http/response"

	"github.com/gin-gonic/gin"
)

// PlaceOrderRequest 下单请求
type PlaceOrderRequest struct {
	PaymentMethod string `json:"payment_method"`
}

// PreviewCheckout 结账预览
func (h *Handler) PreviewCheckout(c *gin.Context) {
	preview, err := h.CheckoutService.Preview(c.Request.Context(), currentSession(c))
	if err != nil {
		respondOrderError(c, err, "error.cart_fetch_failed")
		return
	}
	response.Success(c, preview)
}

// PlaceOrder 提交订单
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	order, err := h.OrderService.PlaceOrder(c.Request.Context(), currentSession(c), req.PaymentMethod)
	if err != nil {
		respondOrderError(c, err, "error.order_create_failed")
		return
	}
	successWithKey(c, "success.order_placed", order)
}

// ListOrders 订单历史
func (h *Handler) ListOrders(c *gin.Context) {
	page, pageSize := handlershared.ParsePagination(c)

	orders, total, err := h.OrderService.ListByUser(c.Request.Context(), currentSession(c), page, pageSize)
	if err != nil {
		respondOrderError(c, err, "error.order_fetch_failed")
		return
	}
	response.SuccessWithPage(c, orders, response.NewPagination(page, pageSize, total))
}

// GetOrder 订单详情
func (h *Handler) GetOrder(c *gin.Context) {
	order, err := h.OrderService.GetByOrderNo(c.Request.Context(), currentSession(c), c.Param("order_no"))
	if err != nil {
		respondOrderError(c, err, "error.order_fetch_failed")
		return
	}
	response.Success(c, order)
}
