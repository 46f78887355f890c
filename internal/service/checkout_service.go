package service

import (
	"context"

	"github.com/geoda-coffee/storefront/internal/constants"
	"github.com/geoda-coffee/storefront/internal/logger"
	"github.com/geoda-coffee/storefront/internal/repository"
)

// CheckoutPreview 结账预览
type CheckoutPreview struct {
	State           string    `json:"state"`
	MessageKey      string    `json:"message_key,omitempty"`
	Cart            *CartView `json:"cart"`
	ShippingAddress string    `json:"shipping_address"`
	PaymentMethods  []string  `json:"payment_methods"`
}

// CheckoutService 结账前置检查服务
type CheckoutService struct {
	cartService *CartService
	profileRepo repository.ProfileRepository
}

// NewCheckoutService 创建结账服务
func NewCheckoutService(cartService *CartService, profileRepo repository.ProfileRepository) *CheckoutService {
	return &CheckoutService{cartService: cartService, profileRepo: profileRepo}
}

// Preview 返回当前结账状态：空购物车、资料不完整或可结账
func (s *CheckoutService) Preview(ctx context.Context, sess Session) (*CheckoutPreview, error) {
	cart, err := s.cartService.GetCart(ctx, sess)
	if err != nil {
		return nil, err
	}
	preview := &CheckoutPreview{
		Cart:           cart,
		PaymentMethods: constants.PaymentMethods,
	}
	if len(cart.Items) == 0 {
		preview.State = constants.CheckoutStateEmpty
		preview.MessageKey = "error.cart_empty"
		return preview, nil
	}

	profile, err := s.profileRepo.GetByUserID(ctx, sess.UserID)
	if err != nil {
		logger.Errorw("checkout_profile_fetch_failed", "user_id", sess.UserID, "error", err)
		return nil, ErrProfileFetchFailed
	}
	if !profile.ReadyForCheckout() {
		preview.State = constants.CheckoutStateProfileIncomplete
		preview.MessageKey = "error.profile_incomplete"
		return preview, nil
	}
	preview.State = constants.CheckoutStateReady
	preview.ShippingAddress = profile.Address
	return preview, nil
}
