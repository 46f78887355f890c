package service

import "errors"

// 通用错误
var (
	ErrAuthRequired = errors.New("auth required")
	ErrValidation   = errors.New("validation failed")
)

// 认证相关错误
var (
	ErrInvalidEmail       = errors.New("invalid email")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailExists        = errors.New("email already exists")
	ErrUserDisabled       = errors.New("user disabled")
	ErrWeakPassword       = errors.New("weak password")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrRegisterFailed     = errors.New("register failed")
	ErrLoginFailed        = errors.New("login failed")
	ErrLogoutFailed       = errors.New("logout failed")
)

// 验证码相关错误
var (
	ErrCaptchaRequired = errors.New("captcha required")
	ErrCaptchaInvalid  = errors.New("captcha invalid")
	ErrCaptchaDisabled = errors.New("captcha disabled")
)

// 资料相关错误
var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrProfileIncomplete   = errors.New("profile incomplete")
	ErrProfileFetchFailed  = errors.New("profile fetch failed")
	ErrProfileUpdateFailed = errors.New("profile update failed")
)

// 商品相关错误
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrVariantNotFound    = errors.New("variant not found")
	ErrProductOutOfStock  = errors.New("product out of stock")
	ErrProductFetchFailed = errors.New("product fetch failed")
)

// 购物车相关错误
var (
	ErrCartItemNotFound         = errors.New("cart item not found")
	ErrCartQuantityExceedsStock = errors.New("cart quantity exceeds stock")
	ErrCartEmpty                = errors.New("cart empty")
	ErrCartFetchFailed          = errors.New("cart fetch failed")
	ErrCartAddFailed            = errors.New("cart add failed")
	ErrCartUpdateFailed         = errors.New("cart update failed")
	ErrCartRemoveFailed         = errors.New("cart remove failed")
)

// 订单相关错误
var (
	ErrOrderTooManyItems = errors.New("order has too many items")
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderCreateFailed = errors.New("order create failed")
	ErrOrderFetchFailed  = errors.New("order fetch failed")
)

// 联系表单与邮件相关错误
var (
	ErrContactSubmitFailed       = errors.New("contact submit failed")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrInvalidEmailAddress       = errors.New("invalid email address")
	ErrEmailRecipientRejected    = errors.New("email recipient rejected")
)
