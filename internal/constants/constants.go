package constants

// 订单状态常量
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// 支付方式常量（仅记录，不做扣款）
const (
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodEWallet      = "e_wallet"
	PaymentMethodCOD          = "cod"
)

// 烘焙程度常量
const (
	RoastLight  = "Light"
	RoastMedium = "Medium"
	RoastDark   = "Dark"
)

// 价格区间筛选常量（单位：IDR）
const (
	PriceBucketAll     = "all"
	PriceBucketUnder50 = "under50"
	PriceBucket50To100 = "50-100"
	PriceBucketOver100 = "over100"
)

// 用户状态常量
const (
	UserStatusActive   = "active"
	UserStatusDisabled = "disabled"
)

// 结账状态常量
const (
	CheckoutStateEmpty             = "empty"
	CheckoutStateProfileIncomplete = "profile_incomplete"
	CheckoutStateReady             = "ready"
)

// Gin 上下文键
const (
	CtxKeyUserID    = "user_id"
	CtxKeyUserEmail = "user_email"
	CtxKeyRequestID = "request_id"
	CtxKeyLocale    = "locale"
)

// PaymentMethods 允许的支付方式列表
var PaymentMethods = []string{
	PaymentMethodBankTransfer,
	PaymentMethodEWallet,
	PaymentMethodCOD,
}

// RoastTypes 允许的烘焙程度列表
var RoastTypes = []string{RoastLight, RoastMedium, RoastDark}

// 队列与任务常量
const (
	QueueDefault             = "default"
	QueueCritical            = "critical"
	TaskOrderPlacedEmail     = "order:placed_email"
	TaskContactReceivedEmail = "contact:received_email"
)

// 验证码常量
const (
	CaptchaProviderNone  = "none"
	CaptchaProviderImage = "image"

	CaptchaSceneRegister = "register"
	CaptchaSceneContact  = "contact"
)
