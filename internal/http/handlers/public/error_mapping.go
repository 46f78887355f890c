package public

import (
	"errors"

	handlershared "github.com/geoda-coffee/storefront/internal/http/handlers/shared"
	"github.com/geoda-coffee/storefront/internal/http/response"
	"github.com/geoda-coffee/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

// respondWithMappedError 表单校验错误优先返回字段明细，其余按规则映射，未命中时记录原始错误。
func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	if handlershared.RespondValidationError(c, err) {
		return
	}
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var sessionErrorRules = []mappedHandlerError{
	{target: service.ErrAuthRequired, code: response.CodeUnauthorized, key: "error.auth_required"},
	{target: service.ErrTokenInvalid, code: response.CodeUnauthorized, key: "error.unauthorized"},
	{target: service.ErrTokenRevoked, code: response.CodeUnauthorized, key: "error.token_revoked"},
}

var captchaErrorRules = []mappedHandlerError{
	{target: service.ErrCaptchaRequired, code: response.CodeBadRequest, key: "error.captcha_required"},
	{target: service.ErrCaptchaInvalid, code: response.CodeBadRequest, key: "error.captcha_invalid"},
}

var authErrorRules = []mappedHandlerError{
	{target: service.ErrInvalidEmail, code: response.CodeBadRequest, key: "error.email_invalid"},
	{target: service.ErrInvalidCredentials, code: response.CodeUnauthorized, key: "error.login_invalid"},
	{target: service.ErrEmailExists, code: response.CodeConflict, key: "error.email_exists"},
	{target: service.ErrUserDisabled, code: response.CodeUnauthorized, key: "error.user_disabled"},
	{target: service.ErrWeakPassword, code: response.CodeBadRequest, key: "error.password_weak"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrVariantNotFound, code: response.CodeNotFound, key: "error.variant_not_found"},
	{target: service.ErrProductOutOfStock, code: response.CodeConflict, key: "error.product_out_of_stock"},
	{target: service.ErrCartQuantityExceedsStock, code: response.CodeConflict, key: "error.cart_quantity_exceeds_stock"},
	{target: service.ErrCartItemNotFound, code: response.CodeNotFound, key: "error.cart_item_not_found"},
}

// 未登录加购时给出引导登录的提示
var cartAddErrorRules = concatMappedHandlerErrors([]mappedHandlerError{
	{target: service.ErrAuthRequired, code: response.CodeUnauthorized, key: "error.cart_login_required"},
}, sessionErrorRules, cartErrorRules)

var orderErrorRules = []mappedHandlerError{
	{target: service.ErrProfileIncomplete, code: response.CodeBadRequest, key: "error.profile_incomplete"},
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrOrderTooManyItems, code: response.CodeBadRequest, key: "error.order_too_many_items"},
	{target: service.ErrProductOutOfStock, code: response.CodeConflict, key: "error.product_out_of_stock"},
	{target: service.ErrOrderNotFound, code: response.CodeNotFound, key: "error.order_not_found"},
}

var profileErrorRules = []mappedHandlerError{
	{target: service.ErrProfileNotFound, code: response.CodeNotFound, key: "error.profile_not_found"},
}

var productErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
}

func respondAuthError(c *gin.Context, err error, fallbackKey string) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(sessionErrorRules, captchaErrorRules, authErrorRules), response.CodeInternal, fallbackKey)
}

func respondCartError(c *gin.Context, err error, fallbackKey string) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(sessionErrorRules, cartErrorRules), response.CodeInternal, fallbackKey)
}

func respondOrderError(c *gin.Context, err error, fallbackKey string) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(sessionErrorRules, orderErrorRules), response.CodeInternal, fallbackKey)
}

func respondProfileError(c *gin.Context, err error, fallbackKey string) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(sessionErrorRules, profileErrorRules), response.CodeInternal, fallbackKey)
}
