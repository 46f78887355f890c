package shared

import (
	"errors"

	"github.com/geoda-coffee/storefront/internal/constants"
	"github.com/geoda-coffee/storefront/internal/http/response"
	"github.com/geoda-coffee/storefront/internal/i18n"
	"github.com/geoda-coffee/storefront/internal/logger"
	"github.com/geoda-coffee/storefront/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RequestLog 提供携带 request_id 的日志实例。
func RequestLog(c *gin.Context) *zap.SugaredLogger {
	if c == nil {
		return logger.S()
	}
	if requestID, ok := c.Get(constants.CtxKeyRequestID); ok {
		if id, ok := requestID.(string); ok && id != "" {
			return logger.SW("request_id", id)
		}
	}
	return logger.S()
}

// RespondError 返回国际化错误响应，并在有原始错误时记录日志。
func RespondError(c *gin.Context, code int, key string, err error) {
	locale := i18n.ResolveLocale(c)
	msg := i18n.T(locale, key)
	appErr := response.WrapError(code, msg, err)
	appErr.Key = key
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"key", appErr.Key,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// RespondErrorWithMsg 返回自定义消息错误响应，并在有原始错误时记录日志。
func RespondErrorWithMsg(c *gin.Context, code int, msg string, err error) {
	appErr := response.WrapError(code, msg, err)
	if err != nil {
		RequestLog(c).Errorw("handler_error",
			"code", appErr.Code,
			"message", appErr.Message,
			"error", err,
		)
	}
	response.Error(c, appErr.Code, appErr.Message)
}

// RespondValidationError 若 err 为表单校验错误则返回字段级消息并返回 true。
func RespondValidationError(c *gin.Context, err error) bool {
	var verr *service.ValidationError
	if !errors.As(err, &verr) {
		return false
	}
	locale := i18n.ResolveLocale(c)
	fields := make(map[string]string, len(verr.Fields))
	for name, field := range verr.Fields {
		fields[name] = i18n.Sprintf(locale, field.Key, field.Args...)
	}
	response.ErrorWithData(c, response.CodeBadRequest, i18n.T(locale, "error.validation_failed"), gin.H{"fields": fields})
	return true
}
