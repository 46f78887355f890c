package router

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/geoda-coffee/storefront/internal/config"
	"github.com/geoda-coffee/storefront/internal/constants"
	handlershared "github.com/geoda-coffee/storefront/internal/http/handlers/shared"
	"github.com/geoda-coffee/storefront/internal/http/response"
	"github.com/geoda-coffee/storefront/internal/i18n"
	"github.com/geoda-coffee/storefront/internal/logger"
	"github.com/geoda-coffee/storefront/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

// SessionResolver 将 Bearer Token 解析为会话
type SessionResolver interface {
	ParseUserJWT(tokenString string) (*service.UserJWTClaims, error)
	ResolveSession(ctx context.Context, claims *service.UserJWTClaims) (service.Session, error)
}

// CORSMiddleware 跨域中间件
func CORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	allowedMethods := cfg.AllowedMethods
	if len(allowedMethods) == 0 {
		allowedMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	}
	allowedHeaders := cfg.AllowedHeaders
	if len(allowedHeaders) == 0 {
		allowedHeaders = []string{
			"Content-Type",
			"Content-Length",
			"Accept-Encoding",
			"Accept-Language",
			"Authorization",
			"Cache-Control",
			"X-Requested-With",
		}
	}
	methodsHeader := strings.Join(allowedMethods, ", ")
	headersHeader := strings.Join(allowedHeaders, ", ")

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		allowedOrigin := resolveAllowedOrigin(origin, allowedOrigins, cfg.AllowCredentials)
		if allowedOrigin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", allowedOrigin)
			if allowedOrigin != "*" {
				c.Writer.Header().Add("Vary", "Origin")
			}
		}
		if cfg.AllowCredentials {
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		}
		c.Writer.Header().Set("Access-Control-Allow-Headers", headersHeader)
		c.Writer.Header().Set("Access-Control-Allow-Methods", methodsHeader)
		if cfg.MaxAge > 0 {
			c.Writer.Header().Set("Access-Control-Max-Age", strconv.Itoa(cfg.MaxAge))
		}

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func resolveAllowedOrigin(origin string, allowedOrigins []string, allowCredentials bool) string {
	if len(allowedOrigins) == 0 {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if allowed == "*" {
			if allowCredentials && origin != "" {
				return origin
			}
			return "*"
		}
	}
	if origin == "" {
		return ""
	}
	for _, allowed := range allowedOrigins {
		if strings.EqualFold(allowed, origin) {
			return origin
		}
	}
	return ""
}

// RequestIDMiddleware 请求 ID 中间件
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(requestIDHeader))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(constants.CtxKeyRequestID, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)
		c.Next()
	}
}

// LocaleMiddleware 解析请求语言并写入上下文，响应头回显实际使用的语言
func LocaleMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.ResolveLocale(c)
		c.Set(constants.CtxKeyLocale, locale)
		c.Writer.Header().Set("Content-Language", locale)
		c.Next()
	}
}

// LoggerMiddleware 结构化请求日志中间件
func LoggerMiddleware(log *zap.Logger) gin.HandlerFunc {
	if log == nil {
		log = zap.L()
	}
	sugar := log.Sugar()
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := sugar.With(
			"request_id", getRequestID(c),
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
		if userID, ok := c.Get(constants.CtxKeyUserID); ok {
			entry = entry.With("user_id", userID)
		}
		if len(c.Errors) > 0 {
			entry.Errorw("request", "errors", c.Errors.String())
			return
		}
		entry.Infow("request")
	}
}

func getRequestID(c *gin.Context) string {
	return c.GetString(constants.CtxKeyRequestID)
}

// UserJWTAuthMiddleware 用户 JWT 鉴权中间件，未登录直接拒绝
func UserJWTAuthMiddleware(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, key := bearerToken(c)
		if key != "" {
			abortUnauthorized(c, key)
			return
		}
		sess, err := authenticate(c, resolver, tokenString)
		if err != nil {
			abortUnauthorized(c, sessionErrorKey(err))
			return
		}
		handlershared.SetSession(c, sess)
		c.Next()
	}
}

// OptionalUserAuth 可选鉴权中间件
// 携带有效 Token 时写入会话，缺失或失效时按匿名访客继续处理
func OptionalUserAuth(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, key := bearerToken(c)
		if key != "" {
			c.Next()
			return
		}
		sess, err := authenticate(c, resolver, tokenString)
		if err != nil {
			logger.Debugw("optional_auth_ignored", "request_id", getRequestID(c), "error", err)
			c.Next()
			return
		}
		handlershared.SetSession(c, sess)
		c.Next()
	}
}

// bearerToken 解析 Authorization 头，失败时返回错误消息键
func bearerToken(c *gin.Context) (string, string) {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if authHeader == "" {
		return "", "error.auth_header_missing"
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if !(len(parts) == 2 && parts[0] == "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", "error.auth_header_invalid"
	}
	return strings.TrimSpace(parts[1]), ""
}

func authenticate(c *gin.Context, resolver SessionResolver, tokenString string) (service.Session, error) {
	if resolver == nil {
		return service.Session{}, service.ErrTokenInvalid
	}
	claims, err := resolver.ParseUserJWT(tokenString)
	if err != nil {
		return service.Session{}, err
	}
	return resolver.ResolveSession(c.Request.Context(), claims)
}

func sessionErrorKey(err error) string {
	switch {
	case errors.Is(err, service.ErrUserDisabled):
		return "error.user_disabled"
	case errors.Is(err, service.ErrTokenRevoked):
		return "error.token_revoked"
	default:
		return "error.token_invalid"
	}
}

func abortUnauthorized(c *gin.Context, key string) {
	msg := i18n.T(i18n.ResolveLocale(c), key)
	response.Error(c, response.CodeUnauthorized, msg)
	c.Abort()
}
