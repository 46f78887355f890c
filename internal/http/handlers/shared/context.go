package shared

import (
	"github.com/geoda-coffee/storefront/internal/constants"
	"github.com/geoda-coffee/storefront/internal/i18n"
	"github.com/geoda-coffee/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionFromContext 读取鉴权中间件写入的会话，未登录时返回匿名会话。
func SessionFromContext(c *gin.Context) service.Session {
	sess := service.AnonymousSession()
	if c == nil {
		return sess
	}
	if value, ok := c.Get(constants.CtxKeyUserID); ok {
		if id, ok := value.(uint); ok {
			sess.UserID = id
		}
	}
	sess.Email = c.GetString(constants.CtxKeyUserEmail)
	sess.Locale = i18n.ResolveLocale(c)
	return sess
}

// SetSession 将会话写入上下文。
func SetSession(c *gin.Context, sess service.Session) {
	c.Set(constants.CtxKeyUserID, sess.UserID)
	c.Set(constants.CtxKeyUserEmail, sess.Email)
}
