package public

import (
	"strconv"

	handlershared "github.com/geoda-coffee/storefront/internal/http/handlers/shared"
	"github.com/geoda-coffee/storefront/internal/http/response"
	"github.com/geoda-coffee/storefront/internal/i18n"
	"github.com/geoda-coffee/storefront/internal/service"

	"github.com/gin-gonic/gin"
)

func currentSession(c *gin.Context) service.Session {
	return handlershared.SessionFromContext(c)
}

func parseUintParam(c *gin.Context, name, invalidKey string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || value == 0 {
		respondError(c, response.CodeBadRequest, invalidKey, nil)
		return 0, false
	}
	return uint(value), true
}

func successWithKey(c *gin.Context, key string, data interface{}) {
	response.SuccessWithMsg(c, i18n.T(i18n.ResolveLocale(c), key), data)
}
