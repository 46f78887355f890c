package i18n

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

const (
	LocaleID = "id-ID"
	LocaleEN = "en-US"
)

var defaultLocale atomic.Value

func init() {
	defaultLocale.Store(LocaleID)
}

// SetDefaultLocale 设置默认语言，不支持的语言忽略
func SetDefaultLocale(locale string) {
	if normalized := Normalize(locale); normalized != "" {
		defaultLocale.Store(normalized)
	}
}

// DefaultLocale 当前默认语言
func DefaultLocale() string {
	return defaultLocale.Load().(string)
}

// Normalize 将语言标签归一化为已支持的语言，无法识别时返回空串
func Normalize(locale string) string {
	tag := strings.ToLower(strings.TrimSpace(locale))
	if tag == "" {
		return ""
	}
	if idx := strings.IndexAny(tag, ";,"); idx >= 0 {
		tag = strings.TrimSpace(tag[:idx])
	}
	switch {
	case tag == "id" || strings.HasPrefix(tag, "id-") || strings.HasPrefix(tag, "id_"), tag == "in":
		return LocaleID
	case tag == "en" || strings.HasPrefix(tag, "en-") || strings.HasPrefix(tag, "en_"):
		return LocaleEN
	default:
		return ""
	}
}

// ResolveLocale 依次从上下文、lang 参数、Accept-Language 解析语言
func ResolveLocale(c *gin.Context) string {
	if c == nil {
		return DefaultLocale()
	}
	if value, ok := c.Get("locale"); ok {
		if locale, ok := value.(string); ok && locale != "" {
			return locale
		}
	}
	if locale := Normalize(c.Query("lang")); locale != "" {
		return locale
	}
	if c.Request != nil {
		for _, part := range strings.Split(c.GetHeader("Accept-Language"), ",") {
			if locale := Normalize(part); locale != "" {
				return locale
			}
		}
	}
	return DefaultLocale()
}

// T 翻译消息键，缺失时回退默认语言，再回退键本身
func T(locale, key string) string {
	if msg, ok := lookup(locale, key); ok {
		return msg
	}
	if msg, ok := lookup(DefaultLocale(), key); ok {
		return msg
	}
	return key
}

// Sprintf 翻译并格式化
func Sprintf(locale, key string, args ...interface{}) string {
	msg := T(locale, key)
	if len(args) == 0 {
		return msg
	}
	return fmt.Sprintf(msg, args...)
}

func lookup(locale, key string) (string, bool) {
	table, ok := catalog[Normalize(locale)]
	if !ok {
		return "", false
	}
	msg, ok := table[key]
	return msg, ok
}
