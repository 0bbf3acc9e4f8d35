package middleware

import (
	"github.com/1000kkannoo/dnd-8th-4-backend/pkg/i18n"
	"github.com/gin-gonic/gin"
)

// I18n stores the locale preferred by Accept-Language for the response envelope
func I18n() gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := i18n.ParseAcceptLanguage(c.GetHeader("Accept-Language"))
		c.Set(i18n.ContextKey, locale)
		c.Header("Content-Language", string(locale))
		c.Next()
	}
}

// GetLocale returns the locale set by I18n, Korean when absent
func GetLocale(c *gin.Context) i18n.Locale {
	if v, exists := c.Get(i18n.ContextKey); exists {
		if locale, ok := v.(i18n.Locale); ok {
			return locale
		}
	}
	return i18n.LocaleKo
}
