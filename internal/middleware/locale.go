package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/sorriso-perfeito/internal/i18n"
)

const ContextLocalizer = "localizer"

// LocaleMiddleware resolves the language from ?lang= first, then
// Accept-Language, and stores it on both the gin and request contexts.
func LocaleMiddleware(tr *i18n.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		l := tr.Localizer(c.Query("lang"), c.GetHeader("Accept-Language"))

		c.Set(ContextLocalizer, l)
		c.Request = c.Request.WithContext(i18n.WithLocalizer(c.Request.Context(), l))

		c.Next()
	}
}

// Localizer returns the request localizer. A nil Localizer echoes message IDs.
func Localizer(c *gin.Context) *i18n.Localizer {
	if v, ok := c.Get(ContextLocalizer); ok {
		if l, ok := v.(*i18n.Localizer); ok {
			return l
		}
	}
	return i18n.FromContext(c.Request.Context())
}
