package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"slackqr_go/internal/httputil"
)

// APIKeyRequired проверяет заголовок X-API-Key. Если ключ в конфигурации
// пуст, проверка пропускается: сервис работает без аутентификации.
func APIKeyRequired(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			c.Next()
			return
		}
		provided := c.GetHeader("X-API-Key")
		if provided == "" {
			log.Printf("[AUTH WARN] Запрос без API-ключа: %s %s от %s", c.Request.Method, c.Request.URL.Path, c.ClientIP())
			httputil.RespondError(c, http.StatusUnauthorized, "API key required")
			return
		}
		if provided != apiKey {
			log.Printf("[AUTH WARN] Запрос с неверным API-ключом: %s %s от %s", c.Request.Method, c.Request.URL.Path, c.ClientIP())
			httputil.RespondError(c, http.StatusForbidden, "Invalid API key")
			return
		}
		c.Next()
	}
}
