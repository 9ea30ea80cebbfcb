package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"slackqr_go/internal/httputil"
)

// RateLimit ограничивает эндпоинт perMinute запросами в минуту общим
// для всех клиентов токен-бакетом. При enabled=false возвращается
// сквозной обработчик без ограничения.
func RateLimit(enabled bool, perMinute int) gin.HandlerFunc {
	if !enabled || perMinute <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			httputil.RespondError(c, http.StatusTooManyRequests, "Rate limit exceeded")
			return
		}
		c.Next()
	}
}
