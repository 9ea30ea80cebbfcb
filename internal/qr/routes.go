package qr

import (
	"log"

	"github.com/gin-gonic/gin"

	"slackqr_go/internal/middleware"
	"slackqr_go/pkg/slackapi"
)

// Лимиты частоты запросов на эндпоинт (запросов в минуту).
// У рассылок лимит ниже: одна рассылка порождает много вызовов API.
const (
	singleRatePerMinute       = 20
	customRatePerMinute       = 20
	broadcastRatePerMinute    = 10
	broadcastAllRatePerMinute = 5
)

func SetupRoutes(r *gin.RouterGroup, slack *slackapi.Service, rateLimitEnabled bool) {
	handler := NewHandler(slack)

	r.POST("", middleware.RateLimit(rateLimitEnabled, singleRatePerMinute), handler.GenerateQR)
	r.POST("/custom", middleware.RateLimit(rateLimitEnabled, customRatePerMinute), handler.GenerateCustomQR)
	r.POST("/broadcast", middleware.RateLimit(rateLimitEnabled, broadcastRatePerMinute), handler.BroadcastQR)
	r.POST("/broadcast-all", middleware.RateLimit(rateLimitEnabled, broadcastAllRatePerMinute), handler.BroadcastAllQR)

	log.Printf("[ROUTER] QR routes registered")
}
