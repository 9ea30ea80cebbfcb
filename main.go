package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"slackqr_go/internal/channels"
	"slackqr_go/internal/config"
	"slackqr_go/internal/events"
	"slackqr_go/internal/health"
	"slackqr_go/internal/middleware"
	"slackqr_go/internal/qr"
	"slackqr_go/pkg/slackapi"
)

func main() {
	// Чтение и валидация переменных окружения
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// Клиент Slack создаётся один раз на весь процесс; после создания
	// он не изменяется и переиспользуется всеми обработчиками.
	client := slackapi.NewClient(cfg.SlackToken)
	slack := slackapi.New(client, slackapi.DefaultRetryPolicy())

	// Настройка роутера
	r := setupRouter(slack, cfg)

	// Запуск сервера
	log.Printf("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// Настройка маршрутов
func setupRouter(slack *slackapi.Service, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// Группа QR-эндпоинтов закрыта API-ключом
	qrGroup := r.Group("/generate-qr", middleware.APIKeyRequired(cfg.APIKey))
	qr.SetupRoutes(qrGroup, slack, cfg.RateLimitEnabled)

	// Список каналов бота
	channelsGroup := r.Group("/channels")
	channels.SetupRoutes(channelsGroup, slack)

	// Проверка здоровья сервиса
	healthGroup := r.Group("/health")
	health.SetupRoutes(healthGroup, slack)

	// События приходят от самого Slack, поэтому API-ключ здесь не требуется
	eventsGroup := r.Group("/slack")
	events.SetupRoutes(eventsGroup, slack)

	// Логирование зарегистрированных роутов
	log.Printf("[ROUTER] Routes initialized:")
	log.Printf("[ROUTER] POST /generate-qr")
	log.Printf("[ROUTER] POST /generate-qr/custom")
	log.Printf("[ROUTER] POST /generate-qr/broadcast")
	log.Printf("[ROUTER] POST /generate-qr/broadcast-all")
	log.Printf("[ROUTER] GET /channels")
	log.Printf("[ROUTER] GET /health")
	log.Printf("[ROUTER] POST /slack/events")

	return r
}
