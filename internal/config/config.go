package config

import (
	"fmt"
	"log"
	"os"
	"strings"
)

// Config — настройки процесса из переменных окружения.
// Читаются один раз при старте и дальше не меняются.
type Config struct {
	// SlackToken — OAuth-токен бота (xoxb-...). Обязателен.
	SlackToken string
	// APIKey — ключ для заголовка X-API-Key. Пустое значение
	// отключает проверку ключа.
	APIKey string
	// RateLimitEnabled включает ограничение частоты запросов.
	RateLimitEnabled bool
	// Port — порт HTTP-сервера.
	Port string
}

// Load читает окружение и валидирует обязательные переменные.
// Отсутствие SLACK_BOT_TOKEN — фатальная ошибка конфигурации.
func Load() (*Config, error) {
	token := os.Getenv("SLACK_BOT_TOKEN")
	if token == "" {
		return nil, fmt.Errorf("missing required environment variable SLACK_BOT_TOKEN (Slack Bot OAuth Token, xoxb-...)")
	}

	cfg := &Config{
		SlackToken:       token,
		APIKey:           os.Getenv("API_KEY"),
		RateLimitEnabled: true,
		Port:             "8080",
	}

	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		cfg.RateLimitEnabled = strings.ToLower(v) == "true"
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	if cfg.APIKey == "" {
		log.Printf("[CONFIG WARN] API_KEY не задан — аутентификация запросов отключена")
	}
	if !cfg.RateLimitEnabled {
		log.Printf("[CONFIG WARN] Ограничение частоты запросов отключено")
	}

	return cfg, nil
}
