package events

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"slackqr_go/models"
	"slackqr_go/pkg/slackapi"
)

// Маркеры в тексте сообщения, по которым срабатывает бот:
// сообщение должно упоминать сборку и содержать URL после метки.
const (
	triggerMarker = "apk_build"
	urlMarker     = "URL:"
)

type EventHandler struct {
	Slack *slackapi.Service
}

func NewHandler(slack *slackapi.Service) *EventHandler {
	return &EventHandler{Slack: slack}
}

type eventPayload struct {
	Challenge string `json:"challenge"`
	Event     *struct {
		Type    string `json:"type"`
		Text    string `json:"text"`
		Channel string `json:"channel"`
	} `json:"event"`
}

// HandleEvent принимает Events API. Запрос верификации отвечает
// эхом challenge; сообщения с маркером сборки превращаются в доставку
// QR-кода в канал события. Прочие события принимаются и игнорируются.
func (h *EventHandler) HandleEvent(c *gin.Context) {
	var payload eventPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[EVENTS WARN] Не удалось разобрать событие: %v", err)
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
		return
	}

	if payload.Challenge != "" {
		c.JSON(http.StatusOK, gin.H{"challenge": payload.Challenge})
		return
	}

	if ev := payload.Event; ev != nil && ev.Type == "message" && strings.Contains(ev.Text, triggerMarker) {
		if url, ok := extractAPKURL(ev.Text); ok {
			if _, err := h.Slack.Deliver(ev.Channel, models.QRRequest{APKURL: url}); err != nil {
				// Событиям всегда отвечаем ok, иначе Slack начнёт слать повторы.
				log.Printf("[EVENTS ERROR] Обработка события не удалась: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// extractAPKURL достаёт URL после метки "URL:" — всё до конца текста,
// с обрезкой пробельных символов.
func extractAPKURL(text string) (string, bool) {
	_, rest, found := strings.Cut(text, urlMarker)
	if !found {
		return "", false
	}
	url := strings.TrimSpace(rest)
	if url == "" {
		return "", false
	}
	return url, true
}
