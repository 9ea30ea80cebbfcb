package health

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"slackqr_go/internal/httputil"
	"slackqr_go/pkg/slackapi"
)

type HealthHandler struct {
	Slack *slackapi.Service
}

func NewHandler(slack *slackapi.Service) *HealthHandler {
	return &HealthHandler{Slack: slack}
}

// HealthCheck проверяет соединение со Slack. Недоступный бэкенд —
// это 503: сервис жив, но доставлять сообщения не способен.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	status := h.Slack.CheckConnection()

	if !status.Connected {
		httputil.Respond(c, http.StatusServiceUnavailable, "Service degraded - Slack connection failed", gin.H{
			"status":           "unhealthy",
			"slack_connection": status,
		})
		return
	}

	httputil.Respond(c, http.StatusOK, "Service is healthy", gin.H{
		"status":           "healthy",
		"slack_connection": status,
	})
}
