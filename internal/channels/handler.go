package channels

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"slackqr_go/internal/httputil"
	"slackqr_go/pkg/slackapi"
)

type ChannelHandler struct {
	Slack *slackapi.Service
}

func NewHandler(slack *slackapi.Service) *ChannelHandler {
	return &ChannelHandler{Slack: slack}
}

// ListChannels возвращает каналы, в которых состоит бот.
func (h *ChannelHandler) ListChannels(c *gin.Context) {
	list, err := h.Slack.ListMemberChannels()
	if err != nil {
		log.Printf("[HANDLER ERROR] Не удалось получить каналы: %v", err)
		httputil.RespondError(c, http.StatusInternalServerError, "Failed to retrieve channels")
		return
	}

	httputil.Respond(c, http.StatusOK, "Channels retrieved successfully", gin.H{
		"channels": list,
		"count":    len(list),
	})
}
