package events

import (
	"log"

	"github.com/gin-gonic/gin"

	"slackqr_go/pkg/slackapi"
)

func SetupRoutes(r *gin.RouterGroup, slack *slackapi.Service) {
	handler := NewHandler(slack)
	r.POST("/events", handler.HandleEvent)

	log.Printf("[ROUTER] Slack event routes registered")
}
