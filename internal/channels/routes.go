package channels

import (
	"log"

	"github.com/gin-gonic/gin"

	"slackqr_go/pkg/slackapi"
)

func SetupRoutes(r *gin.RouterGroup, slack *slackapi.Service) {
	handler := NewHandler(slack)
	r.GET("", handler.ListChannels)

	log.Printf("[ROUTER] Channel routes registered")
}
