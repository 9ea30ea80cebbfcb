package health

import (
	"log"

	"github.com/gin-gonic/gin"

	"slackqr_go/pkg/slackapi"
)

func SetupRoutes(r *gin.RouterGroup, slack *slackapi.Service) {
	handler := NewHandler(slack)
	r.GET("", handler.HealthCheck)

	log.Printf("[ROUTER] Health routes registered")
}
