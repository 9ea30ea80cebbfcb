package qr

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"slackqr_go/internal/httputil"
	"slackqr_go/models"
	"slackqr_go/pkg/slackapi"
)

type QRHandler struct {
	Slack *slackapi.Service
}

func NewHandler(slack *slackapi.Service) *QRHandler {
	return &QRHandler{Slack: slack}
}

// statusFor переводит класс ошибки в HTTP-статус: валидация — 400,
// нерезолвящийся канал — 404, всё остальное считаем сбоем бэкенда.
func statusFor(err error) int {
	switch {
	case slackapi.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, slackapi.ErrChannelNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// GenerateQR отправляет QR-код в один канал.
// Ответ — сырое подтверждение доставки, без конверта.
func (h *QRHandler) GenerateQR(c *gin.Context) {
	var request struct {
		APKURL      string `json:"apk_url" binding:"required"`
		Channel     string `json:"channel" binding:"required"`
		BuildNumber string `json:"build_number"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "Missing required parameters: apk_url, channel")
		return
	}

	log.Printf("[HANDLER] Отправка QR-кода в канал %s", request.Channel)

	result, err := h.Slack.Deliver(request.Channel, models.QRRequest{
		APKURL:      request.APKURL,
		BuildNumber: request.BuildNumber,
	})
	if err != nil {
		log.Printf("[HANDLER ERROR] Доставка не удалась: %v", err)
		httputil.RespondError(c, statusFor(err), err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "QR code sent to Slack",
		"file_id": result.FileID,
	})
}

// GenerateCustomQR отправляет QR-код с пользовательскими опциями оформления.
func (h *QRHandler) GenerateCustomQR(c *gin.Context) {
	var request struct {
		APKURL      string            `json:"apk_url" binding:"required"`
		Channel     string            `json:"channel" binding:"required"`
		BuildNumber string            `json:"build_number"`
		Options     *models.QROptions `json:"qr_options"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "Missing required parameters: apk_url, channel")
		return
	}

	log.Printf("[HANDLER] Отправка кастомного QR-кода в канал %s", request.Channel)

	result, err := h.Slack.Deliver(request.Channel, models.QRRequest{
		APKURL:      request.APKURL,
		BuildNumber: request.BuildNumber,
		Options:     request.Options,
	})
	if err != nil {
		log.Printf("[HANDLER ERROR] Доставка не удалась: %v", err)
		httputil.RespondError(c, statusFor(err), err.Error())
		return
	}

	httputil.Respond(c, http.StatusOK, "Custom QR code sent to Slack", gin.H{
		"file_id": result.FileID,
	})
}

// BroadcastQR рассылает QR-код по явному списку каналов. Ответ всегда 200
// с поканальными результатами, даже если не удалась ни одна отправка.
func (h *QRHandler) BroadcastQR(c *gin.Context) {
	var request struct {
		APKURL      string            `json:"apk_url" binding:"required"`
		Channels    []string          `json:"channels" binding:"required"`
		BuildNumber string            `json:"build_number"`
		Options     *models.QROptions `json:"qr_options"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "Missing required parameters: apk_url, channels")
		return
	}
	if len(request.Channels) == 0 {
		httputil.RespondError(c, http.StatusBadRequest, "channels must be a non-empty array")
		return
	}

	log.Printf("[HANDLER] Рассылка QR-кода по %d каналам", len(request.Channels))

	report, err := h.Slack.Broadcast(request.Channels, models.QRRequest{
		APKURL:      request.APKURL,
		BuildNumber: request.BuildNumber,
		Options:     request.Options,
	})
	if err != nil {
		log.Printf("[HANDLER ERROR] Рассылка не удалась: %v", err)
		httputil.RespondError(c, statusFor(err), err.Error())
		return
	}

	message := sentMessage(report)
	httputil.Respond(c, http.StatusOK, message, gin.H{
		"success_count": report.SuccessCount,
		"failed_count":  report.FailedCount,
		"results":       report.Results,
	})
}

// BroadcastAllQR рассылает QR-код во все каналы, где состоит бот.
func (h *QRHandler) BroadcastAllQR(c *gin.Context) {
	var request struct {
		APKURL      string            `json:"apk_url" binding:"required"`
		BuildNumber string            `json:"build_number"`
		Options     *models.QROptions `json:"qr_options"`
	}
	if err := c.ShouldBindJSON(&request); err != nil {
		httputil.RespondError(c, http.StatusBadRequest, "Missing required parameter: apk_url")
		return
	}

	log.Printf("[HANDLER] Рассылка QR-кода по всем каналам бота")

	report, err := h.Slack.BroadcastAll(models.QRRequest{
		APKURL:      request.APKURL,
		BuildNumber: request.BuildNumber,
		Options:     request.Options,
	})
	if err != nil {
		log.Printf("[HANDLER ERROR] Рассылка по всем каналам не удалась: %v", err)
		httputil.RespondError(c, statusFor(err), err.Error())
		return
	}

	message := sentMessage(report)
	httputil.Respond(c, http.StatusOK, message, gin.H{
		"total_channels": report.TotalTargets,
		"success_count":  report.SuccessCount,
		"failed_count":   report.FailedCount,
		"results":        report.Results,
	})
}

func sentMessage(report models.BroadcastReport) string {
	return fmt.Sprintf("Sent to %d/%d channels", report.SuccessCount, report.TotalTargets)
}
