package slackapi

import (
	"fmt"
	"log"
	"strings"

	"slackqr_go/models"
	"slackqr_go/pkg/qrimg"
)

// Шаблон подписи к файлу: заголовок, опциональная строка с номером сборки,
// исходный URL и призыв отсканировать код.
const (
	captionHeader = "📱 *Android APK Build Complete!*"
	captionFooter = "👇 Scan QR code to download"
)

// buildCaption собирает подпись к загружаемому файлу.
func buildCaption(req models.QRRequest) string {
	var b strings.Builder
	b.WriteString(captionHeader)
	b.WriteString("\n\n")
	if req.BuildNumber != "" {
		fmt.Fprintf(&b, "Build Number: #%s\n", req.BuildNumber)
	}
	fmt.Fprintf(&b, "APK URL: %s\n\n", req.APKURL)
	b.WriteString(captionFooter)
	return b.String()
}

// uploadFilename строит имя файла из номера сборки;
// без номера подставляется фиксированное "latest".
func uploadFilename(buildNumber string) string {
	if buildNumber == "" {
		buildNumber = "latest"
	}
	return fmt.Sprintf("apk-qrcode-%s.png", buildNumber)
}

// Deliver отправляет QR-код в один канал: резолв референса, генерация
// картинки, загрузка файла с подписью. Ошибки валидации и нерезолвящийся
// канал возвращаются сразу, без повторов; политика повторов охватывает
// только саму загрузку, и после исчерпания попыток наружу уходит
// исходная ошибка загрузки.
func (s *Service) Deliver(channelRef string, req models.QRRequest) (models.DeliveryResult, error) {
	if req.APKURL == "" {
		return models.DeliveryResult{}, &ValidationError{Msg: "apk_url is required"}
	}

	channelID, err := s.ResolveChannel(channelRef)
	if err != nil {
		return models.DeliveryResult{}, err
	}

	// Диагностическая проверка канала: её неудача не мешает загрузке.
	if info, err := s.api.ConversationInfo(channelID); err != nil {
		log.Printf("[SLACK WARN] Не удалось получить информацию о канале %s (загрузка продолжится): %v", channelID, err)
	} else {
		log.Printf("[SLACK] Канал %s: private=%v, member=%v", info.Name, info.IsPrivate, info.IsMember)
	}

	image, err := qrimg.Encode(req.APKURL, req.Options)
	if err != nil {
		return models.DeliveryResult{}, &ValidationError{Msg: err.Error()}
	}

	caption := buildCaption(req)
	filename := uploadFilename(req.BuildNumber)

	var fileID string
	err = s.retry.Do(func() error {
		id, err := s.api.UploadFile(channelID, filename, caption, image)
		if err != nil {
			log.Printf("[SLACK ERROR] Загрузка файла в %s не удалась: %v", channelID, err)
			return err
		}
		fileID = id
		return nil
	})
	if err != nil {
		return models.DeliveryResult{}, fmt.Errorf("file upload: %w", err)
	}

	log.Printf("[SLACK] QR-код отправлен в %s, file_id=%s", channelID, fileID)
	return models.DeliveryResult{
		ChannelRef: channelRef,
		Status:     models.DeliveryStatusSuccess,
		FileID:     fileID,
	}, nil
}
