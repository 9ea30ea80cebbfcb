package slackapi

import (
	"errors"
	"strings"
	"testing"

	"slackqr_go/models"
)

// TestDeliverSuccess: успешная доставка собирает подпись с номером сборки
// и именем файла на его основе.
func TestDeliverSuccess(t *testing.T) {
	var gotChannel, gotFilename, gotComment string
	var gotContent []byte
	api := &fakeAPI{
		listFunc: pagedList([][]Conversation{
			{{ID: "C0RELEASES1", Name: "releases", IsMember: true}},
		}),
		uploadFunc: func(channelID, filename, comment string, content []byte) (string, error) {
			gotChannel, gotFilename, gotComment = channelID, filename, comment
			gotContent = content
			return "F07KP4R8E9S", nil
		},
	}
	svc := New(api, fastRetry())

	result, err := svc.Deliver("#releases", models.QRRequest{
		APKURL:      "https://example.com/app.apk",
		BuildNumber: "42",
	})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if result.Status != models.DeliveryStatusSuccess || result.FileID != "F07KP4R8E9S" {
		t.Errorf("неверный результат доставки: %+v", result)
	}
	if result.Error != "" {
		t.Errorf("при успехе поле Error должно быть пустым: %+v", result)
	}
	if gotChannel != "C0RELEASES1" {
		t.Errorf("загрузка должна идти в резолвнутый ID, получен %s", gotChannel)
	}
	if gotFilename != "apk-qrcode-42.png" {
		t.Errorf("имя файла должно содержать номер сборки: %s", gotFilename)
	}
	if !strings.Contains(gotComment, "Build Number: #42") {
		t.Errorf("подпись должна содержать строку с номером сборки: %q", gotComment)
	}
	if !strings.Contains(gotComment, "https://example.com/app.apk") {
		t.Errorf("подпись должна содержать исходный URL: %q", gotComment)
	}
	if len(gotContent) == 0 {
		t.Error("в загрузку должна уйти непустая картинка")
	}
}

// TestDeliverFilenameFallback: без номера сборки имя файла
// получает фиксированный суффикс latest.
func TestDeliverFilenameFallback(t *testing.T) {
	var gotFilename, gotComment string
	api := &fakeAPI{
		uploadFunc: func(channelID, filename, comment string, content []byte) (string, error) {
			gotFilename, gotComment = filename, comment
			return "F000000001", nil
		},
	}
	svc := New(api, fastRetry())

	if _, err := svc.Deliver("C0123456789", models.QRRequest{APKURL: "https://example.com/app.apk"}); err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if gotFilename != "apk-qrcode-latest.png" {
		t.Errorf("ожидалось apk-qrcode-latest.png, получено %s", gotFilename)
	}
	if strings.Contains(gotComment, "Build Number") {
		t.Errorf("без номера сборки строка Build Number не добавляется: %q", gotComment)
	}
}

// TestDeliverValidation: без apk_url доставка падает сразу,
// не делая ни одного обращения к бэкенду.
func TestDeliverValidation(t *testing.T) {
	api := &fakeAPI{}
	svc := New(api, fastRetry())

	_, err := svc.Deliver("#releases", models.QRRequest{})
	if !IsValidation(err) {
		t.Fatalf("ожидалась ошибка валидации, получено: %v", err)
	}
	if api.listCalls+api.infoCalls+api.uploadCalls != 0 {
		t.Error("при ошибке валидации обращений к API быть не должно")
	}
}

// TestDeliverChannelNotFound: нерезолвящийся канал — немедленная ошибка,
// до загрузки дело не доходит.
func TestDeliverChannelNotFound(t *testing.T) {
	api := &fakeAPI{listFunc: pagedList([][]Conversation{{}})}
	svc := New(api, fastRetry())

	_, err := svc.Deliver("#ghost", models.QRRequest{APKURL: "https://example.com/app.apk"})
	if !errors.Is(err, ErrChannelNotFound) {
		t.Fatalf("ожидался ErrChannelNotFound, получено: %v", err)
	}
	if api.uploadCalls != 0 {
		t.Errorf("загрузка не должна начинаться: было %d попыток", api.uploadCalls)
	}
}

// TestDeliverUploadRetry: временный сбой загрузки повторяется ровно
// три раза, после чего наружу уходит исходная ошибка.
func TestDeliverUploadRetry(t *testing.T) {
	uploadErr := errors.New("slack server error")
	api := &fakeAPI{
		uploadFunc: func(channelID, filename, comment string, content []byte) (string, error) {
			return "", uploadErr
		},
	}
	svc := New(api, fastRetry())

	_, err := svc.Deliver("C0123456789", models.QRRequest{APKURL: "https://example.com/app.apk"})
	if !errors.Is(err, uploadErr) {
		t.Fatalf("должна вернуться исходная ошибка загрузки, получено: %v", err)
	}
	if api.uploadCalls != 3 {
		t.Errorf("ожидалось ровно 3 попытки загрузки, было %d", api.uploadCalls)
	}
}

// TestDeliverUploadRecovers: успех со второй попытки — доставка удачна.
func TestDeliverUploadRecovers(t *testing.T) {
	attempts := 0
	api := &fakeAPI{
		uploadFunc: func(channelID, filename, comment string, content []byte) (string, error) {
			attempts++
			if attempts == 1 {
				return "", errors.New("slack server error")
			}
			return "F000000002", nil
		},
	}
	svc := New(api, fastRetry())

	result, err := svc.Deliver("C0123456789", models.QRRequest{APKURL: "https://example.com/app.apk"})
	if err != nil {
		t.Fatalf("неожиданная ошибка: %v", err)
	}
	if result.FileID != "F000000002" || attempts != 2 {
		t.Errorf("ожидался успех со второй попытки: %+v, попыток %d", result, attempts)
	}
}

// TestDeliverUploadPermanent: терминальный код Slack не повторяется.
func TestDeliverUploadPermanent(t *testing.T) {
	api := &fakeAPI{
		uploadFunc: func(channelID, filename, comment string, content []byte) (string, error) {
			return "", errors.New("not_in_channel")
		},
	}
	svc := New(api, fastRetry())

	if _, err := svc.Deliver("C0123456789", models.QRRequest{APKURL: "https://example.com/app.apk"}); err == nil {
		t.Fatal("ожидалась ошибка загрузки")
	}
	if api.uploadCalls != 1 {
		t.Errorf("терминальная ошибка повторяться не должна, было %d попыток", api.uploadCalls)
	}
}

// TestDeliverInfoProbeBestEffort: отказ conversations.info не мешает загрузке.
func TestDeliverInfoProbeBestEffort(t *testing.T) {
	api := &fakeAPI{
		infoFunc: func(channelID string) (Conversation, error) {
			return Conversation{}, errors.New("channel_not_found")
		},
	}
	svc := New(api, fastRetry())

	result, err := svc.Deliver("C0123456789", models.QRRequest{APKURL: "https://example.com/app.apk"})
	if err != nil {
		t.Fatalf("проба метаданных не должна ронять доставку: %v", err)
	}
	if result.Status != models.DeliveryStatusSuccess {
		t.Errorf("ожидался успех, получено: %+v", result)
	}
	if api.infoCalls != 1 || api.uploadCalls != 1 {
		t.Errorf("проба и загрузка должны выполниться по разу: info=%d upload=%d", api.infoCalls, api.uploadCalls)
	}
}

// TestDeliverBadColorOptions: нераспознанный цвет — ошибка валидации без загрузки.
func TestDeliverBadColorOptions(t *testing.T) {
	api := &fakeAPI{}
	svc := New(api, fastRetry())

	_, err := svc.Deliver("C0123456789", models.QRRequest{
		APKURL:  "https://example.com/app.apk",
		Options: &models.QROptions{FillColor: "rainbow"},
	})
	if !IsValidation(err) {
		t.Fatalf("ожидалась ошибка валидации, получено: %v", err)
	}
	if api.uploadCalls != 0 {
		t.Error("при некорректных опциях загрузка не должна начинаться")
	}
}
