package slackapi

import (
	"log"

	"slackqr_go/models"
)

// CheckConnection проверяет авторизацию бота через auth.test.
// Временные сбои повторяются по политике; после исчерпания попыток
// неудача возвращается статусом Connected=false, а не ошибкой —
// код ответа API попадает в поле Error.
func (s *Service) CheckConnection() models.ConnectionStatus {
	var info AuthInfo
	err := s.retry.Do(func() error {
		resp, err := s.api.AuthTest()
		if err != nil {
			return err
		}
		info = resp
		return nil
	})
	if err != nil {
		log.Printf("[SLACK ERROR] Проверка соединения не удалась: %v", err)
		return models.ConnectionStatus{Connected: false, Error: err.Error()}
	}
	return models.ConnectionStatus{
		Connected: true,
		Team:      info.Team,
		User:      info.User,
		BotID:     info.BotID,
	}
}
