package slackapi

import (
	"errors"
	"strings"

	"github.com/slack-go/slack"
)

// ErrChannelNotFound возвращается, когда имя канала не нашлось
// ни на одной странице листинга.
var ErrChannelNotFound = errors.New("channel not found")

// ValidationError — ошибка входных данных запроса. Такие ошибки
// никогда не повторяются и сразу уходят вызывающей стороне.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// IsValidation сообщает, относится ли ошибка к классу ошибок валидации.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

// Коды Slack, при которых повтор заведомо бесполезен: проблема
// не исчезнет сама, сколько ни жди.
var permanentCodes = []string{
	"invalid_auth",
	"account_inactive",
	"token_revoked",
	"token_expired",
	"not_authed",
	"no_permission",
	"missing_scope",
	"channel_not_found",
	"is_archived",
	"not_in_channel",
	"invalid_arguments",
}

// isRetryable отделяет временные сбои бэкенда (rate limit, 5xx, сеть)
// от терминальных. Неизвестные коды считаем временными и повторяем.
func isRetryable(err error) bool {
	var rl *slack.RateLimitedError
	if errors.As(err, &rl) {
		return true
	}
	var sc slack.StatusCodeError
	if errors.As(err, &sc) {
		return sc.Code >= 500 || sc.Code == 429
	}
	msg := err.Error()
	for _, code := range permanentCodes {
		if strings.Contains(msg, code) {
			return false
		}
	}
	return true
}
