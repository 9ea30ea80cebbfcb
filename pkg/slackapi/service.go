// Package slackapi инкапсулирует работу со Slack: резолв каналов,
// проверку соединения, отправку QR-кода и рассылку по каналам.
package slackapi

// Service объединяет клиент Slack и политику повторов. Создаётся один раз
// в main и передаётся обработчикам; состояния между запросами не хранит.
type Service struct {
	api   API
	retry RetryPolicy
}

func New(api API, retry RetryPolicy) *Service {
	return &Service{api: api, retry: retry}
}
