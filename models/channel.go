package models

// Channel описывает канал Slack, в котором состоит бот.
// Запись создаётся из ответа листинга и нигде не сохраняется.
type Channel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IsPrivate   bool   `json:"is_private"`
	MemberCount int    `json:"num_members"`
}

// ConnectionStatus — результат проверки соединения со Slack.
// При Connected=false заполняется только Error с кодом от API.
type ConnectionStatus struct {
	Connected bool   `json:"connected"`
	Team      string `json:"team,omitempty"`
	User      string `json:"user,omitempty"`
	BotID     string `json:"bot_id,omitempty"`
	Error     string `json:"error,omitempty"`
}
