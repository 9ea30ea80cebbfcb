package models

// Статусы доставки в пределах одного канала.
const (
	DeliveryStatusSuccess = "success"
	DeliveryStatusFailed  = "failed"
)

// DeliveryResult — итог отправки QR-кода в один канал.
// Инвариант: при success заполнен FileID и пуст Error, при failed — наоборот.
type DeliveryResult struct {
	ChannelRef  string `json:"channel"`
	ChannelName string `json:"channel_name,omitempty"`
	Status      string `json:"status"`
	FileID      string `json:"file_id,omitempty"`
	Error       string `json:"error,omitempty"`
}

// BroadcastReport — сводка рассылки по нескольким каналам.
// SuccessCount + FailedCount = TotalTargets = len(Results),
// порядок Results повторяет порядок целей на входе.
type BroadcastReport struct {
	TotalTargets int              `json:"total_channels"`
	SuccessCount int              `json:"success_count"`
	FailedCount  int              `json:"failed_count"`
	Results      []DeliveryResult `json:"results"`
}
