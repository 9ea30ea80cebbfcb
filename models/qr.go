package models

// Значения оформления QR-кода по умолчанию. Совпадают с теми,
// что подставляет энкодер при пустых полях опций.
const (
	DefaultBoxSize   = 10
	DefaultBorder    = 4
	DefaultFillColor = "black"
	DefaultBackColor = "white"
)

// QROptions — визуальные параметры QR-кода. Нулевые значения
// означают «использовать значение по умолчанию».
type QROptions struct {
	BoxSize   int    `json:"box_size,omitempty"`
	Border    int    `json:"border,omitempty"`
	FillColor string `json:"fill_color,omitempty"`
	BackColor string `json:"back_color,omitempty"`
}

// QRRequest — запрос на генерацию и отправку QR-кода.
// После создания не изменяется.
type QRRequest struct {
	APKURL      string     `json:"apk_url"`
	BuildNumber string     `json:"build_number,omitempty"`
	Options     *QROptions `json:"qr_options,omitempty"`
}
