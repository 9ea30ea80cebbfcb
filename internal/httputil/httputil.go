package httputil

import "github.com/gin-gonic/gin"

// Envelope — единый формат структурированных ответов API.
type Envelope struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
	Extra   interface{} `json:"extra"`
}

// NewEnvelope заполняет конверт, подставляя пустые объекты вместо nil,
// чтобы клиенты всегда видели поля data и extra.
func NewEnvelope(code int, message string, data interface{}) Envelope {
	if data == nil {
		data = gin.H{}
	}
	return Envelope{Code: code, Message: message, Data: data, Extra: gin.H{}}
}

// Respond отправляет конверт с тем же HTTP-статусом, что и в теле.
func Respond(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, NewEnvelope(code, message, data))
}

// RespondError отправляет конверт с ошибкой и прекращает обработку запроса.
// Используем AbortWithStatusJSON, чтобы последующие обработчики не выполнялись,
// даже если забыли вернуть управление.
func RespondError(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, NewEnvelope(status, msg, nil))
}
