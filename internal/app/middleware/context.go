package middleware

import (
	"github.com/gin-gonic/gin"
)

const (
	requestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// GetRequestID возвращает ID запроса из контекста
func GetRequestID(c *gin.Context) string {
	if c == nil {
		return ""
	}
	requestID, exists := c.Get(requestIDKey)
	if !exists {
		return ""
	}
	id, _ := requestID.(string)
	return id
}
