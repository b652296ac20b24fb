package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader 请求标识的透传头
const RequestIDHeader = "X-Request-Id"

const requestIDKey = "requestID"

// RequestID 透传或生成请求标识，写回响应头并放入请求上下文
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(requestIDKey, requestID)
		c.Writer.Header().Set(RequestIDHeader, requestID)
		c.Next()
	}
}

// RequestIDFromContext 取当前请求的标识，没有时返回空串
func RequestIDFromContext(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
