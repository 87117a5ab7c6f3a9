package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader 请求ID的Header名
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey gin.Context中保存请求ID的键
	RequestIDKey = "request_id"
)

// RequestID 为每个请求分配唯一ID
// 上游(如网关)已带X-Request-ID时沿用,否则生成UUID
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Next()
	}
}

// GetRequestID 获取当前请求ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
