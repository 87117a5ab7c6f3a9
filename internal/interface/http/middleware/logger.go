package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/bookcatalog/pkg/tracing"
)

// slowRequestThreshold 超过该耗时的请求记录WARN
const slowRequestThreshold = 3 * time.Second

// maxLoggedBody 请求体日志的最大长度
const maxLoggedBody = 1024

// RequestLogger 请求日志中间件
//
// 记录方法、路径、状态码、耗时、客户端IP和请求ID;开启链路追踪时附带trace_id/span_id。
// 4xx记WARN,5xx记ERROR,其余记INFO;慢请求额外记一条WARN。
// 不记录请求体,需要时在路由上单独挂RequestBody。
func RequestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("query", c.Request.URL.RawQuery),
			zap.Int("status", status),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
			zap.String("request_id", GetRequestID(c)),
		}
		// Tracing在本中间件之后执行,c.Next()返回后c.Request已带上span
		if traceID := tracing.ExtractTraceID(c.Request.Context()); traceID != "" {
			fields = append(fields,
				zap.String("trace_id", traceID),
				zap.String("span_id", tracing.ExtractSpanID(c.Request.Context())),
			)
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("request", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("request", fields...)
		default:
			logger.Info("request", fields...)
		}

		if latency > slowRequestThreshold {
			logger.Warn("slow request",
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Duration("latency", latency),
			)
		}
	}
}

// RequestBody 记录写接口(POST/PUT)的请求体
// 读取后放回c.Request.Body,后续的ShouldBindJSON不受影响;超长部分截断
func RequestBody(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			logger.Warn("读取请求体失败", zap.Error(err))
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		logged := body
		truncated := false
		if len(logged) > maxLoggedBody {
			logged = logged[:maxLoggedBody]
			truncated = true
		}
		logger.Info("request body",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", GetRequestID(c)),
			zap.ByteString("body", logged),
			zap.Bool("truncated", truncated),
		)

		c.Next()
	}
}
