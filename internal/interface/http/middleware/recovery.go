package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
	"github.com/xiebiao/bookcatalog/pkg/response"
)

// Recovery 捕获panic,返回500 {"error":"Internal server error"}
// 与gin.Recovery的区别:使用zap记录堆栈,响应体与其它错误保持一致
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("method", c.Request.Method),
					zap.String("path", c.Request.URL.Path),
					zap.String("request_id", GetRequestID(c)),
					zap.ByteString("stack", debug.Stack()),
				)
				response.ErrorWithCode(c, http.StatusInternalServerError, apperrors.ErrInternal.Message)
				c.Abort()
			}
		}()
		c.Next()
	}
}
