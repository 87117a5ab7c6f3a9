package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// ErrorBody 统一错误响应结构
// 所有失败响应都是 {"error": "<message>"}
type ErrorBody struct {
	Error string `json:"error" example:"Book with ID 7 not found"`
}

// MessageBody 写操作的成功响应
type MessageBody struct {
	Message string `json:"message" example:"Book added successfully"`
}

// logger 由main注入，未注入时使用Nop
var logger = zap.NewNop()

// SetLogger 设置错误日志记录器
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// JSON 以指定状态码返回数据（读接口直接返回业务结构，不再套一层data）
func JSON(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// OK 200响应
func OK(c *gin.Context, data interface{}) {
	JSON(c, http.StatusOK, data)
}

// Message 返回 {"message": msg}，extra中的键会合并进响应体（如book_id）
func Message(c *gin.Context, status int, msg string, extra ...gin.H) {
	body := gin.H{"message": msg}
	for _, e := range extra {
		for k, v := range e {
			body[k] = v
		}
	}
	c.JSON(status, body)
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	out, err := uc.Execute(ctx, req)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := appErr.Status()

	msg := appErr.Message
	if status >= http.StatusInternalServerError {
		// 5xx：记录底层错误，并以 "Reason: ..." 形式返回给客户端
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", status),
			zap.Error(err),
		)
		if appErr.Err != nil {
			msg = msg + ". Reason: " + appErr.Err.Error()
		}
	}

	c.JSON(status, ErrorBody{Error: msg})
}

// ErrorWithCode 自定义状态码和消息
func ErrorWithCode(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}
