package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code与HTTP状态码对齐（400/404/500），接口层直接据此返回状态
// 2. Message是返回给客户端的提示信息
// 3. Err是底层错误，5xx响应会以 "Reason: ..." 的形式附带其文本
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Status 返回对应的HTTP状态码，非法Code一律视为500
func (e *AppError) Status() int {
	if e.Code < 400 || e.Code > 599 {
		return http.StatusInternalServerError
	}
	return e.Code
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf 格式化创建AppError（如 "Book with ID 7 not found"）
func Newf(code int, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap 包装系统错误（如数据库错误、网络错误）
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Internal 将未分类错误包装为500
// 已经是AppError的（如404、400）原样返回，避免业务错误被"Failed to ..."覆盖
func Internal(err error, message string) error {
	if err == nil {
		return nil
	}
	if IsAppError(err) {
		return err
	}
	return Wrap(err, message)
}

// =========================================
// 错误码定义（与HTTP状态码一致）
// =========================================

const (
	ErrCodeBadRequest = http.StatusBadRequest
	ErrCodeNotFound   = http.StatusNotFound
	ErrCodeInternal   = http.StatusInternalServerError
)

// =========================================
// 预定义错误
// =========================================

var (
	ErrInternal    = New(ErrCodeInternal, "Internal server error")
	ErrInvalidJSON = New(ErrCodeBadRequest, "Request body must be a JSON object")
)

// =========================================
// 辅助函数
// =========================================

// BadRequest 构造400错误
func BadRequest(message string) *AppError {
	return New(ErrCodeBadRequest, message)
}

// NotFound 构造404错误
func NotFound(message string) *AppError {
	return New(ErrCodeNotFound, message)
}

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, ErrInternal.Message)
}

// IsNotFound 判断是否为404类错误
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Code == ErrCodeNotFound
}
