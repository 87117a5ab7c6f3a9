package book

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// 图书领域错误定义
// 消息文本即HTTP响应中的error字段,保持与已有客户端一致
var (
	// ErrTitleAuthorRequired 书名和作者必填
	ErrTitleAuthorRequired = apperrors.BadRequest("Title and Author are required")

	// ErrNoChanges 更新请求中没有可更新的字段
	ErrNoChanges = apperrors.BadRequest("No fields to update")

	// ErrNoBooks 没有任何被评论过的图书
	ErrNoBooks = apperrors.NotFound("There were no books")
)

// ErrBookNotFound 图书不存在(消息中带ID)
func ErrBookNotFound(id uint) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeNotFound, "Book with ID %d not found", id)
}
