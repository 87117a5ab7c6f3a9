package review

import (
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// ErrFieldsRequired 新增评论缺少必填字段
var ErrFieldsRequired = apperrors.BadRequest("book_id, review_text, and review_score are required")

// ErrNoReviews 指定图书没有评论
func ErrNoReviews(bookID uint) *apperrors.AppError {
	return apperrors.Newf(apperrors.ErrCodeNotFound, "Reviews for Book ID %d not found", bookID)
}
