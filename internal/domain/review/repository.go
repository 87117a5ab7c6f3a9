package review

import (
	"context"
)

// Repository 评论仓储接口
type Repository interface {
	// Create 创建评论,成功后回填ID
	Create(ctx context.Context, r *Review) error

	// List 全部评论(按review_id升序)
	List(ctx context.Context) ([]*View, error)

	// ListByBook 指定图书的评论,没有时返回空切片
	ListByBook(ctx context.Context, bookID uint) ([]*View, error)

	// DeleteByBook 删除图书的全部评论,返回删除条数
	DeleteByBook(ctx context.Context, bookID uint) (int64, error)
}
