package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookcatalog/internal/application/event"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/review"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/store"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// DeleteBookUseCase 删除图书
// 设计说明:
// 1. reviews表没有外键,删除图书时在同一事务内级联删除它的评论
// 2. 任何一步失败整体回滚
type DeleteBookUseCase struct {
	bookService   book.Service
	reviewService review.Service
	txManager     *store.TxManager
	events        *event.Emitter
	logger        *zap.Logger
}

// NewDeleteBookUseCase 创建删除用例
func NewDeleteBookUseCase(
	bookService book.Service,
	reviewService review.Service,
	txManager *store.TxManager,
	events *event.Emitter,
	logger *zap.Logger,
) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookService:   bookService,
		reviewService: reviewService,
		txManager:     txManager,
		events:        events,
		logger:        logger,
	}
}

// Execute 执行删除
func (uc *DeleteBookUseCase) Execute(ctx context.Context, id uint) error {
	var removed int64

	err := uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		// 1. 存在性检查
		if err := uc.bookService.EnsureExists(ctx, id); err != nil {
			return err
		}

		// 2. 级联删除评论
		n, err := uc.reviewService.RemoveBookReviews(ctx, id)
		if err != nil {
			return err
		}
		removed = n

		// 3. 删除图书
		return uc.bookService.DeleteBook(ctx, id)
	})
	if err != nil {
		return apperrors.Internal(err, "Failed to delete book")
	}

	uc.logger.Info("图书已删除", zap.Uint("book_id", id), zap.Int64("reviews_removed", removed))
	uc.events.Emit(ctx, event.BookDeleted, event.BookPayload{BookID: id})
	return nil
}
