package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/application/event"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// AddBookUseCase 新增图书用例
// 设计说明:
// 1. 应用层负责用例编排,业务规则(title/author必填)由领域服务校验
// 2. 持久化成功后记录指标并发布book.created事件
type AddBookUseCase struct {
	bookService book.Service
	events      *event.Emitter
}

// NewAddBookUseCase 创建新增图书用例
func NewAddBookUseCase(bookService book.Service, events *event.Emitter) *AddBookUseCase {
	return &AddBookUseCase{
		bookService: bookService,
		events:      events,
	}
}

// AddBookRequest 新增图书请求DTO
// summary与genre未提供时为空串
type AddBookRequest struct {
	Title   string
	Author  string
	Summary string
	Genre   string
}

// AddBookResponse 新增图书响应DTO
type AddBookResponse struct {
	BookID uint `json:"book_id"`
}

// Execute 执行新增图书用例
func (uc *AddBookUseCase) Execute(ctx context.Context, req AddBookRequest) (*AddBookResponse, error) {
	b, err := uc.bookService.AddBook(ctx, req.Title, req.Author, req.Summary, req.Genre)
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.BooksCreatedTotal)
	uc.events.Emit(ctx, event.BookCreated, event.BookPayload{
		BookID: b.ID,
		Title:  b.Title,
		Author: b.Author,
	})

	return &AddBookResponse{BookID: b.ID}, nil
}
