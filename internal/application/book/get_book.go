package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// GetBookUseCase 图书详情用例
type GetBookUseCase struct {
	bookService book.Service
}

// NewGetBookUseCase 创建图书详情用例
func NewGetBookUseCase(bookService book.Service) *GetBookUseCase {
	return &GetBookUseCase{bookService: bookService}
}

// Execute 不存在时返回book.ErrBookNotFound(404)
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookView, error) {
	b, err := uc.bookService.GetBook(ctx, id)
	if err != nil {
		return nil, err
	}
	view := toBookView(b)
	return &view, nil
}
