package book

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// TopBooksUseCase 平均分排行榜
type TopBooksUseCase struct {
	bookService book.Service
}

// NewTopBooksUseCase 创建排行榜用例
func NewTopBooksUseCase(bookService book.Service) *TopBooksUseCase {
	return &TopBooksUseCase{bookService: bookService}
}

// TopBookView 排行榜条目DTO
type TopBookView struct {
	BookID       uint    `json:"book_id"`
	BookTitle    string  `json:"book_title"`
	AverageScore float64 `json:"average_score"`
}

// TopBooksResponse 排行榜响应DTO
type TopBooksResponse struct {
	TopBooks []TopBookView `json:"top_5_books"`
}

// Execute 至多5条,按平均分降序;没有任何带评论的图书时返回book.ErrNoBooks(404)
func (uc *TopBooksUseCase) Execute(ctx context.Context) (*TopBooksResponse, error) {
	top, err := uc.bookService.TopBooks(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]TopBookView, len(top))
	for i, t := range top {
		list[i] = TopBookView{
			BookID:       t.ID,
			BookTitle:    t.Title,
			AverageScore: t.AverageScore,
		}
	}
	return &TopBooksResponse{TopBooks: list}, nil
}
