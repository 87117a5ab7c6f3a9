package book

import (
	"context"
	"strings"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
)

// ListBooksUseCase 图书列表查询用例
// 设计说明:
// 1. 不分页,一次返回全部图书(按book_id升序)
// 2. 可选的title/author/genre过滤,大小写不敏感的子串匹配
// 3. 每本书附带average_score,没有评论时为null
type ListBooksUseCase struct {
	bookService book.Service
}

// NewListBooksUseCase 创建列表查询用例
func NewListBooksUseCase(bookService book.Service) *ListBooksUseCase {
	return &ListBooksUseCase{
		bookService: bookService,
	}
}

// ListBooksRequest 列表查询请求DTO
type ListBooksRequest struct {
	Title  string
	Author string
	Genre  string
}

// BookView 图书DTO(含平均分)
type BookView struct {
	BookID       uint     `json:"book_id"`
	Title        string   `json:"title"`
	Author       string   `json:"author"`
	Summary      string   `json:"summary"`
	Genre        string   `json:"genre"`
	AverageScore *float64 `json:"average_score"`
}

// ListBooksResponse 列表查询响应DTO
type ListBooksResponse struct {
	Books []BookView `json:"books"`
}

// Execute 执行列表查询用例
func (uc *ListBooksUseCase) Execute(ctx context.Context, req ListBooksRequest) (*ListBooksResponse, error) {
	// 1. 构建过滤条件(去掉首尾空白,空串表示不过滤)
	filter := book.ListFilter{
		Title:  strings.TrimSpace(req.Title),
		Author: strings.TrimSpace(req.Author),
		Genre:  strings.TrimSpace(req.Genre),
	}

	// 2. 查询
	books, err := uc.bookService.ListBooks(ctx, filter)
	if err != nil {
		return nil, err
	}

	// 3. 转换为DTO(空结果返回[]而不是null)
	list := make([]BookView, len(books))
	for i, b := range books {
		list[i] = toBookView(b)
	}
	return &ListBooksResponse{Books: list}, nil
}

func toBookView(b *book.Book) BookView {
	return BookView{
		BookID:       b.ID,
		Title:        b.Title,
		Author:       b.Author,
		Summary:      b.Summary,
		Genre:        b.Genre,
		AverageScore: b.AverageScore,
	}
}
