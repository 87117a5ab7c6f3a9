package review

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/domain/review"
)

// ReviewView 评论DTO
// book_title为null表示评论指向的图书已不存在
type ReviewView struct {
	ReviewID    uint    `json:"review_id"`
	BookID      uint    `json:"book_id"`
	BookTitle   *string `json:"book_title"`
	ReviewText  string  `json:"review_text"`
	ReviewScore float64 `json:"review_score"`
}

// ListReviewsResponse 评论列表响应DTO
type ListReviewsResponse struct {
	Reviews []ReviewView `json:"reviews"`
}

// ListReviewsUseCase 全部评论
type ListReviewsUseCase struct {
	reviewService review.Service
}

// NewListReviewsUseCase 创建评论列表用例
func NewListReviewsUseCase(reviewService review.Service) *ListReviewsUseCase {
	return &ListReviewsUseCase{reviewService: reviewService}
}

// Execute 没有评论时返回空数组
func (uc *ListReviewsUseCase) Execute(ctx context.Context) (*ListReviewsResponse, error) {
	views, err := uc.reviewService.ListReviews(ctx)
	if err != nil {
		return nil, err
	}
	return &ListReviewsResponse{Reviews: toReviewViews(views)}, nil
}

// ListBookReviewsUseCase 指定图书的评论
type ListBookReviewsUseCase struct {
	reviewService review.Service
}

// NewListBookReviewsUseCase 创建图书评论列表用例
func NewListBookReviewsUseCase(reviewService review.Service) *ListBookReviewsUseCase {
	return &ListBookReviewsUseCase{reviewService: reviewService}
}

// Execute 没有评论时返回review.ErrNoReviews(404)
func (uc *ListBookReviewsUseCase) Execute(ctx context.Context, bookID uint) (*ListReviewsResponse, error) {
	views, err := uc.reviewService.ListBookReviews(ctx, bookID)
	if err != nil {
		return nil, err
	}
	return &ListReviewsResponse{Reviews: toReviewViews(views)}, nil
}

func toReviewViews(views []*review.View) []ReviewView {
	list := make([]ReviewView, len(views))
	for i, v := range views {
		list[i] = ReviewView{
			ReviewID:    v.ID,
			BookID:      v.BookID,
			BookTitle:   v.BookTitle,
			ReviewText:  v.Text,
			ReviewScore: v.Score,
		}
	}
	return list
}
