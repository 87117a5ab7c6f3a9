package review

import (
	"context"

	"github.com/xiebiao/bookcatalog/internal/application/event"
	"github.com/xiebiao/bookcatalog/internal/domain/review"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// AddReviewUseCase 新增评论用例
// 设计说明:
// 1. book_id、review_text、review_score三个字段都必须提供(指针区分"未提供"与零值)
// 2. 不校验图书是否存在(reviews表没有外键约束)
type AddReviewUseCase struct {
	reviewService review.Service
	events        *event.Emitter
}

// NewAddReviewUseCase 创建新增评论用例
func NewAddReviewUseCase(reviewService review.Service, events *event.Emitter) *AddReviewUseCase {
	return &AddReviewUseCase{
		reviewService: reviewService,
		events:        events,
	}
}

// AddReviewRequest 新增评论请求DTO
type AddReviewRequest struct {
	BookID *uint
	Text   *string
	Score  *float64
}

// AddReviewResponse 新增评论响应DTO
type AddReviewResponse struct {
	ReviewID uint `json:"review_id"`
	BookID   uint `json:"book_id"`
}

// Execute 执行新增评论用例
func (uc *AddReviewUseCase) Execute(ctx context.Context, req AddReviewRequest) (*AddReviewResponse, error) {
	r, err := uc.reviewService.AddReview(ctx, req.BookID, req.Text, req.Score)
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.ReviewsCreatedTotal)
	uc.events.Emit(ctx, event.ReviewAdded, event.ReviewPayload{
		ReviewID: r.ID,
		BookID:   r.BookID,
		Score:    r.Score,
	})

	return &AddReviewResponse{ReviewID: r.ID, BookID: r.BookID}, nil
}
