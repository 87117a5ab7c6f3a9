package review

import (
	"context"
)

// Service 评论领域服务
type Service interface {
	// AddReview 新增评论,不校验图书是否存在
	AddReview(ctx context.Context, bookID *uint, text *string, score *float64) (*Review, error)

	// ListReviews 全部评论
	ListReviews(ctx context.Context) ([]*View, error)

	// ListBookReviews 指定图书的评论,没有时返回ErrNoReviews
	ListBookReviews(ctx context.Context, bookID uint) ([]*View, error)

	// RemoveBookReviews 删除图书的全部评论(删除图书时级联调用)
	RemoveBookReviews(ctx context.Context, bookID uint) (int64, error)
}

type service struct {
	repo Repository
}

// NewService 创建评论领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) AddReview(ctx context.Context, bookID *uint, text *string, score *float64) (*Review, error) {
	r, err := NewReview(bookID, text, score)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (s *service) ListReviews(ctx context.Context) ([]*View, error) {
	return s.repo.List(ctx)
}

func (s *service) ListBookReviews(ctx context.Context, bookID uint) ([]*View, error) {
	views, err := s.repo.ListByBook(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if len(views) == 0 {
		return nil, ErrNoReviews(bookID)
	}
	return views, nil
}

func (s *service) RemoveBookReviews(ctx context.Context, bookID uint) (int64, error) {
	return s.repo.DeleteByBook(ctx, bookID)
}
