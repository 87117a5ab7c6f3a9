package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/review"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// reviewRepository 评论仓储实现
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository 创建评论仓储
func NewReviewRepository(db *gorm.DB) review.Repository {
	return &reviewRepository{db: db}
}

// reviewRow 评论读模型,BookTitle在图书不存在时为NULL
type reviewRow struct {
	ReviewID    uint
	BookID      uint
	BookTitle   *string
	ReviewText  string
	ReviewScore float64
}

// Create 创建评论
func (r *reviewRepository) Create(ctx context.Context, rv *review.Review) error {
	model := &ReviewModel{
		BookID:      rv.BookID,
		ReviewText:  rv.Text,
		ReviewScore: rv.Score,
	}
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "Failed to add review")
	}
	rv.ID = model.ReviewID
	rv.CreatedAt = model.CreatedAt
	return nil
}

func (r *reviewRepository) withTitles(ctx context.Context) *gorm.DB {
	return getDB(ctx, r.db).
		Table("reviews AS r").
		Select("r.review_id, r.book_id, b.title AS book_title, r.review_text, r.review_score").
		Joins("LEFT JOIN books AS b ON b.book_id = r.book_id")
}

// List 全部评论
func (r *reviewRepository) List(ctx context.Context) ([]*review.View, error) {
	var rows []reviewRow
	if err := r.withTitles(ctx).Order("r.review_id ASC").Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(err, "Failed to fetch reviews")
	}
	return toViews(rows), nil
}

// ListByBook 指定图书的评论
func (r *reviewRepository) ListByBook(ctx context.Context, bookID uint) ([]*review.View, error) {
	var rows []reviewRow
	err := r.withTitles(ctx).
		Where("r.book_id = ?", bookID).
		Order("r.review_id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "Failed to fetch reviews")
	}
	return toViews(rows), nil
}

// DeleteByBook 删除图书的全部评论
func (r *reviewRepository) DeleteByBook(ctx context.Context, bookID uint) (int64, error) {
	result := getDB(ctx, r.db).Where("book_id = ?", bookID).Delete(&ReviewModel{})
	if result.Error != nil {
		return 0, apperrors.Wrap(result.Error, "Failed to delete reviews")
	}
	return result.RowsAffected, nil
}

func toViews(rows []reviewRow) []*review.View {
	views := make([]*review.View, len(rows))
	for i, row := range rows {
		views[i] = &review.View{
			ID:        row.ReviewID,
			BookID:    row.BookID,
			BookTitle: row.BookTitle,
			Text:      row.ReviewText,
			Score:     row.ReviewScore,
		}
	}
	return views
}
