package review

import (
	"strings"
	"time"
)

// Review 评论实体
// 说明:BookID不做外键约束,指向已删除/不存在图书的评论在读接口中book_title为nil
type Review struct {
	ID        uint
	BookID    uint
	Text      string
	Score     float64
	CreatedAt time.Time
}

// View 评论读模型(LEFT JOIN books)
type View struct {
	ID        uint
	BookID    uint
	BookTitle *string
	Text      string
	Score     float64
}

// NewReview 创建评论(工厂方法)
// 入参为指针以区分"未提供"与零值:
// - book_id未提供或为0、review_text未提供或为空、review_score未提供 → ErrFieldsRequired
// - review_score为0是合法分数
func NewReview(bookID *uint, text *string, score *float64) (*Review, error) {
	if bookID == nil || *bookID == 0 || text == nil || strings.TrimSpace(*text) == "" || score == nil {
		return nil, ErrFieldsRequired
	}
	return &Review{
		BookID:    *bookID,
		Text:      *text,
		Score:     *score,
		CreatedAt: time.Now(),
	}, nil
}
