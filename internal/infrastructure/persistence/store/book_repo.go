package store

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/domain/book"
	apperrors "github.com/xiebiao/bookcatalog/pkg/errors"
)

// bookRepository 图书仓储实现(GORM,MySQL/SQLite通用)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 读接口通过LEFT JOIN reviews + AVG计算average_score,不落库
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// bookRow 图书读模型(带平均分)
type bookRow struct {
	BookID       uint
	Title        string
	Author       string
	Summary      string
	Genre        string
	AverageScore *float64
}

// topRow 排行榜读模型
type topRow struct {
	BookID       uint
	BookTitle    string
	AverageScore float64
}

const bookColumns = "b.book_id, b.title, b.author, COALESCE(b.summary, '') AS summary, COALESCE(b.genre, '') AS genre"

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	// 1. 领域实体 → GORM模型
	model := &BookModel{
		Title:   b.Title,
		Author:  b.Author,
		Summary: b.Summary,
		Genre:   b.Genre,
	}

	// 2. 插入数据库
	if err := getDB(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "Failed to add book")
	}

	// 3. 回填自增ID
	b.ID = model.BookID
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// withScores 图书 LEFT JOIN 评论,按图书分组求平均分
// 没有评论的图书AVG为NULL,对应AverageScore=nil
func (r *bookRepository) withScores(ctx context.Context) *gorm.DB {
	return getDB(ctx, r.db).
		Table("books AS b").
		Select(bookColumns + ", AVG(r.review_score) AS average_score").
		Joins("LEFT JOIN reviews AS r ON r.book_id = b.book_id").
		Group("b.book_id, b.title, b.author, b.summary, b.genre")
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var rows []bookRow
	err := r.withScores(ctx).Where("b.book_id = ?", id).Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "Failed to fetch book")
	}
	if len(rows) == 0 {
		return nil, book.ErrBookNotFound(id)
	}
	return toBookEntity(&rows[0]), nil
}

// List 查询图书列表
// 过滤条件为子串匹配,统一转小写以兼容MySQL与SQLite的排序规则差异
func (r *bookRepository) List(ctx context.Context, filter book.ListFilter) ([]*book.Book, error) {
	query := r.withScores(ctx)

	for column, value := range map[string]string{
		"b.title":  filter.Title,
		"b.author": filter.Author,
		"b.genre":  filter.Genre,
	} {
		if value == "" {
			continue
		}
		query = query.Where("LOWER("+column+") LIKE ? ESCAPE '!'", "%"+escapeLike(strings.ToLower(value))+"%")
	}

	var rows []bookRow
	if err := query.Order("b.book_id ASC").Scan(&rows).Error; err != nil {
		return nil, apperrors.Wrap(err, "Failed to fetch books")
	}

	books := make([]*book.Book, len(rows))
	for i := range rows {
		books[i] = toBookEntity(&rows[i])
	}
	return books, nil
}

// Update 按列更新
func (r *bookRepository) Update(ctx context.Context, id uint, changes book.Changes) error {
	db := getDB(ctx, r.db)
	result := db.Model(&BookModel{}).Where("book_id = ?", id).Updates(changes.Columns())
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "Failed to update book")
	}

	// MySQL在值未变化时RowsAffected为0,需再查一次确认是否存在
	if result.RowsAffected == 0 {
		ok, err := r.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return book.ErrBookNotFound(id)
		}
	}
	return nil
}

// Delete 删除图书(物理删除)
func (r *bookRepository) Delete(ctx context.Context, id uint) error {
	result := getDB(ctx, r.db).Where("book_id = ?", id).Delete(&BookModel{})
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "Failed to delete book")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound(id)
	}
	return nil
}

// Exists 判断图书是否存在
func (r *bookRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := getDB(ctx, r.db).Model(&BookModel{}).Where("book_id = ?", id).Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "Failed to fetch book")
	}
	return count > 0, nil
}

// Top 平均分排行榜
// INNER JOIN:没有评论的图书不参与排名;平均分相同时按book_id升序保证结果稳定
func (r *bookRepository) Top(ctx context.Context, limit int) ([]*book.TopBook, error) {
	var rows []topRow
	err := getDB(ctx, r.db).
		Table("books AS b").
		Select("b.book_id, b.title AS book_title, AVG(r.review_score) AS average_score").
		Joins("JOIN reviews AS r ON r.book_id = b.book_id").
		Group("b.book_id, b.title").
		Order("average_score DESC").
		Order("b.book_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "Failed to fetch top books")
	}

	top := make([]*book.TopBook, len(rows))
	for i, row := range rows {
		top[i] = &book.TopBook{ID: row.BookID, Title: row.BookTitle, AverageScore: row.AverageScore}
	}
	return top, nil
}

// =========================================
// 辅助函数
// =========================================

// toBookEntity 读模型 → 领域实体
func toBookEntity(row *bookRow) *book.Book {
	return &book.Book{
		ID:           row.BookID,
		Title:        row.Title,
		Author:       row.Author,
		Summary:      row.Summary,
		Genre:        row.Genre,
		AverageScore: row.AverageScore,
	}
}

// escapeLike 转义LIKE通配符,用户输入的%和_按字面匹配
func escapeLike(s string) string {
	return strings.NewReplacer("!", "!!", "%", "!%", "_", "!_").Replace(s)
}
