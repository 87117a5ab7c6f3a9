package book

import (
	"strings"
	"time"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Title与Author必填,Summary与Genre可为空串
// 2. AverageScore是派生值(该书所有评论分数的平均值),没有评论时为nil
// 3. ID由存储层生成,创建后不可修改
type Book struct {
	ID           uint
	Title        string
	Author       string
	Summary      string
	Genre        string
	AverageScore *float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TopBook 排行榜条目(至少有一条评论的图书)
type TopBook struct {
	ID           uint
	Title        string
	AverageScore float64
}

// NewBook 创建新图书(工厂方法)
// 业务规则:title和author不能为空
func NewBook(title, author, summary, genre string) (*Book, error) {
	if isBlank(title) || isBlank(author) {
		return nil, ErrTitleAuthorRequired
	}
	now := time.Now()
	return &Book{
		Title:     title,
		Author:    author,
		Summary:   summary,
		Genre:     genre,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Changes 部分更新(nil表示不修改该字段)
type Changes struct {
	Title   *string
	Author  *string
	Summary *string
	Genre   *string
}

// IsEmpty 没有任何字段需要更新
func (c Changes) IsEmpty() bool {
	return c.Title == nil && c.Author == nil && c.Summary == nil && c.Genre == nil
}

// Validate 更新后的图书仍需满足必填规则
func (c Changes) Validate() error {
	if c.IsEmpty() {
		return ErrNoChanges
	}
	if (c.Title != nil && isBlank(*c.Title)) || (c.Author != nil && isBlank(*c.Author)) {
		return ErrTitleAuthorRequired
	}
	return nil
}

// Columns 转换为 列名→值,供存储层UPDATE使用
func (c Changes) Columns() map[string]interface{} {
	cols := make(map[string]interface{}, 4)
	if c.Title != nil {
		cols["title"] = *c.Title
	}
	if c.Author != nil {
		cols["author"] = *c.Author
	}
	if c.Summary != nil {
		cols["summary"] = *c.Summary
	}
	if c.Genre != nil {
		cols["genre"] = *c.Genre
	}
	return cols
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
