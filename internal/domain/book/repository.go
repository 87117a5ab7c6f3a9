package book

import (
	"context"
)

// TopLimit 排行榜条数
const TopLimit = 5

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 读接口都带上average_score(LEFT JOIN reviews聚合)
type Repository interface {
	// Create 创建图书,成功后回填ID
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书,不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// List 查询全部图书(按ID升序),filter为空时不过滤
	List(ctx context.Context, filter ListFilter) ([]*Book, error)

	// Update 按列更新,不存在返回ErrBookNotFound
	Update(ctx context.Context, id uint, changes Changes) error

	// Delete 删除图书,不存在返回ErrBookNotFound
	Delete(ctx context.Context, id uint) error

	// Exists 判断图书是否存在
	Exists(ctx context.Context, id uint) (bool, error)

	// Top 按平均分降序返回前limit本(只包含有评论的图书)
	Top(ctx context.Context, limit int) ([]*TopBook, error)
}

// ListFilter 列表过滤条件(子串匹配,不区分大小写)
type ListFilter struct {
	Title  string
	Author string
	Genre  string
}
