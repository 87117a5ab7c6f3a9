package book

import (
	"context"
)

// Service 图书领域服务接口
// 设计说明:
// 1. 领域服务封装业务规则校验(必填字段、存在性检查)
// 2. 不依赖具体的Repository实现(依赖倒置)
type Service interface {
	// AddBook 新增图书
	// 业务规则:title和author不能为空
	AddBook(ctx context.Context, title, author, summary, genre string) (*Book, error)

	// GetBook 根据ID获取图书(含平均分)
	GetBook(ctx context.Context, id uint) (*Book, error)

	// ListBooks 查询图书列表
	ListBooks(ctx context.Context, filter ListFilter) ([]*Book, error)

	// UpdateBook 部分更新
	// 业务规则:先检查存在性,不存在时直接返回404,不做任何修改
	UpdateBook(ctx context.Context, id uint, changes Changes) error

	// DeleteBook 删除图书
	DeleteBook(ctx context.Context, id uint) error

	// EnsureExists 不存在时返回ErrBookNotFound
	EnsureExists(ctx context.Context, id uint) error

	// TopBooks 平均分最高的前5本,一本都没有时返回ErrNoBooks
	TopBooks(ctx context.Context) ([]*TopBook, error)
}

// service 领域服务实现
type service struct {
	repo Repository
}

// NewService 创建图书领域服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) AddBook(ctx context.Context, title, author, summary, genre string) (*Book, error) {
	// 1. 创建实体(校验必填字段)
	b, err := NewBook(title, author, summary, genre)
	if err != nil {
		return nil, err
	}

	// 2. 持久化
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetBook(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) ListBooks(ctx context.Context, filter ListFilter) ([]*Book, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateBook(ctx context.Context, id uint, changes Changes) error {
	// 1. 存在性检查(404优先于字段校验和写操作)
	if err := s.EnsureExists(ctx, id); err != nil {
		return err
	}

	// 2. 字段校验
	if err := changes.Validate(); err != nil {
		return err
	}

	// 3. 更新
	return s.repo.Update(ctx, id, changes)
}

func (s *service) DeleteBook(ctx context.Context, id uint) error {
	if err := s.EnsureExists(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) EnsureExists(ctx context.Context, id uint) error {
	ok, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrBookNotFound(id)
	}
	return nil
}

func (s *service) TopBooks(ctx context.Context) ([]*TopBook, error) {
	top, err := s.repo.Top(ctx, TopLimit)
	if err != nil {
		return nil, err
	}
	if len(top) == 0 {
		return nil, ErrNoBooks
	}
	return top, nil
}
