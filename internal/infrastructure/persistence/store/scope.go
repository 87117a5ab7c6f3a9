package store

import (
	"context"
	"database/sql"
	"errors"
	"sync"

	"gorm.io/gorm"
)

// ErrScopeClosed 请求结束后仍在使用Scope
var ErrScopeClosed = errors.New("storage scope already closed")

type ctxKey int

const (
	txKey ctxKey = iota
	scopeKey
)

// Scope 单个请求范围内的数据库句柄
// 设计说明:
// 1. 第一次使用时才从连接池取出一条专用连接(*sql.Conn),同一请求内的所有查询复用它
// 2. 请求结束时由中间件调用Close归还连接,无论请求成功、失败还是panic
// 3. 不需要数据库的请求(如GET /author)不会占用连接
type Scope struct {
	db *gorm.DB

	mu     sync.Mutex
	conn   *sql.Conn
	sess   *gorm.DB
	closed bool
}

// NewScope 创建请求范围句柄(此时不取连接)
func NewScope(db *gorm.DB) *Scope {
	return &Scope{db: db}
}

// DB 返回绑定到专用连接的*gorm.DB
// 取连接失败时返回带错误的*gorm.DB,错误会在执行查询时返回给调用方
func (s *Scope) DB(ctx context.Context) *gorm.DB {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return failed(s.db, ctx, ErrScopeClosed)
	}
	if s.sess != nil {
		return s.sess.WithContext(ctx)
	}

	// 1. 从连接池取出专用连接
	sqlDB, err := s.db.DB()
	if err != nil {
		return failed(s.db, ctx, err)
	}
	conn, err := sqlDB.Conn(ctx)
	if err != nil {
		return failed(s.db, ctx, err)
	}

	// 2. 新会话的Statement是克隆出来的,替换ConnPool不影响全局db
	sess := s.db.Session(&gorm.Session{NewDB: true, Context: ctx})
	sess.Statement.ConnPool = conn

	s.conn = conn
	s.sess = sess
	return sess
}

// Acquired 是否已经取出连接
func (s *Scope) Acquired() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.conn != nil
}

// Close 归还连接,可重复调用
func (s *Scope) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.sess = nil
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}

func failed(db *gorm.DB, ctx context.Context, err error) *gorm.DB {
	tx := db.Session(&gorm.Session{NewDB: true, Context: ctx})
	_ = tx.AddError(err)
	return tx
}

// WithScope 将Scope注入Context
func WithScope(ctx context.Context, s *Scope) context.Context {
	return context.WithValue(ctx, scopeKey, s)
}

// ScopeFrom 从Context取出Scope
func ScopeFrom(ctx context.Context) (*Scope, bool) {
	s, ok := ctx.Value(scopeKey).(*Scope)
	return s, ok
}

// getDB 按优先级解析当前应使用的句柄:事务 → 请求Scope → 全局连接池
// 教学要点:Repository必须通过它取DB,才能参与事务和请求范围连接
func getDB(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	if s, ok := ScopeFrom(ctx); ok {
		return s.DB(ctx)
	}
	return fallback.WithContext(ctx)
}
