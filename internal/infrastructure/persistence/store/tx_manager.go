package store

import (
	"context"

	"gorm.io/gorm"
)

// TxManager 事务管理器
// 教学要点:
// 1. 封装GORM的Transaction方法
// 2. 通过context传递事务DB(避免全局变量)
// 3. 在请求Scope内开启时,事务运行在该请求的专用连接上
// 4. 支持嵌套事务(GORM自动使用Savepoint)
type TxManager struct {
	db *gorm.DB
}

// NewTxManager 创建事务管理器
func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// Transaction 执行事务
// fn返回error时自动ROLLBACK,返回nil时自动COMMIT
//
// 使用示例:
//
//	err := txManager.Transaction(ctx, func(ctx context.Context) error {
//	    if err := bookService.EnsureExists(ctx, id); err != nil {
//	        return err
//	    }
//	    if _, err := reviewService.RemoveBookReviews(ctx, id); err != nil {
//	        return err // 自动回滚
//	    }
//	    return bookService.DeleteBook(ctx, id)
//	})
func (m *TxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return getDB(ctx, m.db).Transaction(func(tx *gorm.DB) error {
		// Repository的getDB会从context提取事务DB
		return fn(context.WithValue(ctx, txKey, tx))
	})
}
