package store

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
)

// MemoryDSN SQLite内存库(测试使用)
const MemoryDSN = ":memory:"

// NewDB 创建数据库连接
// 设计说明:
// 1. 使用GORM v2作为ORM框架,驱动由database.driver决定(sqlite | mysql)
// 2. 连接池参数只在配置值>0时生效;SQLite内存库强制单连接(多连接会各自拥有独立的空库)
// 3. 开发环境开启SQL日志,生产环境关闭
// 4. 启动时自动迁移books、reviews表
//
// 返回的cleanup用于关闭底层*sql.DB(配合wire的清理函数)
func NewDB(cfg *config.Config, log *zap.Logger) (*gorm.DB, func(), error) {
	// 1. 选择方言
	dialector, err := openDialector(cfg.Database)
	if err != nil {
		return nil, nil, err
	}

	// 2. 配置GORM日志
	logLevel := logger.Silent
	if cfg.Server.Mode == "debug" {
		logLevel = logger.Info
	}

	// 3. 连接数据库
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:  logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	// 4. 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}
	if cfg.Database.Driver == config.DriverSQLite && cfg.Database.Path == MemoryDSN {
		sqlDB.SetMaxOpenConns(1)
	} else if cfg.Database.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	}
	if cfg.Database.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	}
	if cfg.Database.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)
	}

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			log.Warn("关闭数据库连接失败", zap.Error(err))
		}
	}

	// 5. 测试连接
	if err := sqlDB.Ping(); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	// 6. 自动迁移表结构
	if err := AutoMigrate(db); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("数据库迁移失败: %w", err)
	}

	log.Info("数据库连接成功", zap.String("driver", cfg.Database.Driver))
	return db, cleanup, nil
}

func openDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return sqlite.Open(cfg.Path), nil
	case config.DriverMySQL:
		return mysql.Open(cfg.DSN()), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %q", cfg.Driver)
	}
}

// AutoMigrate 自动迁移表结构
// 注意:AutoMigrate只会创建表、添加字段,不会删除或修改现有字段
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&BookModel{},
		&ReviewModel{},
	)
}

// BookModel GORM图书模型
// 设计说明:
// 1. 这是infrastructure层的数据模型,包含GORM tag;domain/book/entity.go不依赖GORM
// 2. 主键列名为book_id(与对外JSON字段一致)
// 3. 不使用软删除:删除后GET必须返回404
type BookModel struct {
	BookID    uint      `gorm:"column:book_id;primaryKey;autoIncrement"`
	Title     string    `gorm:"size:255;not null"`
	Author    string    `gorm:"size:255;not null;index"`
	Summary   string    `gorm:"type:text"`
	Genre     string    `gorm:"size:100;not null;default:''"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
	UpdatedAt time.Time `gorm:"comment:更新时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// ReviewModel GORM评论模型
// book_id只建索引不建外键:允许评论指向不存在的图书,读接口用LEFT JOIN容忍
type ReviewModel struct {
	ReviewID    uint      `gorm:"column:review_id;primaryKey;autoIncrement"`
	BookID      uint      `gorm:"column:book_id;not null;index"`
	ReviewText  string    `gorm:"type:text;not null"`
	ReviewScore float64   `gorm:"not null"`
	CreatedAt   time.Time `gorm:"comment:创建时间"`
}

// TableName 指定表名
func (ReviewModel) TableName() string {
	return "reviews"
}
