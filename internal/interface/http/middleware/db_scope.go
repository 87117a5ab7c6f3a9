package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/store"
)

// DBScope 请求范围的数据库连接
// 设计说明:
// 1. 每个请求创建一个store.Scope并注入request context,Repository通过context取连接
// 2. Scope第一次被使用时才从连接池取连接
// 3. defer保证请求结束(包括panic)时归还连接
func DBScope(db *gorm.DB, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope := store.NewScope(db)
		defer func() {
			if err := scope.Close(); err != nil {
				logger.Warn("归还数据库连接失败", zap.String("request_id", GetRequestID(c)), zap.Error(err))
			}
		}()

		c.Request = c.Request.WithContext(store.WithScope(c.Request.Context(), scope))
		c.Next()
	}
}
