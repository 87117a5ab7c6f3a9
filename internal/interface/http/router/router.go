// Package router 组装gin引擎:全局中间件、路由表、/metrics与/swagger
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/xiebiao/bookcatalog/docs" // swag生成的API文档
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/middleware"
	"github.com/xiebiao/bookcatalog/pkg/metrics"
)

// Handlers 路由用到的全部处理器
type Handlers struct {
	Book   *handler.BookHandler
	Review *handler.ReviewHandler
	Author *handler.AuthorHandler
}

// New 创建并配置Gin引擎
// 中间件执行顺序:Recovery → RequestID → RequestLogger → Tracing → Metrics → 路由匹配 → DBScope → RequestBody → Handler
func New(cfg *config.Config, logger *zap.Logger, db *gorm.DB, h Handlers) *gin.Engine {
	// 1. 运行模式
	if cfg.Server.Mode == gin.ReleaseMode || cfg.Server.Mode == gin.TestMode {
		gin.SetMode(cfg.Server.Mode)
	}

	r := gin.New()

	// 2. 全局中间件
	r.Use(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
	)
	if cfg.Tracing.Enabled {
		r.Use(middleware.Tracing())
	}
	if cfg.Metrics.Enabled {
		metrics.InitMetrics()
		r.Use(middleware.Metrics())
		r.GET(cfg.Metrics.Path, gin.WrapH(promhttp.Handler()))
	}

	// 3. 系统路由
	r.GET("/", handler.Home)
	r.GET("/ping", handler.Ping)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// 4. 需要数据库的路由:每个请求一个Scope
	body := middleware.RequestBody(logger)
	api := r.Group("", middleware.DBScope(db, logger))

	books := api.Group("/books")
	{
		books.GET("", h.Book.ListBooks)
		books.POST("", body, h.Book.AddBook)
		books.GET("/top", h.Book.TopBooks)
		books.GET("/:id", h.Book.GetBook)
		books.PUT("/:id", body, h.Book.UpdateBook)
		books.DELETE("/:id", h.Book.DeleteBook)
	}

	reviews := api.Group("/reviews")
	{
		reviews.GET("", h.Review.ListReviews)
		reviews.POST("", body, h.Review.AddReview)
		reviews.GET("/:book_id", h.Review.ListBookReviews)
	}

	// 5. 作者信息只访问外部API
	r.GET("/author", h.Author.GetAuthorInfo)

	return r
}
