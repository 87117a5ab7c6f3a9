//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 修改Provider后运行 `wire gen ./cmd/api` 重新生成wire_gen.go。
// 配置与日志在main中先行创建(日志要在注入前就可用),作为Injector参数传入。

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"go.uber.org/zap"

	appauthor "github.com/xiebiao/bookcatalog/internal/application/author"
	appbook "github.com/xiebiao/bookcatalog/internal/application/book"
	appreview "github.com/xiebiao/bookcatalog/internal/application/review"
	"github.com/xiebiao/bookcatalog/internal/domain/author"
	"github.com/xiebiao/bookcatalog/internal/domain/book"
	"github.com/xiebiao/bookcatalog/internal/domain/review"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/config"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/external"
	"github.com/xiebiao/bookcatalog/internal/infrastructure/persistence/store"
	"github.com/xiebiao/bookcatalog/internal/interface/http/handler"
	"github.com/xiebiao/bookcatalog/internal/interface/http/router"
)

// infrastructureSet 基础设施层依赖
// 包含:数据库连接、事务管理器、外部API客户端、事件发布者
var infrastructureSet = wire.NewSet(
	store.NewDB,
	store.NewTxManager,
	external.NewHTTPClient,
	external.NewOpenLibraryClient,
	external.NewWikipediaClient,
	wire.Bind(new(author.WorkSearcher), new(*external.OpenLibraryClient)),
	wire.Bind(new(author.SummaryFetcher), new(*external.WikipediaClient)),
	provideEventPublisher,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	store.NewBookRepository,
	store.NewReviewRepository,
)

// domainSet 领域层依赖
var domainSet = wire.NewSet(
	book.NewService,
	review.NewService,
	author.NewService,
)

// applicationSet 应用层依赖
var applicationSet = wire.NewSet(
	provideEmitter,
	appbook.NewAddBookUseCase,
	appbook.NewListBooksUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewDeleteBookUseCase,
	appbook.NewTopBooksUseCase,
	appreview.NewAddReviewUseCase,
	appreview.NewListReviewsUseCase,
	appreview.NewListBookReviewsUseCase,
	appauthor.NewGetAuthorInfoUseCase,
)

// handlerSet HTTP处理器与路由
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewReviewHandler,
	handler.NewAuthorHandler,
	wire.Struct(new(router.Handlers), "*"),
	router.New,
)

// InitializeApp 初始化整个应用
// 返回:配置好的Gin引擎,以及关闭数据库与MQ连接的cleanup
func InitializeApp(cfg *config.Config, logger *zap.Logger) (*gin.Engine, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		domainSet,
		applicationSet,
		handlerSet,
	)
	return nil, nil, nil
}
