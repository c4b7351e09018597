//go:build wireinject
// +build wireinject

// Wire依赖注入配置文件
//
// 工作流程：
// Step 1: 编写wire.go（本文件），定义Providers和Injector
// Step 2: 运行 `wire gen ./cmd/api`
// Step 3: Wire生成wire_gen.go，包含完整的依赖创建代码
// Step 4: main.go调用wire_gen.go中的InitializeApp()

package main

import (
	"github.com/gin-gonic/gin"
	"github.com/google/wire"
	"go.uber.org/zap"

	appbook "github.com/xiebiao/bookhub/internal/application/book"
	appchapter "github.com/xiebiao/bookhub/internal/application/chapter"
	appcomment "github.com/xiebiao/bookhub/internal/application/comment"
	appgenre "github.com/xiebiao/bookhub/internal/application/genre"
	"github.com/xiebiao/bookhub/internal/application/view"
	"github.com/xiebiao/bookhub/internal/infrastructure/config"
	"github.com/xiebiao/bookhub/internal/infrastructure/notify"
	"github.com/xiebiao/bookhub/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookhub/internal/infrastructure/persistence/redis"
	"github.com/xiebiao/bookhub/internal/interface/http/handler"
	"github.com/xiebiao/bookhub/internal/interface/http/middleware"
	"github.com/xiebiao/bookhub/internal/interface/http/router"
)

// infrastructureSet 基础设施层依赖
// 包含：数据库连接、Redis连接、分类统计缓存、通知投递
var infrastructureSet = wire.NewSet(
	mysql.NewDB,
	redis.NewClient,
	redis.NewGenreUsageCache,
	notify.NewSink,
	notify.NewPublisher,
)

// repositorySet 仓储层依赖
var repositorySet = wire.NewSet(
	mysql.NewUserRepository,
	mysql.NewBookRepository,
	mysql.NewChapterRepository,
	mysql.NewCommentRepository,
	mysql.NewGenreRepository,
	mysql.NewTxManager,
)

// applicationSet 应用层依赖
// 包含：所有Use Case的构造函数
var applicationSet = wire.NewSet(
	view.NewAssembler,

	appbook.NewListPublishedBooksUseCase,
	appbook.NewSearchBooksUseCase,
	appbook.NewCreateBookUseCase,
	appbook.NewGetBookUseCase,
	appbook.NewUpdateBookUseCase,
	appbook.NewPublishBookUseCase,
	appbook.NewDeleteBookUseCase,
	appbook.NewListFavoritesUseCase,
	appbook.NewListWritingUseCase,

	appchapter.NewCreateChapterUseCase,
	appchapter.NewGetChapterUseCase,
	appchapter.NewAppendContentUseCase,
	appchapter.NewPublishChapterUseCase,
	appchapter.NewDeleteChapterUseCase,

	appcomment.NewCreateCommentUseCase,
	appcomment.NewDeleteCommentUseCase,

	provideGenreUsageUseCase,
	appgenre.NewCreateGenresUseCase,
)

// middlewareSet 中间件依赖
var middlewareSet = wire.NewSet(
	provideJWTManager,
	middleware.NewAuthMiddleware,
)

// handlerSet HTTP处理器依赖
var handlerSet = wire.NewSet(
	handler.NewBookHandler,
	handler.NewChapterHandler,
	handler.NewCommentHandler,
	handler.NewGenreHandler,
	wire.Struct(new(router.Handlers), "*"),
)

// InitializeApp 初始化整个应用
// 返回：配置好的Gin引擎,以及按创建逆序释放资源的cleanup
func InitializeApp(cfg *config.Config, log *zap.Logger) (*gin.Engine, func(), error) {
	wire.Build(
		infrastructureSet,
		repositorySet,
		applicationSet,
		middlewareSet,
		handlerSet,
		router.New,
	)
	return nil, nil, nil
}
