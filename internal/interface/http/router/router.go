// Package router 组装gin引擎:全局中间件、业务路由和基础设施路由
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"

	_ "github.com/xiebiao/bookhub/docs" // 注册swagger文档
	"github.com/xiebiao/bookhub/internal/infrastructure/config"
	"github.com/xiebiao/bookhub/internal/interface/http/handler"
	"github.com/xiebiao/bookhub/internal/interface/http/middleware"
	"github.com/xiebiao/bookhub/internal/interface/http/validation"
)

// Handlers 所有业务处理器
type Handlers struct {
	Books    *handler.BookHandler
	Chapters *handler.ChapterHandler
	Comments *handler.CommentHandler
	Genres   *handler.GenreHandler
}

// New 创建并配置Gin引擎
//
// 注意路由顺序无关:gin的前缀树里静态段(genres、search、chapters...)优先于:bookId
func New(cfg *config.Config, log *zap.Logger, auth *middleware.AuthMiddleware, h Handlers) *gin.Engine {
	switch cfg.Server.Mode {
	case gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Server.Mode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	validation.Register()

	r := gin.New()
	r.Use(gin.Recovery())
	// otelgin在RequestLogger之前,请求日志才能带上trace_id
	if cfg.Tracing.Enabled {
		r.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}
	r.Use(
		middleware.RequestLogger(log),
		middleware.CORS(cfg.CORS.AllowOrigins),
	)
	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics())
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.GET("/health", handler.Health(cfg.Tracing.ServiceName))

	// 生产环境不暴露API文档
	if gin.Mode() != gin.ReleaseMode {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	books := r.Group("/api/v1/books", auth.OptionalAuth())
	{
		books.GET("/genres", h.Genres.ByUsage)
		books.POST("/genres", h.Genres.Create)

		books.GET("", h.Books.ListPublished)
		books.POST("", h.Books.Create)
		books.GET("/search", h.Books.Search)
		books.GET("/user/:userId/favorites", h.Books.Favorites)
		books.GET("/user/:userId/writing", h.Books.Writing)
		books.GET("/:bookId", h.Books.Get)
		books.PATCH("/:bookId", h.Books.Update)
		books.PATCH("/:bookId/publish", h.Books.Publish)
		books.DELETE("/:bookId", h.Books.Delete)

		books.POST("/:bookId/chapters", h.Chapters.Create)
		books.GET("/chapters/:chapterId", h.Chapters.Get)
		books.POST("/chapters/:chapterId/content", h.Chapters.AppendContent)
		books.PATCH("/chapters/:chapterId/publish", h.Chapters.Publish)
		books.DELETE("/chapters/:chapterId", h.Chapters.Delete)

		books.POST("/:bookId/comments", h.Comments.CreateBookComment)
		books.POST("/chapters/:chapterId/comments", h.Comments.CreateChapterComment)
		books.DELETE("/comments/:commentId", h.Comments.DeleteBookComment)
		books.DELETE("/chapter-comments/:commentId", h.Comments.DeleteChapterComment)
	}

	return r
}
