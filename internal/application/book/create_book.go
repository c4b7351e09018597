package book

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookhub/internal/application/view"
	"github.com/xiebiao/bookhub/internal/domain/book"
	"github.com/xiebiao/bookhub/internal/domain/genre"
	"github.com/xiebiao/bookhub/internal/domain/notification"
	"github.com/xiebiao/bookhub/internal/domain/user"
	"github.com/xiebiao/bookhub/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookhub/pkg/metrics"
	"github.com/xiebiao/bookhub/pkg/tracing"
)

// CreateBookUseCase 创建图书用例
// 流程:
//  1. 校验作者、分类ID存在(任何写入之前)
//  2. 事务:创建/复用新分类 → 插入图书 → 插入图书分类关联
//  3. 提交后:通知作者的关注者,删除分类统计缓存
type CreateBookUseCase struct {
	bookRepo  book.Repository
	userRepo  user.Repository
	genreRepo genre.Repository
	txManager *mysql.TxManager
	assembler *view.Assembler
	publisher notification.Publisher
	cache     genre.UsageCache
}

// NewCreateBookUseCase 创建用例
func NewCreateBookUseCase(
	bookRepo book.Repository,
	userRepo user.Repository,
	genreRepo genre.Repository,
	txManager *mysql.TxManager,
	assembler *view.Assembler,
	publisher notification.Publisher,
	cache genre.UsageCache,
) *CreateBookUseCase {
	return &CreateBookUseCase{
		bookRepo:  bookRepo,
		userRepo:  userRepo,
		genreRepo: genreRepo,
		txManager: txManager,
		assembler: assembler,
		publisher: publisher,
		cache:     cache,
	}
}

// CreateBookRequest 创建图书请求
type CreateBookRequest struct {
	Title       string
	Description *string
	CoverImage  *string
	AuthorID    int64
	GenreIDs    []int64  // 已有分类
	NewGenres   []string // 新分类名,按规范化名称复用
}

// Execute 执行创建
func (uc *CreateBookUseCase) Execute(ctx context.Context, req CreateBookRequest) (resp *view.Book, err error) {
	ctx, span := tracing.StartSpan(ctx, "book.Create")
	defer func() { tracing.EndSpan(span, err) }()

	exists, err := uc.userRepo.Exists(ctx, req.AuthorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, user.ErrAuthorNotFound
	}
	if err := checkGenreIDs(ctx, uc.genreRepo, req.GenreIDs); err != nil {
		return nil, err
	}

	b := book.NewBook(req.Title, req.Description, req.CoverImage, req.AuthorID)
	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		genreIDs, err := resolveGenres(ctx, uc.genreRepo, req.GenreIDs, req.NewGenres)
		if err != nil {
			return err
		}
		if err := uc.bookRepo.Create(ctx, b); err != nil {
			return err
		}
		if len(genreIDs) == 0 {
			return nil
		}
		return uc.genreRepo.AddBookGenres(ctx, b.ID, genreIDs)
	})
	if err != nil {
		return nil, err
	}

	span.SetAttributes(attribute.Int64("book.id", b.ID))
	metrics.IncCounter(metrics.BooksCreatedTotal)
	uc.publisher.Publish(notification.NewBookCreated(b.AuthorID, b.ID, b.Title))
	invalidateUsageCache(ctx, uc.cache)

	return uc.assembler.Book(ctx, b)
}
