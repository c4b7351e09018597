package book

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookhub/internal/application/view"
	"github.com/xiebiao/bookhub/internal/domain/book"
	"github.com/xiebiao/bookhub/internal/domain/genre"
	"github.com/xiebiao/bookhub/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookhub/pkg/tracing"
)

// UpdateBookUseCase 部分更新图书
type UpdateBookUseCase struct {
	bookRepo  book.Repository
	genreRepo genre.Repository
	txManager *mysql.TxManager
	assembler *view.Assembler
	cache     genre.UsageCache
}

// NewUpdateBookUseCase 创建用例
func NewUpdateBookUseCase(
	bookRepo book.Repository,
	genreRepo genre.Repository,
	txManager *mysql.TxManager,
	assembler *view.Assembler,
	cache genre.UsageCache,
) *UpdateBookUseCase {
	return &UpdateBookUseCase{
		bookRepo:  bookRepo,
		genreRepo: genreRepo,
		txManager: txManager,
		assembler: assembler,
		cache:     cache,
	}
}

// UpdateBookRequest 更新请求,nil字段保持原值
type UpdateBookRequest struct {
	BookID      int64
	Title       *string
	Description *string
	CoverImage  *string
	GenreIDs    []int64
	NewGenres   []string
}

// Execute 执行更新
// 分类规则:GenreIDs与NewGenres解析后的集合非空时,整体替换图书的分类;
// 集合为空(包括genreIds: [])时不修改分类
func (uc *UpdateBookUseCase) Execute(ctx context.Context, req UpdateBookRequest) (resp *view.Book, err error) {
	ctx, span := tracing.StartSpan(ctx, "book.Update")
	span.SetAttributes(attribute.Int64("book.id", req.BookID))
	defer func() { tracing.EndSpan(span, err) }()

	if _, err := uc.bookRepo.FindByID(ctx, req.BookID); err != nil {
		return nil, err
	}
	if err := checkGenreIDs(ctx, uc.genreRepo, req.GenreIDs); err != nil {
		return nil, err
	}

	changes := book.Changes{
		Title:       req.Title,
		Description: req.Description,
		CoverImage:  req.CoverImage,
	}
	genresTouched := false

	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		if !changes.IsEmpty() {
			if err := uc.bookRepo.Update(ctx, req.BookID, changes); err != nil {
				return err
			}
		}

		genreIDs, err := resolveGenres(ctx, uc.genreRepo, req.GenreIDs, req.NewGenres)
		if err != nil {
			return err
		}
		if len(genreIDs) == 0 {
			return nil
		}
		genresTouched = true
		return uc.genreRepo.ReplaceBookGenres(ctx, req.BookID, genreIDs)
	})
	if err != nil {
		return nil, err
	}

	if genresTouched {
		invalidateUsageCache(ctx, uc.cache)
	}

	b, err := uc.bookRepo.FindByID(ctx, req.BookID)
	if err != nil {
		return nil, err
	}
	return uc.assembler.Book(ctx, b)
}
