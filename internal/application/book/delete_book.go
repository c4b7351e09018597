package book

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookhub/internal/domain/book"
	"github.com/xiebiao/bookhub/internal/domain/genre"
	"github.com/xiebiao/bookhub/pkg/tracing"
)

// DeleteBookUseCase 删除图书
// 章节、段落、评论、点赞、收藏、分类关联在同一事务中一并删除(见仓储实现)
// 不幂等:第二次删除返回ErrBookNotFound
type DeleteBookUseCase struct {
	bookRepo book.Repository
	cache    genre.UsageCache
}

// NewDeleteBookUseCase 创建用例
func NewDeleteBookUseCase(bookRepo book.Repository, cache genre.UsageCache) *DeleteBookUseCase {
	return &DeleteBookUseCase{
		bookRepo: bookRepo,
		cache:    cache,
	}
}

func (uc *DeleteBookUseCase) Execute(ctx context.Context, bookID int64) (err error) {
	ctx, span := tracing.StartSpan(ctx, "book.Delete")
	span.SetAttributes(attribute.Int64("book.id", bookID))
	defer func() { tracing.EndSpan(span, err) }()

	if err := uc.bookRepo.Delete(ctx, bookID); err != nil {
		return err
	}
	invalidateUsageCache(ctx, uc.cache)
	return nil
}
