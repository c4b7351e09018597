package book

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookhub/internal/application/view"
	"github.com/xiebiao/bookhub/internal/domain/book"
	"github.com/xiebiao/bookhub/pkg/tracing"
)

// PublishBookUseCase 发布/下架图书
// 幂等:重复设置相同状态视为成功
type PublishBookUseCase struct {
	bookRepo  book.Repository
	assembler *view.Assembler
}

// NewPublishBookUseCase 创建用例
func NewPublishBookUseCase(bookRepo book.Repository, assembler *view.Assembler) *PublishBookUseCase {
	return &PublishBookUseCase{
		bookRepo:  bookRepo,
		assembler: assembler,
	}
}

// Execute 设置发布状态,返回更新后的图书
func (uc *PublishBookUseCase) Execute(ctx context.Context, bookID int64, published bool) (resp *view.Book, err error) {
	ctx, span := tracing.StartSpan(ctx, "book.Publish")
	span.SetAttributes(attribute.Int64("book.id", bookID), attribute.Bool("book.published", published))
	defer func() { tracing.EndSpan(span, err) }()

	b, err := uc.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if b.Published != published {
		if err := uc.bookRepo.SetPublished(ctx, bookID, published); err != nil {
			return nil, err
		}
		b.Published = published
	}
	return uc.assembler.Book(ctx, b)
}
