package chapter

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookhub/internal/application/view"
	"github.com/xiebiao/bookhub/internal/domain/book"
	"github.com/xiebiao/bookhub/internal/domain/chapter"
	"github.com/xiebiao/bookhub/pkg/tracing"
)

// CreateChapterUseCase 为图书创建空章节(未发布)
type CreateChapterUseCase struct {
	bookRepo    book.Repository
	chapterRepo chapter.Repository
	assembler   *view.Assembler
}

// NewCreateChapterUseCase 创建用例
func NewCreateChapterUseCase(bookRepo book.Repository, chapterRepo chapter.Repository, assembler *view.Assembler) *CreateChapterUseCase {
	return &CreateChapterUseCase{
		bookRepo:    bookRepo,
		chapterRepo: chapterRepo,
		assembler:   assembler,
	}
}

// Execute 图书不存在返回ErrBookReferenceNotFound
func (uc *CreateChapterUseCase) Execute(ctx context.Context, bookID int64, title string) (resp *view.Chapter, err error) {
	ctx, span := tracing.StartSpan(ctx, "chapter.Create")
	span.SetAttributes(attribute.Int64("book.id", bookID))
	defer func() { tracing.EndSpan(span, err) }()

	b, err := uc.bookRepo.FindByID(ctx, bookID)
	if errors.Is(err, book.ErrBookNotFound) {
		return nil, book.ErrBookReferenceNotFound
	}
	if err != nil {
		return nil, err
	}

	c := chapter.NewChapter(bookID, title)
	if err := uc.chapterRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return uc.assembler.Chapter(ctx, c, b)
}
