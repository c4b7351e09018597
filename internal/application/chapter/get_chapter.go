package chapter

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookhub/internal/application/view"
	"github.com/xiebiao/bookhub/internal/domain/book"
	"github.com/xiebiao/bookhub/internal/domain/chapter"
	"github.com/xiebiao/bookhub/internal/domain/comment"
	"github.com/xiebiao/bookhub/pkg/tracing"
)

// GetChapterUseCase 章节阅读页:章节 + 所属图书 + 段落 + 评论
// 不按发布状态过滤
type GetChapterUseCase struct {
	bookRepo    book.Repository
	chapterRepo chapter.Repository
	commentRepo comment.Repository
	assembler   *view.Assembler
}

// NewGetChapterUseCase 创建用例
func NewGetChapterUseCase(
	bookRepo book.Repository,
	chapterRepo chapter.Repository,
	commentRepo comment.Repository,
	assembler *view.Assembler,
) *GetChapterUseCase {
	return &GetChapterUseCase{
		bookRepo:    bookRepo,
		chapterRepo: chapterRepo,
		commentRepo: commentRepo,
		assembler:   assembler,
	}
}

func (uc *GetChapterUseCase) Execute(ctx context.Context, chapterID int64) (resp *view.ChapterWithContent, err error) {
	ctx, span := tracing.StartSpan(ctx, "chapter.Get")
	span.SetAttributes(attribute.Int64("chapter.id", chapterID))
	defer func() { tracing.EndSpan(span, err) }()

	c, err := uc.chapterRepo.FindByID(ctx, chapterID)
	if err != nil {
		return nil, err
	}
	b, err := uc.bookRepo.FindByID(ctx, c.BookID)
	if err != nil {
		return nil, err
	}
	chapterView, err := uc.assembler.Chapter(ctx, c, b)
	if err != nil {
		return nil, err
	}

	paragraphs, err := uc.chapterRepo.ListParagraphs(ctx, chapterID)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByTarget(ctx, comment.TargetChapter, chapterID)
	if err != nil {
		return nil, err
	}
	commentViews, err := uc.assembler.Comments(ctx, comments)
	if err != nil {
		return nil, err
	}

	return &view.ChapterWithContent{
		Chapter:    *chapterView,
		Paragraphs: view.NewParagraphs(paragraphs),
		Comments:   commentViews,
	}, nil
}
