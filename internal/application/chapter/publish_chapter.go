package chapter

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookhub/internal/application/view"
	"github.com/xiebiao/bookhub/internal/domain/book"
	"github.com/xiebiao/bookhub/internal/domain/chapter"
	"github.com/xiebiao/bookhub/internal/domain/notification"
	"github.com/xiebiao/bookhub/pkg/metrics"
	"github.com/xiebiao/bookhub/pkg/tracing"
)

// PublishChapterUseCase 发布/取消发布章节
// 幂等;published=true时通知图书的关注者
type PublishChapterUseCase struct {
	bookRepo    book.Repository
	chapterRepo chapter.Repository
	assembler   *view.Assembler
	publisher   notification.Publisher
}

// NewPublishChapterUseCase 创建用例
func NewPublishChapterUseCase(
	bookRepo book.Repository,
	chapterRepo chapter.Repository,
	assembler *view.Assembler,
	publisher notification.Publisher,
) *PublishChapterUseCase {
	return &PublishChapterUseCase{
		bookRepo:    bookRepo,
		chapterRepo: chapterRepo,
		assembler:   assembler,
		publisher:   publisher,
	}
}

func (uc *PublishChapterUseCase) Execute(ctx context.Context, chapterID int64, published bool) (resp *view.Chapter, err error) {
	ctx, span := tracing.StartSpan(ctx, "chapter.Publish")
	span.SetAttributes(attribute.Int64("chapter.id", chapterID), attribute.Bool("chapter.published", published))
	defer func() { tracing.EndSpan(span, err) }()

	c, err := uc.chapterRepo.FindByID(ctx, chapterID)
	if err != nil {
		return nil, err
	}
	if c.Published != published {
		if err := uc.chapterRepo.SetPublished(ctx, chapterID, published); err != nil {
			return nil, err
		}
		c.Published = published
	}

	b, err := uc.bookRepo.FindByID(ctx, c.BookID)
	if err != nil {
		return nil, err
	}

	if published {
		metrics.IncCounter(metrics.ChaptersPublishedTotal)
		uc.publisher.Publish(notification.NewChapterPublished(c.BookID, c.Title))
	}
	return uc.assembler.Chapter(ctx, c, b)
}
