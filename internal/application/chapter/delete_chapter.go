package chapter

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookhub/internal/domain/chapter"
	"github.com/xiebiao/bookhub/pkg/tracing"
)

// DeleteChapterUseCase 删除章节及其段落、评论、点赞
type DeleteChapterUseCase struct {
	chapterRepo chapter.Repository
}

func NewDeleteChapterUseCase(chapterRepo chapter.Repository) *DeleteChapterUseCase {
	return &DeleteChapterUseCase{chapterRepo: chapterRepo}
}

func (uc *DeleteChapterUseCase) Execute(ctx context.Context, chapterID int64) (err error) {
	ctx, span := tracing.StartSpan(ctx, "chapter.Delete")
	span.SetAttributes(attribute.Int64("chapter.id", chapterID))
	defer func() { tracing.EndSpan(span, err) }()

	return uc.chapterRepo.Delete(ctx, chapterID)
}
