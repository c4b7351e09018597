package comment

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookhub/internal/domain/comment"
	"github.com/xiebiao/bookhub/pkg/tracing"
)

// DeleteCommentUseCase 删除评论,不存在返回ErrCommentNotFound
type DeleteCommentUseCase struct {
	commentRepo comment.Repository
}

func NewDeleteCommentUseCase(commentRepo comment.Repository) *DeleteCommentUseCase {
	return &DeleteCommentUseCase{commentRepo: commentRepo}
}

func (uc *DeleteCommentUseCase) Execute(ctx context.Context, target comment.Target, commentID int64) (err error) {
	ctx, span := tracing.StartSpan(ctx, "comment.Delete")
	span.SetAttributes(
		attribute.String("comment.target", target.String()),
		attribute.Int64("comment.id", commentID),
	)
	defer func() { tracing.EndSpan(span, err) }()

	return uc.commentRepo.Delete(ctx, target, commentID)
}
