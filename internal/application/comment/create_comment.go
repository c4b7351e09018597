package comment

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookhub/internal/application/view"
	"github.com/xiebiao/bookhub/internal/domain/book"
	"github.com/xiebiao/bookhub/internal/domain/chapter"
	"github.com/xiebiao/bookhub/internal/domain/comment"
	"github.com/xiebiao/bookhub/internal/domain/user"
	apperrors "github.com/xiebiao/bookhub/pkg/errors"
	"github.com/xiebiao/bookhub/pkg/tracing"
)

// CreateCommentUseCase 发表图书评论/章节评论
type CreateCommentUseCase struct {
	bookRepo    book.Repository
	chapterRepo chapter.Repository
	userRepo    user.Repository
	commentRepo comment.Repository
	assembler   *view.Assembler
}

// NewCreateCommentUseCase 创建用例
func NewCreateCommentUseCase(
	bookRepo book.Repository,
	chapterRepo chapter.Repository,
	userRepo user.Repository,
	commentRepo comment.Repository,
	assembler *view.Assembler,
) *CreateCommentUseCase {
	return &CreateCommentUseCase{
		bookRepo:    bookRepo,
		chapterRepo: chapterRepo,
		userRepo:    userRepo,
		commentRepo: commentRepo,
		assembler:   assembler,
	}
}

// CreateCommentRequest 评论请求
type CreateCommentRequest struct {
	Target   comment.Target
	TargetID int64
	UserID   int64
	Body     string
}

// Execute 评论对象或用户不存在时返回ReferenceNotFound
func (uc *CreateCommentUseCase) Execute(ctx context.Context, req CreateCommentRequest) (resp *view.Comment, err error) {
	ctx, span := tracing.StartSpan(ctx, "comment.Create")
	span.SetAttributes(
		attribute.String("comment.target", req.Target.String()),
		attribute.Int64("comment.target_id", req.TargetID),
	)
	defer func() { tracing.EndSpan(span, err) }()

	if err := uc.checkTarget(ctx, req.Target, req.TargetID); err != nil {
		return nil, err
	}

	exists, err := uc.userRepo.Exists(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, user.ErrUserNotFound
	}

	c := comment.NewComment(req.Target, req.TargetID, req.UserID, req.Body)
	if err := uc.commentRepo.Create(ctx, c); err != nil {
		return nil, err
	}

	views, err := uc.assembler.Comments(ctx, []*comment.Comment{c})
	if err != nil {
		return nil, err
	}
	return &views[0], nil
}

func (uc *CreateCommentUseCase) checkTarget(ctx context.Context, target comment.Target, targetID int64) error {
	switch target {
	case comment.TargetBook:
		exists, err := uc.bookRepo.Exists(ctx, targetID)
		if err != nil {
			return err
		}
		if !exists {
			return book.ErrBookReferenceNotFound
		}
		return nil
	case comment.TargetChapter:
		_, err := uc.chapterRepo.FindByID(ctx, targetID)
		if errors.Is(err, chapter.ErrChapterNotFound) {
			return chapter.ErrChapterReferenceNotFound
		}
		return err
	default:
		return apperrors.Wrapf(nil, "未知的评论对象: %s", target)
	}
}
