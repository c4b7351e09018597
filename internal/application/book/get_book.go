package book

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"

	"github.com/xiebiao/bookhub/internal/application/view"
	"github.com/xiebiao/bookhub/internal/domain/book"
	"github.com/xiebiao/bookhub/internal/domain/chapter"
	"github.com/xiebiao/bookhub/internal/domain/comment"
	"github.com/xiebiao/bookhub/pkg/idcodec"
	"github.com/xiebiao/bookhub/pkg/tracing"
)

// likeCheckLimit 并发查询章节点赞状态的上限
const likeCheckLimit = 8

// GetBookUseCase 图书阅读页
// 组装:图书 + 作者 + 分类 + 章节(含当前用户点赞状态) + 评论(含评论用户)
type GetBookUseCase struct {
	bookRepo    book.Repository
	chapterRepo chapter.Repository
	commentRepo comment.Repository
	assembler   *view.Assembler
}

// NewGetBookUseCase 创建用例
func NewGetBookUseCase(
	bookRepo book.Repository,
	chapterRepo chapter.Repository,
	commentRepo comment.Repository,
	assembler *view.Assembler,
) *GetBookUseCase {
	return &GetBookUseCase{
		bookRepo:    bookRepo,
		chapterRepo: chapterRepo,
		commentRepo: commentRepo,
		assembler:   assembler,
	}
}

// Execute 查询图书详情
// 作者能看到全部章节,其他人只能看到已发布章节
// 任意一个子查询失败整个读取失败,不返回部分结果
func (uc *GetBookUseCase) Execute(ctx context.Context, bookID, viewerID int64) (resp *view.BookWithChapters, err error) {
	ctx, span := tracing.StartSpan(ctx, "book.Get")
	span.SetAttributes(attribute.Int64("book.id", bookID))
	defer func() { tracing.EndSpan(span, err) }()

	b, err := uc.bookRepo.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}

	chapters, err := uc.chapterRepo.ListByBook(ctx, bookID, b.IsAuthor(viewerID))
	if err != nil {
		return nil, err
	}
	summaries, err := uc.chapterSummaries(ctx, chapters, viewerID)
	if err != nil {
		return nil, err
	}

	comments, err := uc.commentRepo.ListByTarget(ctx, comment.TargetBook, bookID)
	if err != nil {
		return nil, err
	}
	commentViews, err := uc.assembler.Comments(ctx, comments)
	if err != nil {
		return nil, err
	}

	bookView, err := uc.assembler.Book(ctx, b)
	if err != nil {
		return nil, err
	}

	return &view.BookWithChapters{
		Book:     *bookView,
		Chapters: summaries,
		Comments: commentViews,
	}, nil
}

// chapterSummaries 并发查询每个章节的点赞状态
// 第一个错误会取消其余查询
func (uc *GetBookUseCase) chapterSummaries(ctx context.Context, chapters []*chapter.Chapter, viewerID int64) ([]view.ChapterSummary, error) {
	summaries := make([]view.ChapterSummary, len(chapters))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(likeCheckLimit)
	for i, c := range chapters {
		summaries[i] = view.ChapterSummary{
			ID:        idcodec.ID(c.ID),
			Title:     c.Title,
			Published: c.Published,
			CreatedAt: c.CreatedAt,
		}
		g.Go(func() error {
			liked, err := uc.chapterRepo.IsLiked(gctx, c.ID, viewerID)
			if err != nil {
				return err
			}
			summaries[i].IsLiked = liked
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return summaries, nil
}
