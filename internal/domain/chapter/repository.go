package chapter

import (
	"context"
)

// Repository 章节仓储接口
type Repository interface {
	Create(ctx context.Context, chapter *Chapter) error

	// FindByID 不存在返回ErrChapterNotFound
	FindByID(ctx context.Context, id int64) (*Chapter, error)

	// LockByID 悲观锁查询章节(SELECT ... FOR UPDATE)
	// 必须在事务中调用,用于串行化同一章节的段落追加
	LockByID(ctx context.Context, id int64) (*Chapter, error)

	// ListByBook 按创建时间升序
	// includeUnpublished=false时只返回已发布章节
	ListByBook(ctx context.Context, bookID int64, includeUnpublished bool) ([]*Chapter, error)

	SetPublished(ctx context.Context, id int64, published bool) error

	// Delete 删除章节及其段落、评论、点赞,不存在返回ErrChapterNotFound
	Delete(ctx context.Context, id int64) error

	// IsLiked 判断用户是否点赞了章节
	IsLiked(ctx context.Context, chapterID, userID int64) (bool, error)

	// MaxParagraphNumber 章节当前最大段落序号,没有段落返回0
	MaxParagraphNumber(ctx context.Context, chapterID int64) (int, error)

	// CreateParagraphs 批量插入段落,回填ID
	CreateParagraphs(ctx context.Context, paragraphs []*Paragraph) error

	// ListParagraphs 按序号升序
	ListParagraphs(ctx context.Context, chapterID int64) ([]*Paragraph, error)
}
