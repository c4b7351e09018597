package comment

import (
	"context"
)

// Repository 评论仓储接口
// target决定读写哪张表(book_comments / chapter_comments)
type Repository interface {
	Create(ctx context.Context, comment *Comment) error

	// ListByTarget 按创建时间倒序(最新在前)
	ListByTarget(ctx context.Context, target Target, targetID int64) ([]*Comment, error)

	// Delete 不存在返回ErrCommentNotFound
	Delete(ctx context.Context, target Target, id int64) error
}
