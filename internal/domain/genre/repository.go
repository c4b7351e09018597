package genre

import (
	"context"
	"time"
)

// Repository 分类仓储接口
type Repository interface {
	// CreateOrGet 按规范化名称创建或复用分类,返回顺序与names一致
	// names必须已经过NormalizeNames处理
	CreateOrGet(ctx context.Context, names []string) ([]*Genre, error)

	// MissingIDs 返回ids中不存在的分类ID
	MissingIDs(ctx context.Context, ids []int64) ([]int64, error)

	// ListByBook 图书的分类
	ListByBook(ctx context.Context, bookID int64) ([]*Genre, error)

	// ListByBooks 批量查询多本图书的分类,按分类ID升序
	ListByBooks(ctx context.Context, bookIDs []int64) (map[int64][]*Genre, error)

	// AddBookGenres 为图书添加分类关联
	AddBookGenres(ctx context.Context, bookID int64, genreIDs []int64) error

	// ReplaceBookGenres 删除图书的全部分类关联后插入新集合
	ReplaceBookGenres(ctx context.Context, bookID int64, genreIDs []int64) error

	// UsageCounts 每个分类被引用的次数(包含0次)
	UsageCounts(ctx context.Context) ([]Count, error)
}

// UsageCache 分类统计缓存(cache-aside)
type UsageCache interface {
	// Get 命中返回true
	Get(ctx context.Context) ([]Usage, bool, error)
	Set(ctx context.Context, usages []Usage, ttl time.Duration) error
	Invalidate(ctx context.Context) error
}
