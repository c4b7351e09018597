package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 所有方法都会优先使用ctx中的事务,可以被TxManager编排
type Repository interface {
	// Create 创建图书,回填ID和CreatedAt
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找图书,不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id int64) (*Book, error)

	// Exists 判断图书是否存在
	Exists(ctx context.Context, id int64) (bool, error)

	// Update 只更新changes中非nil的字段
	Update(ctx context.Context, id int64, changes Changes) error

	// SetPublished 设置发布状态(幂等)
	SetPublished(ctx context.Context, id int64, published bool) error

	// Delete 删除图书及其章节、段落、评论、收藏、分类关联
	// 不存在返回ErrBookNotFound
	Delete(ctx context.Context, id int64) error

	// ListPublished 已发布图书,按创建时间倒序
	ListPublished(ctx context.Context) ([]*Book, error)

	// Search 按标题/简介模糊搜索已发布图书
	Search(ctx context.Context, query string) ([]*Book, error)

	// ListByAuthor 某用户创作的图书,按创建时间倒序
	ListByAuthor(ctx context.Context, authorID int64) ([]*Book, error)

	// ListLikedBy 某用户收藏的图书
	ListLikedBy(ctx context.Context, userID int64) ([]*Book, error)

	// LikedAmong 返回bookIDs中被userID收藏的图书集合
	LikedAmong(ctx context.Context, userID int64, bookIDs []int64) (map[int64]bool, error)
}
