package book

import (
	"strings"
	"time"
)

// Book 图书实体(聚合根)
// DDD设计说明:
// 1. Book拥有章节、评论、收藏记录,删除图书时一并删除
// 2. 作者是外部用户服务的实体,这里只保存AuthorID
// 3. 新建图书一定是未发布状态,只有显式的发布操作才能修改Published
type Book struct {
	ID          int64
	Title       string
	Description *string // 可为空
	CoverImage  *string // 封面图URL,可为空
	Published   bool
	AuthorID    int64
	CreatedAt   time.Time
}

// NewBook 创建新图书(工厂方法)
func NewBook(title string, description, coverImage *string, authorID int64) *Book {
	return &Book{
		Title:       strings.TrimSpace(title),
		Description: description,
		CoverImage:  coverImage,
		Published:   false,
		AuthorID:    authorID,
	}
}

// IsAuthor 判断viewer是否为作者
// viewerID为0表示匿名访问
func (b *Book) IsAuthor(viewerID int64) bool {
	return viewerID != 0 && b.AuthorID == viewerID
}

// Changes 部分更新字段
// nil表示请求中没有该字段,保持原值不变(不是置空)
type Changes struct {
	Title       *string
	Description *string
	CoverImage  *string
}

// IsEmpty 没有任何字段需要更新
func (c Changes) IsEmpty() bool {
	return c.Title == nil && c.Description == nil && c.CoverImage == nil
}

// Apply 将变更应用到实体
func (c Changes) Apply(b *Book) {
	if c.Title != nil {
		b.Title = strings.TrimSpace(*c.Title)
	}
	if c.Description != nil {
		b.Description = c.Description
	}
	if c.CoverImage != nil {
		b.CoverImage = c.CoverImage
	}
}
