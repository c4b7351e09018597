// Package view 用例的输出DTO
//
// 所有ID字段都是idcodec.ID,在response.Success序列化时统一编码为字符串
// 时间字段按RFC3339输出
package view

import (
	"time"

	"github.com/xiebiao/bookhub/pkg/idcodec"
)

// Author 作者/评论用户的展示信息
type Author struct {
	Username       string  `json:"username"`
	ProfilePicture *string `json:"profilePicture"`
}

// AuthorName 章节中只展示作者用户名
type AuthorName struct {
	Username string `json:"username"`
}

// Genre 分类
type Genre struct {
	ID   idcodec.ID `json:"id"`
	Name string     `json:"name"`
}

// GenreUsage 分类使用统计
type GenreUsage struct {
	ID         idcodec.ID `json:"id"`
	Name       string     `json:"name"`
	UsageCount int64      `json:"usage_count"`
	Percentage float64    `json:"percentage"`
}

// Book 图书详情(含作者和分类)
type Book struct {
	ID          idcodec.ID `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	CoverImage  *string    `json:"coverImage"`
	Published   bool       `json:"published"`
	CreatedAt   time.Time  `json:"createdAt"`
	AuthorID    idcodec.ID `json:"authorId"`
	Author      *Author    `json:"author"`
	Genres      []Genre    `json:"genres"`
}

// ChapterSummary 图书详情中的章节
type ChapterSummary struct {
	ID        idcodec.ID `json:"id"`
	Title     string     `json:"title"`
	Published bool       `json:"published"`
	CreatedAt time.Time  `json:"createdAt"`
	IsLiked   bool       `json:"isLiked"`
}

// Comment 评论(含评论用户)
type Comment struct {
	ID        idcodec.ID `json:"id"`
	Comment   string     `json:"comment"`
	CreatedAt time.Time  `json:"createdAt"`
	UserID    idcodec.ID `json:"userId"`
	User      *Author    `json:"user"`
}

// BookWithChapters 图书阅读页
type BookWithChapters struct {
	Book
	Chapters []ChapterSummary `json:"chapters"`
	Comments []Comment        `json:"comments"`
}

// BookRef 章节所属图书
type BookRef struct {
	Title  string      `json:"title"`
	Author *AuthorName `json:"author"`
}

// Chapter 章节(含所属图书)
type Chapter struct {
	ID        idcodec.ID `json:"id"`
	Title     string     `json:"title"`
	Published bool       `json:"published"`
	CreatedAt time.Time  `json:"createdAt"`
	BookID    idcodec.ID `json:"bookId"`
	Book      BookRef    `json:"book"`
}

// Paragraph 段落
type Paragraph struct {
	ID              idcodec.ID `json:"id"`
	ParagraphNumber int        `json:"paragraphNumber"`
	Content         string     `json:"content"`
}

// ChapterWithContent 章节阅读页
type ChapterWithContent struct {
	Chapter
	Paragraphs []Paragraph `json:"paragraphs"`
	Comments   []Comment   `json:"comments"`
}

// BookListItem 已发布图书列表项
// Genre是分类ID最小的分类名,没有分类时为"none"
type BookListItem struct {
	ID         idcodec.ID `json:"id"`
	Title      string     `json:"title"`
	CoverImage *string    `json:"coverImage"`
	Genre      string     `json:"genre"`
}

// SearchResult 搜索结果
type SearchResult struct {
	ID          idcodec.ID `json:"id"`
	Title       string     `json:"title"`
	Description *string    `json:"description"`
	CoverImage  *string    `json:"coverImage"`
	Genres      []Genre    `json:"genres"`
	IsFav       bool       `json:"isFav"`
}

// Deleted 删除操作的响应
type Deleted struct {
	Success bool `json:"success"`
}
