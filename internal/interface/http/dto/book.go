// Package dto HTTP请求体
// 校验规则写在binding tag中,由gin调用validator执行;ID字段统一使用idcodec.ID
package dto

import (
	"github.com/xiebiao/bookhub/pkg/idcodec"
)

// CreateBookRequest 创建图书
type CreateBookRequest struct {
	Title       string       `json:"title" binding:"required,min=3,max=255" example:"Dune"`
	Description string       `json:"description" binding:"required,min=10,max=1000" example:"A story set on the desert planet Arrakis"`
	CoverImage  *string      `json:"coverImage" binding:"omitnil,url" example:"https://example.com/dune.jpg"`
	AuthorID    idcodec.ID   `json:"authorId" binding:"required,min=1" swaggertype:"string" example:"1"`
	GenreIDs    []idcodec.ID `json:"genreIds" binding:"omitempty,dive,min=1" swaggertype:"array,string"`
	NewGenres   []string     `json:"newGenres" binding:"omitempty,dive,min=2,max=50" example:"sci-fi"`
}

// UpdateBookRequest 部分更新图书
// 字段为null或缺省时保持原值
type UpdateBookRequest struct {
	Title       *string      `json:"title" binding:"omitnil,min=3,max=255"`
	Description *string      `json:"description" binding:"omitnil,min=10,max=1000"`
	CoverImage  *string      `json:"coverImage" binding:"omitnil,url"`
	GenreIDs    []idcodec.ID `json:"genreIds" binding:"omitempty,dive,min=1" swaggertype:"array,string"`
	NewGenres   []string     `json:"newGenres" binding:"omitempty,dive,min=2,max=50"`
}

// PublishRequest 发布/取消发布(图书和章节共用)
type PublishRequest struct {
	Published *bool `json:"published" binding:"required" example:"true"`
}

// CreateChapterRequest 创建章节
type CreateChapterRequest struct {
	Title string `json:"title" binding:"required,min=3,max=255" example:"Chapter 1"`
}

// AppendContentRequest 追加段落
type AppendContentRequest struct {
	Paragraphs []string `json:"paragraphs" binding:"required,min=1,dive,min=10"`
}

// CreateCommentRequest 发表评论(图书和章节共用)
type CreateCommentRequest struct {
	UserID  idcodec.ID `json:"userId" binding:"required,min=1" swaggertype:"string" example:"2"`
	Comment string     `json:"comment" binding:"required,min=3,max=1000" example:"Loved it"`
}

// CreateGenresRequest 批量创建分类
type CreateGenresRequest struct {
	Name []string `json:"name" binding:"required,min=1,dive,min=2,max=50" example:"fantasy"`
}
