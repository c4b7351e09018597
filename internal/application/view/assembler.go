package view

import (
	"context"

	"github.com/xiebiao/bookhub/internal/domain/book"
	"github.com/xiebiao/bookhub/internal/domain/chapter"
	"github.com/xiebiao/bookhub/internal/domain/comment"
	"github.com/xiebiao/bookhub/internal/domain/genre"
	"github.com/xiebiao/bookhub/internal/domain/user"
	"github.com/xiebiao/bookhub/pkg/idcodec"
)

// Assembler 把实体组装成输出DTO
// 作者、评论用户、分类都批量查询,不会按条目逐个查库
type Assembler struct {
	userRepo  user.Repository
	genreRepo genre.Repository
}

// NewAssembler 创建组装器
func NewAssembler(userRepo user.Repository, genreRepo genre.Repository) *Assembler {
	return &Assembler{
		userRepo:  userRepo,
		genreRepo: genreRepo,
	}
}

// Book 单本图书
func (a *Assembler) Book(ctx context.Context, b *book.Book) (*Book, error) {
	books, err := a.Books(ctx, []*book.Book{b})
	if err != nil {
		return nil, err
	}
	return &books[0], nil
}

// Books 批量组装图书,保持输入顺序
func (a *Assembler) Books(ctx context.Context, books []*book.Book) ([]Book, error) {
	out := make([]Book, 0, len(books))
	if len(books) == 0 {
		return out, nil
	}

	bookIDs := make([]int64, len(books))
	authorIDs := make([]int64, len(books))
	for i, b := range books {
		bookIDs[i] = b.ID
		authorIDs[i] = b.AuthorID
	}

	authors, err := a.userRepo.FindByIDs(ctx, genre.UniqueIDs(authorIDs))
	if err != nil {
		return nil, err
	}
	genres, err := a.genreRepo.ListByBooks(ctx, bookIDs)
	if err != nil {
		return nil, err
	}

	for _, b := range books {
		out = append(out, Book{
			ID:          idcodec.ID(b.ID),
			Title:       b.Title,
			Description: b.Description,
			CoverImage:  b.CoverImage,
			Published:   b.Published,
			CreatedAt:   b.CreatedAt,
			AuthorID:    idcodec.ID(b.AuthorID),
			Author:      NewAuthor(authors[b.AuthorID]),
			Genres:      NewGenres(genres[b.ID]),
		})
	}
	return out, nil
}

// Comments 批量组装评论,附带评论用户信息
func (a *Assembler) Comments(ctx context.Context, comments []*comment.Comment) ([]Comment, error) {
	out := make([]Comment, 0, len(comments))
	if len(comments) == 0 {
		return out, nil
	}

	userIDs := make([]int64, len(comments))
	for i, c := range comments {
		userIDs[i] = c.UserID
	}
	users, err := a.userRepo.FindByIDs(ctx, genre.UniqueIDs(userIDs))
	if err != nil {
		return nil, err
	}

	for _, c := range comments {
		out = append(out, Comment{
			ID:        idcodec.ID(c.ID),
			Comment:   c.Body,
			CreatedAt: c.CreatedAt,
			UserID:    idcodec.ID(c.UserID),
			User:      NewAuthor(users[c.UserID]),
		})
	}
	return out, nil
}

// Chapter 章节,附带所属图书标题和作者用户名
func (a *Assembler) Chapter(ctx context.Context, c *chapter.Chapter, b *book.Book) (*Chapter, error) {
	authors, err := a.userRepo.FindByIDs(ctx, []int64{b.AuthorID})
	if err != nil {
		return nil, err
	}

	ref := BookRef{Title: b.Title}
	if p, ok := authors[b.AuthorID]; ok {
		ref.Author = &AuthorName{Username: p.Username}
	}

	return &Chapter{
		ID:        idcodec.ID(c.ID),
		Title:     c.Title,
		Published: c.Published,
		CreatedAt: c.CreatedAt,
		BookID:    idcodec.ID(c.BookID),
		Book:      ref,
	}, nil
}

// NewAuthor 用户不存在时返回nil(输出null)
func NewAuthor(p *user.Profile) *Author {
	if p == nil {
		return nil
	}
	return &Author{
		Username:       p.Username,
		ProfilePicture: p.ProfilePicture,
	}
}

// NewGenres 没有分类时输出空数组而不是null
func NewGenres(genres []*genre.Genre) []Genre {
	out := make([]Genre, len(genres))
	for i, g := range genres {
		out[i] = Genre{ID: idcodec.ID(g.ID), Name: g.Name}
	}
	return out
}

func NewParagraphs(paragraphs []*chapter.Paragraph) []Paragraph {
	out := make([]Paragraph, len(paragraphs))
	for i, p := range paragraphs {
		out[i] = Paragraph{
			ID:              idcodec.ID(p.ID),
			ParagraphNumber: p.Number,
			Content:         p.Content,
		}
	}
	return out
}

func NewGenreUsages(usages []genre.Usage) []GenreUsage {
	out := make([]GenreUsage, len(usages))
	for i, u := range usages {
		out[i] = GenreUsage{
			ID:         idcodec.ID(u.ID),
			Name:       u.Name,
			UsageCount: u.Count,
			Percentage: u.Percentage,
		}
	}
	return out
}
