package book

import (
	"context"

	"github.com/xiebiao/bookhub/internal/application/view"
	"github.com/xiebiao/bookhub/internal/domain/book"
	"github.com/xiebiao/bookhub/internal/domain/genre"
	"github.com/xiebiao/bookhub/pkg/idcodec"
	"github.com/xiebiao/bookhub/pkg/tracing"
)

// noGenre 没有分类的图书在列表中显示的分类名
const noGenre = "none"

// ListPublishedBooksUseCase 已发布图书列表(首页)
// 列表项只带一个分类名:分类ID最小的那个
type ListPublishedBooksUseCase struct {
	bookRepo  book.Repository
	genreRepo genre.Repository
}

// NewListPublishedBooksUseCase 创建用例
func NewListPublishedBooksUseCase(bookRepo book.Repository, genreRepo genre.Repository) *ListPublishedBooksUseCase {
	return &ListPublishedBooksUseCase{
		bookRepo:  bookRepo,
		genreRepo: genreRepo,
	}
}

// Execute 按创建时间倒序
func (uc *ListPublishedBooksUseCase) Execute(ctx context.Context) (resp []view.BookListItem, err error) {
	ctx, span := tracing.StartSpan(ctx, "book.ListPublished")
	defer func() { tracing.EndSpan(span, err) }()

	books, err := uc.bookRepo.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	genres, err := uc.genreRepo.ListByBooks(ctx, bookIDs(books))
	if err != nil {
		return nil, err
	}

	items := make([]view.BookListItem, len(books))
	for i, b := range books {
		name := noGenre
		if gs := genres[b.ID]; len(gs) > 0 {
			name = gs[0].Name
		}
		items[i] = view.BookListItem{
			ID:         idcodec.ID(b.ID),
			Title:      b.Title,
			CoverImage: b.CoverImage,
			Genre:      name,
		}
	}
	return items, nil
}

// ListFavoritesUseCase 用户收藏的图书
type ListFavoritesUseCase struct {
	bookRepo  book.Repository
	assembler *view.Assembler
}

func NewListFavoritesUseCase(bookRepo book.Repository, assembler *view.Assembler) *ListFavoritesUseCase {
	return &ListFavoritesUseCase{
		bookRepo:  bookRepo,
		assembler: assembler,
	}
}

func (uc *ListFavoritesUseCase) Execute(ctx context.Context, userID int64) (resp []view.Book, err error) {
	ctx, span := tracing.StartSpan(ctx, "book.ListFavorites")
	defer func() { tracing.EndSpan(span, err) }()

	books, err := uc.bookRepo.ListLikedBy(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.assembler.Books(ctx, books)
}

// ListWritingUseCase 用户创作的图书(含未发布)
type ListWritingUseCase struct {
	bookRepo  book.Repository
	assembler *view.Assembler
}

func NewListWritingUseCase(bookRepo book.Repository, assembler *view.Assembler) *ListWritingUseCase {
	return &ListWritingUseCase{
		bookRepo:  bookRepo,
		assembler: assembler,
	}
}

func (uc *ListWritingUseCase) Execute(ctx context.Context, userID int64) (resp []view.Book, err error) {
	ctx, span := tracing.StartSpan(ctx, "book.ListWriting")
	defer func() { tracing.EndSpan(span, err) }()

	books, err := uc.bookRepo.ListByAuthor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return uc.assembler.Books(ctx, books)
}

func bookIDs(books []*book.Book) []int64 {
	ids := make([]int64, len(books))
	for i, b := range books {
		ids[i] = b.ID
	}
	return ids
}
