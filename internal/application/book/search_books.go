package book

import (
	"context"
	"strings"
	"unicode/utf8"

	"go.opentelemetry.io/otel/attribute"

	"github.com/xiebiao/bookhub/internal/application/view"
	"github.com/xiebiao/bookhub/internal/domain/book"
	"github.com/xiebiao/bookhub/internal/domain/genre"
	apperrors "github.com/xiebiao/bookhub/pkg/errors"
	"github.com/xiebiao/bookhub/pkg/idcodec"
	"github.com/xiebiao/bookhub/pkg/tracing"
)

const minQueryLength = 2

// SearchBooksUseCase 搜索已发布图书(标题或简介包含关键词)
type SearchBooksUseCase struct {
	bookRepo  book.Repository
	genreRepo genre.Repository
}

// NewSearchBooksUseCase 创建用例
func NewSearchBooksUseCase(bookRepo book.Repository, genreRepo genre.Repository) *SearchBooksUseCase {
	return &SearchBooksUseCase{
		bookRepo:  bookRepo,
		genreRepo: genreRepo,
	}
}

// Execute 执行搜索
// viewerID为0(匿名)时isFav全部为false
func (uc *SearchBooksUseCase) Execute(ctx context.Context, query string, viewerID int64) (resp []view.SearchResult, err error) {
	ctx, span := tracing.StartSpan(ctx, "book.Search")
	defer func() { tracing.EndSpan(span, err) }()

	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < minQueryLength {
		return nil, apperrors.Validation(apperrors.FieldError{
			Field:   "q",
			Message: "搜索关键词至少2个字符",
		})
	}

	books, err := uc.bookRepo.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("search.results", len(books)))

	ids := bookIDs(books)
	genres, err := uc.genreRepo.ListByBooks(ctx, ids)
	if err != nil {
		return nil, err
	}
	liked, err := uc.bookRepo.LikedAmong(ctx, viewerID, ids)
	if err != nil {
		return nil, err
	}

	results := make([]view.SearchResult, len(books))
	for i, b := range books {
		results[i] = view.SearchResult{
			ID:          idcodec.ID(b.ID),
			Title:       b.Title,
			Description: b.Description,
			CoverImage:  b.CoverImage,
			Genres:      view.NewGenres(genres[b.ID]),
			IsFav:       liked[b.ID],
		}
	}
	return results, nil
}
