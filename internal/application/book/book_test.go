package book_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookhub/internal/application/apptest"
	appbook "github.com/xiebiao/bookhub/internal/application/book"
	"github.com/xiebiao/bookhub/internal/application/view"
	"github.com/xiebiao/bookhub/internal/domain/book"
	"github.com/xiebiao/bookhub/internal/domain/comment"
	"github.com/xiebiao/bookhub/internal/domain/genre"
	"github.com/xiebiao/bookhub/internal/domain/notification"
	"github.com/xiebiao/bookhub/internal/domain/user"
	"github.com/xiebiao/bookhub/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookhub/internal/infrastructure/persistence/mysql/dbtest"
	apperrors "github.com/xiebiao/bookhub/pkg/errors"
)

func strPtr(s string) *string { return &s }

func genreNames(genres []view.Genre) []string {
	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = g.Name
	}
	return names
}

func newCreate(env *apptest.Env, genres genre.Repository) *appbook.CreateBookUseCase {
	return appbook.NewCreateBookUseCase(env.Books, env.Users, genres, env.Tx, env.Assembler, env.Publisher, env.Cache)
}

func TestCreateBook(t *testing.T) {
	ctx := context.Background()

	t.Run("创建图书并关联新旧分类", func(t *testing.T) {
		env := apptest.New(t)
		env.SeedUser(t, 1, "alice")
		existing := env.SeedGenres(t, "fantasy")

		resp, err := newCreate(env, env.Genres).Execute(ctx, appbook.CreateBookRequest{
			Title:       "  Dune  ",
			Description: strPtr("A desert planet story"),
			AuthorID:    1,
			GenreIDs:    existing,
			NewGenres:   []string{" Sci-Fi ", "sci-fi", "FANTASY"},
		})
		require.NoError(t, err)

		assert.Equal(t, "Dune", resp.Title)
		assert.False(t, resp.Published, "新书一定未发布")
		require.NotNil(t, resp.Author)
		assert.Equal(t, "alice", resp.Author.Username)
		assert.Equal(t, []string{"fantasy", "sci-fi"}, genreNames(resp.Genres))
		assert.Equal(t, int64(2), dbtest.Count(t, env.DB, &mysql.BookGenreModel{}))

		events := env.Publisher.Events()
		require.Len(t, events, 1)
		assert.Equal(t, notification.KindBookCreated, events[0].Kind)
		assert.Equal(t, int64(1), events[0].AuthorID)
		assert.Equal(t, resp.ID.Int64(), events[0].BookID)
		assert.Equal(t, 1, env.Cache.Invalidations)
	})

	t.Run("作者不存在", func(t *testing.T) {
		env := apptest.New(t)
		_, err := newCreate(env, env.Genres).Execute(ctx, appbook.CreateBookRequest{Title: "Dune", AuthorID: 99})
		assert.ErrorIs(t, err, user.ErrAuthorNotFound)
		assert.Zero(t, dbtest.Count(t, env.DB, &mysql.BookModel{}))
		assert.Empty(t, env.Publisher.Events())
	})

	t.Run("分类ID不存在", func(t *testing.T) {
		env := apptest.New(t)
		env.SeedUser(t, 1, "alice")

		_, err := newCreate(env, env.Genres).Execute(ctx, appbook.CreateBookRequest{
			Title:     "Dune",
			AuthorID:  1,
			GenreIDs:  []int64{404},
			NewGenres: []string{"sci-fi"},
		})
		assert.ErrorIs(t, err, genre.ErrInvalidGenre)
		assert.Equal(t, apperrors.ErrCodeInvalidReference, apperrors.GetAppError(err).Code)
		assert.Zero(t, dbtest.Count(t, env.DB, &mysql.BookModel{}))
		assert.Zero(t, dbtest.Count(t, env.DB, &mysql.GenreModel{}), "校验失败前不写入任何数据")
	})

	t.Run("插入分类关联失败时整体回滚", func(t *testing.T) {
		env := apptest.New(t)
		env.SeedUser(t, 1, "alice")
		failing := &failingGenreRepo{Repository: env.Genres}

		_, err := newCreate(env, failing).Execute(ctx, appbook.CreateBookRequest{
			Title:     "Dune",
			AuthorID:  1,
			NewGenres: []string{"sci-fi"},
		})
		require.Error(t, err)
		assert.Zero(t, dbtest.Count(t, env.DB, &mysql.BookModel{}))
		assert.Zero(t, dbtest.Count(t, env.DB, &mysql.GenreModel{}))
		assert.Empty(t, env.Publisher.Events(), "事务失败不发通知")
	})
}

// failingGenreRepo 插入图书分类关联时失败
type failingGenreRepo struct {
	genre.Repository
}

func (r *failingGenreRepo) AddBookGenres(context.Context, int64, []int64) error {
	return apperrors.Wrap(errors.New("connection reset"), "添加图书分类失败")
}

func TestUpdateBook(t *testing.T) {
	ctx := context.Background()
	env := apptest.New(t)
	env.SeedUser(t, 1, "alice")
	genreIDs := env.SeedGenres(t, "fantasy", "horror")
	b := env.SeedBook(t, 1, "Dune", false)
	require.NoError(t, env.Genres.AddBookGenres(ctx, b.ID, genreIDs[:1]))

	uc := appbook.NewUpdateBookUseCase(env.Books, env.Genres, env.Tx, env.Assembler, env.Cache)

	t.Run("只更新标题,分类不变", func(t *testing.T) {
		resp, err := uc.Execute(ctx, appbook.UpdateBookRequest{BookID: b.ID, Title: strPtr("Dune Messiah")})
		require.NoError(t, err)
		assert.Equal(t, "Dune Messiah", resp.Title)
		assert.Equal(t, []string{"fantasy"}, genreNames(resp.Genres))
	})

	t.Run("空分类数组不修改分类", func(t *testing.T) {
		resp, err := uc.Execute(ctx, appbook.UpdateBookRequest{BookID: b.ID, GenreIDs: []int64{}})
		require.NoError(t, err)
		assert.Equal(t, []string{"fantasy"}, genreNames(resp.Genres))
	})

	t.Run("非空分类整体替换", func(t *testing.T) {
		before := env.Cache.Invalidations
		resp, err := uc.Execute(ctx, appbook.UpdateBookRequest{
			BookID:    b.ID,
			GenreIDs:  genreIDs[1:],
			NewGenres: []string{"Space Opera"},
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"horror", "space opera"}, genreNames(resp.Genres))
		assert.Equal(t, before+1, env.Cache.Invalidations)
	})

	t.Run("分类ID不存在", func(t *testing.T) {
		_, err := uc.Execute(ctx, appbook.UpdateBookRequest{BookID: b.ID, GenreIDs: []int64{404}})
		assert.ErrorIs(t, err, genre.ErrInvalidGenre)
	})

	t.Run("图书不存在", func(t *testing.T) {
		_, err := uc.Execute(ctx, appbook.UpdateBookRequest{BookID: 404, Title: strPtr("x")})
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestPublishBook(t *testing.T) {
	ctx := context.Background()
	env := apptest.New(t)
	env.SeedUser(t, 1, "alice")
	b := env.SeedBook(t, 1, "Dune", false)

	uc := appbook.NewPublishBookUseCase(env.Books, env.Assembler)

	// 重复发布是幂等的
	for i := 0; i < 2; i++ {
		resp, err := uc.Execute(ctx, b.ID, true)
		require.NoError(t, err)
		assert.True(t, resp.Published)
	}

	stored, err := env.Books.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, stored.Published)

	resp, err := uc.Execute(ctx, b.ID, false)
	require.NoError(t, err)
	assert.False(t, resp.Published)

	_, err = uc.Execute(ctx, 404, true)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
}

func TestDeleteBook(t *testing.T) {
	ctx := context.Background()
	env := apptest.New(t)
	env.SeedUser(t, 1, "alice")
	b := env.SeedBook(t, 1, "Dune", true)
	env.SeedChapter(t, b.ID, "Chapter 1", true)

	uc := appbook.NewDeleteBookUseCase(env.Books, env.Cache)

	require.NoError(t, uc.Execute(ctx, b.ID))
	assert.Zero(t, dbtest.Count(t, env.DB, &mysql.ChapterModel{}))
	assert.Equal(t, 1, env.Cache.Invalidations)

	// 第二次删除返回404
	err := uc.Execute(ctx, b.ID)
	assert.ErrorIs(t, err, book.ErrBookNotFound)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestGetBook(t *testing.T) {
	ctx := context.Background()
	env := apptest.New(t)
	env.SeedUser(t, 1, "alice")
	env.SeedUser(t, 2, "bob")
	b := env.SeedBook(t, 1, "Dune", true)
	draft := env.SeedChapter(t, b.ID, "Draft", false)
	published := env.SeedChapter(t, b.ID, "Chapter 1", true)
	dbtest.LikeChapter(t, env.DB, published.ID, 2)

	first := comment.NewComment(comment.TargetBook, b.ID, 2, "First comment")
	second := comment.NewComment(comment.TargetBook, b.ID, 1, "Second comment")
	require.NoError(t, env.Comments.Create(ctx, first))
	require.NoError(t, env.Comments.Create(ctx, second))

	uc := appbook.NewGetBookUseCase(env.Books, env.Chapters, env.Comments, env.Assembler)

	t.Run("作者看到全部章节", func(t *testing.T) {
		resp, err := uc.Execute(ctx, b.ID, 1)
		require.NoError(t, err)
		require.Len(t, resp.Chapters, 2)
		assert.Equal(t, draft.ID, resp.Chapters[0].ID.Int64())
		assert.Equal(t, published.ID, resp.Chapters[1].ID.Int64())
		assert.False(t, resp.Chapters[1].IsLiked)
	})

	t.Run("其他人只看到已发布章节", func(t *testing.T) {
		resp, err := uc.Execute(ctx, b.ID, 2)
		require.NoError(t, err)
		require.Len(t, resp.Chapters, 1)
		assert.Equal(t, "Chapter 1", resp.Chapters[0].Title)
		assert.True(t, resp.Chapters[0].IsLiked)
	})

	t.Run("评论最新在前并带用户信息", func(t *testing.T) {
		resp, err := uc.Execute(ctx, b.ID, 2)
		require.NoError(t, err)
		require.Len(t, resp.Comments, 2)
		assert.Equal(t, "Second comment", resp.Comments[0].Comment)
		require.NotNil(t, resp.Comments[0].User)
		assert.Equal(t, "alice", resp.Comments[0].User.Username)
		assert.Equal(t, "bob", resp.Comments[1].User.Username)
		assert.Equal(t, "alice", resp.Author.Username)
		assert.NotNil(t, resp.Genres)
	})

	t.Run("图书不存在", func(t *testing.T) {
		_, err := uc.Execute(ctx, 404, 1)
		assert.ErrorIs(t, err, book.ErrBookNotFound)
	})
}

func TestListPublishedBooks(t *testing.T) {
	ctx := context.Background()
	env := apptest.New(t)
	env.SeedUser(t, 1, "alice")
	genreIDs := env.SeedGenres(t, "fantasy", "horror")

	tagged := env.SeedBook(t, 1, "Tagged", true)
	require.NoError(t, env.Genres.AddBookGenres(ctx, tagged.ID, []int64{genreIDs[1], genreIDs[0]}))
	env.SeedBook(t, 1, "Untagged", true)
	env.SeedBook(t, 1, "Draft", false)

	items, err := appbook.NewListPublishedBooksUseCase(env.Books, env.Genres).Execute(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)

	byTitle := map[string]string{}
	for _, item := range items {
		byTitle[item.Title] = item.Genre
	}
	assert.Equal(t, "fantasy", byTitle["Tagged"], "取分类ID最小的分类")
	assert.Equal(t, "none", byTitle["Untagged"])
}

func TestSearchBooks(t *testing.T) {
	ctx := context.Background()
	env := apptest.New(t)
	env.SeedUser(t, 1, "alice")
	env.SeedUser(t, 2, "bob")
	dune := env.SeedBook(t, 1, "Dune", true)
	env.SeedBook(t, 1, "Dune Draft", false)
	dbtest.LikeBook(t, env.DB, dune.ID, 2)

	uc := appbook.NewSearchBooksUseCase(env.Books, env.Genres)

	t.Run("关键词太短", func(t *testing.T) {
		_, err := uc.Execute(ctx, "  d ", 0)
		appErr := apperrors.GetAppError(err)
		assert.Equal(t, apperrors.ErrCodeInvalidParams, appErr.Code)
		require.Len(t, appErr.Fields, 1)
		assert.Equal(t, "q", appErr.Fields[0].Field)
	})

	t.Run("登录用户看到收藏状态", func(t *testing.T) {
		results, err := uc.Execute(ctx, "dun", 2)
		require.NoError(t, err)
		require.Len(t, results, 1, "未发布图书不出现在搜索结果中")
		assert.True(t, results[0].IsFav)
		assert.NotNil(t, results[0].Genres)
	})

	t.Run("匿名用户isFav为false", func(t *testing.T) {
		results, err := uc.Execute(ctx, "Dune", 0)
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.False(t, results[0].IsFav)
	})
}

func TestListUserBooks(t *testing.T) {
	ctx := context.Background()
	env := apptest.New(t)
	env.SeedUser(t, 1, "alice")
	env.SeedUser(t, 2, "bob")
	mine := env.SeedBook(t, 1, "Mine", false)
	other := env.SeedBook(t, 2, "Other", true)
	dbtest.LikeBook(t, env.DB, other.ID, 1)

	writing, err := appbook.NewListWritingUseCase(env.Books, env.Assembler).Execute(ctx, 1)
	require.NoError(t, err)
	require.Len(t, writing, 1)
	assert.Equal(t, mine.ID, writing[0].ID.Int64())
	assert.False(t, writing[0].Published, "包含未发布图书")

	favorites, err := appbook.NewListFavoritesUseCase(env.Books, env.Assembler).Execute(ctx, 1)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	assert.Equal(t, other.ID, favorites[0].ID.Int64())
	assert.Equal(t, "bob", favorites[0].Author.Username)

	empty, err := appbook.NewListFavoritesUseCase(env.Books, env.Assembler).Execute(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
