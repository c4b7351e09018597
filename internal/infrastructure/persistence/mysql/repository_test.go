package mysql_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookhub/internal/domain/book"
	"github.com/xiebiao/bookhub/internal/domain/chapter"
	"github.com/xiebiao/bookhub/internal/domain/comment"
	"github.com/xiebiao/bookhub/internal/domain/genre"
	"github.com/xiebiao/bookhub/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookhub/internal/infrastructure/persistence/mysql/dbtest"
)

func strPtr(s string) *string { return &s }

func TestBookRepository_CRUD(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := mysql.NewBookRepository(db)

	b := book.NewBook("  三体  ", strPtr("科幻"), nil, 7)
	require.NoError(t, repo.Create(ctx, b))
	require.NotZero(t, b.ID)
	assert.False(t, b.CreatedAt.IsZero())

	got, err := repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "三体", got.Title)
	assert.False(t, got.Published)
	assert.Nil(t, got.CoverImage)

	// 部分更新:只改简介,标题保持不变
	require.NoError(t, repo.Update(ctx, b.ID, book.Changes{Description: strPtr("")}))
	got, err = repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "三体", got.Title)
	require.NotNil(t, got.Description)
	assert.Equal(t, "", *got.Description)

	// 重复发布是幂等的
	require.NoError(t, repo.SetPublished(ctx, b.ID, true))
	require.NoError(t, repo.SetPublished(ctx, b.ID, true))
	got, err = repo.FindByID(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, got.Published)

	_, err = repo.FindByID(ctx, 999)
	assert.True(t, errors.Is(err, book.ErrBookNotFound))

	ok, err := repo.Exists(ctx, b.ID)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestBookRepository_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	books := mysql.NewBookRepository(db)
	chapters := mysql.NewChapterRepository(db)
	comments := mysql.NewCommentRepository(db)
	genres := mysql.NewGenreRepository(db)

	b := book.NewBook("待删除", nil, nil, 1)
	require.NoError(t, books.Create(ctx, b))
	other := book.NewBook("保留", nil, nil, 1)
	require.NoError(t, books.Create(ctx, other))

	c := chapter.NewChapter(b.ID, "第一章")
	require.NoError(t, chapters.Create(ctx, c))
	require.NoError(t, chapters.CreateParagraphs(ctx, chapter.NumberParagraphs(c.ID, 0, []string{"a", "b"})))
	require.NoError(t, comments.Create(ctx, comment.NewComment(comment.TargetChapter, c.ID, 1, "好")))
	require.NoError(t, comments.Create(ctx, comment.NewComment(comment.TargetBook, b.ID, 1, "赞")))
	dbtest.LikeBook(t, db, b.ID, 1)
	dbtest.LikeChapter(t, db, c.ID, 1)

	gs, err := genres.CreateOrGet(ctx, []string{"fantasy"})
	require.NoError(t, err)
	require.NoError(t, genres.AddBookGenres(ctx, b.ID, []int64{gs[0].ID}))
	require.NoError(t, genres.AddBookGenres(ctx, other.ID, []int64{gs[0].ID}))

	require.NoError(t, books.Delete(ctx, b.ID))

	assert.Equal(t, int64(1), dbtest.Count(t, db, &mysql.BookModel{}))
	assert.Zero(t, dbtest.Count(t, db, &mysql.ChapterModel{}))
	assert.Zero(t, dbtest.Count(t, db, &mysql.ParagraphModel{}))
	assert.Zero(t, dbtest.Count(t, db, &mysql.ChapterCommentModel{}))
	assert.Zero(t, dbtest.Count(t, db, &mysql.BookCommentModel{}))
	assert.Zero(t, dbtest.Count(t, db, &mysql.BookLikeModel{}))
	assert.Zero(t, dbtest.Count(t, db, &mysql.ChapterLikeModel{}))
	// 分类本身和其他图书的关联不受影响
	assert.Equal(t, int64(1), dbtest.Count(t, db, &mysql.GenreModel{}))
	assert.Equal(t, int64(1), dbtest.Count(t, db, &mysql.BookGenreModel{}))

	// 删除不是幂等的
	err = books.Delete(ctx, b.ID)
	assert.True(t, errors.Is(err, book.ErrBookNotFound))
}

func TestBookRepository_Lists(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := mysql.NewBookRepository(db)

	create := func(title string, desc *string, author int64, published bool) *book.Book {
		b := book.NewBook(title, desc, nil, author)
		require.NoError(t, repo.Create(ctx, b))
		if published {
			require.NoError(t, repo.SetPublished(ctx, b.ID, true))
		}
		return b
	}

	first := create("Go语言实战", nil, 1, true)
	second := create("Rust入门", strPtr("100% 学会 go"), 2, true)
	draft := create("Go草稿", nil, 1, false)

	published, err := repo.ListPublished(ctx)
	require.NoError(t, err)
	require.Len(t, published, 2)
	assert.Equal(t, second.ID, published[0].ID) // 最新的在前
	assert.Equal(t, first.ID, published[1].ID)

	found, err := repo.Search(ctx, "go")
	require.NoError(t, err)
	assert.Len(t, found, 2, "标题或简介匹配,草稿不出现")

	// %是字面量,不是通配符
	found, err = repo.Search(ctx, "100%")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, second.ID, found[0].ID)

	found, err = repo.Search(ctx, "_")
	require.NoError(t, err)
	assert.Empty(t, found)

	mine, err := repo.ListByAuthor(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, draft.ID, mine[0].ID)

	dbtest.LikeBook(t, db, first.ID, 9)
	dbtest.LikeBook(t, db, draft.ID, 9)
	liked, err := repo.ListLikedBy(ctx, 9)
	require.NoError(t, err)
	assert.Len(t, liked, 2)

	among, err := repo.LikedAmong(ctx, 9, []int64{first.ID, second.ID})
	require.NoError(t, err)
	assert.Equal(t, map[int64]bool{first.ID: true}, among)

	among, err = repo.LikedAmong(ctx, 0, []int64{first.ID})
	require.NoError(t, err)
	assert.Empty(t, among)
}

func TestChapterRepository(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := mysql.NewChapterRepository(db)

	c1 := chapter.NewChapter(1, "序章")
	require.NoError(t, repo.Create(ctx, c1))
	c2 := chapter.NewChapter(1, "第一章")
	require.NoError(t, repo.Create(ctx, c2))
	require.NoError(t, repo.SetPublished(ctx, c2.ID, true))

	all, err := repo.ListByBook(ctx, 1, true)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, c1.ID, all[0].ID) // 创建时间升序

	visible, err := repo.ListByBook(ctx, 1, false)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, c2.ID, visible[0].ID)

	maxNumber, err := repo.MaxParagraphNumber(ctx, c1.ID)
	require.NoError(t, err)
	assert.Zero(t, maxNumber)

	require.NoError(t, repo.CreateParagraphs(ctx, chapter.NumberParagraphs(c1.ID, 0, []string{"一", "二"})))
	require.NoError(t, repo.CreateParagraphs(ctx, chapter.NumberParagraphs(c1.ID, 2, []string{"三"})))

	maxNumber, err = repo.MaxParagraphNumber(ctx, c1.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, maxNumber)

	paragraphs, err := repo.ListParagraphs(ctx, c1.ID)
	require.NoError(t, err)
	require.Len(t, paragraphs, 3)
	for i, p := range paragraphs {
		assert.Equal(t, i+1, p.Number)
	}
	assert.Equal(t, "三", paragraphs[2].Content)

	// 重复序号被唯一索引拒绝
	err = repo.CreateParagraphs(ctx, chapter.NumberParagraphs(c1.ID, 2, []string{"重复"}))
	assert.Error(t, err)

	dbtest.LikeChapter(t, db, c1.ID, 5)
	liked, err := repo.IsLiked(ctx, c1.ID, 5)
	require.NoError(t, err)
	assert.True(t, liked)
	liked, err = repo.IsLiked(ctx, c1.ID, 6)
	require.NoError(t, err)
	assert.False(t, liked)

	require.NoError(t, repo.Delete(ctx, c1.ID))
	assert.Zero(t, dbtest.Count(t, db, &mysql.ParagraphModel{}))
	assert.True(t, errors.Is(repo.Delete(ctx, c1.ID), chapter.ErrChapterNotFound))

	_, err = repo.FindByID(ctx, c1.ID)
	assert.True(t, errors.Is(err, chapter.ErrChapterNotFound))
}

func TestCommentRepository(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := mysql.NewCommentRepository(db)

	older := comment.NewComment(comment.TargetBook, 3, 1, "第一条")
	require.NoError(t, repo.Create(ctx, older))
	newer := comment.NewComment(comment.TargetBook, 3, 2, "第二条")
	require.NoError(t, repo.Create(ctx, newer))
	require.NoError(t, repo.Create(ctx, comment.NewComment(comment.TargetChapter, 3, 1, "章节评论")))

	list, err := repo.ListByTarget(ctx, comment.TargetBook, 3)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	assert.Equal(t, "第一条", list[1].Body)
	assert.Equal(t, int64(3), list[1].TargetID)

	list, err = repo.ListByTarget(ctx, comment.TargetChapter, 3)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, comment.TargetBook, older.ID))
	err = repo.Delete(ctx, comment.TargetBook, older.ID)
	assert.True(t, errors.Is(err, comment.ErrCommentNotFound))
}

func TestGenreRepository(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := mysql.NewGenreRepository(db)

	first, err := repo.CreateOrGet(ctx, []string{"fantasy", "sci-fi"})
	require.NoError(t, err)
	require.Len(t, first, 2)

	// 同名复用,返回顺序与输入一致
	again, err := repo.CreateOrGet(ctx, []string{"romance", "fantasy"})
	require.NoError(t, err)
	require.Len(t, again, 2)
	assert.Equal(t, "romance", again[0].Name)
	assert.Equal(t, first[0].ID, again[1].ID)
	assert.Equal(t, int64(3), dbtest.Count(t, db, &mysql.GenreModel{}))

	missing, err := repo.MissingIDs(ctx, []int64{first[0].ID, 404})
	require.NoError(t, err)
	assert.Equal(t, []int64{404}, missing)

	require.NoError(t, repo.AddBookGenres(ctx, 1, []int64{first[1].ID, first[0].ID}))
	require.NoError(t, repo.AddBookGenres(ctx, 2, []int64{first[0].ID}))

	byBook, err := repo.ListByBook(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byBook, 2)
	assert.Equal(t, first[0].ID, byBook[0].ID) // 按分类ID升序

	batch, err := repo.ListByBooks(ctx, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Len(t, batch[1], 2)
	assert.Len(t, batch[2], 1)
	assert.Empty(t, batch[3])

	require.NoError(t, repo.ReplaceBookGenres(ctx, 1, []int64{again[0].ID}))
	byBook, err = repo.ListByBook(ctx, 1)
	require.NoError(t, err)
	require.Len(t, byBook, 1)
	assert.Equal(t, "romance", byBook[0].Name)

	counts, err := repo.UsageCounts(ctx)
	require.NoError(t, err)
	byName := make(map[string]int64)
	for _, c := range counts {
		byName[c.Name] = c.Count
	}
	assert.Equal(t, map[string]int64{"fantasy": 1, "sci-fi": 0, "romance": 1}, byName)

	usage := genre.ComputeUsage(counts)
	assert.Equal(t, 50.0, usage[0].Percentage)
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	repo := mysql.NewUserRepository(db)
	dbtest.SeedUser(t, db, 1, "alice")
	dbtest.SeedUser(t, db, 2, "bob")

	ok, err := repo.Exists(ctx, 1)
	require.NoError(t, err)
	assert.True(t, ok)
	ok, err = repo.Exists(ctx, 3)
	require.NoError(t, err)
	assert.False(t, ok)

	profiles, err := repo.FindByIDs(ctx, []int64{1, 2, 3})
	require.NoError(t, err)
	assert.Len(t, profiles, 2)
	assert.Equal(t, "bob", profiles[2].Username)
}

func TestTxManager_Rollback(t *testing.T) {
	ctx := context.Background()
	db := dbtest.Open(t)
	txm := mysql.NewTxManager(db)
	books := mysql.NewBookRepository(db)

	boom := errors.New("boom")
	err := txm.Transaction(ctx, func(ctx context.Context) error {
		require.NoError(t, books.Create(ctx, book.NewBook("回滚", nil, nil, 1)))
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Zero(t, dbtest.Count(t, db, &mysql.BookModel{}))

	err = txm.Transaction(ctx, func(ctx context.Context) error {
		return books.Create(ctx, book.NewBook("提交", nil, nil, 1))
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), dbtest.Count(t, db, &mysql.BookModel{}))
}
