// Package apptest 用例测试的公共环境:内存SQLite + 真实仓储 + 通知/缓存替身
package apptest

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/xiebiao/bookhub/internal/application/view"
	"github.com/xiebiao/bookhub/internal/domain/book"
	"github.com/xiebiao/bookhub/internal/domain/chapter"
	"github.com/xiebiao/bookhub/internal/domain/comment"
	"github.com/xiebiao/bookhub/internal/domain/genre"
	"github.com/xiebiao/bookhub/internal/domain/notification"
	"github.com/xiebiao/bookhub/internal/domain/user"
	"github.com/xiebiao/bookhub/internal/infrastructure/persistence/mysql"
	"github.com/xiebiao/bookhub/internal/infrastructure/persistence/mysql/dbtest"
)

// Env 一个测试用例独享的环境
type Env struct {
	DB        *gorm.DB
	Books     book.Repository
	Chapters  chapter.Repository
	Comments  comment.Repository
	Genres    genre.Repository
	Users     user.Repository
	Tx        *mysql.TxManager
	Assembler *view.Assembler
	Publisher *Publisher
	Cache     *Cache
}

// New 创建测试环境
func New(t testing.TB) *Env {
	t.Helper()
	db := dbtest.Open(t)

	env := &Env{
		DB:        db,
		Books:     mysql.NewBookRepository(db),
		Chapters:  mysql.NewChapterRepository(db),
		Comments:  mysql.NewCommentRepository(db),
		Genres:    mysql.NewGenreRepository(db),
		Users:     mysql.NewUserRepository(db),
		Tx:        mysql.NewTxManager(db),
		Publisher: &Publisher{},
		Cache:     &Cache{},
	}
	env.Assembler = view.NewAssembler(env.Users, env.Genres)
	return env
}

// SeedUser 插入用户
func (e *Env) SeedUser(t testing.TB, id int64, username string) {
	t.Helper()
	dbtest.SeedUser(t, e.DB, id, username)
}

// SeedBook 插入图书
func (e *Env) SeedBook(t testing.TB, authorID int64, title string, published bool) *book.Book {
	t.Helper()
	b := book.NewBook(title, nil, nil, authorID)
	require.NoError(t, e.Books.Create(context.Background(), b))
	if published {
		require.NoError(t, e.Books.SetPublished(context.Background(), b.ID, true))
		b.Published = true
	}
	return b
}

// SeedChapter 插入章节
func (e *Env) SeedChapter(t testing.TB, bookID int64, title string, published bool) *chapter.Chapter {
	t.Helper()
	c := chapter.NewChapter(bookID, title)
	require.NoError(t, e.Chapters.Create(context.Background(), c))
	if published {
		require.NoError(t, e.Chapters.SetPublished(context.Background(), c.ID, true))
		c.Published = true
	}
	return c
}

// SeedGenres 创建分类,返回ID(顺序与names一致)
func (e *Env) SeedGenres(t testing.TB, names ...string) []int64 {
	t.Helper()
	genres, err := e.Genres.CreateOrGet(context.Background(), genre.NormalizeNames(names))
	require.NoError(t, err)
	ids := make([]int64, len(genres))
	for i, g := range genres {
		ids[i] = g.ID
	}
	return ids
}

// Publisher 记录发布的通知
type Publisher struct {
	mu     sync.Mutex
	events []notification.Event
}

func (p *Publisher) Publish(event notification.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

// Events 已发布的通知
func (p *Publisher) Events() []notification.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]notification.Event(nil), p.events...)
}

// Cache 内存版分类统计缓存
type Cache struct {
	mu            sync.Mutex
	usages        []genre.Usage
	hit           bool
	GetErr        error
	Sets          int
	Invalidations int
}

func (c *Cache) Get(context.Context) ([]genre.Usage, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.GetErr != nil {
		return nil, false, c.GetErr
	}
	return c.usages, c.hit, nil
}

func (c *Cache) Set(_ context.Context, usages []genre.Usage, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.usages = usages
	c.hit = true
	c.Sets++
	return nil
}

func (c *Cache) Invalidate(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.usages = nil
	c.hit = false
	c.Invalidations++
	return nil
}
