// Package dbtest 为仓储和用例测试提供内存SQLite数据库
package dbtest

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/xiebiao/bookhub/internal/infrastructure/persistence/mysql"
)

// Open 创建迁移好表结构的内存数据库,测试结束自动关闭
// 每次调用都是独立的库;连接数限制为1,否则每个连接会看到不同的:memory:库
func Open(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), mysql.GormConfig("test"))
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, mysql.AutoMigrate(db))
	return db
}

// SeedUser 插入用户(users表由外部服务维护,测试里直接写)
func SeedUser(t testing.TB, db *gorm.DB, id int64, username string) {
	t.Helper()
	require.NoError(t, db.Create(&mysql.UserModel{ID: id, Username: username}).Error)
}

// LikeBook 插入图书收藏
func LikeBook(t testing.TB, db *gorm.DB, bookID, userID int64) {
	t.Helper()
	require.NoError(t, db.Create(&mysql.BookLikeModel{BookID: bookID, UserID: userID}).Error)
}

// LikeChapter 插入章节点赞
func LikeChapter(t testing.TB, db *gorm.DB, chapterID, userID int64) {
	t.Helper()
	require.NoError(t, db.Create(&mysql.ChapterLikeModel{ChapterID: chapterID, UserID: userID}).Error)
}

// Count 统计表行数
func Count(t testing.TB, db *gorm.DB, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(model).Count(&n).Error)
	return n
}
