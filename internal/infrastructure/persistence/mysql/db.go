package mysql

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/xiebiao/bookhub/internal/infrastructure/config"
	"github.com/xiebiao/bookhub/pkg/logger"
)

// NewDB 创建数据库连接
// 设计说明：
// 1. 使用GORM v2作为ORM框架
// 2. 配置连接池参数（MaxOpenConns、MaxIdleConns、ConnMaxLifetime）
// 3. SQL日志走zap,debug模式打印全部SQL,release模式只记录慢查询
// 4. 返回的cleanup负责关闭连接池,由wire在退出时调用
func NewDB(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := gorm.Open(mysql.Open(cfg.Database.DSN()), GormConfig(cfg.Server.Mode))
	if err != nil {
		return nil, nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, fmt.Errorf("获取SQL DB失败: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, nil, fmt.Errorf("数据库连接测试失败: %w", err)
	}

	logger.L().Info("数据库连接成功",
		zap.String("host", cfg.Database.Host),
		zap.String("dbname", cfg.Database.DBName),
	)

	// 注意：生产环境应使用专门的迁移工具，auto_migrate只用于开发环境
	if cfg.Database.AutoMigrate {
		if err := AutoMigrate(db); err != nil {
			sqlDB.Close()
			return nil, nil, fmt.Errorf("数据库迁移失败: %w", err)
		}
	}

	cleanup := func() {
		if err := sqlDB.Close(); err != nil {
			logger.L().Warn("关闭数据库连接失败", zap.Error(err))
		}
	}
	return db, cleanup, nil
}

// GormConfig GORM公共配置(MySQL与测试用SQLite共用)
func GormConfig(mode string) *gorm.Config {
	level := gormlogger.Warn
	if mode == "debug" {
		level = gormlogger.Info
	}

	return &gorm.Config{
		Logger: gormlogger.New(
			zap.NewStdLog(logger.Named("gorm")),
			gormlogger.Config{
				SlowThreshold:             200 * time.Millisecond,
				LogLevel:                  level,
				IgnoreRecordNotFoundError: true, // 记录不存在是正常结果
			},
		),
		TranslateError: true, // 唯一索引冲突 → gorm.ErrDuplicatedKey
		NowFunc: func() time.Time {
			return time.Now()
		},
	}
}

// AutoMigrate 自动迁移表结构
// 学习要点：
// 1. AutoMigrate只会创建表、添加字段，不会删除或修改现有字段
// 2. 级联删除由仓储在事务中显式执行，不依赖外键
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&BookModel{},
		&ChapterModel{},
		&ParagraphModel{},
		&BookCommentModel{},
		&ChapterCommentModel{},
		&GenreModel{},
		&BookGenreModel{},
		&BookLikeModel{},
		&ChapterLikeModel{},
	)
}

// UserModel 用户表(由用户服务维护，本服务只读)
type UserModel struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	Username       string  `gorm:"size:50;not null;comment:用户名"`
	ProfilePicture *string `gorm:"size:500;comment:头像URL"`
}

// TableName 指定表名
func (UserModel) TableName() string {
	return "users"
}

// BookModel GORM图书模型
// 设计说明:
// 1. 复合索引(published, created_at)用于已发布列表按时间倒序
// 2. author_id索引用于"我的创作"
type BookModel struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"size:255;not null;comment:书名"`
	Description *string   `gorm:"type:text;comment:简介"`
	CoverImage  *string   `gorm:"size:500;comment:封面图URL"`
	Published   bool      `gorm:"index:idx_books_published_created,priority:1;not null;default:false;comment:是否发布"`
	AuthorID    int64     `gorm:"index;not null;comment:作者用户ID"`
	CreatedAt   time.Time `gorm:"index:idx_books_published_created,priority:2;comment:创建时间"`
}

// TableName 指定表名
func (BookModel) TableName() string {
	return "books"
}

// ChapterModel GORM章节模型
type ChapterModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	BookID    int64     `gorm:"index:idx_chapters_book_created,priority:1;not null;comment:图书ID"`
	Title     string    `gorm:"size:255;not null;comment:章节标题"`
	Published bool      `gorm:"not null;default:false;comment:是否发布"`
	CreatedAt time.Time `gorm:"index:idx_chapters_book_created,priority:2;comment:创建时间"`
}

// TableName 指定表名
func (ChapterModel) TableName() string {
	return "chapters"
}

// ParagraphModel GORM段落模型
// 教学要点:(chapter_id, paragraph_number)唯一索引是并发追加的最后一道防线
type ParagraphModel struct {
	ID              int64  `gorm:"primaryKey;autoIncrement"`
	ChapterID       int64  `gorm:"uniqueIndex:uk_paragraphs_chapter_number,priority:1;not null;comment:章节ID"`
	ParagraphNumber int    `gorm:"uniqueIndex:uk_paragraphs_chapter_number,priority:2;not null;comment:段落序号(从1开始)"`
	Content         string `gorm:"type:text;not null;comment:段落内容"`
}

// TableName 指定表名
func (ParagraphModel) TableName() string {
	return "paragraphs"
}

// BookCommentModel 图书评论
type BookCommentModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	BookID    int64     `gorm:"index;not null;comment:图书ID"`
	UserID    int64     `gorm:"index;not null;comment:评论用户ID"`
	Comment   string    `gorm:"type:text;not null;comment:评论内容"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
}

// TableName 指定表名
func (BookCommentModel) TableName() string {
	return "book_comments"
}

// ChapterCommentModel 章节评论(与图书评论分表)
type ChapterCommentModel struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	ChapterID int64     `gorm:"index;not null;comment:章节ID"`
	UserID    int64     `gorm:"index;not null;comment:评论用户ID"`
	Comment   string    `gorm:"type:text;not null;comment:评论内容"`
	CreatedAt time.Time `gorm:"comment:创建时间"`
}

// TableName 指定表名
func (ChapterCommentModel) TableName() string {
	return "chapter_comments"
}

// GenreModel 分类
type GenreModel struct {
	ID   int64  `gorm:"primaryKey;autoIncrement"`
	Name string `gorm:"size:50;uniqueIndex;not null;comment:规范化后的分类名"`
}

// TableName 指定表名
func (GenreModel) TableName() string {
	return "genres"
}

// BookGenreModel 图书-分类关联(复合主键，无其他字段)
type BookGenreModel struct {
	BookID  int64 `gorm:"primaryKey;autoIncrement:false"`
	GenreID int64 `gorm:"primaryKey;autoIncrement:false;index"`
}

// TableName 指定表名
func (BookGenreModel) TableName() string {
	return "book_genres"
}

// BookLikeModel 图书收藏
type BookLikeModel struct {
	BookID int64 `gorm:"primaryKey;autoIncrement:false"`
	UserID int64 `gorm:"primaryKey;autoIncrement:false;index"`
}

// TableName 指定表名
func (BookLikeModel) TableName() string {
	return "book_likes"
}

// ChapterLikeModel 章节点赞(与图书收藏是两种不同的关系)
type ChapterLikeModel struct {
	ChapterID int64 `gorm:"primaryKey;autoIncrement:false"`
	UserID    int64 `gorm:"primaryKey;autoIncrement:false"`
}

// TableName 指定表名
func (ChapterLikeModel) TableName() string {
	return "chapter_likes"
}
