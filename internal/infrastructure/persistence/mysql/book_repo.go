package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/bookhub/internal/domain/book"
	apperrors "github.com/xiebiao/bookhub/pkg/errors"
)

// bookRepository 图书仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/book/repository.go定义的接口
// 2. 负责domain实体与GORM模型之间的转换
// 3. 删除图书时在同一事务内显式删除所有从属数据
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	// 1. 领域实体 → GORM模型
	model := &BookModel{
		Title:       b.Title,
		Description: b.Description,
		CoverImage:  b.CoverImage,
		Published:   b.Published,
		AuthorID:    b.AuthorID,
	}

	// 2. 插入数据库
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建图书失败")
	}

	// 3. 回填自增ID
	b.ID = model.ID
	b.CreatedAt = model.CreatedAt
	return nil
}

// FindByID 根据ID查找图书
func (r *bookRepository) FindByID(ctx context.Context, id int64) (*book.Book, error) {
	var model BookModel
	err := conn(ctx, r.db).First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}

	return toBookEntity(&model), nil
}

// Exists 判断图书是否存在
func (r *bookRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&BookModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "查询图书失败")
	}
	return count > 0, nil
}

// Update 部分更新
// 教学要点:用map而不是结构体,否则GORM会忽略零值字段(如空字符串)
func (r *bookRepository) Update(ctx context.Context, id int64, changes book.Changes) error {
	updates := make(map[string]any, 3)
	if changes.Title != nil {
		updates["title"] = *changes.Title
	}
	if changes.Description != nil {
		updates["description"] = *changes.Description
	}
	if changes.CoverImage != nil {
		updates["cover_image"] = *changes.CoverImage
	}
	if len(updates) == 0 {
		return nil
	}

	if err := conn(ctx, r.db).Model(&BookModel{}).Where("id = ?", id).Updates(updates).Error; err != nil {
		return apperrors.Wrap(err, "更新图书失败")
	}
	return nil
}

// SetPublished 设置发布状态
// 注意:MySQL的RowsAffected只统计真正变化的行,重复发布时为0,不能据此判断不存在
func (r *bookRepository) SetPublished(ctx context.Context, id int64, published bool) error {
	if err := conn(ctx, r.db).Model(&BookModel{}).Where("id = ?", id).Update("published", published).Error; err != nil {
		return apperrors.Wrap(err, "更新发布状态失败")
	}
	return nil
}

// Delete 删除图书及全部从属数据
// 顺序:图书行 → 章节的段落/评论/点赞 → 章节 → 图书评论/收藏/分类关联
func (r *bookRepository) Delete(ctx context.Context, id int64) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&BookModel{}, id)
		if result.Error != nil {
			return apperrors.Wrap(result.Error, "删除图书失败")
		}
		if result.RowsAffected == 0 {
			return book.ErrBookNotFound
		}

		var chapterIDs []int64
		if err := tx.Model(&ChapterModel{}).Where("book_id = ?", id).Pluck("id", &chapterIDs).Error; err != nil {
			return apperrors.Wrap(err, "查询章节失败")
		}
		if len(chapterIDs) > 0 {
			if err := deleteChapterChildren(tx, chapterIDs); err != nil {
				return err
			}
			if err := tx.Where("id IN ?", chapterIDs).Delete(&ChapterModel{}).Error; err != nil {
				return apperrors.Wrap(err, "删除章节失败")
			}
		}

		for _, model := range []any{&BookCommentModel{}, &BookLikeModel{}, &BookGenreModel{}} {
			if err := tx.Where("book_id = ?", id).Delete(model).Error; err != nil {
				return apperrors.Wrap(err, "删除图书关联数据失败")
			}
		}
		return nil
	})
}

// ListPublished 已发布图书
func (r *bookRepository) ListPublished(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	err := conn(ctx, r.db).
		Where("published = ?", true).
		Order("created_at DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}
	return toBookEntities(models), nil
}

// Search 搜索已发布图书(标题或简介包含关键词)
func (r *bookRepository) Search(ctx context.Context, query string) ([]*book.Book, error) {
	var models []BookModel
	pattern := likePattern(query)
	err := conn(ctx, r.db).
		Where("published = ?", true).
		Where("(title LIKE ? ESCAPE '!' OR description LIKE ? ESCAPE '!')", pattern, pattern).
		Order("created_at DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "搜索图书失败")
	}
	return toBookEntities(models), nil
}

// ListByAuthor 作者的全部图书(含未发布)
func (r *bookRepository) ListByAuthor(ctx context.Context, authorID int64) ([]*book.Book, error) {
	var models []BookModel
	err := conn(ctx, r.db).
		Where("author_id = ?", authorID).
		Order("created_at DESC, id DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询创作列表失败")
	}
	return toBookEntities(models), nil
}

// ListLikedBy 用户收藏的图书
func (r *bookRepository) ListLikedBy(ctx context.Context, userID int64) ([]*book.Book, error) {
	var models []BookModel
	err := conn(ctx, r.db).
		Select("books.*").
		Joins("JOIN book_likes ON book_likes.book_id = books.id").
		Where("book_likes.user_id = ?", userID).
		Order("books.created_at DESC, books.id DESC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询收藏列表失败")
	}
	return toBookEntities(models), nil
}

// LikedAmong 批量判断收藏状态(避免N+1)
func (r *bookRepository) LikedAmong(ctx context.Context, userID int64, bookIDs []int64) (map[int64]bool, error) {
	liked := make(map[int64]bool)
	if userID == 0 || len(bookIDs) == 0 {
		return liked, nil
	}

	var ids []int64
	err := conn(ctx, r.db).Model(&BookLikeModel{}).
		Where("user_id = ? AND book_id IN ?", userID, bookIDs).
		Pluck("book_id", &ids).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询收藏状态失败")
	}

	for _, id := range ids {
		liked[id] = true
	}
	return liked, nil
}

// =========================================
// 辅助函数:模型转换
// =========================================

// toBookEntity GORM模型 → 领域实体
func toBookEntity(model *BookModel) *book.Book {
	return &book.Book{
		ID:          model.ID,
		Title:       model.Title,
		Description: model.Description,
		CoverImage:  model.CoverImage,
		Published:   model.Published,
		AuthorID:    model.AuthorID,
		CreatedAt:   model.CreatedAt,
	}
}

func toBookEntities(models []BookModel) []*book.Book {
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books
}
