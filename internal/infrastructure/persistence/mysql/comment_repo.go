package mysql

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/bookhub/internal/domain/comment"
	apperrors "github.com/xiebiao/bookhub/pkg/errors"
)

// commentRepository 评论仓储
// 图书评论和章节评论分表存储,按Target选择表和外键列
type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建评论仓储
func NewCommentRepository(db *gorm.DB) comment.Repository {
	return &commentRepository{db: db}
}

// commentRow 两张评论表的公共列
type commentRow struct {
	ID        int64
	TargetID  int64
	UserID    int64
	Comment   string
	CreatedAt time.Time
}

func (r *commentRepository) Create(ctx context.Context, c *comment.Comment) error {
	db := conn(ctx, r.db)

	switch c.Target {
	case comment.TargetBook:
		model := &BookCommentModel{BookID: c.TargetID, UserID: c.UserID, Comment: c.Body}
		if err := db.Create(model).Error; err != nil {
			return apperrors.Wrap(err, "创建评论失败")
		}
		c.ID, c.CreatedAt = model.ID, model.CreatedAt
	case comment.TargetChapter:
		model := &ChapterCommentModel{ChapterID: c.TargetID, UserID: c.UserID, Comment: c.Body}
		if err := db.Create(model).Error; err != nil {
			return apperrors.Wrap(err, "创建评论失败")
		}
		c.ID, c.CreatedAt = model.ID, model.CreatedAt
	default:
		return apperrors.Wrapf(nil, "未知的评论对象: %s", c.Target)
	}
	return nil
}

// ListByTarget 最新的评论在前
func (r *commentRepository) ListByTarget(ctx context.Context, target comment.Target, targetID int64) ([]*comment.Comment, error) {
	table, column, err := commentTable(target)
	if err != nil {
		return nil, err
	}

	var rows []commentRow
	err = conn(ctx, r.db).Table(table).
		Select("id, "+column+" AS target_id, user_id, comment, created_at").
		Where(column+" = ?", targetID).
		Order("created_at DESC, id DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询评论失败")
	}

	comments := make([]*comment.Comment, len(rows))
	for i, row := range rows {
		comments[i] = &comment.Comment{
			ID:        row.ID,
			Target:    target,
			TargetID:  row.TargetID,
			UserID:    row.UserID,
			Body:      row.Comment,
			CreatedAt: row.CreatedAt,
		}
	}
	return comments, nil
}

func (r *commentRepository) Delete(ctx context.Context, target comment.Target, id int64) error {
	var model any
	switch target {
	case comment.TargetBook:
		model = &BookCommentModel{}
	case comment.TargetChapter:
		model = &ChapterCommentModel{}
	default:
		return apperrors.Wrapf(nil, "未知的评论对象: %s", target)
	}

	result := conn(ctx, r.db).Delete(model, id)
	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除评论失败")
	}
	if result.RowsAffected == 0 {
		return comment.ErrCommentNotFound
	}
	return nil
}

func commentTable(target comment.Target) (table, column string, err error) {
	switch target {
	case comment.TargetBook:
		return BookCommentModel{}.TableName(), "book_id", nil
	case comment.TargetChapter:
		return ChapterCommentModel{}.TableName(), "chapter_id", nil
	default:
		return "", "", apperrors.Wrapf(nil, "未知的评论对象: %s", target)
	}
}
