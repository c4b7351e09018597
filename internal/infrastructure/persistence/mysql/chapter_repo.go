package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookhub/internal/domain/chapter"
	apperrors "github.com/xiebiao/bookhub/pkg/errors"
)

// chapterRepository 章节与段落仓储实现
type chapterRepository struct {
	db *gorm.DB
}

// NewChapterRepository 创建章节仓储
func NewChapterRepository(db *gorm.DB) chapter.Repository {
	return &chapterRepository{db: db}
}

func (r *chapterRepository) Create(ctx context.Context, c *chapter.Chapter) error {
	model := &ChapterModel{
		BookID:    c.BookID,
		Title:     c.Title,
		Published: c.Published,
	}
	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		return apperrors.Wrap(err, "创建章节失败")
	}

	c.ID = model.ID
	c.CreatedAt = model.CreatedAt
	return nil
}

func (r *chapterRepository) FindByID(ctx context.Context, id int64) (*chapter.Chapter, error) {
	return r.find(conn(ctx, r.db), id)
}

// LockByID 悲观锁查询章节
// 教学要点:
// 1. SELECT ... FOR UPDATE锁定章节行,同一章节的并发追加在这里排队
// 2. 锁在事务提交/回滚时释放,所以必须在TxManager.Transaction中调用
func (r *chapterRepository) LockByID(ctx context.Context, id int64) (*chapter.Chapter, error) {
	return r.find(conn(ctx, r.db).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *chapterRepository) find(db *gorm.DB, id int64) (*chapter.Chapter, error) {
	var model ChapterModel
	if err := db.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, chapter.ErrChapterNotFound
		}
		return nil, apperrors.Wrap(err, "查询章节失败")
	}
	return toChapterEntity(&model), nil
}

func (r *chapterRepository) ListByBook(ctx context.Context, bookID int64, includeUnpublished bool) ([]*chapter.Chapter, error) {
	query := conn(ctx, r.db).Where("book_id = ?", bookID)
	if !includeUnpublished {
		query = query.Where("published = ?", true)
	}

	var models []ChapterModel
	if err := query.Order("created_at ASC, id ASC").Find(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询章节列表失败")
	}

	chapters := make([]*chapter.Chapter, len(models))
	for i := range models {
		chapters[i] = toChapterEntity(&models[i])
	}
	return chapters, nil
}

func (r *chapterRepository) SetPublished(ctx context.Context, id int64, published bool) error {
	if err := conn(ctx, r.db).Model(&ChapterModel{}).Where("id = ?", id).Update("published", published).Error; err != nil {
		return apperrors.Wrap(err, "更新发布状态失败")
	}
	return nil
}

func (r *chapterRepository) Delete(ctx context.Context, id int64) error {
	return conn(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&ChapterModel{}, id)
		if result.Error != nil {
			return apperrors.Wrap(result.Error, "删除章节失败")
		}
		if result.RowsAffected == 0 {
			return chapter.ErrChapterNotFound
		}
		return deleteChapterChildren(tx, []int64{id})
	})
}

func (r *chapterRepository) IsLiked(ctx context.Context, chapterID, userID int64) (bool, error) {
	if userID == 0 {
		return false, nil
	}

	var count int64
	err := conn(ctx, r.db).Model(&ChapterLikeModel{}).
		Where("chapter_id = ? AND user_id = ?", chapterID, userID).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(err, "查询点赞状态失败")
	}
	return count > 0, nil
}

// MaxParagraphNumber 当前最大段落序号
func (r *chapterRepository) MaxParagraphNumber(ctx context.Context, chapterID int64) (int, error) {
	var maxNumber int
	row := conn(ctx, r.db).Model(&ParagraphModel{}).
		Select("COALESCE(MAX(paragraph_number), 0)").
		Where("chapter_id = ?", chapterID).
		Row()
	if err := row.Scan(&maxNumber); err != nil {
		return 0, apperrors.Wrap(err, "查询段落序号失败")
	}
	return maxNumber, nil
}

// CreateParagraphs 批量插入段落
// 序号冲突说明有并发写入绕过了章节锁,直接作为内部错误返回
func (r *chapterRepository) CreateParagraphs(ctx context.Context, paragraphs []*chapter.Paragraph) error {
	if len(paragraphs) == 0 {
		return nil
	}

	models := make([]ParagraphModel, len(paragraphs))
	for i, p := range paragraphs {
		models[i] = ParagraphModel{
			ChapterID:       p.ChapterID,
			ParagraphNumber: p.Number,
			Content:         p.Content,
		}
	}

	if err := conn(ctx, r.db).Create(&models).Error; err != nil {
		if isDuplicateError(err) {
			return apperrors.Wrap(err, "段落序号冲突")
		}
		return apperrors.Wrap(err, "追加段落失败")
	}

	for i := range models {
		paragraphs[i].ID = models[i].ID
	}
	return nil
}

func (r *chapterRepository) ListParagraphs(ctx context.Context, chapterID int64) ([]*chapter.Paragraph, error) {
	var models []ParagraphModel
	err := conn(ctx, r.db).
		Where("chapter_id = ?", chapterID).
		Order("paragraph_number ASC").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询段落失败")
	}

	paragraphs := make([]*chapter.Paragraph, len(models))
	for i, m := range models {
		paragraphs[i] = &chapter.Paragraph{
			ID:        m.ID,
			ChapterID: m.ChapterID,
			Number:    m.ParagraphNumber,
			Content:   m.Content,
		}
	}
	return paragraphs, nil
}

// deleteChapterChildren 删除章节的段落、评论、点赞
func deleteChapterChildren(tx *gorm.DB, chapterIDs []int64) error {
	for _, model := range []any{&ParagraphModel{}, &ChapterCommentModel{}, &ChapterLikeModel{}} {
		if err := tx.Where("chapter_id IN ?", chapterIDs).Delete(model).Error; err != nil {
			return apperrors.Wrap(err, "删除章节关联数据失败")
		}
	}
	return nil
}

func toChapterEntity(model *ChapterModel) *chapter.Chapter {
	return &chapter.Chapter{
		ID:        model.ID,
		BookID:    model.BookID,
		Title:     model.Title,
		Published: model.Published,
		CreatedAt: model.CreatedAt,
	}
}
