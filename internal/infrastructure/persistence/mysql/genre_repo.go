package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/bookhub/internal/domain/genre"
	apperrors "github.com/xiebiao/bookhub/pkg/errors"
)

// genreRepository 分类仓储
type genreRepository struct {
	db *gorm.DB
}

// NewGenreRepository 创建分类仓储
func NewGenreRepository(db *gorm.DB) genre.Repository {
	return &genreRepository{db: db}
}

// CreateOrGet 创建或复用分类
// 教学要点:
// 1. INSERT ... ON CONFLICT DO NOTHING(MySQL为ON DUPLICATE KEY UPDATE id=id),并发创建同名分类不会失败
// 2. 冲突时回填的ID不可靠,所以插入后按名称重新查询
func (r *genreRepository) CreateOrGet(ctx context.Context, names []string) ([]*genre.Genre, error) {
	if len(names) == 0 {
		return []*genre.Genre{}, nil
	}
	db := conn(ctx, r.db)

	models := make([]GenreModel, len(names))
	for i, name := range names {
		models[i] = GenreModel{Name: name}
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models).Error; err != nil {
		return nil, apperrors.Wrap(err, "创建分类失败")
	}

	var found []GenreModel
	if err := db.Where("name IN ?", names).Find(&found).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询分类失败")
	}

	byName := make(map[string]GenreModel, len(found))
	for _, m := range found {
		byName[m.Name] = m
	}

	genres := make([]*genre.Genre, 0, len(names))
	for _, name := range names {
		m, ok := byName[name]
		if !ok {
			return nil, apperrors.Wrapf(nil, "分类%q写入后未找到", name)
		}
		genres = append(genres, &genre.Genre{ID: m.ID, Name: m.Name})
	}
	return genres, nil
}

// MissingIDs 返回不存在的分类ID(保持输入顺序)
func (r *genreRepository) MissingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var existing []int64
	if err := conn(ctx, r.db).Model(&GenreModel{}).Where("id IN ?", ids).Pluck("id", &existing).Error; err != nil {
		return nil, apperrors.Wrap(err, "查询分类失败")
	}

	exists := make(map[int64]struct{}, len(existing))
	for _, id := range existing {
		exists[id] = struct{}{}
	}

	var missing []int64
	for _, id := range ids {
		if _, ok := exists[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

func (r *genreRepository) ListByBook(ctx context.Context, bookID int64) ([]*genre.Genre, error) {
	byBook, err := r.ListByBooks(ctx, []int64{bookID})
	if err != nil {
		return nil, err
	}
	if genres, ok := byBook[bookID]; ok {
		return genres, nil
	}
	return []*genre.Genre{}, nil
}

// ListByBooks 一次查询多本图书的分类(列表页避免N+1)
func (r *genreRepository) ListByBooks(ctx context.Context, bookIDs []int64) (map[int64][]*genre.Genre, error) {
	result := make(map[int64][]*genre.Genre)
	if len(bookIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		BookID int64
		ID     int64
		Name   string
	}
	err := conn(ctx, r.db).Table("book_genres").
		Select("book_genres.book_id, genres.id, genres.name").
		Joins("JOIN genres ON genres.id = book_genres.genre_id").
		Where("book_genres.book_id IN ?", bookIDs).
		Order("genres.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书分类失败")
	}

	for _, row := range rows {
		result[row.BookID] = append(result[row.BookID], &genre.Genre{ID: row.ID, Name: row.Name})
	}
	return result, nil
}

func (r *genreRepository) AddBookGenres(ctx context.Context, bookID int64, genreIDs []int64) error {
	if len(genreIDs) == 0 {
		return nil
	}

	models := make([]BookGenreModel, len(genreIDs))
	for i, id := range genreIDs {
		models[i] = BookGenreModel{BookID: bookID, GenreID: id}
	}
	if err := conn(ctx, r.db).Clauses(clause.OnConflict{DoNothing: true}).Create(&models).Error; err != nil {
		return apperrors.Wrap(err, "添加图书分类失败")
	}
	return nil
}

func (r *genreRepository) ReplaceBookGenres(ctx context.Context, bookID int64, genreIDs []int64) error {
	if err := conn(ctx, r.db).Where("book_id = ?", bookID).Delete(&BookGenreModel{}).Error; err != nil {
		return apperrors.Wrap(err, "删除图书分类失败")
	}
	return r.AddBookGenres(ctx, bookID, genreIDs)
}

// UsageCounts 每个分类的引用次数
// LEFT JOIN保证未被使用的分类也出现(次数为0)
func (r *genreRepository) UsageCounts(ctx context.Context) ([]genre.Count, error) {
	var rows []struct {
		ID         int64
		Name       string
		UsageCount int64
	}
	err := conn(ctx, r.db).Table("genres").
		Select("genres.id, genres.name, COUNT(book_genres.book_id) AS usage_count").
		Joins("LEFT JOIN book_genres ON book_genres.genre_id = genres.id").
		Group("genres.id, genres.name").
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "统计分类使用次数失败")
	}

	counts := make([]genre.Count, len(rows))
	for i, row := range rows {
		counts[i] = genre.Count{ID: row.ID, Name: row.Name, Count: row.UsageCount}
	}
	return counts, nil
}
