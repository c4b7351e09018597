package book

import (
	"context"

	"go.uber.org/zap"

	"github.com/xiebiao/bookhub/internal/domain/genre"
	"github.com/xiebiao/bookhub/pkg/logger"
)

// checkGenreIDs 写入前校验引用的分类都存在
func checkGenreIDs(ctx context.Context, genreRepo genre.Repository, genreIDs []int64) error {
	if len(genreIDs) == 0 {
		return nil
	}
	missing, err := genreRepo.MissingIDs(ctx, genre.UniqueIDs(genreIDs))
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return genre.ErrInvalidGenre
	}
	return nil
}

// resolveGenres 创建/复用新分类名,与已有分类ID合并去重
// 必须在事务中调用
func resolveGenres(ctx context.Context, genreRepo genre.Repository, genreIDs []int64, newGenres []string) ([]int64, error) {
	var created []int64
	if names := genre.NormalizeNames(newGenres); len(names) > 0 {
		genres, err := genreRepo.CreateOrGet(ctx, names)
		if err != nil {
			return nil, err
		}
		for _, g := range genres {
			created = append(created, g.ID)
		}
	}
	return genre.UniqueIDs(genreIDs, created), nil
}

// invalidateUsageCache 删除分类统计缓存,失败只记日志(缓存会按TTL过期)
func invalidateUsageCache(ctx context.Context, cache genre.UsageCache) {
	if cache == nil {
		return
	}
	if err := cache.Invalidate(ctx); err != nil {
		logger.L().Warn("删除分类统计缓存失败", zap.Error(err))
	}
}
