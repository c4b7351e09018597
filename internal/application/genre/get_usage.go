package genre

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/bookhub/internal/application/view"
	"github.com/xiebiao/bookhub/internal/domain/genre"
	"github.com/xiebiao/bookhub/pkg/logger"
	"github.com/xiebiao/bookhub/pkg/metrics"
	"github.com/xiebiao/bookhub/pkg/tracing"
)

// GetGenresByUsageUseCase 分类使用统计
// 读路径:Redis缓存(可选) → 未命中则聚合查询并回填
// 缓存出错时记录日志并直接查库,不影响结果
type GetGenresByUsageUseCase struct {
	genreRepo genre.Repository
	cache     genre.UsageCache // nil表示未启用缓存
	ttl       time.Duration
	log       *zap.Logger
}

// NewGetGenresByUsageUseCase 创建用例
func NewGetGenresByUsageUseCase(genreRepo genre.Repository, cache genre.UsageCache, ttl time.Duration) *GetGenresByUsageUseCase {
	return &GetGenresByUsageUseCase{
		genreRepo: genreRepo,
		cache:     cache,
		ttl:       ttl,
		log:       logger.Named("genre"),
	}
}

// Execute 按使用次数降序,次数相同按名称升序
func (uc *GetGenresByUsageUseCase) Execute(ctx context.Context) (resp []view.GenreUsage, err error) {
	ctx, span := tracing.StartSpan(ctx, "genre.GetByUsage")
	defer func() { tracing.EndSpan(span, err) }()

	if uc.cache != nil {
		usages, hit, err := uc.cache.Get(ctx)
		switch {
		case err != nil:
			metrics.IncCounterVec(metrics.GenreUsageCacheTotal, map[string]string{"result": "error"})
			uc.log.Warn("读取分类统计缓存失败,回源数据库", zap.Error(err))
		case hit:
			metrics.IncCounterVec(metrics.GenreUsageCacheTotal, map[string]string{"result": "hit"})
			return view.NewGenreUsages(usages), nil
		default:
			metrics.IncCounterVec(metrics.GenreUsageCacheTotal, map[string]string{"result": "miss"})
		}
	}

	counts, err := uc.genreRepo.UsageCounts(ctx)
	if err != nil {
		return nil, err
	}
	usages := genre.ComputeUsage(counts)

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, usages, uc.ttl); err != nil {
			uc.log.Warn("写入分类统计缓存失败", zap.Error(err))
		}
	}
	return view.NewGenreUsages(usages), nil
}
