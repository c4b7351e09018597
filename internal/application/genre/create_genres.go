package genre

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/bookhub/internal/application/view"
	"github.com/xiebiao/bookhub/internal/domain/genre"
	"github.com/xiebiao/bookhub/internal/infrastructure/persistence/mysql"
	apperrors "github.com/xiebiao/bookhub/pkg/errors"
	"github.com/xiebiao/bookhub/pkg/logger"
	"github.com/xiebiao/bookhub/pkg/tracing"
)

// CreateGenresUseCase 批量创建分类
// 名称规范化(去空格+小写)后去重;已存在的名称直接复用
type CreateGenresUseCase struct {
	genreRepo genre.Repository
	txManager *mysql.TxManager
	cache     genre.UsageCache
}

// NewCreateGenresUseCase 创建用例
func NewCreateGenresUseCase(genreRepo genre.Repository, txManager *mysql.TxManager, cache genre.UsageCache) *CreateGenresUseCase {
	return &CreateGenresUseCase{
		genreRepo: genreRepo,
		txManager: txManager,
		cache:     cache,
	}
}

// Execute 返回顺序与规范化后的输入顺序一致
func (uc *CreateGenresUseCase) Execute(ctx context.Context, names []string) (resp []view.Genre, err error) {
	ctx, span := tracing.StartSpan(ctx, "genre.Create")
	defer func() { tracing.EndSpan(span, err) }()

	normalized := genre.NormalizeNames(names)
	if len(normalized) == 0 {
		return nil, apperrors.Validation(apperrors.FieldError{
			Field:   "name",
			Message: "至少需要一个非空的分类名",
		})
	}
	span.SetAttributes(attribute.Int("genre.count", len(normalized)))

	var genres []*genre.Genre
	err = uc.txManager.Transaction(ctx, func(ctx context.Context) error {
		var err error
		genres, err = uc.genreRepo.CreateOrGet(ctx, normalized)
		return err
	})
	if err != nil {
		return nil, err
	}

	// 新分类的使用次数为0,也要出现在统计中
	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx); err != nil {
			logger.L().Warn("删除分类统计缓存失败", zap.Error(err))
		}
	}
	return view.NewGenres(genres), nil
}
