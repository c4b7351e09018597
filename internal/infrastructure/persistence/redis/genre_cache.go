package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/xiebiao/bookhub/internal/domain/genre"
	apperrors "github.com/xiebiao/bookhub/pkg/errors"
)

// genreUsageKey 分类统计缓存key
// 统计结果是全局的,只有一个key;任何改变book_genres的写操作都会删除它
const genreUsageKey = "bookhub:genre:usage"

// GenreUsageCache 分类统计缓存(cache-aside)
// 读:先查缓存,未命中再查库并回填
// 写:先写库,再删缓存
type GenreUsageCache struct {
	client *redis.Client
}

// NewGenreUsageCache 创建分类统计缓存
// client为nil(未启用Redis)时返回nil接口,调用方据此跳过缓存
func NewGenreUsageCache(client *redis.Client) genre.UsageCache {
	if client == nil {
		return nil
	}
	return &GenreUsageCache{client: client}
}

// cachedUsage 缓存中的JSON结构(与领域类型解耦,字段名固定)
type cachedUsage struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

// Get 读取缓存,未命中返回(nil, false, nil)
func (c *GenreUsageCache) Get(ctx context.Context) ([]genre.Usage, bool, error) {
	data, err := c.client.Get(ctx, genreUsageKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, apperrors.Wrap(err, "读取分类统计缓存失败")
	}

	var cached []cachedUsage
	if err := json.Unmarshal(data, &cached); err != nil {
		// 缓存内容损坏按未命中处理,下次回填时覆盖
		return nil, false, nil
	}

	usages := make([]genre.Usage, len(cached))
	for i, u := range cached {
		usages[i] = genre.Usage{ID: u.ID, Name: u.Name, Count: u.Count, Percentage: u.Percentage}
	}
	return usages, true, nil
}

// Set 回填缓存
func (c *GenreUsageCache) Set(ctx context.Context, usages []genre.Usage, ttl time.Duration) error {
	cached := make([]cachedUsage, len(usages))
	for i, u := range usages {
		cached[i] = cachedUsage{ID: u.ID, Name: u.Name, Count: u.Count, Percentage: u.Percentage}
	}

	data, err := json.Marshal(cached)
	if err != nil {
		return apperrors.Wrap(err, "序列化分类统计失败")
	}

	if err := c.client.Set(ctx, genreUsageKey, data, ttl).Err(); err != nil {
		return apperrors.Wrap(err, "写入分类统计缓存失败")
	}
	return nil
}

// Invalidate 删除缓存
func (c *GenreUsageCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, genreUsageKey).Err(); err != nil {
		return apperrors.Wrap(err, "删除分类统计缓存失败")
	}
	return nil
}
