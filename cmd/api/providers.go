package main

import (
	appgenre "github.com/xiebiao/bookhub/internal/application/genre"
	"github.com/xiebiao/bookhub/internal/domain/genre"
	"github.com/xiebiao/bookhub/internal/infrastructure/config"
	"github.com/xiebiao/bookhub/pkg/jwt"
)

// 自定义Provider
// 构造函数需要的参数不是直接的类型,要从Config中提取,Wire无法自动推断

// provideJWTManager 从配置创建JWT管理器
func provideJWTManager(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpire)
}

// provideGenreUsageUseCase 缓存TTL来自cache.genre_usage_ttl
func provideGenreUsageUseCase(cfg *config.Config, genreRepo genre.Repository, cache genre.UsageCache) *appgenre.GetGenresByUsageUseCase {
	return appgenre.NewGetGenresByUsageUseCase(genreRepo, cache, cfg.Cache.GenreUsageTTL)
}
