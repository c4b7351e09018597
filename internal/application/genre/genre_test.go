package genre_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookhub/internal/application/apptest"
	appgenre "github.com/xiebiao/bookhub/internal/application/genre"
	"github.com/xiebiao/bookhub/internal/application/view"
	"github.com/xiebiao/bookhub/internal/domain/genre"
	apperrors "github.com/xiebiao/bookhub/pkg/errors"
)

func TestCreateGenres(t *testing.T) {
	ctx := context.Background()
	env := apptest.New(t)
	uc := appgenre.NewCreateGenresUseCase(env.Genres, env.Tx, env.Cache)

	first, err := uc.Execute(ctx, []string{" Fantasy", "horror", "FANTASY"})
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "fantasy", first[0].Name)
	assert.Equal(t, "horror", first[1].Name)
	assert.Equal(t, 1, env.Cache.Invalidations)

	// 已存在的名称复用原ID
	second, err := uc.Execute(ctx, []string{"romance", "Horror"})
	require.NoError(t, err)
	require.Len(t, second, 2)
	assert.Equal(t, "romance", second[0].Name)
	assert.Equal(t, first[1].ID, second[1].ID)

	_, err = uc.Execute(ctx, []string{"  ", ""})
	assert.Equal(t, apperrors.ErrCodeInvalidParams, apperrors.GetAppError(err).Code)
}

func TestGetGenresByUsage(t *testing.T) {
	ctx := context.Background()
	env := apptest.New(t)
	env.SeedUser(t, 1, "alice")
	ids := env.SeedGenres(t, "fantasy", "horror", "romance", "unused")

	// fantasy×3, horror×2, romance×1
	for i := 0; i < 3; i++ {
		b := env.SeedBook(t, 1, "Book", true)
		assign := []int64{ids[0]}
		if i < 2 {
			assign = append(assign, ids[1])
		}
		if i == 0 {
			assign = append(assign, ids[2])
		}
		require.NoError(t, env.Genres.AddBookGenres(ctx, b.ID, assign))
	}

	want := []struct {
		name       string
		count      int64
		percentage float64
	}{
		{"fantasy", 3, 50},
		{"horror", 2, 33.33},
		{"romance", 1, 16.67},
		{"unused", 0, 0},
	}
	assertUsage := func(t *testing.T, got []view.GenreUsage) {
		t.Helper()
		require.Len(t, got, len(want))
		for i, w := range want {
			assert.Equal(t, w.name, got[i].Name)
			assert.Equal(t, w.count, got[i].UsageCount)
			assert.InDelta(t, w.percentage, got[i].Percentage, 0.001)
		}
	}

	t.Run("不启用缓存", func(t *testing.T) {
		got, err := appgenre.NewGetGenresByUsageUseCase(env.Genres, nil, time.Minute).Execute(ctx)
		require.NoError(t, err)
		assertUsage(t, got)
	})

	t.Run("未命中时回填缓存,之后命中", func(t *testing.T) {
		cache := &apptest.Cache{}
		uc := appgenre.NewGetGenresByUsageUseCase(env.Genres, cache, time.Minute)

		got, err := uc.Execute(ctx)
		require.NoError(t, err)
		assertUsage(t, got)
		assert.Equal(t, 1, cache.Sets)

		got, err = uc.Execute(ctx)
		require.NoError(t, err)
		assertUsage(t, got)
		assert.Equal(t, 1, cache.Sets, "命中时不再回填")
	})

	t.Run("缓存出错时回源数据库", func(t *testing.T) {
		cache := &apptest.Cache{GetErr: errors.New("redis: connection refused")}
		got, err := appgenre.NewGetGenresByUsageUseCase(env.Genres, cache, time.Minute).Execute(ctx)
		require.NoError(t, err)
		assertUsage(t, got)
	})

	t.Run("缓存中的数据直接返回", func(t *testing.T) {
		cache := &apptest.Cache{}
		require.NoError(t, cache.Set(ctx, []genre.Usage{{ID: 9, Name: "cached", Count: 1, Percentage: 100}}, time.Minute))

		got, err := appgenre.NewGetGenresByUsageUseCase(env.Genres, cache, time.Minute).Execute(ctx)
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "cached", got[0].Name)
	})
}
