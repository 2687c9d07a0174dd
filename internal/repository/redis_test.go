package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snaptok/internal/config"
)

func newTestRedisRepo(t *testing.T) (*RedisRepository, *miniredis.Miniredis) {
	s := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: s.Addr()})

	return &RedisRepository{
		client: client,
		cfg: &config.RedisConfig{
			Addr:     s.Addr(),
			Password: "",
			DB:       0,
		},
	}, s
}

func TestNewRedisRepository(t *testing.T) {
	s := miniredis.RunT(t)
	defer s.Close()

	cfg := &config.RedisConfig{
		Addr:     s.Addr(),
		Password: "",
		DB:       0,
	}

	repo := NewRedisRepository(cfg)

	assert.NotNil(t, repo)
	assert.NotNil(t, repo.client)
	assert.Equal(t, cfg, repo.cfg)

	repo.Close()
}

func TestRedisRepository_ShortURLCache(t *testing.T) {
	repo, s := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()
	resourceURI := "https://v16.example.com/aweme/v1/play/?video_id=7068971038273423621"

	t.Run("save and get", func(t *testing.T) {
		err := repo.SaveShortURL(ctx, resourceURI, "https://s.example.com/Ab3dEf9h", ShortURLCacheTTL)
		require.NoError(t, err)

		url, err := repo.GetShortURL(ctx, resourceURI)
		assert.NoError(t, err)
		assert.Equal(t, "https://s.example.com/Ab3dEf9h", url)
	})

	t.Run("miss for unknown resource", func(t *testing.T) {
		_, err := repo.GetShortURL(ctx, "https://other.example.com/media")
		assert.Equal(t, redis.Nil, err)
	})

	t.Run("expires with TTL", func(t *testing.T) {
		err := repo.SaveShortURL(ctx, resourceURI, "https://s.example.com/Ab3dEf9h", time.Minute)
		require.NoError(t, err)

		s.FastForward(2 * time.Minute)

		_, err = repo.GetShortURL(ctx, resourceURI)
		assert.Equal(t, redis.Nil, err)
	})

	t.Run("delete evicts", func(t *testing.T) {
		err := repo.SaveShortURL(ctx, resourceURI, "https://s.example.com/Ab3dEf9h", ShortURLCacheTTL)
		require.NoError(t, err)

		err = repo.DeleteShortURL(ctx, resourceURI)
		require.NoError(t, err)

		_, err = repo.GetShortURL(ctx, resourceURI)
		assert.Equal(t, redis.Nil, err)
	})
}

func TestRedisRepository_SlugTarget(t *testing.T) {
	repo, _ := newTestRedisRepo(t)
	defer repo.Close()

	ctx := context.Background()

	err := repo.SaveSlugTarget(ctx, "Ab3dEf9h", "https://v16.example.com/aweme/v1/play/?video_id=1", ShortURLCacheTTL)
	require.NoError(t, err)

	target, err := repo.GetSlugTarget(ctx, "Ab3dEf9h")
	assert.NoError(t, err)
	assert.Equal(t, "https://v16.example.com/aweme/v1/play/?video_id=1", target)

	_, err = repo.GetSlugTarget(ctx, "missing1")
	assert.Equal(t, redis.Nil, err)
}
