package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"snaptok/internal/config"
	"snaptok/pkg/util"
)

const (
	// Redis key prefixes
	ResourceKeyPrefix = "st:res:"
	SlugKeyPrefix     = "st:slug:"
	// ShortURLCacheTTL caps how long a resource->short URL mapping stays
	// in the hot cache. Persistent truth lives in MySQL.
	ShortURLCacheTTL = 24 * time.Hour
)

// RedisRepository handles Redis operations
type RedisRepository struct {
	client *redis.Client
	cfg    *config.RedisConfig
}

// NewRedisRepository creates a new Redis repository
func NewRedisRepository(cfg *config.RedisConfig) *RedisRepository {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("Failed to connect to Redis")
	} else {
		log.Info().Msg("Redis connected successfully")
	}

	return &RedisRepository{
		client: rdb,
		cfg:    cfg,
	}
}

// GetClient returns the Redis client
func (r *RedisRepository) GetClient() *redis.Client {
	return r.client
}

// SaveShortURL caches the short URL for a resource URI. Resource URIs can
// exceed Redis key size comfort, so the key is an FNV hash of the URI.
func (r *RedisRepository) SaveShortURL(ctx context.Context, resourceURI, shortURL string, ttl time.Duration) error {
	return r.client.Set(ctx, r.resourceKey(resourceURI), shortURL, ttl).Err()
}

// GetShortURL looks up the cached short URL for a resource URI
func (r *RedisRepository) GetShortURL(ctx context.Context, resourceURI string) (string, error) {
	return r.client.Get(ctx, r.resourceKey(resourceURI)).Result()
}

// DeleteShortURL evicts the cached short URL for a resource URI
func (r *RedisRepository) DeleteShortURL(ctx context.Context, resourceURI string) error {
	return r.client.Del(ctx, r.resourceKey(resourceURI)).Err()
}

// SaveSlugTarget caches the redirect target for a slug
func (r *RedisRepository) SaveSlugTarget(ctx context.Context, slug, resourceURI string, ttl time.Duration) error {
	return r.client.Set(ctx, SlugKeyPrefix+slug, resourceURI, ttl).Err()
}

// GetSlugTarget looks up the cached redirect target for a slug
func (r *RedisRepository) GetSlugTarget(ctx context.Context, slug string) (string, error) {
	return r.client.Get(ctx, SlugKeyPrefix+slug).Result()
}

// Close closes the Redis connection
func (r *RedisRepository) Close() error {
	return r.client.Close()
}

func (r *RedisRepository) resourceKey(resourceURI string) string {
	return ResourceKeyPrefix + strconv.FormatUint(util.HashString(resourceURI), 16)
}
