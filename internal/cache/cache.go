// cache — кэш справочников (жанры, рейтинги MPA) в Redis.
// Справочники неизменяемы во время работы, поэтому кэшируются целиком с TTL.
package cache

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strconv"
	"time"

	"github.com/pribylovaa/go-filmorate/internal/models"
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -source=cache.go -destination=../../mocks/dictionary_cache.go -package=mocks

// DictionaryCache — минимальный контракт кэша справочников.
type DictionaryCache interface {
	// Genres возвращает жанры и признак их наличия в кэше.
	Genres(ctx context.Context) ([]models.Genre, bool, error)
	// SetGenres сохраняет полный список жанров.
	SetGenres(ctx context.Context, genres []models.Genre) error
	// Ratings возвращает рейтинги и признак их наличия в кэше.
	Ratings(ctx context.Context) ([]models.Rating, bool, error)
	// SetRatings сохраняет полный список рейтингов.
	SetRatings(ctx context.Context, ratings []models.Rating) error
	// Close закрывает клиент Redis.
	Close() error
}

const (
	defaultPrefix = "filmorate:dict:"
	defaultTTL    = time.Hour

	genresKey  = "genres"
	ratingsKey = "ratings"
)

type redisCache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache создаёт клиент Redis из URL (например, redis://:pass@host:6379/0).
// Пустой prefix заменяется на "filmorate:dict:", ttl <= 0 — на час.
func NewRedisCache(ctx context.Context, redisURL, prefix string, ttl time.Duration) (DictionaryCache, error) {
	const op = "cache/NewRedisCache"

	if prefix == "" {
		prefix = defaultPrefix
	}

	if ttl <= 0 {
		ttl = defaultTTL
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &redisCache{rdb: rdb, prefix: prefix, ttl: ttl}, nil
}

func (c *redisCache) key(name string) string { return c.prefix + name }

// Храним как Redis Hash: поле — id, значение — название.
func (c *redisCache) load(ctx context.Context, name string) (map[int64]string, bool, error) {
	m, err := c.rdb.HGetAll(ctx, c.key(name)).Result()
	if err != nil {
		return nil, false, err
	}

	if len(m) == 0 {
		return nil, false, nil
	}

	out := make(map[int64]string, len(m))
	for field, value := range m {
		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, false, fmt.Errorf("cache: bad %s field %q: %w", name, field, err)
		}
		out[id] = value
	}

	return out, true, nil
}

func (c *redisCache) store(ctx context.Context, name string, kv map[string]any) error {
	if len(kv) == 0 {
		return nil
	}

	pipe := c.rdb.TxPipeline()
	pipe.Del(ctx, c.key(name))
	pipe.HSet(ctx, c.key(name), kv)
	pipe.Expire(ctx, c.key(name), c.ttl)

	_, err := pipe.Exec(ctx)
	return err
}

func (c *redisCache) Genres(ctx context.Context) ([]models.Genre, bool, error) {
	m, ok, err := c.load(ctx, genresKey)
	if err != nil || !ok {
		return nil, false, err
	}

	out := make([]models.Genre, 0, len(m))
	for id, name := range m {
		out = append(out, models.Genre{ID: id, Name: name})
	}
	slices.SortFunc(out, func(a, b models.Genre) int { return cmp.Compare(a.ID, b.ID) })

	return out, true, nil
}

func (c *redisCache) SetGenres(ctx context.Context, genres []models.Genre) error {
	kv := make(map[string]any, len(genres))
	for _, g := range genres {
		kv[strconv.FormatInt(g.ID, 10)] = g.Name
	}

	return c.store(ctx, genresKey, kv)
}

func (c *redisCache) Ratings(ctx context.Context) ([]models.Rating, bool, error) {
	m, ok, err := c.load(ctx, ratingsKey)
	if err != nil || !ok {
		return nil, false, err
	}

	out := make([]models.Rating, 0, len(m))
	for id, name := range m {
		out = append(out, models.Rating{ID: id, Name: name})
	}
	slices.SortFunc(out, func(a, b models.Rating) int { return cmp.Compare(a.ID, b.ID) })

	return out, true, nil
}

func (c *redisCache) SetRatings(ctx context.Context, ratings []models.Rating) error {
	kv := make(map[string]any, len(ratings))
	for _, r := range ratings {
		kv[strconv.FormatInt(r.ID, 10)] = r.Name
	}

	return c.store(ctx, ratingsKey, kv)
}

func (c *redisCache) Close() error { return c.rdb.Close() }
