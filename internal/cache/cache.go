// cache — read-through кэш публичных профилей поверх Redis.
// Отсутствие Redis в конфигурации заменяется Noop.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/chirper/internal/models"
	"github.com/redis/go-redis/v9"
)

// ProfileCache — контракт кэша публичных профилей.
type ProfileCache interface {
	// Get возвращает профиль и признак попадания.
	Get(ctx context.Context, id uuid.UUID) (*models.PublicProfile, bool, error)
	Set(ctx context.Context, p *models.PublicProfile) error
	Delete(ctx context.Context, id uuid.UUID) error
	Close() error
}

// entry — представление профиля в Redis.
type entry struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Bio         string    `json:"bio"`
	AvatarURL   string    `json:"avatar_url"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type redisCache struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache создаёт клиент Redis из URL (redis://:pass@host:6379/0) и проверяет соединение.
func NewRedisCache(ctx context.Context, redisURL, prefix string, ttl time.Duration) (ProfileCache, error) {
	const op = "cache.NewRedisCache"

	if prefix == "" {
		prefix = "chirper:profile:"
	}

	if ttl <= 0 {
		ttl = 5 * time.Minute
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &redisCache{rdb: rdb, prefix: prefix, ttl: ttl}, nil
}

func (c *redisCache) key(id uuid.UUID) string { return c.prefix + id.String() }

func (c *redisCache) Get(ctx context.Context, id uuid.UUID) (*models.PublicProfile, bool, error) {
	b, err := c.rdb.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, err
	}

	var e entry
	if err := json.Unmarshal(b, &e); err != nil {
		return nil, false, err
	}

	return &models.PublicProfile{
		ID:          e.ID,
		Username:    e.Username,
		DisplayName: e.DisplayName,
		Bio:         e.Bio,
		AvatarURL:   e.AvatarURL,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}, true, nil
}

func (c *redisCache) Set(ctx context.Context, p *models.PublicProfile) error {
	b, err := json.Marshal(entry{
		ID:          p.ID,
		Username:    p.Username,
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		AvatarURL:   p.AvatarURL,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	})
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, c.key(p.ID), b, c.ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, id uuid.UUID) error {
	return c.rdb.Del(ctx, c.key(id)).Err()
}

func (c *redisCache) Close() error { return c.rdb.Close() }

// Noop — кэш, который ничего не хранит.
type Noop struct{}

func (Noop) Get(context.Context, uuid.UUID) (*models.PublicProfile, bool, error) {
	return nil, false, nil
}

func (Noop) Set(context.Context, *models.PublicProfile) error { return nil }
func (Noop) Delete(context.Context, uuid.UUID) error { return nil }
func (Noop) Close() error { return nil }
