package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nstepanov-dev/shortener/internal/model"
)

const (
	keyPrefix  = "shortener:code:"
	defaultTTL = 24 * time.Hour
)

// URLCache кэширует маппинг код-URL в Redis.
// Маппинги после создания не меняются, поэтому закэшированный URL
// не может устареть, TTL ограничивает только размер кэша
type URLCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New подключается к Redis и проверяет соединение
func New(ctx context.Context, addr string) (*URLCache, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return &URLCache{
		client: client,
		ttl:    defaultTTL,
	}, nil
}

// Get возвращает URL для кода. found=false при промахе
func (c *URLCache) Get(ctx context.Context, code model.Code) (model.URL, bool, error) {
	value, err := c.client.Get(ctx, keyPrefix+string(code)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get from redis: %w", err)
	}

	return model.URL(value), true, nil
}

// Set сохраняет маппинг кода на URL
func (c *URLCache) Set(ctx context.Context, code model.Code, url model.URL) error {
	if err := c.client.Set(ctx, keyPrefix+string(code), string(url), c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in redis: %w", err)
	}

	return nil
}

// Close закрывает подключение к Redis
func (c *URLCache) Close() error {
	return c.client.Close()
}
