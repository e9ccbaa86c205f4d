// Package cache guarda resultados de estatísticas já calculados
package cache

import (
	"context"
	"errors"
	"time"

	"github.com/alioth/insurance-sales-api/internal/config"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss indica que a chave não existe no cache
var ErrCacheMiss = errors.New("chave não encontrada no cache")

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

type redisCache struct {
	rdb *redis.Client
}

// New cria o cache Redis. Sem endereço configurado, devolve um cache que
// nunca armazena nada.
func New(cfg config.Redis) Cache {
	if cfg.Addr == "" {
		return noopCache{}
	}

	return NewRedisCache(redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	}))
}

func NewRedisCache(rdb *redis.Client) Cache {
	return &redisCache{rdb: rdb}
}

func (c *redisCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}
	return value, nil
}

func (c *redisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.rdb.Set(ctx, key, value, ttl).Err()
}

func (c *redisCache) Close() error {
	return c.rdb.Close()
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) ([]byte, error) {
	return nil, ErrCacheMiss
}

func (noopCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (noopCache) Close() error {
	return nil
}
