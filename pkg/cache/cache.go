package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrUnavailable Redis 미연결 상태
var ErrUnavailable = errors.New("redis not available")

// Service Redis 캐시 서비스 인터페이스 (string/list 연산)
type Service interface {
	// 문자열 값
	GetString(ctx context.Context, key string) (string, bool, error)
	SetString(ctx context.Context, key, value string, ttl time.Duration) error
	SetStringNX(ctx context.Context, key, value string) (bool, error)
	Incr(ctx context.Context, key string) (int64, error)
	MGet(ctx context.Context, keys ...string) (map[string]string, error)

	// 리스트 값
	ListRange(ctx context.Context, key string) ([]string, error)
	ListPush(ctx context.Context, key string, values ...string) error
	ReplaceList(ctx context.Context, key string, values []string) error

	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)

	// 유틸리티
	IsAvailable() bool
	Ping(ctx context.Context) error
}

// redisCache Redis 기반 캐시 구현
type redisCache struct {
	client *redis.Client
}

// NewService 새로운 캐시 서비스 생성. client가 nil이면 모든 연산이 ErrUnavailable을 반환한다.
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

// IsAvailable Redis 연결 가능 여부
func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

// Ping Redis 연결 테스트
func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return ErrUnavailable
	}
	return c.client.Ping(ctx).Err()
}

// GetString returns the value and whether the key exists
func (c *redisCache) GetString(ctx context.Context, key string) (string, bool, error) {
	if c.client == nil {
		return "", false, ErrUnavailable
	}
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (c *redisCache) SetString(ctx context.Context, key, value string, ttl time.Duration) error {
	if c.client == nil {
		return ErrUnavailable
	}
	return c.client.Set(ctx, key, value, ttl).Err()
}

func (c *redisCache) SetStringNX(ctx context.Context, key, value string) (bool, error) {
	if c.client == nil {
		return false, ErrUnavailable
	}
	return c.client.SetNX(ctx, key, value, 0).Result()
}

func (c *redisCache) Incr(ctx context.Context, key string) (int64, error) {
	if c.client == nil {
		return 0, ErrUnavailable
	}
	return c.client.Incr(ctx, key).Result()
}

// MGet returns only the keys that exist
func (c *redisCache) MGet(ctx context.Context, keys ...string) (map[string]string, error) {
	result := make(map[string]string, len(keys))
	if len(keys) == 0 {
		return result, nil
	}
	if c.client == nil {
		return nil, ErrUnavailable
	}
	vals, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}
	for i, v := range vals {
		if s, ok := v.(string); ok {
			result[keys[i]] = s
		}
	}
	return result, nil
}

func (c *redisCache) ListRange(ctx context.Context, key string) ([]string, error) {
	if c.client == nil {
		return nil, ErrUnavailable
	}
	return c.client.LRange(ctx, key, 0, -1).Result()
}

func (c *redisCache) ListPush(ctx context.Context, key string, values ...string) error {
	if c.client == nil {
		return ErrUnavailable
	}
	if len(values) == 0 {
		return nil
	}
	args := make([]interface{}, len(values))
	for i, v := range values {
		args[i] = v
	}
	return c.client.RPush(ctx, key, args...).Err()
}

// ReplaceList deletes the key and pushes values inside one MULTI block
func (c *redisCache) ReplaceList(ctx context.Context, key string, values []string) error {
	if c.client == nil {
		return ErrUnavailable
	}
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(values) > 0 {
			args := make([]interface{}, len(values))
			for i, v := range values {
				args[i] = v
			}
			pipe.RPush(ctx, key, args...)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("replace list %s: %w", key, err)
	}
	return nil
}

// Delete 캐시 삭제
func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

// Exists 캐시 존재 여부 확인
func (c *redisCache) Exists(ctx context.Context, key string) (bool, error) {
	if c.client == nil {
		return false, ErrUnavailable
	}
	n, err := c.client.Exists(ctx, key).Result()
	return n > 0, err
}
