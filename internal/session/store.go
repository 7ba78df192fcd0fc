package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
)

// ErrUnavailable — хранилище сессий недоступно. На auth-путях
// вызывающие обязаны трактовать это как отказ в доступе (fail closed).
var ErrUnavailable = errors.New("session store unavailable")

// Store — эфемерное key-value хранилище с TTL на ключ.
// Отсутствующий или истёкший ключ — нормальный исход (ok=false), не ошибка.
type Store interface {
	Put(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Delete(ctx context.Context, key string) error
	Available(ctx context.Context) bool
}

// RedisStore реализует Store поверх Redis: SETEX/GET/DEL.
// Истечение ключей обеспечивает сам Redis.
type RedisStore struct {
	pool *redis.Pool
}

// NewRedisStore создаёт хранилище поверх пула подключений по redis:// URL.
func NewRedisStore(url string) *RedisStore {
	pool := &redis.Pool{
		MaxIdle:     3,
		IdleTimeout: 240 * time.Second,
		DialContext: func(ctx context.Context) (redis.Conn, error) {
			return redis.DialURLContext(ctx, url)
		},
	}
	return &RedisStore{pool: pool}
}

func (s *RedisStore) Put(ctx context.Context, key, value string, ttl time.Duration) error {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer conn.Close()

	if _, err := conn.Do("SETEX", key, int(ttl.Seconds()), value); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer conn.Close()

	value, err := redis.String(conn.Do("GET", key))
	if errors.Is(err, redis.ErrNil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return value, true, nil
}

func (s *RedisStore) Delete(ctx context.Context, key string) error {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer conn.Close()

	if _, err := conn.Do("DEL", key); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (s *RedisStore) Available(ctx context.Context) bool {
	conn, err := s.pool.GetContext(ctx)
	if err != nil {
		return false
	}
	defer conn.Close()

	_, err = conn.Do("PING")
	return err == nil
}

// Close освобождает пул подключений.
func (s *RedisStore) Close() error {
	return s.pool.Close()
}
