package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gomodule/redigo/redis"
)

// Job — задание на генерацию миниатюр для загруженного изображения.
// Доставка at-least-once: воркер обязан быть идемпотентен к дублям.
type Job struct {
	UserID string `json:"userId"`
	FileID string `json:"fileId"`
}

// Queue — очередь заданий между загрузкой и воркером миниатюр.
type Queue interface {
	// Enqueue кладёт задание в очередь.
	Enqueue(ctx context.Context, job Job) error

	// Dequeue блокирующе забирает задание; по таймауту возвращает nil без ошибки.
	Dequeue(ctx context.Context, timeout time.Duration) (*Job, error)
}

// RedisQueue хранит задания в Redis-списке: LPUSH на запись, BRPOP на чтение.
type RedisQueue struct {
	pool *redis.Pool
	key  string
}

// NewRedisQueue создаёт очередь поверх redis:// URL под указанным ключом списка.
func NewRedisQueue(url, key string) *RedisQueue {
	pool := &redis.Pool{
		MaxIdle:     3,
		IdleTimeout: 240 * time.Second,
		DialContext: func(ctx context.Context) (redis.Conn, error) {
			return redis.DialURLContext(ctx, url)
		},
	}
	return &RedisQueue{pool: pool, key: key}
}

func (q *RedisQueue) Enqueue(ctx context.Context, job Job) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}

	conn, err := q.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("queue enqueue: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Do("LPUSH", q.key, payload); err != nil {
		return fmt.Errorf("queue enqueue: %w", err)
	}
	return nil
}

func (q *RedisQueue) Dequeue(ctx context.Context, timeout time.Duration) (*Job, error) {
	conn, err := q.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("queue dequeue: %w", err)
	}
	defer conn.Close()

	values, err := redis.Values(conn.Do("BRPOP", q.key, int(timeout.Seconds())))
	if errors.Is(err, redis.ErrNil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("queue dequeue: %w", err)
	}

	// BRPOP возвращает пару [ключ, payload]
	var key string
	var payload []byte
	if _, err := redis.Scan(values, &key, &payload); err != nil {
		return nil, fmt.Errorf("queue dequeue: %w", err)
	}

	var job Job
	if err := json.Unmarshal(payload, &job); err != nil {
		return nil, fmt.Errorf("queue dequeue: malformed job: %w", err)
	}
	return &job, nil
}

// Close освобождает пул подключений.
func (q *RedisQueue) Close() error {
	return q.pool.Close()
}
