package names

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions are used by the redis sink.
type RedisOptions struct {

	// URL is the Redis connection string. Defaults to redis://localhost:6379.
	URL string

	// Key of the record. Defaults to DefaultKey.
	Key string

	// Timeout of a single read or write. Defaults to 5s.
	Timeout time.Duration
}

// RedisSink stores the record as a Redis string value. It lets multiple editing hosts share the same list
// of names.
type RedisSink struct {
	client  *redis.Client
	key     string
	timeout time.Duration
}

// NewRedisSink creates a redis sink. It doesn't connect until the first read or write.
func NewRedisSink(o RedisOptions) (*RedisSink, error) {
	if o.URL == "" {
		o.URL = "redis://localhost:6379"
	}

	if o.Key == "" {
		o.Key = DefaultKey
	}

	if o.Timeout <= 0 {
		o.Timeout = 5 * time.Second
	}

	opts, err := redis.ParseURL(o.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	return &RedisSink{
		client:  redis.NewClient(opts),
		key:     o.Key,
		timeout: o.Timeout,
	}, nil
}

// Read returns the record, or ErrNotFound when the key doesn't exist.
func (s *RedisSink) Read() ([]byte, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	b, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}

	return b, nil
}

// Write replaces the record, without expiration.
func (s *RedisSink) Write(b []byte) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.client.Set(ctx, s.key, b, 0).Err(); err != nil {
		return fmt.Errorf("write record: %w", err)
	}

	return nil
}

// Close closes the Redis client.
func (s *RedisSink) Close() {
	_ = s.client.Close()
}
