// Package redis wraps go-redis behind a small interface so repositories can
// run against a real server, miniredis or redismock.
package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-loot/internal/errors"
)

// Options tunes the connection pool
type Options struct {
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	MaxRetries   int
	UseTLS       bool
}

// NewClient creates a client for a single Redis instance at endpoint
// (host:port).
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.InvalidArgument("redis endpoint is required")
	}
	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:         endpoint,
		PoolSize:     opts.PoolSize,
		MinIdleConns: opts.MinIdleConns,
		DialTimeout:  opts.DialTimeout,
		MaxRetries:   opts.MaxRetries,
	}
	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}

	return redis.NewClient(redisOpts), nil
}

// NewClientFromURL creates a client from a redis:// or rediss:// URL
func NewClientFromURL(url string) (Client, error) {
	if url == "" {
		return nil, errors.InvalidArgument("redis url is required")
	}

	redisOpts, err := redis.ParseURL(url)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "invalid redis url")
	}

	return redis.NewClient(redisOpts), nil
}

// Ping checks the connection, bounded by timeout
func Ping(ctx context.Context, client Client, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis ping failed")
	}
	return nil
}
