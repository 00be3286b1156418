package secretsource

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Redis reads the secret stored under a key on every call.
type Redis struct {
	client redis.UniversalClient
	key    string
}

// NewRedis creates a source reading key from client.
func NewRedis(client redis.UniversalClient, key string) (*Redis, error) {
	if client == nil || key == "" {
		return nil, ErrInvalidConfig
	}
	return &Redis{client: client, key: key}, nil
}

func (r *Redis) Provide(ctx context.Context) ([]byte, error) {
	val, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSecretNotFound
		}
		return nil, errors.Join(ErrUnavailable, err)
	}
	if len(val) == 0 {
		return nil, ErrEmptySecret
	}
	return val, nil
}
