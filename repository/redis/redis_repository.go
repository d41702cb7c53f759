package redis

import (
	"context"
	"errors"
	"time"

	redisclient "github.com/muhammadheryan/booking-capacity/cmd/redis"
	goredis "github.com/redis/go-redis/v9"
)

const (
	taskDonePrefix = "global-slot:done:"
	revokedPrefix  = "admin:revoked:"
)

// Repository holds the short-lived markers kept in Redis. Every method is a
// no-op when no client is configured, so Redis stays an optimization.
type Repository interface {
	IsTaskDone(ctx context.Context, key string) (bool, error)
	MarkTaskDone(ctx context.Context, key string, ttl time.Duration) error
	RevokeSession(ctx context.Context, tokenID string, ttl time.Duration) error
	IsSessionRevoked(ctx context.Context, tokenID string) (bool, error)
}

type redis struct{}

func NewRepository() Repository {
	return &redis{}
}

func (r *redis) exists(ctx context.Context, key string) (bool, error) {
	client := redisclient.Get()
	if client == nil {
		return false, nil
	}
	_, err := client.Get(ctx, key).Result()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// IsTaskDone reports whether a global timeslot application was already
// committed. A miss is not authoritative, the database record is.
func (r *redis) IsTaskDone(ctx context.Context, key string) (bool, error) {
	return r.exists(ctx, taskDonePrefix+key)
}

func (r *redis) MarkTaskDone(ctx context.Context, key string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, taskDonePrefix+key, 1, ttl).Err()
}

func (r *redis) RevokeSession(ctx context.Context, tokenID string, ttl time.Duration) error {
	client := redisclient.Get()
	if client == nil {
		return nil
	}
	return client.Set(ctx, revokedPrefix+tokenID, 1, ttl).Err()
}

func (r *redis) IsSessionRevoked(ctx context.Context, tokenID string) (bool, error) {
	return r.exists(ctx, revokedPrefix+tokenID)
}
