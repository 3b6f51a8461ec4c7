package user

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type RevocationList interface {
	Revoke(ctx context.Context, sessionID string, until time.Time) error
	IsRevoked(ctx context.Context, sessionID string) (bool, error)
}

// RedisRevocationList keeps one key per revoked session, expiring together
// with the token it blocks.
type RedisRevocationList struct {
	db *redis.Client
}

func NewRedisRevocationList(db *redis.Client) *RedisRevocationList {
	return &RedisRevocationList{db: db}
}

func revokedKey(sessionID string) string {
	return "session:revoked:" + sessionID
}

func (r *RedisRevocationList) Revoke(ctx context.Context, sessionID string, until time.Time) error {
	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return r.db.Set(ctx, revokedKey(sessionID), 1, ttl).Err()
}

func (r *RedisRevocationList) IsRevoked(ctx context.Context, sessionID string) (bool, error) {
	n, err := r.db.Exists(ctx, revokedKey(sessionID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
