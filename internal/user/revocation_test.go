package user

import (
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRevocationList(t *testing.T) (*RedisRevocationList, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewRedisRevocationList(rdb), mr
}

func TestRedisRevocationList_Revoke(t *testing.T) {
	list, mr := newTestRevocationList(t)

	revoked, err := list.IsRevoked(ctx, "s-1")
	require.NoError(t, err)
	assert.False(t, revoked)

	require.NoError(t, list.Revoke(ctx, "s-1", time.Now().Add(time.Hour)))

	revoked, err = list.IsRevoked(ctx, "s-1")
	require.NoError(t, err)
	assert.True(t, revoked)
	assert.True(t, mr.TTL("session:revoked:s-1") > 0)
}

func TestRedisRevocationList_ExpiresWithToken(t *testing.T) {
	list, mr := newTestRevocationList(t)
	require.NoError(t, list.Revoke(ctx, "s-1", time.Now().Add(time.Minute)))

	mr.FastForward(2 * time.Minute)

	revoked, err := list.IsRevoked(ctx, "s-1")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestRedisRevocationList_AlreadyExpired(t *testing.T) {
	list, mr := newTestRevocationList(t)

	require.NoError(t, list.Revoke(ctx, "s-1", time.Now().Add(-time.Minute)))
	assert.False(t, mr.Exists("session:revoked:s-1"))
}
