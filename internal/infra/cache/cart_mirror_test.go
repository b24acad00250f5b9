//go:build unit

package cache

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"storefront-backend/internal/domain/cart"
	"storefront-backend/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupMirror connects to REDIS_ADDR (default localhost:6379) and skips when
// nothing is listening.
func setupMirror(t *testing.T, ttl time.Duration) (*RedisCartMirror, *redis.Client) {
	t.Helper()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{Addr: addr})
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("Redis not available at %s: %v", addr, err)
	}

	prefix := "carts-test-" + time.Now().Format("150405.000000")
	mirror := NewRedisCartMirror(client, config.CartConfig{KeyPrefix: prefix, MirrorTTL: ttl})

	t.Cleanup(func() {
		keys, _ := client.Keys(ctx, prefix+":*").Result()
		if len(keys) > 0 {
			client.Del(ctx, keys...)
		}
		_ = client.Close()
	})
	return mirror, client
}

func TestRedisCartMirror_PutThenGet(t *testing.T) {
	mirror, client := setupMirror(t, 0)
	ctx := context.Background()
	owner, err := cart.NewOwner("Shopper@Example.com")
	require.NoError(t, err)

	items := cart.Items{
		json.RawMessage(`{"id":1,"quantity":2}`),
		json.RawMessage(`{"id":7,"quantity":1}`),
	}
	savedAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	require.NoError(t, mirror.Put(ctx, owner, items, savedAt))

	got, found, err := mirror.Get(ctx, owner)
	require.NoError(t, err)
	assert.True(t, found)
	assert.JSONEq(t, `[{"id":1,"quantity":2},{"id":7,"quantity":1}]`, mustEncode(t, got))

	raw, err := client.Get(ctx, mirror.Key(owner)).Bytes()
	require.NoError(t, err)
	assert.JSONEq(t, `{"cart":[{"id":1,"quantity":2},{"id":7,"quantity":1}],"updated_at":"2025-01-02T03:04:05Z"}`, string(raw))
}

func TestRedisCartMirror_EmptyCartIsHit(t *testing.T) {
	mirror, _ := setupMirror(t, 0)
	ctx := context.Background()
	owner := cart.Owner("empty@example.com")

	require.NoError(t, mirror.Put(ctx, owner, nil, time.Now()))

	got, found, err := mirror.Get(ctx, owner)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestRedisCartMirror_Miss(t *testing.T) {
	mirror, _ := setupMirror(t, 0)

	got, found, err := mirror.Get(context.Background(), cart.Owner("nobody@example.com"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestRedisCartMirror_TTL(t *testing.T) {
	mirror, client := setupMirror(t, time.Minute)
	ctx := context.Background()
	owner := cart.Owner("ttl@example.com")

	require.NoError(t, mirror.Put(ctx, owner, cart.Empty(), time.Now()))

	ttl, err := client.TTL(ctx, mirror.Key(owner)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestRedisCartMirror_UnreachableServer(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()
	mirror := NewRedisCartMirror(client, config.CartConfig{KeyPrefix: "carts"})

	_, found, err := mirror.Get(context.Background(), cart.Owner("a@example.com"))
	assert.Error(t, err)
	assert.False(t, found)
	assert.Error(t, mirror.Put(context.Background(), cart.Owner("a@example.com"), cart.Empty(), time.Now()))
}

func TestNopCartMirror(t *testing.T) {
	var m NopCartMirror
	ctx := context.Background()

	assert.NoError(t, m.Put(ctx, cart.Owner("a@example.com"), cart.Empty(), time.Now()))
	items, found, err := m.Get(ctx, cart.Owner("a@example.com"))
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, items)
}

func TestNewRedisClient_Disabled(t *testing.T) {
	assert.Nil(t, NewRedisClient(config.RedisConfig{}))
}

func mustEncode(t *testing.T, items cart.Items) string {
	t.Helper()
	b, err := items.Encode()
	require.NoError(t, err)
	return string(b)
}
