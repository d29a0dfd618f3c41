package cache

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilCache_NeverHits(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	c := New(Options{})
	require.Nil(t, c)
	assert.False(t, c.Enabled())

	require.NoError(t, c.SetJSON(ctx, KeyProductCount, 3))
	var n int64
	ok, err := c.GetJSON(ctx, KeyProductCount, &n)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Delete(ctx, KeyProductCount))
	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}

func TestUnreachableRedis_ReturnsError(t *testing.T) {
	t.Parallel()

	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	c := NewWithClient(rdb, 0)
	t.Cleanup(func() { _ = c.Close() })

	assert.Equal(t, time.Minute, c.ttl)

	var v int
	ok, err := c.GetJSON(context.Background(), "missing", &v)
	assert.False(t, ok)
	assert.Error(t, err)
}
