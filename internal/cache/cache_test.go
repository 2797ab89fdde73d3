package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilCacheIsNoOp(t *testing.T) {
	var c *Cache

	value, ok := c.Get(context.Background(), "key")
	assert.False(t, ok)
	assert.Empty(t, value)

	// must not panic
	c.Set(context.Background(), "key", "value", time.Minute)
	assert.NoError(t, c.Close())
}

func TestNewWithoutAddress(t *testing.T) {
	assert.Nil(t, New("", ""))
}

func TestNewUnreachableServer(t *testing.T) {
	assert.Nil(t, New("127.0.0.1:1", ""))
}

func TestSetAndGet(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "")
	require.NotNil(t, c)
	defer c.Close()

	ctx := context.Background()

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	c.Set(ctx, "weather:range:45.760:4.840:2026-07-14:2026-07-16", `{"2026-07-14":"sun"}`, time.Minute)
	value, ok := c.Get(ctx, "weather:range:45.760:4.840:2026-07-14:2026-07-16")
	assert.True(t, ok)
	assert.Equal(t, `{"2026-07-14":"sun"}`, value)
}

func TestEntryExpires(t *testing.T) {
	mr := miniredis.RunT(t)
	c := New(mr.Addr(), "")
	require.NotNil(t, c)
	defer c.Close()

	ctx := context.Background()
	c.Set(ctx, "key", "value", time.Minute)

	mr.FastForward(2 * time.Minute)

	_, ok := c.Get(ctx, "key")
	assert.False(t, ok)
}
