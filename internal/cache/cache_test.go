package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return New(rdb, time.Minute), mr
}

func TestCache_SetGetDelete(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "states", []string{"Kerala", "Goa"}))
	assert.True(t, mr.Exists("jobvibe:states"))
	assert.Equal(t, time.Minute, mr.TTL("jobvibe:states"))

	var got []string
	found, err := c.GetJSON(ctx, "states", &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"Kerala", "Goa"}, got)

	require.NoError(t, c.Delete(ctx, "states"))
	found, err = c.GetJSON(ctx, "states", &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCache_DeletePrefix(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetJSON(ctx, "cities:kerala", []string{"Kochi"}))
	require.NoError(t, c.SetJSON(ctx, "cities:goa", []string{"Panaji"}))
	require.NoError(t, c.SetJSON(ctx, "states", []string{"Kerala"}))

	require.NoError(t, c.DeletePrefix(ctx, "cities:"))
	assert.False(t, mr.Exists("jobvibe:cities:kerala"))
	assert.False(t, mr.Exists("jobvibe:cities:goa"))
	assert.True(t, mr.Exists("jobvibe:states"))
}

func TestRemember(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	calls := 0
	load := func(context.Context) ([]string, error) {
		calls++
		return []string{"Engineer"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := Remember(ctx, c, "job-titles", load)
		require.NoError(t, err)
		assert.Equal(t, []string{"Engineer"}, got)
	}
	assert.Equal(t, 1, calls)
}

func TestRemember_LoadErrorIsNotCached(t *testing.T) {
	c, mr := newTestCache(t)
	boom := errors.New("boom")

	_, err := Remember(context.Background(), c, "k", func(context.Context) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
	assert.False(t, mr.Exists("jobvibe:k"))
}

func TestCache_Publish(t *testing.T) {
	c, mr := newTestCache(t)

	sub := mr.NewSubscriber()
	sub.Subscribe("jobvibe:notifications")

	// miniredis hands the message to the subscriber before replying to PUBLISH
	published := make(chan error, 1)
	go func() {
		published <- c.Publish(context.Background(), "notifications", map[string]string{"title": "hi"})
	}()

	select {
	case msg := <-sub.Messages():
		assert.Equal(t, "jobvibe:notifications", msg.Channel)
		assert.JSONEq(t, `{"title":"hi"}`, msg.Message)
	case <-time.After(time.Second):
		t.Fatal("no message published")
	}
	require.NoError(t, <-published)
}

func TestCache_Disabled(t *testing.T) {
	ctx := context.Background()
	c, err := Connect(ctx, "", time.Minute)
	require.NoError(t, err)
	assert.False(t, c.Enabled())

	require.NoError(t, c.SetJSON(ctx, "k", 1))
	var v int
	found, err := c.GetJSON(ctx, "k", &v)
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, c.Publish(ctx, "ch", "x"))
	assert.NoError(t, c.Ping(ctx))
}

func TestConnect_URL(t *testing.T) {
	mr := miniredis.RunT(t)

	c, err := Connect(context.Background(), "redis://"+mr.Addr()+"/0", time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	assert.True(t, c.Enabled())

	_, err = Connect(context.Background(), "://bad", time.Minute)
	assert.Error(t, err)
}
