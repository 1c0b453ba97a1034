package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedUser struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
}

func TestClient_SetGetEvict(t *testing.T) {
	srv := miniredis.RunT(t)
	c := New(srv.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Close() })
	ctx := context.Background()

	c.SetJSON(ctx, "user:1", cachedUser{ID: 1, Email: "a@mail.com"}, time.Minute)

	raw, err := srv.Get("user:1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"email":"a@mail.com"}`, raw)

	var got cachedUser
	require.True(t, c.GetJSON(ctx, "user:1", &got))
	assert.Equal(t, cachedUser{ID: 1, Email: "a@mail.com"}, got)

	c.Evict(ctx, "user:1")
	assert.False(t, srv.Exists("user:1"))
	assert.False(t, c.GetJSON(ctx, "user:1", &got))
}

func TestClient_ExpiresWithTTL(t *testing.T) {
	srv := miniredis.RunT(t)
	c := New(srv.Addr(), "", 0)
	ctx := context.Background()

	c.SetJSON(ctx, "user:2", cachedUser{ID: 2}, time.Second)
	srv.FastForward(2 * time.Second)

	var got cachedUser
	assert.False(t, c.GetJSON(ctx, "user:2", &got))
}

func TestClient_UndecodableEntryIsMiss(t *testing.T) {
	srv := miniredis.RunT(t)
	c := New(srv.Addr(), "", 0)
	require.NoError(t, srv.Set("user:3", "not json"))

	var got cachedUser
	assert.False(t, c.GetJSON(context.Background(), "user:3", &got))
}

func TestClient_FailsSafeWhenRedisIsDown(t *testing.T) {
	srv := miniredis.RunT(t)
	c := New(srv.Addr(), "", 0)
	srv.Close()
	ctx := context.Background()

	var got cachedUser
	assert.NotPanics(t, func() {
		c.SetJSON(ctx, "user:1", cachedUser{ID: 1}, time.Minute)
		c.Evict(ctx, "user:1")
	})
	assert.False(t, c.GetJSON(ctx, "user:1", &got))
}

func TestNilClient(t *testing.T) {
	c := New("", "", 0)
	require.Nil(t, c)
	ctx := context.Background()

	var got cachedUser
	assert.NotPanics(t, func() {
		c.SetJSON(ctx, "user:1", cachedUser{ID: 1}, time.Minute)
		c.Evict(ctx, "user:1")
	})
	assert.False(t, c.GetJSON(ctx, "user:1", &got))
	assert.NoError(t, c.Close())
}
