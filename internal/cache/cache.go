package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is a read-through cache in front of the user store. Redis being
// unreachable degrades every call to a miss, so a nil *Client is also valid
// and never hits.
type Client struct {
	rdb *redis.Client
}

// New connects to redis at addr, or returns nil when addr is empty.
func New(addr, password string, db int) *Client {
	if addr == "" {
		return nil
	}
	return &Client{rdb: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

func (c *Client) enabled() bool {
	return c != nil && c.rdb != nil
}

// GetJSON decodes the entry at key into dst and reports whether it was a hit.
// Missing keys, redis errors and undecodable entries are all misses.
func (c *Client) GetJSON(ctx context.Context, key string, dst interface{}) bool {
	if !c.enabled() {
		return false
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}

// SetJSON stores v as JSON under key for ttl. A failed write only costs the
// next reader a trip to the store.
func (c *Client) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) {
	if !c.enabled() {
		return
	}
	payload, err := json.Marshal(v)
	if err != nil {
		return
	}
	c.rdb.Set(ctx, key, payload, ttl)
}

// Evict drops key after the stored row changed. Entries that cannot be
// evicted still expire with their ttl.
func (c *Client) Evict(ctx context.Context, key string) {
	if !c.enabled() {
		return
	}
	c.rdb.Del(ctx, key)
}

// Close releases the connection pool.
func (c *Client) Close() error {
	if !c.enabled() {
		return nil
	}
	return c.rdb.Close()
}
