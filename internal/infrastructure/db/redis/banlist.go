package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// BanList is a token denylist backed by Redis.
// Key format: ban:<user_id>
//
// An entry only needs to outlive the longest-lived JWT: once every token
// issued before the ban has expired, the is_active flag in the store is the
// sole gatekeeper. The TTL is therefore set to the configured token TTL.
type BanList struct {
	client *redis.Client
	ttl    time.Duration
}

// NewBanList creates a BanList wrapping the given Redis client.
func NewBanList(client *redis.Client, ttl time.Duration) *BanList {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &BanList{client: client, ttl: ttl}
}

// Add places a user id on the denylist.
func (b *BanList) Add(ctx context.Context, userID string) error {
	return b.client.Set(ctx, b.key(userID), "1", b.ttl).Err()
}

// Remove clears a user id from the denylist.
func (b *BanList) Remove(ctx context.Context, userID string) error {
	return b.client.Del(ctx, b.key(userID)).Err()
}

// Contains reports whether the user id is currently denylisted.
func (b *BanList) Contains(ctx context.Context, userID string) (bool, error) {
	n, err := b.client.Exists(ctx, b.key(userID)).Result()
	if err != nil {
		return false, fmt.Errorf("banlist check: %w", err)
	}
	return n > 0, nil
}

func (b *BanList) key(userID string) string {
	return "ban:" + userID
}
