package repositories

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// TokenDenylist remembers logged-out token ids until they would have
// expired anyway.
type TokenDenylist struct {
	client *redis.Client
}

func NewTokenDenylist(client *redis.Client) *TokenDenylist {
	return &TokenDenylist{client: client}
}

func denylistKey(tokenID string) string {
	return "revoked:" + tokenID
}

func (d *TokenDenylist) Revoke(ctx context.Context, tokenID string, until time.Time) error {
	if d.client == nil || tokenID == "" {
		return nil
	}

	ttl := time.Until(until)
	if ttl <= 0 {
		return nil
	}
	return d.client.Set(ctx, denylistKey(tokenID), 1, ttl).Err()
}

func (d *TokenDenylist) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	if d.client == nil || tokenID == "" {
		return false, nil
	}

	n, err := d.client.Exists(ctx, denylistKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
