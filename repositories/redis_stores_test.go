package repositories

import (
	"context"
	"testing"
	"time"

	"lokalin/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStoresWithoutClient(t *testing.T) {
	ctx := context.Background()
	user, business := uuid.New(), uuid.New()

	carts := NewCartRepository(nil, time.Minute)
	cart, err := carts.Load(ctx, user, business)
	require.NoError(t, err)
	assert.Empty(t, cart)
	assert.ErrorIs(t, carts.Save(ctx, user, business, models.Cart{"Teh": 1}), ErrUnavailable)
	assert.NoError(t, carts.Clear(ctx, user, business))

	cache := NewBusinessCache(nil, time.Minute)
	cache.Set(ctx, []models.Business{{Name: "Kopi"}})
	_, ok := cache.Get(ctx)
	assert.False(t, ok)
	cache.Invalidate(ctx)

	denylist := NewTokenDenylist(nil)
	require.NoError(t, denylist.Revoke(ctx, "jti", time.Now().Add(time.Hour)))
	revoked, err := denylist.IsRevoked(ctx, "jti")
	require.NoError(t, err)
	assert.False(t, revoked)
}

func TestCartKey(t *testing.T) {
	user := uuid.MustParse("11111111-1111-1111-1111-111111111111")
	business := uuid.MustParse("22222222-2222-2222-2222-222222222222")
	assert.Equal(t, "cart:11111111-1111-1111-1111-111111111111:22222222-2222-2222-2222-222222222222", cartKey(user, business))
}
