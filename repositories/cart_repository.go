package repositories

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"lokalin/models"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// CartRepository stores a cart per (user, business) as a Redis hash of
// item name to quantity. Entries expire after ttl of inactivity.
type CartRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCartRepository(client *redis.Client, ttl time.Duration) *CartRepository {
	return &CartRepository{client: client, ttl: ttl}
}

func cartKey(userID, businessID uuid.UUID) string {
	return fmt.Sprintf("cart:%s:%s", userID, businessID)
}

func (r *CartRepository) Load(ctx context.Context, userID, businessID uuid.UUID) (models.Cart, error) {
	cart := models.Cart{}
	if r.client == nil {
		return cart, nil
	}

	fields, err := r.client.HGetAll(ctx, cartKey(userID, businessID)).Result()
	if err != nil {
		return nil, err
	}

	for name, raw := range fields {
		qty, err := strconv.Atoi(raw)
		if err != nil || qty < 1 {
			continue
		}
		cart[name] = qty
	}
	return cart, nil
}

func (r *CartRepository) Save(ctx context.Context, userID, businessID uuid.UUID, cart models.Cart) error {
	if r.client == nil {
		return ErrUnavailable
	}

	key := cartKey(userID, businessID)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, key)
		if len(cart) == 0 {
			return nil
		}

		values := make(map[string]interface{}, len(cart))
		for name, qty := range cart {
			values[name] = qty
		}
		pipe.HSet(ctx, key, values)
		pipe.Expire(ctx, key, r.ttl)
		return nil
	})
	return err
}

func (r *CartRepository) Clear(ctx context.Context, userID, businessID uuid.UUID) error {
	if r.client == nil {
		return nil
	}
	return r.client.Del(ctx, cartKey(userID, businessID)).Err()
}
