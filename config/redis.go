package config

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisClient stays nil when Redis is unreachable; callers treat that as
// "no cache, no cart storage".
var RedisClient *redis.Client

func ConnectRedis() {
	var opt *redis.Options
	if AppConfig.RedisURL != "" {
		parsed, err := redis.ParseURL(AppConfig.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to parse Redis URL, running without Redis")
			return
		}
		opt = parsed
	} else {
		opt = &redis.Options{
			Addr:     AppConfig.RedisAddr,
			Password: AppConfig.RedisPassword,
			DB:       0,
		}
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Warn().Err(err).Msg("Redis connection failed, running without Redis")
		_ = client.Close()
		return
	}

	RedisClient = client
	log.Info().Str("addr", opt.Addr).Msg("Redis connected")
}

func CloseRedis() {
	if RedisClient != nil {
		_ = RedisClient.Close()
	}
}
