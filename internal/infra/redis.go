package infra

import (
	"context"

	"github.com/anvaya/crm/internal/config"
	"github.com/go-redis/redis/v9"
)

// Redis connects to redis and verifies connection with ping
func Redis(ctx context.Context, cfg config.RedisCfg) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
