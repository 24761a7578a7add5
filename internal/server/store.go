package server

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/thomas/popcorn-terminal/internal/cart"
	"github.com/thomas/popcorn-terminal/internal/config"
)

// OpenStore builds the cart store selected by cfg. The returned close
// function releases its background work and connections.
func OpenStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (cart.Store, func(), error) {
	switch cfg.CartBackend {
	case config.CartBackendMemory:
		store := cart.NewMemoryStore(cfg.CartTTL)
		janitor := cart.NewJanitor(store, log)
		if err := janitor.Start("@every 1m"); err != nil {
			return nil, nil, err
		}
		return store, janitor.Stop, nil

	case config.CartBackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:        cfg.RedisAddr,
			Password:    cfg.RedisPassword,
			DB:          cfg.RedisDB,
			DialTimeout: 5 * time.Second,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("connecting to redis at %s: %w", cfg.RedisAddr, err)
		}
		log.Info().Str("addr", cfg.RedisAddr).Int("db", cfg.RedisDB).Msg("cart store: redis")
		return cart.NewRedisStore(client, cfg.CartTTL), func() { _ = client.Close() }, nil

	default:
		store, err := cart.NewFileStore(cfg.CartDir)
		if err != nil {
			return nil, nil, err
		}
		log.Info().Str("dir", cfg.CartDir).Msg("cart store: file")
		return store, func() {}, nil
	}
}
