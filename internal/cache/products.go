package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/config"
	"github.com/JuliCesar2022/checkout-onboarding-platform-sub000/internal/model"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type ProductCache interface {
	Get(ctx context.Context, id int64) (*model.Product, error)
	Set(ctx context.Context, product *model.Product) error
	Invalidate(ctx context.Context, id int64) error
}

type productCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

func NewRedisClient(cfg *config.Config, logger *zap.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Redis connection established", zap.String("addr", cfg.Redis.Addr))
	return rdb, nil
}

func NewProductCache(rdb *redis.Client, cfg *config.Config, logger *zap.Logger) ProductCache {
	return &productCache{rdb: rdb, ttl: cfg.Redis.TTL, logger: logger}
}

// Get returns (nil, nil) on a cache miss.
func (c *productCache) Get(ctx context.Context, id int64) (*model.Product, error) {
	data, err := c.rdb.Get(ctx, productKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var product model.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, err
	}

	return &product, nil
}

func (c *productCache) Set(ctx context.Context, product *model.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}

	return c.rdb.Set(ctx, productKey(product.ID), data, c.ttl).Err()
}

func (c *productCache) Invalidate(ctx context.Context, id int64) error {
	return c.rdb.Del(ctx, productKey(id)).Err()
}

func productKey(id int64) string {
	return fmt.Sprintf("product:%d", id)
}
