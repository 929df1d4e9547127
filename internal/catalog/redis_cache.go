package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/denim-next/internal/config"
	"github.com/denim-next/internal/constants"
	"github.com/denim-next/internal/logger"
	"github.com/denim-next/internal/models"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient 按配置创建 Redis 客户端；未启用时返回 nil
func NewRedisClient(cfg config.RedisConfig) *redis.Client {
	if !cfg.Enabled {
		return nil
	}
	addr := strings.TrimSpace(cfg.Host)
	if addr == "" {
		addr = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	return redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", addr, port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})
}

// RedisCache 基于 Redis 的目录缓存实现
//
// 商品列表与毫秒时间戳分别存为两个键，共享前缀，读写失败一律按未命中
// 处理，缓存故障绝不冒泡到供给层。
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	now    func() time.Time
}

// NewRedisCache 创建 Redis 目录缓存
func NewRedisCache(client *redis.Client, prefix string, ttl time.Duration) *RedisCache {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "dn"
	}
	return &RedisCache{client: client, prefix: prefix, ttl: ttl, now: time.Now}
}

// Get 读取新鲜缓存；过期时两个键一起删除
func (c *RedisCache) Get(ctx context.Context) ([]models.Product, bool) {
	if c.client == nil {
		return nil, false
	}
	tsValue, err := c.client.Get(ctx, c.key(constants.CatalogCacheTimestampKey)).Result()
	if err != nil {
		return nil, false
	}
	writtenMS, err := strconv.ParseInt(tsValue, 10, 64)
	if err != nil {
		c.Invalidate(ctx)
		return nil, false
	}
	if c.now().Sub(time.UnixMilli(writtenMS)) > c.ttl {
		c.Invalidate(ctx)
		return nil, false
	}

	payload, err := c.client.Get(ctx, c.key(constants.CatalogCacheKey)).Result()
	if err != nil {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(payload), &products); err != nil {
		c.Invalidate(ctx)
		return nil, false
	}
	return products, true
}

// Set 写入商品列表与当前毫秒时间戳
func (c *RedisCache) Set(ctx context.Context, products []models.Product) {
	if c.client == nil {
		return
	}
	payload, err := json.Marshal(products)
	if err != nil {
		logger.Warnw("catalog_cache_marshal_failed", "error", err)
		return
	}
	// 键本身也带过期时间，防止进程不再读取时条目滞留
	expiry := c.ttl * 2
	if err := c.client.Set(ctx, c.key(constants.CatalogCacheKey), payload, expiry).Err(); err != nil {
		logger.Warnw("catalog_cache_set_failed", "error", err)
		return
	}
	ts := strconv.FormatInt(c.now().UnixMilli(), 10)
	if err := c.client.Set(ctx, c.key(constants.CatalogCacheTimestampKey), ts, expiry).Err(); err != nil {
		logger.Warnw("catalog_cache_set_failed", "error", err)
	}
}

// Invalidate 同时删除列表键与时间戳键
func (c *RedisCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	_ = c.client.Del(ctx,
		c.key(constants.CatalogCacheKey),
		c.key(constants.CatalogCacheTimestampKey),
	).Err()
}

func (c *RedisCache) key(name string) string {
	return c.prefix + ":" + name
}
