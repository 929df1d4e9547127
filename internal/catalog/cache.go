package catalog

import (
	"context"
	"sync"
	"time"

	"github.com/denim-next/internal/models"
)

// Cache 商品目录缓存接口
//
// 缓存语义是一对条目：序列化的商品列表 + 写入时间戳，二者同生共灭。
// Get 只返回新鲜窗口内的条目；过期条目被立刻删除而不是降级返回。
type Cache interface {
	Get(ctx context.Context) ([]models.Product, bool)
	Set(ctx context.Context, products []models.Product)
	Invalidate(ctx context.Context)
}

// MemoryCache 进程内缓存实现（默认）
type MemoryCache struct {
	mu        sync.Mutex
	products  []models.Product
	writtenAt time.Time
	ttl       time.Duration
	now       func() time.Time
}

// NewMemoryCache 创建进程内缓存
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{ttl: ttl, now: time.Now}
}

// Get 读取新鲜缓存；过期条目连同时间戳一起清除
func (c *MemoryCache) Get(ctx context.Context) ([]models.Product, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.products == nil {
		return nil, false
	}
	if c.now().Sub(c.writtenAt) > c.ttl {
		c.products = nil
		c.writtenAt = time.Time{}
		return nil, false
	}
	snapshot := make([]models.Product, len(c.products))
	copy(snapshot, c.products)
	return snapshot, true
}

// Set 写入缓存与新时间戳
func (c *MemoryCache) Set(ctx context.Context, products []models.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.products = make([]models.Product, len(products))
	copy(c.products, products)
	c.writtenAt = c.now()
}

// Invalidate 删除缓存条目
func (c *MemoryCache) Invalidate(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = nil
	c.writtenAt = time.Time{}
}
