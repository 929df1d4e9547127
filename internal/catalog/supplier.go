package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/denim-next/internal/constants"
	"github.com/denim-next/internal/logger"
	"github.com/denim-next/internal/models"

	"golang.org/x/sync/singleflight"
)

// ErrCatalogUnavailable 缓存与网络均失败，已降级为内置目录
var ErrCatalogUnavailable = errors.New("unable to load products from server, showing bundled catalog")

// State 供给层状态
type State int

const (
	StateIdle State = iota
	StateLoading
	StateReadyCache
	StateReadyNetwork
	StateFallback
)

// String 状态名称
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateReadyCache:
		return "ready_cache"
	case StateReadyNetwork:
		return "ready_network"
	case StateFallback:
		return "fallback"
	default:
		return "unknown"
	}
}

// Result 一次目录解析的结果视图
type Result struct {
	Products     []models.Product
	Source       string // cache / network / fallback
	Err          error  // 降级时的用户可见原因，其余为 nil
	FromCache    bool
	FromFallback bool
}

// Supplier 商品目录供给层
//
// 三级解析：本地缓存 → 带重试的网络抓取 → 内置静态目录。任何一级
// 成功即为终态，调用方永远能拿到可渲染的商品列表，最坏情况是带
// 提示信息的降级目录。并发激活通过 singleflight 合并为一次解析。
type Supplier struct {
	cache    Cache
	fetcher  *Fetcher
	fallback func() []models.Product

	group singleflight.Group

	mu    sync.Mutex
	state State
	last  Result
}

// NewSupplier 创建供给层
func NewSupplier(cache Cache, fetcher *Fetcher) *Supplier {
	return &Supplier{
		cache:    cache,
		fetcher:  fetcher,
		fallback: models.BundledCatalog,
		state:    StateIdle,
	}
}

// Load 运行完整解析算法
//
// 与在途的 Load/Retry 重叠时共享同一次解析结果，不会并发发起
// 独立的网络抓取。
func (s *Supplier) Load(ctx context.Context) Result {
	value, _, _ := s.group.Do("load", func() (interface{}, error) {
		return s.resolve(ctx), nil
	})
	return value.(Result)
}

// Retry 按需重跑完整解析算法（从缓存检查开始）
func (s *Supplier) Retry(ctx context.Context) Result {
	return s.Load(ctx)
}

// State 返回当前状态
func (s *Supplier) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Last 返回最近一次解析结果
func (s *Supplier) Last() Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

func (s *Supplier) resolve(ctx context.Context) Result {
	// 第一级：新鲜缓存直接命中，跳过网络
	if s.cache != nil {
		if products, ok := s.cache.Get(ctx); ok && len(products) > 0 {
			return s.finish(StateReadyCache, Result{
				Products:  products,
				Source:    constants.CatalogSourceCache,
				FromCache: true,
			})
		}
	}

	// 第二级：带重试的网络抓取
	s.setState(StateLoading)
	products, err := s.fetcher.Fetch(ctx)
	if err == nil && len(products) == 0 {
		// 空目录视为无效响应：空的商店首页比降级目录更糟
		err = fmt.Errorf("%w: empty product list", ErrInvalidPayload)
	}
	if err == nil {
		if s.cache != nil {
			s.cache.Set(ctx, products)
		}
		return s.finish(StateReadyNetwork, Result{
			Products: products,
			Source:   constants.CatalogSourceNetwork,
		})
	}

	// 第三级：内置静态目录兜底
	logger.Warnw("catalog_degraded_to_fallback", "error", err)
	return s.finish(StateFallback, Result{
		Products:     s.fallback(),
		Source:       constants.CatalogSourceFallback,
		Err:          fmt.Errorf("%w: %v", ErrCatalogUnavailable, err),
		FromFallback: true,
	})
}

func (s *Supplier) setState(state State) {
	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
}

func (s *Supplier) finish(state State, result Result) Result {
	s.mu.Lock()
	s.state = state
	s.last = result
	s.mu.Unlock()
	return result
}
