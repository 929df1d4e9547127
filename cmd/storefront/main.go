package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/denim-next/internal/cart"
	"github.com/denim-next/internal/catalog"
	"github.com/denim-next/internal/config"
	"github.com/denim-next/internal/logger"
	"github.com/denim-next/internal/models"
	"github.com/denim-next/internal/service"
)

// 终端版店面会话：解析目录 → 加购 → 结算。
// 与 Web 前台走同一套购物车与目录供给层。
func main() {
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// 目录缓存：默认进程内，配置启用 Redis 后跨会话共享
	var cache catalog.Cache = catalog.NewMemoryCache(cfg.Catalog.CacheTTL())
	if client := catalog.NewRedisClient(cfg.Redis); client != nil {
		cache = catalog.NewRedisCache(client, cfg.Redis.Prefix, cfg.Catalog.CacheTTL())
	}

	fetcher := catalog.NewFetcher(cfg.Catalog.BaseURL, catalog.FetcherOptions{
		Timeout:    cfg.Catalog.Timeout(),
		MaxRetries: cfg.Catalog.MaxRetries,
		Backoff:    cfg.Catalog.Backoff(),
	})
	supplier := catalog.NewSupplier(cache, fetcher)

	result := supplier.Load(ctx)
	fmt.Printf("catalog source: %s (%d products)\n", result.Source, len(result.Products))
	if result.Err != nil {
		fmt.Printf("notice: %v\n", result.Err)
	}
	for _, product := range result.Products {
		marker := " "
		if product.Featured {
			marker = "*"
		}
		fmt.Printf("%s #%-3d %-24s %s\n", marker, product.ID, product.Name, product.Price)
	}

	if len(result.Products) < 2 {
		stdLog.Fatalf("目录商品不足，无法演示购物流程")
	}

	store := cart.NewStore()
	store.Add(result.Products[0])
	store.Add(result.Products[0])
	store.Add(result.Products[1])
	fmt.Printf("\ncart: %d items, total %s\n",
		store.TotalItems(), models.FormatPrice(store.TotalPrice()))

	checkout := service.NewCheckoutService(cfg.Checkout.ProcessingDelay())
	order, err := checkout.PlaceOrder(ctx, store)
	if err != nil {
		stdLog.Fatalf("下单失败: %v", err)
	}
	fmt.Printf("order #%s placed: %d items, total $%s\n",
		order.OrderNo, order.TotalItems, order.TotalPrice)
}
