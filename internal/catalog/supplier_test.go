package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/denim-next/internal/constants"
	"github.com/denim-next/internal/models"
)

func testProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Classic Jeans", Price: "$79.99"},
		{ID: 2, Name: "Skinny Jeans", Price: "$89.99"},
	}
}

func newCountingServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *int64) {
	t.Helper()
	var requests int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&requests, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return server, &requests
}

func fastFetcher(baseURL string) *Fetcher {
	return NewFetcher(baseURL, FetcherOptions{
		Timeout:    2 * time.Second,
		MaxRetries: 2,
		Backoff:    time.Millisecond,
	})
}

func TestLoadFromFreshCacheSkipsNetwork(t *testing.T) {
	server, requests := newCountingServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("network should not be hit on fresh cache")
	})

	cache := NewMemoryCache(5 * time.Minute)
	cache.Set(context.Background(), testProducts())

	supplier := NewSupplier(cache, fastFetcher(server.URL))
	result := supplier.Load(context.Background())

	if !result.FromCache || result.Source != constants.CatalogSourceCache {
		t.Fatalf("expected cache source, got %q", result.Source)
	}
	if result.Err != nil {
		t.Fatalf("expected nil error, got %v", result.Err)
	}
	if len(result.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(result.Products))
	}
	if got := atomic.LoadInt64(requests); got != 0 {
		t.Fatalf("expected 0 network requests, got %d", got)
	}
	if supplier.State() != StateReadyCache {
		t.Fatalf("expected state ready_cache, got %s", supplier.State())
	}
}

func TestLoadFetchesAndWritesCache(t *testing.T) {
	server, requests := newCountingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/products" {
			http.NotFound(w, r)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "success",
			"data":   testProducts(),
			"count":  2,
		})
	})

	supplier := NewSupplier(NewMemoryCache(5*time.Minute), fastFetcher(server.URL))

	first := supplier.Load(context.Background())
	if first.Source != constants.CatalogSourceNetwork || first.FromCache || first.FromFallback {
		t.Fatalf("expected network source, got %q", first.Source)
	}
	if supplier.State() != StateReadyNetwork {
		t.Fatalf("expected state ready_network, got %s", supplier.State())
	}

	// 第二次激活应命中刚写入的缓存，不再发起网络请求
	second := supplier.Load(context.Background())
	if second.Source != constants.CatalogSourceCache {
		t.Fatalf("expected cache source on second load, got %q", second.Source)
	}
	if got := atomic.LoadInt64(requests); got != 1 {
		t.Fatalf("expected exactly 1 network request, got %d", got)
	}
}

func TestLoadFallsBackAfterExhaustedRetries(t *testing.T) {
	server, requests := newCountingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	supplier := NewSupplier(NewMemoryCache(5*time.Minute), fastFetcher(server.URL))
	result := supplier.Load(context.Background())

	if !result.FromFallback || result.Source != constants.CatalogSourceFallback {
		t.Fatalf("expected fallback source, got %q", result.Source)
	}
	if result.Err == nil || !errors.Is(result.Err, ErrCatalogUnavailable) {
		t.Fatalf("expected ErrCatalogUnavailable, got %v", result.Err)
	}
	if len(result.Products) != 24 {
		t.Fatalf("expected bundled catalog of 24 products, got %d", len(result.Products))
	}
	// 1 次初始请求 + 2 次重试
	if got := atomic.LoadInt64(requests); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
	if supplier.State() != StateFallback {
		t.Fatalf("expected state fallback, got %s", supplier.State())
	}
}

func TestEmptyProductListTreatedAsFailure(t *testing.T) {
	server, requests := newCountingServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "success",
			"data":   []models.Product{},
			"count":  0,
		})
	})

	supplier := NewSupplier(NewMemoryCache(5*time.Minute), fastFetcher(server.URL))
	result := supplier.Load(context.Background())

	if !result.FromFallback {
		t.Fatalf("expected fallback for empty catalog, got %q", result.Source)
	}
	if result.Err == nil {
		t.Fatal("expected advisory error for empty catalog")
	}
	// 空列表是合法响应体，抓取层不重试；判空发生在抓取之后
	if got := atomic.LoadInt64(requests); got != 1 {
		t.Fatalf("expected 1 attempt for empty list, got %d", got)
	}
}

func TestMalformedBodyIsRetried(t *testing.T) {
	server, requests := newCountingServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	})

	supplier := NewSupplier(NewMemoryCache(5*time.Minute), fastFetcher(server.URL))
	result := supplier.Load(context.Background())

	if !result.FromFallback {
		t.Fatalf("expected fallback for malformed body, got %q", result.Source)
	}
	if got := atomic.LoadInt64(requests); got != 3 {
		t.Fatalf("expected 3 attempts, got %d", got)
	}
}

func TestConcurrentLoadsShareOneFetch(t *testing.T) {
	release := make(chan struct{})
	server, requests := newCountingServer(t, func(w http.ResponseWriter, r *http.Request) {
		<-release
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": testProducts()})
	})

	supplier := NewSupplier(NewMemoryCache(5*time.Minute), fastFetcher(server.URL))

	const callers = 5
	results := make([]Result, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = supplier.Load(context.Background())
		}(i)
	}
	// 等待首个请求在途后放行，确保其余调用方处于重叠窗口
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	for i, result := range results {
		if result.Source != constants.CatalogSourceNetwork {
			t.Fatalf("caller %d: expected network source, got %q", i, result.Source)
		}
	}
	if got := atomic.LoadInt64(requests); got != 1 {
		t.Fatalf("expected concurrent loads to share 1 request, got %d", got)
	}
}

func TestRetryRerunsFullAlgorithm(t *testing.T) {
	var healthy atomic.Bool
	server, _ := newCountingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if !healthy.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"data": testProducts()})
	})

	supplier := NewSupplier(NewMemoryCache(5*time.Minute), fastFetcher(server.URL))

	degraded := supplier.Load(context.Background())
	if !degraded.FromFallback {
		t.Fatalf("expected initial load to degrade, got %q", degraded.Source)
	}

	healthy.Store(true)
	recovered := supplier.Retry(context.Background())
	if recovered.Source != constants.CatalogSourceNetwork {
		t.Fatalf("expected retry to recover via network, got %q", recovered.Source)
	}
	if recovered.Err != nil {
		t.Fatalf("expected nil error after recovery, got %v", recovered.Err)
	}
}

func TestDecodeCatalogPayload(t *testing.T) {
	envelope := []byte(`{"status":"success","data":[{"id":1,"name":"A","price":"$1.00"}]}`)
	products, err := decodeCatalogPayload(envelope)
	if err != nil || len(products) != 1 {
		t.Fatalf("envelope decode failed: products=%d err=%v", len(products), err)
	}

	bare := []byte(`[{"id":1,"name":"A","price":"$1.00"},{"id":2,"name":"B","price":"$2.00"}]`)
	products, err = decodeCatalogPayload(bare)
	if err != nil || len(products) != 2 {
		t.Fatalf("bare array decode failed: products=%d err=%v", len(products), err)
	}

	if _, err = decodeCatalogPayload([]byte(`{"message":"hello"}`)); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload for unknown shape, got %v", err)
	}
	if _, err = decodeCatalogPayload([]byte(`not json`)); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload for garbage, got %v", err)
	}
}
