package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/denim-next/internal/logger"
	"github.com/denim-next/internal/models"
)

const (
	defaultFetchTimeout = 10 * time.Second
	defaultMaxRetries   = 2
	defaultBackoff      = time.Second
)

// ErrInvalidPayload 响应体既不是 {data: [...]} 也不是裸数组
var ErrInvalidPayload = errors.New("invalid catalog payload")

// Fetcher 商品目录网络抓取器
//
// 每次请求独立超时（默认 10 秒，对应后端冷启动上限）；失败后指数退避
// 重试（默认 1s、2s 两次）。超时是单次的，不跨重试累计。
type Fetcher struct {
	baseURL    string
	client     *http.Client
	timeout    time.Duration
	maxRetries int
	backoff    time.Duration
}

// FetcherOptions 抓取器配置
type FetcherOptions struct {
	Timeout    time.Duration
	MaxRetries int
	Backoff    time.Duration
	Client     *http.Client
}

// NewFetcher 创建抓取器
func NewFetcher(baseURL string, opts FetcherOptions) *Fetcher {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	maxRetries := opts.MaxRetries
	if maxRetries < 0 {
		maxRetries = defaultMaxRetries
	}
	backoff := opts.Backoff
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	client := opts.Client
	if client == nil {
		client = &http.Client{}
	}
	return &Fetcher{
		baseURL:    strings.TrimRight(baseURL, "/"),
		client:     client,
		timeout:    timeout,
		maxRetries: maxRetries,
		backoff:    backoff,
	}
}

// Fetch 抓取商品目录，内部含重试
func (f *Fetcher) Fetch(ctx context.Context) ([]models.Product, error) {
	var lastErr error
	for attempt := 0; ; attempt++ {
		products, err := f.fetchOnce(ctx)
		if err == nil {
			return products, nil
		}
		lastErr = err
		if attempt >= f.maxRetries {
			return nil, lastErr
		}
		// 指数退避：backoff、2*backoff、4*backoff ...
		delay := f.backoff << attempt
		logger.Warnw("catalog_fetch_retry",
			"attempt", attempt+1,
			"delay", delay.String(),
			"error", err,
		)
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}
}

func (f *Fetcher) fetchOnce(ctx context.Context) ([]models.Product, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, f.baseURL+"/api/products", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("catalog api returned %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return decodeCatalogPayload(body)
}

// decodeCatalogPayload 兼容两种载荷：{data: Product[]} 包裹或裸 Product[]
func decodeCatalogPayload(body []byte) ([]models.Product, error) {
	var envelope struct {
		Data []models.Product `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Data != nil {
		return envelope.Data, nil
	}
	var bare []models.Product
	if err := json.Unmarshal(body, &bare); err == nil && bare != nil {
		return bare, nil
	}
	return nil, ErrInvalidPayload
}
