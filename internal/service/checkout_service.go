package service

import (
	"context"
	"strings"
	"time"

	"github.com/denim-next/internal/cart"
	"github.com/denim-next/internal/logger"

	"github.com/google/uuid"
)

// Order 结算产物（仅会话内有效，不落库）
type Order struct {
	OrderNo    string      `json:"order_no"`
	Items      []cart.Line `json:"items"`
	TotalItems int         `json:"total_items"`
	TotalPrice string      `json:"total_price"`
	PlacedAt   time.Time   `json:"placed_at"`
}

// CheckoutService 结算服务
//
// 模拟下单流程：短暂处理延迟后生成订单号并清空购物车。
// 不涉及支付与持久化。
type CheckoutService struct {
	processingDelay time.Duration
}

// NewCheckoutService 创建结算服务
func NewCheckoutService(processingDelay time.Duration) *CheckoutService {
	return &CheckoutService{processingDelay: processingDelay}
}

// PlaceOrder 对购物车执行结算
//
// 成功后清空购物车；处理期间 ctx 被取消则中止，购物车保持原样。
func (s *CheckoutService) PlaceOrder(ctx context.Context, store *cart.Store) (*Order, error) {
	items := store.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	totalItems := store.TotalItems()
	totalPrice := store.TotalPrice()

	if s.processingDelay > 0 {
		timer := time.NewTimer(s.processingDelay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	order := &Order{
		OrderNo:    newOrderNo(),
		Items:      items,
		TotalItems: totalItems,
		TotalPrice: totalPrice.StringFixed(2),
		PlacedAt:   time.Now(),
	}
	store.Clear()

	logger.Infow("order_placed",
		"order_no", order.OrderNo,
		"total_items", order.TotalItems,
		"total_price", order.TotalPrice,
	)
	return order, nil
}

// newOrderNo 生成简短的大写订单号
func newOrderNo() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:9])
}
