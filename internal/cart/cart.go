package cart

import (
	"sync"

	"github.com/denim-next/internal/models"

	"github.com/shopspring/decimal"
)

// Line 购物车行项（商品 + 数量）
type Line struct {
	Product  models.Product `json:"product"`
	Quantity int            `json:"quantity"`
}

// Store 购物车存储
//
// 单个用户会话内进行中订单的唯一事实来源。行项按首次加入顺序排列，
// 同一商品 ID 最多一行；所有写操作通过互斥锁串行化。
type Store struct {
	mu    sync.Mutex
	lines []Line
}

// NewStore 创建空购物车
func NewStore() *Store {
	return &Store{}
}

// Add 加入商品
//
// 已存在的行项数量加一，不会产生重复行；新商品追加到末尾，数量为 1。
// 重复加入不改变行项顺序。
func (s *Store) Add(product models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].Product.ID == product.ID {
			s.lines[i].Quantity++
			return
		}
	}
	s.lines = append(s.lines, Line{Product: product, Quantity: 1})
}

// Remove 移除商品行项；商品不存在时为空操作
func (s *Store) Remove(productID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.removeLocked(productID)
}

// SetQuantity 设置行项数量
//
// quantity <= 0 时移除整行，数量永远不会以零或负数存在；
// 商品不存在时为空操作。
func (s *Store) SetQuantity(productID uint, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		s.removeLocked(productID)
		return
	}
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines[i].Quantity = quantity
			return
		}
	}
}

// Clear 无条件清空购物车（结算成功后由结算服务调用）
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = nil
}

// Items 返回行项快照（首次加入顺序）
func (s *Store) Items() []Line {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]Line, len(s.lines))
	copy(items, s.lines)
	return items
}

// TotalItems 返回全部行项数量之和
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for i := range s.lines {
		total += s.lines[i].Quantity
	}
	return total
}

// TotalPrice 返回全部行项金额之和
//
// 价格是展示字符串，通过 models.ParsePrice 容错解析；
// 无法解析的价格按 0 计入，合计永远可用。
func (s *Store) TotalPrice() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := decimal.Zero
	for i := range s.lines {
		price := models.ParsePrice(s.lines[i].Product.Price)
		total = total.Add(price.Mul(decimal.NewFromInt(int64(s.lines[i].Quantity))))
	}
	return total
}

// Len 返回行项条数（去重后的商品种类数）
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.lines)
}

func (s *Store) removeLocked(productID uint) {
	for i := range s.lines {
		if s.lines[i].Product.ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			return
		}
	}
}
