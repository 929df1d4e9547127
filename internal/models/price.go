package models

import (
	"strings"

	"github.com/denim-next/internal/constants"
	"github.com/shopspring/decimal"
)

// ParsePrice 容错解析显示价格为金额
//
// 价格在整个系统里是展示字符串而非数值类型。这里剥离除数字、小数点、
// 负号以外的所有字符后按十进制解析；解析失败一律返回 0，绝不报错，
// 保证合计金额始终可计算。
func ParsePrice(price string) decimal.Decimal {
	var b strings.Builder
	for _, r := range price {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	numeric := b.String()
	if numeric == "" {
		return decimal.Zero
	}
	parsed, err := decimal.NewFromString(numeric)
	if err != nil {
		return decimal.Zero
	}
	return parsed
}

// FormatPrice 将金额格式化为显示价格（$D.DD）
func FormatPrice(amount decimal.Decimal) string {
	return constants.PriceDisplayPrefix + amount.Round(2).StringFixed(2)
}
