package models

import (
	"time"

	"gorm.io/gorm"
)

// Product 商品表
type Product struct {
	ID          uint           `gorm:"primarykey" json:"id"`                       // 主键
	Name        string         `gorm:"not null;index" json:"name"`                 // 商品名称
	Price       string         `gorm:"type:varchar(32);not null" json:"price"`     // 显示价格（如 $79.99）
	Description string         `gorm:"type:text" json:"description"`               // 商品描述
	Image       string         `gorm:"type:varchar(512)" json:"image,omitempty"`   // 图片地址（可选）
	Featured    bool           `gorm:"default:false;index" json:"featured"`        // 是否精选
	SortOrder   int            `gorm:"default:0;index" json:"-"`                   // 排序权重（目录顺序）
	CreatedAt   time.Time      `gorm:"index" json:"-"`                             // 创建时间
	UpdatedAt   time.Time      `json:"-"`                                          // 更新时间
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`                             // 软删除时间
}

// TableName 指定表名
func (Product) TableName() string {
	return "products"
}
