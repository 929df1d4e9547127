package models

import (
	"github.com/denim-next/internal/logger"
)

// SeedCatalog 空库时写入内置商品目录
//
// force 为 true 时先清空再重建（cmd/seed 使用）；否则仅在表为空时写入。
func SeedCatalog(force bool) error {
	if force {
		if err := DB.Unscoped().Where("1 = 1").Delete(&Product{}).Error; err != nil {
			return err
		}
	} else {
		var count int64
		if err := DB.Model(&Product{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return nil
		}
	}

	products := BundledCatalog()
	if err := DB.Create(&products).Error; err != nil {
		return err
	}
	logger.Infow("catalog_seeded", "count", len(products), "force", force)
	return nil
}
