package constants

// 商品目录缓存键常量
const (
	CatalogCacheKey          = "catalog:products"
	CatalogCacheTimestampKey = "catalog:products:ts"
)

// 目录数据来源常量
const (
	CatalogSourceCache    = "cache"
	CatalogSourceNetwork  = "network"
	CatalogSourceFallback = "fallback"
)

// 响应状态常量
const (
	ResponseStatusSuccess = "success"
	ResponseStatusError   = "error"
)

// 价格显示格式（美元，两位小数）
const PriceDisplayPrefix = "$"
