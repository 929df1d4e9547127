package public

import (
	"errors"
	"strconv"
	"time"

	"github.com/denim-next/internal/http/response"
	"github.com/denim-next/internal/logger"
	"github.com/denim-next/internal/models"
	"github.com/denim-next/internal/service"

	"github.com/gin-gonic/gin"
)

// GetProducts 获取商品目录
func (h *Handler) GetProducts(c *gin.Context) {
	products, err := h.ProductService.List()
	if err != nil {
		logger.Errorw("product_list_failed", "error", err)
		response.Internal(c, "Failed to load products")
		return
	}
	response.SuccessWithCount(c, products, len(products))
}

// GetProduct 按 ID 获取商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.NotFound(c, "Product not found")
		return
	}

	product, err := h.ProductService.Get(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "Product not found")
			return
		}
		logger.Errorw("product_get_failed", "id", id, "error", err)
		response.Internal(c, "Failed to load product")
		return
	}
	response.Success(c, product)
}

// Health 健康检查
func (h *Handler) Health(c *gin.Context) {
	database := "connected"
	status := "ok"
	httpStatus := 200

	sqlDB, err := models.DB.DB()
	if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
		database = "disconnected"
		status = "error"
		httpStatus = 503
	}

	c.JSON(httpStatus, gin.H{
		"status":    status,
		"message":   "Server is running",
		"database":  database,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// GetAPIIndex API 索引文档
func (h *Handler) GetAPIIndex(c *gin.Context) {
	c.JSON(200, gin.H{
		"message":   "Denim Storefront API Server",
		"version":   "1.0.0",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"endpoints": gin.H{
			"health": gin.H{
				"path":        "/api/health",
				"method":      "GET",
				"description": "Health check endpoint - returns server and database status",
			},
			"products": gin.H{
				"path":        "/api/products",
				"method":      "GET",
				"description": "Full product catalog in server order",
			},
			"product": gin.H{
				"path":        "/api/products/:id",
				"method":      "GET",
				"description": "Single product by id",
			},
		},
	})
}

// Root 根路径服务信息
func (h *Handler) Root(c *gin.Context) {
	c.JSON(200, gin.H{
		"message": "Denim Storefront API Server",
		"version": "1.0.0",
	})
}
