package admin

import (
	"errors"
	"strconv"

	"github.com/denim-next/internal/http/response"
	"github.com/denim-next/internal/logger"
	"github.com/denim-next/internal/service"

	"github.com/gin-gonic/gin"
)

// CreateProduct 创建商品
func (h *Handler) CreateProduct(c *gin.Context) {
	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.ProductService.Create(input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Errorw("product_create_failed", "error", err)
		response.Internal(c, "Failed to create product")
		return
	}
	response.Created(c, product)
}

// UpdateProduct 更新商品
func (h *Handler) UpdateProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.NotFound(c, "Product not found")
		return
	}

	var input service.ProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	product, err := h.ProductService.Update(uint(id), input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNotFound):
			response.NotFound(c, "Product not found")
		case errors.Is(err, service.ErrInvalidInput):
			response.BadRequest(c, err.Error())
		default:
			logger.Errorw("product_update_failed", "id", id, "error", err)
			response.Internal(c, "Failed to update product")
		}
		return
	}
	response.Success(c, product)
}

// DeleteProduct 删除商品
func (h *Handler) DeleteProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.NotFound(c, "Product not found")
		return
	}

	if err := h.ProductService.Delete(uint(id)); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "Product not found")
			return
		}
		logger.Errorw("product_delete_failed", "id", id, "error", err)
		response.Internal(c, "Failed to delete product")
		return
	}
	response.Success(c, gin.H{"deleted": id})
}
