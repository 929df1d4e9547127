package provider

import (
	"github.com/denim-next/internal/config"
	"github.com/denim-next/internal/models"
	"github.com/denim-next/internal/repository"
	"github.com/denim-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	ProductRepo repository.ProductRepository

	// Services
	ProductService  *service.ProductService
	CheckoutService *service.CheckoutService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	c := &Container{Config: cfg}

	// 1. 初始化 Repositories
	c.ProductRepo = repository.NewProductRepository(models.DB)

	// 2. 初始化 Services
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CheckoutService = service.NewCheckoutService(cfg.Checkout.ProcessingDelay())

	return c
}
