package router

import (
	"github.com/denim-next/internal/config"
	adminhandlers "github.com/denim-next/internal/http/handlers/admin"
	publichandlers "github.com/denim-next/internal/http/handlers/public"
	"github.com/denim-next/internal/logger"
	"github.com/denim-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	// 初始化 Handler（按前台/后台分组）
	publicHandler := publichandlers.New(c)
	adminHandler := adminhandlers.New(c)

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/", publicHandler.Root)

	// API 路由组
	api := r.Group("/api")
	{
		api.GET("", publicHandler.GetAPIIndex)
		api.GET("/health", publicHandler.Health)

		// 公开接口
		api.GET("/products", publicHandler.GetProducts)
		api.GET("/products/:id", publicHandler.GetProduct)

		// 后台维护接口
		api.POST("/products", adminHandler.CreateProduct)
		api.PUT("/products/:id", adminHandler.UpdateProduct)
		api.DELETE("/products/:id", adminHandler.DeleteProduct)
	}

	return r
}
