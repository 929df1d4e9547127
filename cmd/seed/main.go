package main

import (
	"flag"

	"github.com/denim-next/internal/config"
	"github.com/denim-next/internal/logger"
	"github.com/denim-next/internal/models"
)

func main() {
	var force bool
	flag.BoolVar(&force, "force", false, "清空现有商品后重建目录")
	flag.Parse()

	// 连接数据库
	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()
	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("Failed to connect database: %v", err)
	}

	// 自动迁移
	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("Failed to migrate database: %v", err)
	}

	// 写入内置商品目录
	if err := models.SeedCatalog(force); err != nil {
		stdLog.Fatalf("Failed to seed catalog: %v", err)
	}
	stdLog.Println("Catalog seeded")
}
