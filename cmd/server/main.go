package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/ChoneChone22/bambite-storefront/internal/auth"
	"github.com/ChoneChone22/bambite-storefront/internal/cart"
	"github.com/ChoneChone22/bambite-storefront/internal/commons"
	"github.com/ChoneChone22/bambite-storefront/internal/config"
	"github.com/ChoneChone22/bambite-storefront/internal/infrastructure/logger"
	"github.com/ChoneChone22/bambite-storefront/internal/infrastructure/mysql"
	"github.com/ChoneChone22/bambite-storefront/internal/infrastructure/redis"
	"github.com/ChoneChone22/bambite-storefront/internal/order"
	"github.com/ChoneChone22/bambite-storefront/internal/product"
	"github.com/ChoneChone22/bambite-storefront/internal/server"
	"github.com/ChoneChone22/bambite-storefront/internal/staff"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := commons.LoadConfigFile(path, cfg); err != nil {
			log.Fatalf("loading config file: %v", err)
		}
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	rdb, err := redis.NewClient(cfg.Redis)
	if err != nil {
		zapLogger.Fatal("connecting to redis", zap.Error(err))
	}
	defer rdb.Close()
	zapLogger.Info("redis connected")

	authModule := auth.NewModule(db, rdb, cfg.Auth, zapLogger)
	productCtrl := product.NewModule(db, zapLogger)
	cartCtrl := cart.NewModule(db, zapLogger)
	orderModule := order.NewModule(db, cfg, zapLogger)
	staffCtrl := staff.NewModule(db, rdb, cfg.Auth, zapLogger)

	router := server.NewRouter(authModule, productCtrl, cartCtrl, orderModule, staffCtrl, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
