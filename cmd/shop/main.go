package main

import (
	"context"
	"fmt"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/adapter/auth"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/adapter/cache"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/adapter/config"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/adapter/gateway/razorpay"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/adapter/handler/http"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/adapter/logger"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/adapter/storage"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/adapter/storage/repository"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/service"
	"go.uber.org/zap"
)

func main() {
	conf, err := config.NewConfig()
	if err != nil {
		fmt.Printf("config error:%s", err)
		return
	}

	log := logger.NewLogger(conf.App)
	if log == nil {
		fmt.Printf("error creating log")
		return
	}
	defer func() {
		err := log.Sync()
		if err != nil {
			fmt.Printf("log error: %s", err)
		}
	}()

	ctx := context.Background()

	db, err := storage.NewDBStorage(ctx, conf.Database)
	if err != nil {
		log.Error("database error", zap.Error(err))
		return
	}
	err = db.RunMigrations()
	if err != nil {
		log.Error("database migration error", zap.Error(err))
		return
	}

	repo, err := repository.NewRepository(db)
	if err != nil {
		log.Error("repository creating error", zap.Error(err))
		return
	}

	tokenService, err := auth.New()
	if err != nil {
		log.Error("token service creating error", zap.Error(err))
		return
	}

	google := auth.NewGoogleVerifier(conf.Auth)

	gateway, err := razorpay.NewClient(conf.Razorpay, log.Named("Razorpay"))
	if err != nil {
		log.Error("gateway client creating error", zap.Error(err))
		return
	}

	catalogCache, err := cache.NewRedisCache(ctx, conf.Redis)
	if err != nil {
		log.Error("redis cache creating error", zap.Error(err))
		return
	}
	defer func() { _ = catalogCache.Close() }()

	svc, err := service.NewService(repo, tokenService, google, gateway, catalogCache, log.Named("Service"))
	if err != nil {
		log.Error("service creating error", zap.Error(err))
		return
	}

	handler := http.NewHandler(log.Named("Handler"))

	userHandler, err := http.NewUserHandler(handler, svc)
	if err != nil {
		log.Error("user handler creating error", zap.Error(err))
		return
	}
	productHandler, err := http.NewProductHandler(handler, svc)
	if err != nil {
		log.Error("product handler creating error", zap.Error(err))
		return
	}
	cartHandler, err := http.NewCartHandler(handler, svc)
	if err != nil {
		log.Error("cart handler creating error", zap.Error(err))
		return
	}
	wishlistHandler, err := http.NewWishlistHandler(handler, svc)
	if err != nil {
		log.Error("wishlist handler creating error", zap.Error(err))
		return
	}
	orderHandler, err := http.NewOrderHandler(handler, svc)
	if err != nil {
		log.Error("order handler creating error", zap.Error(err))
		return
	}
	paymentHandler, err := http.NewPaymentHandler(handler, svc)
	if err != nil {
		log.Error("payment handler creating error", zap.Error(err))
		return
	}
	adminHandler, err := http.NewAdminHandler(handler, svc)
	if err != nil {
		log.Error("admin handler creating error", zap.Error(err))
		return
	}

	r, err := http.NewRouter(conf, handler, tokenService,
		userHandler, productHandler, cartHandler, wishlistHandler,
		orderHandler, paymentHandler, adminHandler)
	if err != nil {
		log.Error("router creating error", zap.Error(err))
		return
	}

	err = r.Serve(conf.HTTP.HostString)
	if err != nil {
		log.Error("router serve error", zap.Error(err))
		return
	}
}
