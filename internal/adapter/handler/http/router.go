package http

import (
	"net/http"

	"github.com/Ritik6475/ecommerce-prashant-backend/internal/adapter/config"
	"github.com/Ritik6475/ecommerce-prashant-backend/internal/core/port"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.Config,
	handler *Handler,
	tokenService port.TokenService,
	userHandler *UserHandler,
	productHandler *ProductHandler,
	cartHandler *CartHandler,
	wishlistHandler *WishlistHandler,
	orderHandler *OrderHandler,
	paymentHandler *PaymentHandler,
	adminHandler *AdminHandler) (*Router, error) {

	if conf.App.Mode == config.AppModeProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(metricsMiddleware())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{conf.HTTP.CORSOrigin}
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", adminSecretHeaderKey)
	router.Use(cors.New(corsConfig))

	router.GET("/healthz", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", userHandler.RegisterUser)
			auth.POST("/login", userHandler.LoginUser)
			auth.POST("/google", userHandler.GoogleLogin)
			auth.POST("/logout", userHandler.Logout)
		}

		profile := api.Group("/profile")
		{
			profile.Use(authCheck(handler, tokenService))
			profile.GET("", userHandler.GetProfile)
			profile.PUT("", userHandler.UpdateProfile)
		}

		products := api.Group("/products")
		{
			products.GET("", productHandler.ListProducts)
			products.GET("/search", productHandler.SearchProducts)
			products.GET("/filters", productHandler.FilterOptions)
			products.GET("/slug/:slug", productHandler.GetProductBySlug)
			products.GET("/:id", productHandler.GetProduct)
			products.GET("/:id/reviews", productHandler.ListReviews)
			products.POST("/:id/reviews", authCheck(handler, tokenService), productHandler.AddReview)
		}

		cart := api.Group("/cart")
		{
			cart.Use(authCheck(handler, tokenService))
			cart.GET("", cartHandler.GetCart)
			cart.POST("", cartHandler.AddToCart)
			cart.PUT("/:id", cartHandler.UpdateCartItem)
			cart.DELETE("/:id", cartHandler.RemoveCartItem)
			cart.DELETE("", cartHandler.ClearCart)
		}

		wishlist := api.Group("/wishlist")
		{
			wishlist.Use(authCheck(handler, tokenService))
			wishlist.GET("", wishlistHandler.GetWishlist)
			wishlist.POST("", wishlistHandler.AddToWishlist)
			wishlist.POST("/toggle", wishlistHandler.ToggleWishlist)
			wishlist.DELETE("/:id", wishlistHandler.RemoveFromWishlist)
		}

		orders := api.Group("/orders")
		{
			orders.Use(authCheck(handler, tokenService))
			orders.POST("", orderHandler.PlaceOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.POST("/:id/cancel", orderHandler.CancelOrder)
		}

		payment := api.Group("/payment")
		{
			payment.Use(authCheck(handler, tokenService))
			payment.POST("/orders/:id", paymentHandler.CreateGatewayOrder)
			payment.POST("/verify", paymentHandler.VerifyPayment)
		}

		admin := api.Group("/admin")
		{
			admin.Use(adminCheck(handler, conf.Auth.AdminSecret))
			admin.GET("/orders", adminHandler.ListOrders)
			admin.GET("/orders/stats", adminHandler.OrderStats)
			admin.GET("/orders/:id", adminHandler.GetOrder)
			admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
			admin.POST("/orders/:id/cancel", adminHandler.CancelOrder)
			admin.GET("/payments/:id", paymentHandler.GetGatewayPayment)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
