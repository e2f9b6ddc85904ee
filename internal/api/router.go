package api

import (
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/colonialstours/tours-api/docs"
	"github.com/colonialstours/tours-api/internal/api/handler"
	"github.com/colonialstours/tours-api/internal/api/middleware"
	"github.com/colonialstours/tours-api/internal/core/domain"
	"github.com/colonialstours/tours-api/internal/core/service"
	"github.com/colonialstours/tours-api/internal/infrastructure/config"
	"github.com/colonialstours/tours-api/internal/infrastructure/db/postgres"
	redisdb "github.com/colonialstours/tours-api/internal/infrastructure/db/redis"
	"github.com/colonialstours/tours-api/internal/infrastructure/storage"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sqlx.DB, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))
	e.Use(echoprometheus.NewMiddleware("tours"))

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(db)
	tourRepo := postgres.NewTourRepository(db)
	savedRepo := postgres.NewSavedTourRepository(db)
	purchaseRepo := postgres.NewPurchaseRepository(db)
	cartStore := redisdb.NewCartStore(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	tourService := service.NewTourService(tourRepo, savedRepo, log)
	cartService := service.NewCartService(cartStore, tourRepo, log)
	purchaseService := service.NewPurchaseService(purchaseRepo, cartService, cartStore, log)
	userService := service.NewUserService(userRepo, log)
	adminService := service.NewAdminService(userRepo, tourRepo, purchaseRepo, log)
	imageService := service.NewImageService(storage.NewLocalImageStore(cfg.ImagesDir), log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	tourHandler := handler.NewTourHandler(tourService)
	cartHandler := handler.NewCartHandler(cartService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)
	userHandler := handler.NewUserHandler(userService)
	adminHandler := handler.NewAdminHandler(adminService, tourService)
	imageHandler := handler.NewImageHandler(imageService)

	auth := middleware.Auth(cfg.JWTSecret)
	optionalAuth := middleware.OptionalAuth(cfg.JWTSecret)

	// --- Auth ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Catalog (public; token optional for is_saved decoration) ---
	e.GET("/tours", tourHandler.List, optionalAuth)

	// --- Cart, bookmarks, purchases (authenticated) ---
	tours := e.Group("/tours", auth)
	tours.POST("/cart", cartHandler.Add)
	tours.GET("/cart", cartHandler.Get)
	tours.DELETE("/cart/:id", cartHandler.Remove)
	tours.POST("/save", tourHandler.Save)
	tours.GET("/saved", tourHandler.ListSaved)
	tours.DELETE("/saved/:id", tourHandler.Unsave)
	tours.POST("/purchase", purchaseHandler.Checkout)
	tours.GET("/history", purchaseHandler.History)
	tours.GET("/my-tours", tourHandler.MyTours, middleware.RBAC(domain.RoleGuide, domain.RoleAdmin))

	// --- Catalog item + guide mutations ---
	e.GET("/tours/:id", tourHandler.Get, optionalAuth)
	e.POST("/tours", tourHandler.Create, auth, middleware.RBAC(domain.RoleGuide, domain.RoleAdmin))
	e.PUT("/tours/:id", tourHandler.Update, auth, middleware.RBAC(domain.RoleGuide, domain.RoleAdmin))
	e.DELETE("/tours/:id", tourHandler.Delete, auth, middleware.RBAC(domain.RoleGuide, domain.RoleAdmin))

	// --- Image uploads (stored locally, served back under /images) ---
	e.POST("/images/upload", imageHandler.Upload, auth)
	e.Static("/images", cfg.ImagesDir)

	// --- Self-service account ---
	user := e.Group("/user", auth)
	user.GET("/profile", userHandler.Profile)
	user.PUT("/profile", userHandler.UpdateProfile)
	user.POST("/become-guide", userHandler.BecomeGuide)

	// --- Admin dashboard ---
	admin := e.Group("/admin", auth, middleware.RBAC(domain.RoleAdmin))
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/users", adminHandler.ListUsers)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/tours", adminHandler.ListTours)
	admin.DELETE("/tours/:id", adminHandler.DeleteTour)
	admin.GET("/purchases", adminHandler.ListPurchases)

	// --- Operational surface ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
