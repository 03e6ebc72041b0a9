package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"travelbot/internal/auth"
	"travelbot/internal/bot"
	"travelbot/internal/config"
	"travelbot/internal/database"
	"travelbot/internal/handlers"
	"travelbot/internal/middleware"
	"travelbot/internal/rasa"
	"travelbot/internal/relay"
	"travelbot/internal/repositories"
	"travelbot/pkg/logger"
)

func main() {
	// =========================================================================
	// Load configuration
	// =========================================================================
	cfg, err := config.Load("configs/config.yaml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// =========================================================================
	// Khởi tạo Logger
	// =========================================================================
	log, err := logger.NewLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	log.Info("starting server",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.Int("port", cfg.App.Port),
	)

	// =========================================================================
	// Kết nối Database
	// =========================================================================
	db, err := database.NewConnection(&cfg.Database, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer database.Close(db)

	// Auto migrate trong development mode
	if cfg.App.IsDevelopment() {
		if err := database.AutoMigrate(db); err != nil {
			log.Warn("auto migrate failed", zap.Error(err))
		} else {
			log.Info("database auto migration completed")
		}
	}

	// =========================================================================
	// Khởi tạo Repositories
	// =========================================================================
	searchRepo := repositories.NewSearchRepository(db)
	eventRepo := repositories.NewEventRecorder(db)

	log.Info("repositories initialized")

	// =========================================================================
	// Khởi tạo Action Dispatcher (custom action layer)
	// =========================================================================
	dispatcher := bot.NewDispatcher(searchRepo, eventRepo, log)

	log.Info("action dispatcher initialized")

	// =========================================================================
	// Khởi tạo Rasa client và Relay
	// =========================================================================
	rasaClient := rasa.NewClient(cfg.Rasa.URL, cfg.Rasa.Timeout, log)
	relayHandler := relay.NewHandler(rasaClient, cfg.Relay.IdleTimeout, cfg.Rasa.Timeout, log)

	log.Info("relay initialized",
		zap.String("rasa_url", cfg.Rasa.URL),
		zap.Duration("idle_timeout", cfg.Relay.IdleTimeout),
	)

	// =========================================================================
	// Khởi tạo Handlers
	// =========================================================================
	resources := handlers.NewResources(db, log)
	uploadHandler := handlers.NewUploadHandler(cfg.Upload.Dir, cfg.Upload.BasePath, log)
	actionHandler := handlers.NewActionHandler(dispatcher, log)
	chatHandler := handlers.NewChatHandler(rasaClient, log)

	jwtService := auth.NewJWTService(cfg.Auth)
	authHandler := handlers.NewAuthHandler(jwtService, cfg.Auth, log)
	authMiddleware := middleware.AuthMiddleware(jwtService)

	log.Info("handlers initialized")

	// =========================================================================
	// Thiết lập Gin Router
	// =========================================================================
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logging(log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": cfg.App.Name,
			"version": "1.0.0",
		})
	})

	// Static files cho ảnh đã upload
	router.Static(cfg.Upload.BasePath, cfg.Upload.Dir)

	// Custom action server cho dialogue engine
	actionHandler.RegisterRoutes(router)

	// Websocket relay
	router.GET("/ws/chat", relayHandler.Serve)

	// =========================================================================
	// API Routes
	// =========================================================================
	api := router.Group("/api/v1")
	{
		// Ping endpoint (public)
		api.GET("/ping", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "pong"})
		})

		// Auth routes (login, logout: public | me: protected)
		authHandler.RegisterRoutes(api, authMiddleware)

		// Chat fallback qua HTTP (public, FE dùng khi websocket lỗi)
		chatHandler.RegisterRoutes(api)

		// CRUD routes cho dữ liệu du lịch (public read/write như bản gốc)
		resources.RegisterRoutes(api)

		// Upload (protected - chỉ admin được đẩy file)
		protected := api.Group("")
		protected.Use(authMiddleware)
		{
			uploadHandler.RegisterRoutes(protected)
		}
	}

	log.Info("routes registered",
		zap.Strings("endpoints", []string{
			"/webhook",
			"/ws/chat",
			"/api/v1/chat",
			"/api/v1/destinations",
			"/api/v1/hotels",
			"/api/v1/upload",
		}),
	)

	// =========================================================================
	// Khởi động HTTP Server
	// =========================================================================
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server listening", zap.Int("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// =========================================================================
	// Graceful Shutdown
	// =========================================================================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", zap.Error(err))
	}

	log.Info("server exited")
}
