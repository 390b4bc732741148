package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eshabeddings/catalog-service/internal/config"
	"github.com/eshabeddings/catalog-service/internal/handlers"
	"github.com/eshabeddings/catalog-service/internal/middleware"
	"github.com/eshabeddings/catalog-service/internal/repository"
	"github.com/eshabeddings/catalog-service/internal/service"
	"github.com/eshabeddings/catalog-service/internal/session"
	"github.com/eshabeddings/catalog-service/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting catalog api server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Initialize the product store: MongoDB when configured, otherwise
	// the in-memory store for local development.
	var productRepo repository.ProductRepository
	if cfg.Mongo.URI != "" {
		mongoRepo, err := repository.NewMongoProductRepository(context.Background(), cfg.Mongo.URI, cfg.Mongo.Database)
		if err != nil {
			log.Error("failed to connect to mongodb", "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := mongoRepo.Close(context.Background()); err != nil {
				log.Error("failed to disconnect from mongodb", "error", err)
			}
		}()
		log.Info("connected to mongodb", "database", cfg.Mongo.Database)
		productRepo = mongoRepo
	} else {
		log.Warn("MONGO_URI not set, using in-memory store; products will not persist")
		productRepo = repository.NewInMemoryProductRepository()
	}

	// Initialize services
	catalogService := service.NewCatalogService(productRepo, cfg.Admin.Token)
	sessions := session.NewManager(cfg.Admin.SessionSecret, time.Duration(cfg.Admin.SessionTTLMinutes)*time.Minute)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	productHandler := handlers.NewProductHandler(catalogService, log)
	authHandler := handlers.NewAuthHandler(sessions, cfg.Admin.Username, cfg.Admin.Password, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Admin-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public catalog surface; writes authorize per-request via the
		// shared secret inside the service.
		r.Get("/products", productHandler.ListProducts)
		r.Post("/products", productHandler.CreateProduct)
		r.Put("/products/{productId}", productHandler.UpdateProduct)
		r.Delete("/products/{productId}", productHandler.DeleteProduct)

		// Admin surface: login is open, everything else needs a session.
		r.Post("/admin/login", authHandler.Login)
		r.Group(func(r chi.Router) {
			r.Use(middleware.AdminSession(sessions))
			r.Post("/admin/logout", authHandler.Logout)
			r.Get("/admin/products", productHandler.ListProducts)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
