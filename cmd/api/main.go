package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/config"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/auth"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/cache"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/delivery"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/domain"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/events"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/grpcserver"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/health"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/middleware"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/repository"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/internal/usecase"
	"github.com/CodingToShare/Prueba-Tecnica---Finanzauto/pkg/db"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetLevel(logrus.InfoLevel)

	cfg := config.LoadConfig(logger)
	if level, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logger.Warnf("Invalid log level '%s' in config, using default 'info'. Error: %v", cfg.LogLevel, err)
	} else {
		logger.SetLevel(level)
	}
	if level := logger.GetLevel(); level < logrus.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
	logger.Info("Starting Product Catalog API...")

	// --- Database ---
	gdb, err := db.Open(cfg.DBDriver, cfg.DatabaseURL, cfg.SQLitePath)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		if err := db.Close(gdb); err != nil {
			logger.Errorf("Error closing database connection: %v", err)
		} else {
			logger.Info("Database connection closed.")
		}
	}()
	if err := db.Migrate(gdb); err != nil {
		logger.Fatalf("Failed to migrate schema: %v", err)
	}
	hasher := auth.NewPasswordHasher(auth.DefaultCost)
	if cfg.SeedData {
		seeded, err := db.Seed(gdb, hasher.Hash)
		if err != nil {
			logger.Fatalf("Failed to seed database: %v", err)
		}
		if seeded {
			logger.Info("Database seeded with initial data.")
		}
	}

	// --- Optional infrastructure ---
	publisher := events.NewNoopPublisher()
	if cfg.RabbitMQURL != "" {
		p, err := events.NewAMQPPublisher(cfg.RabbitMQURL, cfg.EventsExchange, logger)
		if err != nil {
			logger.Warnf("Catalog events disabled: %v", err)
		} else {
			publisher = p
		}
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Errorf("Error closing event publisher: %v", err)
		}
	}()

	// --- Dependency Injection ---
	var productRepo domain.ProductRepository = repository.NewGormProductRepository(gdb, logger)
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		client, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		cancel()
		if err != nil {
			logger.Warnf("Product cache disabled: %v", err)
		} else {
			defer client.Close()
			productRepo = cache.NewCachedProductRepository(productRepo, client, cfg.ProductCacheTTL, logger)
			logger.Infof("Product cache enabled (ttl %s)", cfg.ProductCacheTTL)
		}
	}
	categoryRepo := repository.NewGormCategoryRepository(gdb, logger)
	supplierRepo := repository.NewGormSupplierRepository(gdb, logger)
	customerRepo := repository.NewGormCustomerRepository(gdb, logger)
	employeeRepo := repository.NewGormEmployeeRepository(gdb, logger)
	shipperRepo := repository.NewGormShipperRepository(gdb, logger)
	userRepo := repository.NewGormUserRepository(gdb, logger)
	orderRepo := repository.NewGormOrderRepository(gdb, logger)
	logger.Info("Repositories initialized.")

	tokens := auth.NewTokenService(cfg.JWT.Secret, cfg.JWT.Issuer, cfg.JWT.Audience, cfg.JWT.Expiration())
	checker, err := health.NewGormChecker(gdb, logger)
	if err != nil {
		logger.Fatalf("Failed to create health checker: %v", err)
	}

	router := delivery.NewRouter(delivery.RouterConfig{
		Products:       usecase.NewProductUseCase(productRepo, categoryRepo, supplierRepo, logger, usecase.WithPublisher(publisher)),
		Categories:     usecase.NewCategoryUseCase(categoryRepo, logger),
		Suppliers:      usecase.NewSupplierUseCase(supplierRepo, logger),
		Auth:           usecase.NewAuthUseCase(userRepo, hasher, tokens, logger),
		Orders:         usecase.NewOrderUseCase(orderRepo, productRepo, customerRepo, employeeRepo, shipperRepo, logger),
		References:     usecase.NewReferenceUseCase(customerRepo, employeeRepo, shipperRepo, logger),
		Health:         checker,
		Guard:          middleware.NewAuthorizer(tokens, logger),
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Logger:         logger,
	})
	logger.Info("API Routes registered.")

	// --- gRPC health ---
	watchCtx, stopWatch := context.WithCancel(context.Background())
	defer stopWatch()
	grpcSrv := grpcserver.New(checker, grpcserver.DefaultRefreshInterval, logger)
	lis, err := net.Listen("tcp", cfg.GrpcPort)
	if err != nil {
		logger.Fatalf("Failed to listen on port %s: %v", cfg.GrpcPort, err)
	}
	go grpcSrv.Watch(watchCtx)
	go func() {
		if err := grpcSrv.Serve(lis); err != nil {
			logger.Errorf("Failed to serve gRPC: %v", err)
		}
	}()

	// --- HTTP ---
	srv := &http.Server{
		Addr:              cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		logger.Infof("Starting HTTP server on %s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Warn("Shutdown signal received...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("HTTP server forced to shut down: %v", err)
	}
	stopWatch()
	grpcSrv.Stop()
	logger.Info("Product Catalog API shut down gracefully.")
}
