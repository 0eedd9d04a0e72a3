package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/matbaa/storefront-service/config"
	"github.com/matbaa/storefront-service/internal/configurator"
	"github.com/matbaa/storefront-service/internal/server"
	"github.com/matbaa/storefront-service/pkg/broker"
	"github.com/matbaa/storefront-service/pkg/cache"
	"github.com/matbaa/storefront-service/pkg/i18n"
	"github.com/matbaa/storefront-service/pkg/logger"
	"github.com/matbaa/storefront-service/pkg/postgres"
	"github.com/matbaa/storefront-service/pkg/search"

	cartH "github.com/matbaa/storefront-service/internal/cart/handler"
	cartRepoPkg "github.com/matbaa/storefront-service/internal/cart/repository"
	cartUCPkg "github.com/matbaa/storefront-service/internal/cart/usecase"

	catalogH "github.com/matbaa/storefront-service/internal/catalog/handler"
	catalogRepoPkg "github.com/matbaa/storefront-service/internal/catalog/repository"
	catalogUCPkg "github.com/matbaa/storefront-service/internal/catalog/usecase"

	couponH "github.com/matbaa/storefront-service/internal/coupon/handler"
	couponRepoPkg "github.com/matbaa/storefront-service/internal/coupon/repository"
	couponUCPkg "github.com/matbaa/storefront-service/internal/coupon/usecase"

	optionsH "github.com/matbaa/storefront-service/internal/options/handler"
	optionsListenerPkg "github.com/matbaa/storefront-service/internal/options/listener"
	optionsRepoPkg "github.com/matbaa/storefront-service/internal/options/repository"
	optionsUCPkg "github.com/matbaa/storefront-service/internal/options/usecase"

	reviewH "github.com/matbaa/storefront-service/internal/review/handler"
	reviewRepoPkg "github.com/matbaa/storefront-service/internal/review/repository"
	reviewUCPkg "github.com/matbaa/storefront-service/internal/review/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 1.5 Initialize i18n
	i18n.Init()
	if err := i18n.LoadMessages(language.English, englishLabels()); err != nil {
		log.Printf("Failed to load en messages: %v", err)
	}

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}

	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Connect to Database
	db, err := postgres.NewPostgres(&postgres.Config{
		Host:            cfg.Postgres.Host,
		Port:            cfg.Postgres.Port,
		User:            cfg.Postgres.User,
		Password:        cfg.Postgres.Password,
		DBName:          cfg.Postgres.DBName,
		SSLMode:         cfg.Postgres.SSLMode,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))

	// 4. Initialize Repositories
	catalogRepo := catalogRepoPkg.NewPGRepository(db)
	optionsRepo := optionsRepoPkg.NewPGRepository(db)
	cartRepo := cartRepoPkg.NewPGRepository(db)
	reviewRepo := reviewRepoPkg.NewPGRepository(db)
	couponRepo := couponRepoPkg.NewPGRepository(db)

	// 5. Initialize Redis
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Fatal("Could not connect to Redis", zap.Error(err))
	}
	defer redisClient.Close()
	appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))

	// 5.5 Initialize Kafka
	kafkaConsumer := broker.NewConsumer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.CatalogTopic,
		GroupID: cfg.Kafka.GroupID,
	})
	defer kafkaConsumer.Close()

	cartProducer := broker.NewProducer(&broker.Config{
		Brokers: cfg.Kafka.Brokers,
		Topic:   cfg.Kafka.CartTopic,
	})
	defer cartProducer.Close()
	appLogger.Info("Connected to Kafka", zap.Strings("brokers", cfg.Kafka.Brokers))

	// 5.8 Initialize Elasticsearch
	esClient, err := search.NewClient(&search.Config{
		Addresses: cfg.Elastic.Addresses,
		Username:  cfg.Elastic.Username,
		Password:  cfg.Elastic.Password,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Elasticsearch (Search features might be limited)", zap.Error(err))
		esClient = nil
	} else {
		appLogger.Info("Connected to Elasticsearch", zap.Strings("addresses", cfg.Elastic.Addresses))
	}

	// 6. Initialize UseCases
	catalogUC := catalogUCPkg.NewCatalogUseCase(catalogRepo, redisClient, esClient, appLogger)
	optionsUC := optionsUCPkg.NewOptionsUseCase(optionsRepo, redisClient, appLogger)
	cartUC := cartUCPkg.NewCartUseCase(cartRepo, optionsUC, cartProducer, appLogger)
	reviewUC := reviewUCPkg.NewReviewUseCase(reviewRepo, catalogUC, appLogger)
	couponUC := couponUCPkg.NewCouponUseCase(couponRepo, appLogger)

	// 6.5 Initialize Listeners
	schemaListener := optionsListenerPkg.NewSchemaListener(kafkaConsumer, optionsUC, appLogger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go schemaListener.Start(ctx)

	// 7. Initialize Handlers and Router
	handlers := &server.Handlers{
		Catalog: catalogH.NewCatalogHandler(catalogUC, appLogger),
		Options: optionsH.NewOptionsHandler(optionsUC, appLogger),
		Cart:    cartH.NewCartHandler(cartUC, appLogger),
		Review:  reviewH.NewReviewHandler(reviewUC, appLogger),
		Coupon:  couponH.NewCouponHandler(couponUC, appLogger),
	}

	if cfg.Server.AppEnv != "dev" && cfg.Server.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := server.NewRouter(handlers, appLogger)

	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:    port,
		Handler: router,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}

// englishLabels translates the Arabic form labels for English clients.
func englishLabels() map[string]string {
	return map[string]string{
		configurator.LabelSize:           "Size",
		configurator.LabelSizeQuantity:   "Size quantity",
		configurator.LabelColor:          "Color",
		configurator.LabelMaterial:       "Material",
		configurator.LabelPrintingMethod: "Printing method",
		configurator.LabelPrintLocation:  "Printing location",
	}
}
