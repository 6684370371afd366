package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/casa/api/audit"
	"github.com/dev-mohitbeniwal/casa/api/config"
	"github.com/dev-mohitbeniwal/casa/api/controller"
	"github.com/dev-mohitbeniwal/casa/api/dao"
	"github.com/dev-mohitbeniwal/casa/api/db"
	logger "github.com/dev-mohitbeniwal/casa/api/logging"
	"github.com/dev-mohitbeniwal/casa/api/metrics"
	"github.com/dev-mohitbeniwal/casa/api/router"
	"github.com/dev-mohitbeniwal/casa/api/seed"
	"github.com/dev-mohitbeniwal/casa/api/service"
	"github.com/dev-mohitbeniwal/casa/api/util"
)

func main() {
	seedOnly := flag.Bool("seed", false, "create the demo accounts and sample listing, then exit")
	flag.Parse()

	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}
	cfg := config.GetConfig()
	if cfg.JWT.Secret == "" {
		log.Fatal("jwt.secret must be set")
	}

	// Initialize logger
	logger.InitLogger(cfg.Log.Dir, cfg.Log.Level)
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize Neo4j
	driver, err := db.InitNeo4j(ctx, cfg.Neo4j)
	if err != nil {
		logger.Fatal("Failed to initialize Neo4j", zap.Error(err))
	}
	defer db.CloseNeo4j(driver)

	// Initialize Redis
	redisClient, err := db.InitRedis(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer db.CloseRedis(redisClient)
	redisStore := db.NewRedisStore(redisClient, cfg.Redis.DefaultCacheTTL)

	// Initialize DAOs
	daos := dao.InitializeDAOs(driver)

	if *seedOnly {
		if err := seed.NewSeeder(daos.User, daos.Property, redisStore).Run(ctx); err != nil {
			logger.Fatal("Failed to seed database", zap.Error(err))
		}
		return
	}

	// Initialize EventBus
	eventBus := util.NewEventBus()
	eventBus.Start(ctx)

	// Initialize services and utilities
	auditRepository, err := audit.NewElasticsearchRepository(cfg.Elasticsearch.URL, cfg.Elasticsearch.Index)
	if err != nil {
		logger.Fatal("Failed to initialize audit repository", zap.Error(err))
	}
	mediaStore, err := util.NewDiskMediaStore(cfg.Upload.Dir, cfg.Server.BaseURL)
	if err != nil {
		logger.Fatal("Failed to initialize media store", zap.Error(err))
	}
	appMetrics := metrics.NewMetrics()
	tokens := util.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	services := service.InitializeServices(daos, service.Dependencies{
		AuditService:        audit.NewService(auditRepository),
		Metrics:             appMetrics,
		Tokens:              tokens,
		ValidationUtil:      util.NewValidationUtil(),
		CacheService:        util.NewCacheService(redisStore),
		MediaStore:          mediaStore,
		NotificationService: util.NewNotificationService(),
		EventBus:            eventBus,
		Upload:              cfg.Upload,
	})

	// Set up Gin
	gin.SetMode(cfg.Server.Mode)
	engine := router.SetupRouter(controller.InitializeControllers(services, cfg.Upload), router.Options{
		Tokens:          tokens,
		RateLimitStore:  redisStore,
		Metrics:         appMetrics,
		MediaStore:      mediaStore,
		RateLimit:       cfg.RateLimit,
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		MaxUploadMemory: cfg.Upload.MaxFileSize,
	})

	// Set up the server
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// The server has 5 seconds to finish the requests it is currently handling
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	eventBus.Wait()

	logger.Info("Server exiting")
}
