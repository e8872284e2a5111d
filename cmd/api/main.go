package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	reconcileUseCase "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/usecase/reconcile"
	settlementUseCase "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/usecase/settlement"
	sponsorshipUseCase "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/usecase/sponsorship"

	domaingateway "github.com/amirhossein-jamali/sponsorship-engine/internal/domain/port/gateway"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/database/migration"
	gatewayAdapter "github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/gateway"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/logger"
	notifierAdapter "github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/notifier"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/repository"
	timeProvider "github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/config"
	"github.com/amirhossein-jamali/sponsorship-engine/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate essential configuration
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	// Set Gin mode based on environment
	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create logger
	appLogger := logger.NewZapLogger(cfg.Environment == config.Production)

	// Register prometheus collectors
	metrics.Init()

	// Initialize time provider
	tp := timeProvider.NewRealTimeProvider()

	// Setup database configuration
	dbConfig := &database.Config{
		Driver:          cfg.Database.Driver,
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      int(cfg.Database.RetryDelay.Seconds()),
	}

	// Connect to the database
	dbManager := database.NewManager(dbConfig, appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer func() { _ = dbManager.Close() }()

	// Run migrations
	if err := dbManager.MigrationManager().MigrateAll(); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	// Seed the default spending categories
	if err := migration.CreateDefaultCategories(context.Background(), dbManager.DB(), tp.Now()); err != nil {
		appLogger.Error("Failed to create default categories", map[string]any{
			"error": err.Error(),
		})
	}

	// Initialize repositories
	sponsorshipRepo := repository.NewSponsorshipRepository(dbManager.DB(), tp, appLogger)
	pendingRepo := repository.NewPendingTransactionRepository(dbManager.DB(), tp, appLogger)
	executedRepo := repository.NewExecutedTransactionRepository(dbManager.DB(), tp, appLogger)
	beneficiaryRepo := repository.NewBeneficiaryRepository(dbManager.DB(), appLogger)
	vendorRepo := repository.NewVendorRepository(dbManager.DB(), appLogger)
	categoryRepo := repository.NewCategoryRepository(dbManager.DB(), appLogger)
	walletRepo := repository.NewWalletRepository(dbManager.DB(), tp, appLogger)
	unitOfWork := database.NewUnitOfWork(dbManager.DB(), appLogger, tp)

	// Select the funds gateway implementation
	var funds domaingateway.FundsGateway
	if cfg.Gateway.UseMock {
		appLogger.Warn("Using simulated funds gateway", nil)
		funds = gatewayAdapter.NewSimulatedGateway(appLogger)
	} else {
		funds = gatewayAdapter.NewHTTPClient(cfg.Gateway.BaseURL, cfg.Gateway.APIKey, cfg.Gateway.Timeout, appLogger)
	}

	pushNotifier := notifierAdapter.NewHTTPNotifier(cfg.Notifier.BaseURL, cfg.Notifier.APIKey, cfg.Notifier.Timeout, appLogger)

	// Initialize use cases
	sponsorshipService := sponsorshipUseCase.NewService(sponsorshipRepo, beneficiaryRepo, categoryRepo, tp, appLogger)

	settlementService := settlementUseCase.NewService(
		sponsorshipService,
		pendingRepo,
		executedRepo,
		beneficiaryRepo,
		vendorRepo,
		categoryRepo,
		walletRepo,
		unitOfWork,
		funds,
		pushNotifier,
		tp,
		appLogger,
		settlementUseCase.Config{
			OtpTTL:           cfg.Settlement.OtpTTL,
			OtpDigits:        cfg.Settlement.OtpDigits,
			MinFeeTokenCents: cfg.Settlement.MinFeeTokenCents,
			GatewayTimeout:   cfg.Gateway.Timeout,
		},
	)

	listener := reconcileUseCase.NewListener(executedRepo, unitOfWork, appLogger)

	// Background expiry sweep
	sweeper := settlementUseCase.NewSweeper(pendingRepo, tp, appLogger, cfg.Settlement.SweepInterval)
	sweeper.OnSwept(func(count int64) {
		metrics.SweptChallengesTotal.Add(float64(count))
	})
	sweeper.Start()
	defer sweeper.Stop()

	// Initialize API handlers
	sponsorshipHandler := handler.NewSponsorshipHandler(sponsorshipService, appLogger)
	settlementHandler := handler.NewSettlementHandler(settlementService, pendingRepo, executedRepo, appLogger)
	webhookHandler := handler.NewWebhookHandler(listener, appLogger)

	// Initialize Gin router
	router := gin.New()

	// Setup middlewares
	routes.SetupMiddlewares(router, appLogger)

	// Setup routes
	routes.SetupRoutes(router, sponsorshipHandler, settlementHandler, webhookHandler, cfg.Webhook.SigningSecret, appLogger)

	// Create HTTP server with configurable timeout values
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Start the server in a goroutine
	go func() {
		appLogger.Info("Starting server", map[string]any{
			"port": cfg.Server.Port,
			"env":  cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...", nil)

	// Create a deadline to wait for
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop the expiry sweep before closing the listener surface
	sweeper.Stop()

	// Shutdown the server
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}

	appLogger.Info("Server exited gracefully", nil)
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Database.Host == "" {
		missingConfigs = append(missingConfigs, "database.host (or SE_DB_HOST environment variable)")
	}
	if cfg.Database.Username == "" {
		missingConfigs = append(missingConfigs, "database.username (or SE_DB_USERNAME environment variable)")
	}
	if cfg.Database.Password == "" {
		missingConfigs = append(missingConfigs, "database.password (or SE_DB_PASSWORD environment variable)")
	}
	if cfg.Database.Database == "" {
		missingConfigs = append(missingConfigs, "database.database (or SE_DB_NAME environment variable)")
	}

	if cfg.Settlement.OtpTTL <= 0 {
		missingConfigs = append(missingConfigs, "settlement.otpTtl")
	}
	if cfg.Settlement.OtpDigits <= 0 {
		missingConfigs = append(missingConfigs, "settlement.otpDigits")
	}
	if cfg.Settlement.SweepInterval <= 0 {
		missingConfigs = append(missingConfigs, "settlement.sweepInterval")
	}

	if !cfg.Gateway.UseMock && cfg.Gateway.BaseURL == "" {
		missingConfigs = append(missingConfigs, "gateway.baseUrl (or SE_GATEWAY_BASE_URL environment variable)")
	}
	if cfg.Webhook.SigningSecret == "" {
		missingConfigs = append(missingConfigs, "webhook.signingSecret (or SE_WEBHOOK_SIGNING_SECRET environment variable)")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	// In production, flag insecure settings without refusing to start
	if cfg.Environment == config.Production {
		if cfg.Database.SSLMode == "disable" {
			log.Printf("Warning: database.sslMode is 'disable' in production")
		}
		if cfg.Gateway.UseMock {
			log.Printf("Warning: gateway.useMock is enabled in production")
		}
		if cfg.Server.ReadTimeout < 5*time.Second || cfg.Server.WriteTimeout < 5*time.Second {
			log.Printf("Warning: server timeouts are very low for production")
		}
	}

	return nil
}
