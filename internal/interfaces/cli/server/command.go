package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/civicdesk/civicdesk/internal/infrastructure/config"
	"github.com/civicdesk/civicdesk/internal/infrastructure/database"
	"github.com/civicdesk/civicdesk/internal/infrastructure/migration"
	httpRouter "github.com/civicdesk/civicdesk/internal/interfaces/http"
	"github.com/civicdesk/civicdesk/internal/shared/biztime"
	"github.com/civicdesk/civicdesk/internal/shared/goroutine"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

var (
	env                string
	autoMigrate        bool
	skipMigrationCheck bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the CivicDesk HTTP API with the configuration for the given environment.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Apply pending migrations on startup")
	cmd.Flags().BoolVar(&skipMigrationCheck, "skip-migration-check", false, "Skip migration status check on startup")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Server.Mode = mapEnvToGinMode(env)
	if cfg.Server.AutoMigrate {
		autoMigrate = true
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	logger.Info("starting server",
		"environment", env,
		"auto_migrate", autoMigrate)

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard
	gin.DebugPrintRouteFunc = func(httpMethod, absolutePath, handlerName string, nuHandlers int) {}

	if err := database.Init(&cfg.Database); err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer database.Close()

	if err := handleMigrations(cfg); err != nil {
		logger.Fatal("migration handling failed", "error", err)
	}

	log := logger.NewLogger()
	router, err := httpRouter.NewRouter(database.Get(), cfg, log)
	if err != nil {
		logger.Fatal("failed to build router", "error", err)
	}
	defer router.Shutdown()
	router.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      router.GetEngine(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	goroutine.SafeGo(log, "http-server", func() {
		logger.Info("server starting",
			"address", cfg.Server.GetAddr(),
			"mode", cfg.Server.Mode)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", "error", err)
		}
	})

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		return err
	}

	logger.Info("server exited gracefully")
	return nil
}

func handleMigrations(cfg *config.Config) error {
	if skipMigrationCheck {
		logger.Info("skipping migration check")
		return nil
	}

	sqlDB, err := database.Get().DB()
	if err != nil {
		return fmt.Errorf("failed to get sql handle: %w", err)
	}

	migrator, err := migration.NewGooseMigrator(cfg.Database.Driver, logger.NewLogger().Named("migration"))
	if err != nil {
		return err
	}

	if autoMigrate {
		if env == "production" {
			logger.Warn("auto-migration is enabled in production environment")
		}
		logger.Info("running migrations")
		return migrator.Up(sqlDB)
	}

	version, err := migrator.Version(sqlDB)
	if err != nil {
		logger.Warn("failed to check migration status", "error", err)
		return nil
	}
	logger.Info("current migration version", "version", version)
	return nil
}

func mapEnvToGinMode(environment string) string {
	switch environment {
	case "production", "prod", "release":
		return gin.ReleaseMode
	case "test", "testing":
		return gin.TestMode
	default:
		return gin.DebugMode
	}
}
