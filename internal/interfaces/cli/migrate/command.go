package migrate

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/civicdesk/civicdesk/internal/infrastructure/config"
	"github.com/civicdesk/civicdesk/internal/infrastructure/database"
	"github.com/civicdesk/civicdesk/internal/infrastructure/migration"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

var (
	env     string
	name    string
	steps   int
	useGorm bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, and creating new migration files.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}

	cmd.Flags().BoolVar(&useGorm, "gorm", false, "Synchronise tables from the persistence models instead of SQL scripts (development only)")

	return cmd
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new timestamped SQL migration for the configured database driver.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func initEnv(connect bool) (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if connect {
		if err := database.Init(&cfg.Database); err != nil {
			return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
		}
	}

	return cfg, logger.NewLogger().Named("migration"), nil
}

func openMigrator(cfg *config.Config, log logger.Interface) (*migration.GooseMigrator, *sql.DB, error) {
	sqlDB, err := database.Get().DB()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get sql handle: %w", err)
	}

	migrator, err := migration.NewGooseMigrator(cfg.Database.Driver, log)
	if err != nil {
		return nil, nil, err
	}
	return migrator, sqlDB, nil
}

func runUp(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running up migrations", "environment", env, "gorm", useGorm)

	if useGorm {
		if err := migration.AutoMigrate(database.Get()); err != nil {
			log.Errorw("auto migration failed", "error", err)
			return fmt.Errorf("auto migration failed: %w", err)
		}
		log.Infow("tables synchronised")
		return nil
	}

	migrator, sqlDB, err := openMigrator(cfg, log)
	if err != nil {
		return err
	}
	if err := migrator.Up(sqlDB); err != nil {
		log.Errorw("migration failed", "error", err)
		return fmt.Errorf("migration failed: %w", err)
	}

	log.Infow("migrations completed successfully")
	return nil
}

func runDown(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer database.Close()

	log.Infow("running down migrations", "environment", env, "steps", steps)

	migrator, sqlDB, err := openMigrator(cfg, log)
	if err != nil {
		return err
	}
	if err := migrator.Down(sqlDB, steps); err != nil {
		log.Errorw("down migration failed", "error", err)
		return fmt.Errorf("down migration failed: %w", err)
	}

	log.Infow("down migration completed successfully")
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv(true)
	if err != nil {
		return err
	}
	defer database.Close()

	migrator, sqlDB, err := openMigrator(cfg, log)
	if err != nil {
		return err
	}

	version, err := migrator.Version(sqlDB)
	if err != nil {
		log.Errorw("failed to get migration version", "error", err)
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	fmt.Printf("\nMigration Status:\n")
	fmt.Printf("  Environment:     %s\n", env)
	fmt.Printf("  Driver:          %s\n", cfg.Database.Driver)
	fmt.Printf("  Current Version: %d\n", version)

	if err := migrator.Status(sqlDB); err != nil {
		log.Errorw("failed to get detailed status", "error", err)
		return fmt.Errorf("failed to get detailed status: %w", err)
	}
	return nil
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, log, err := initEnv(false)
	if err != nil {
		return err
	}

	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve working directory: %w", err)
	}

	dir, err := migration.Create(root, cfg.Database.Driver, name)
	if err != nil {
		log.Errorw("failed to create migration", "error", err)
		return err
	}

	log.Infow("migration created successfully", "name", name, "dir", dir)
	return nil
}
