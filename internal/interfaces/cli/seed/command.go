package seed

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/civicdesk/civicdesk/internal/infrastructure/auth"
	"github.com/civicdesk/civicdesk/internal/infrastructure/config"
	"github.com/civicdesk/civicdesk/internal/infrastructure/database"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/seeds"
	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

var (
	env      string
	file     string
	username string
	email    string
)

// NewCommand returns the `seed` command group.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load reference data",
		Long:  `Insert the default departments and create the first superuser.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newDepartmentsCommand(),
		newSuperuserCommand(),
	)

	return cmd
}

func newDepartmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "departments",
		Short: "Insert missing departments",
		Long:  `Insert every department from the seed file whose slug does not exist yet.`,
		RunE:  runDepartments,
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML seed file (default: built-in departments)")

	return cmd
}

func newSuperuserCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "superuser",
		Short: "Create a staff superuser",
		Long:  `Create a staff superuser. The password is read from CIVICDESK_SUPERUSER_PASSWORD.`,
		RunE:  runSuperuser,
	}

	cmd.Flags().StringVarP(&username, "username", "u", "admin", "Username of the superuser")
	cmd.Flags().StringVar(&email, "email", "", "E-mail of the superuser")

	return cmd
}

func initEnv() (*config.Config, logger.Interface, error) {
	cfg, err := config.Load(env)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := database.Init(&cfg.Database); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return cfg, logger.NewLogger().Named("seed"), nil
}

func runDepartments(cmd *cobra.Command, args []string) error {
	_, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	f, err := seeds.LoadFile(file)
	if err != nil {
		return err
	}

	created, err := seeds.SeedDepartments(database.Get(), f.Departments)
	if err != nil {
		log.Errorw("failed to seed departments", "error", err, "created", created)
		return err
	}

	log.Infow("departments seeded", "created", created, "total", len(f.Departments))
	return nil
}

func runSuperuser(cmd *cobra.Command, args []string) error {
	password := os.Getenv("CIVICDESK_SUPERUSER_PASSWORD")
	if password == "" {
		return fmt.Errorf("CIVICDESK_SUPERUSER_PASSWORD is not set")
	}

	cfg, log, err := initEnv()
	if err != nil {
		return err
	}
	defer database.Close()

	hash, err := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost).Hash(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	created, err := seeds.SeedSuperuser(database.Get(), username, email, hash)
	if err != nil {
		log.Errorw("failed to create superuser", "error", err)
		return err
	}
	if !created {
		log.Infow("superuser already exists", "username", username)
		return nil
	}

	log.Infow("superuser created", "username", username)
	return nil
}
