// Package migration applies the versioned SQL schema with goose.
package migration

import (
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"

	"github.com/civicdesk/civicdesk/internal/shared/logger"
)

//go:embed scripts/mysql/*.sql scripts/postgres/*.sql
var embeddedScripts embed.FS

// ScriptsDir is where `migrate create` writes new files, relative to the repository root.
const ScriptsDir = "internal/infrastructure/migration/scripts"

// GooseMigrator runs migrations for a single dialect from an fs.FS.
type GooseMigrator struct {
	fsys    fs.FS
	dir     string
	dialect string
	logger  logger.Interface
}

// NewGooseMigrator uses the embedded scripts for driver ("mysql" or "postgres").
func NewGooseMigrator(driver string, log logger.Interface) (*GooseMigrator, error) {
	dialect, dir, err := scriptsFor(driver)
	if err != nil {
		return nil, err
	}
	return &GooseMigrator{fsys: embeddedScripts, dir: dir, dialect: dialect, logger: log}, nil
}

// NewGooseMigratorWithFS runs the migrations found in dir of fsys.
func NewGooseMigratorWithFS(fsys fs.FS, dir, dialect string, log logger.Interface) *GooseMigrator {
	return &GooseMigrator{fsys: fsys, dir: dir, dialect: dialect, logger: log}
}

func scriptsFor(driver string) (dialect, dir string, err error) {
	switch driver {
	case "mysql", "":
		return "mysql", "scripts/mysql", nil
	case "postgres", "postgresql":
		return "postgres", "scripts/postgres", nil
	default:
		return "", "", fmt.Errorf("unsupported database driver for migrations: %s", driver)
	}
}

func (m *GooseMigrator) prepare() error {
	goose.SetBaseFS(m.fsys)
	goose.SetLogger(&gooseLogger{log: m.logger})
	if err := goose.SetDialect(m.dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// Up applies every pending migration.
func (m *GooseMigrator) Up(db *sql.DB) error {
	if err := m.prepare(); err != nil {
		return err
	}

	before, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to get current version: %w", err)
	}
	if err := goose.Up(db, m.dir); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}
	after, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to get final version: %w", err)
	}

	m.logger.Infow("migrations applied", "dialect", m.dialect, "from_version", before, "to_version", after)
	return nil
}

// Down rolls back steps migrations, stopping early at version zero.
func (m *GooseMigrator) Down(db *sql.DB, steps int) error {
	if err := m.prepare(); err != nil {
		return err
	}
	for i := 0; i < steps; i++ {
		version, err := goose.GetDBVersion(db)
		if err != nil {
			return fmt.Errorf("failed to get current version: %w", err)
		}
		if version == 0 {
			break
		}
		if err := goose.Down(db, m.dir); err != nil {
			return fmt.Errorf("goose down failed at version %d: %w", version, err)
		}
	}
	return nil
}

func (m *GooseMigrator) Version(db *sql.DB) (int64, error) {
	if err := m.prepare(); err != nil {
		return 0, err
	}
	return goose.GetDBVersion(db)
}

// Status logs the applied state of each migration.
func (m *GooseMigrator) Status(db *sql.DB) error {
	if err := m.prepare(); err != nil {
		return err
	}
	if err := goose.Status(db, m.dir); err != nil {
		return fmt.Errorf("goose status failed: %w", err)
	}
	return nil
}

// Create writes a new timestamped SQL migration for driver under root.
func Create(root, driver, name string) (string, error) {
	_, dir, err := scriptsFor(driver)
	if err != nil {
		return "", err
	}
	target := filepath.Join(root, ScriptsDir, filepath.Base(dir))
	if err := os.MkdirAll(target, 0o755); err != nil {
		return "", fmt.Errorf("failed to create scripts dir: %w", err)
	}

	goose.SetBaseFS(nil)
	if err := goose.Create(nil, target, name, "sql"); err != nil {
		return "", fmt.Errorf("failed to create migration: %w", err)
	}
	return target, nil
}

type gooseLogger struct {
	log logger.Interface
}

func (l *gooseLogger) Fatalf(format string, v ...any) {
	l.log.Errorw("goose fatal", "message", fmt.Sprintf(format, v...))
}

func (l *gooseLogger) Printf(format string, v ...any) {
	l.log.Infow("goose", "message", fmt.Sprintf(format, v...))
}
