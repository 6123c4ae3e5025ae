// Package seeds loads reference data: the default departments and a first superuser.
package seeds

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"github.com/civicdesk/civicdesk/internal/domain/department"
	"github.com/civicdesk/civicdesk/internal/domain/user"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/mappers"
	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/models"
)

//go:embed departments.yaml
var defaultDepartments []byte

type DepartmentSeed struct {
	Name        string   `yaml:"name"`
	Slug        string   `yaml:"slug"`
	Description string   `yaml:"description"`
	Categories  []string `yaml:"categories"`
}

type File struct {
	Departments []DepartmentSeed `yaml:"departments"`
}

// LoadFile reads a seed file, falling back to the built-in departments when path is empty.
func LoadFile(path string) (*File, error) {
	data := defaultDepartments
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read seed file: %w", err)
		}
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

// SeedDepartments inserts departments whose slug is not present yet and returns how
// many were created.
func SeedDepartments(db *gorm.DB, seeds []DepartmentSeed) (int, error) {
	mapper := mappers.NewDepartmentMapper()
	created := 0

	for _, s := range seeds {
		d, err := department.NewDepartment(s.Name, s.Slug, s.Description, s.Categories)
		if err != nil {
			return created, fmt.Errorf("invalid department seed %q: %w", s.Name, err)
		}

		var count int64
		if err := db.Model(&models.DepartmentModel{}).Where("slug = ? OR name = ?", d.Slug(), d.Name()).Count(&count).Error; err != nil {
			return created, fmt.Errorf("check department %s: %w", d.Slug(), err)
		}
		if count > 0 {
			continue
		}

		if err := db.Create(mapper.ToModel(d)).Error; err != nil {
			return created, fmt.Errorf("create department %s: %w", d.Slug(), err)
		}
		created++
	}
	return created, nil
}

// SeedSuperuser creates an active staff superuser unless the username already exists.
// It reports whether an account was created.
func SeedSuperuser(db *gorm.DB, username, email, passwordHash string) (bool, error) {
	var existing models.AccountModel
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("lookup superuser: %w", err)
	}

	account, err := user.NewAccount(username, email, "", "", passwordHash)
	if err != nil {
		return false, fmt.Errorf("invalid superuser: %w", err)
	}
	account.GrantStaff(true)

	if err := db.Create(mappers.NewAccountMapper().ToModel(account)).Error; err != nil {
		return false, fmt.Errorf("create superuser: %w", err)
	}
	return true, nil
}
