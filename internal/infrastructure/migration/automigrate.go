package migration

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/civicdesk/civicdesk/internal/infrastructure/persistence/models"
)

// AutoMigrate syncs the schema from the gorm models. Intended for development and tests;
// production databases are migrated with the goose scripts.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
