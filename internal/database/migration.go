package database

import (
	"fmt"

	"github.com/KunalGarg-PEC/BlogsApi/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models. This also
// creates the unique (email, job_id) index that makes duplicate application
// submissions fail at the storage layer instead of relying on the client
// precheck.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Job{},
		&models.Application{},
		&models.Blog{},
		&models.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
