package persistence

import (
	"fmt"

	"github.com/hrms-lite/hrms-backend/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

// SchemaModels lists every entity whose table must exist before serving.
func SchemaModels() []interface{} {
	return []interface{}{
		&models.EmployeeModel{},
		&models.AttendanceRecordModel{},
	}
}

// Migrate creates any missing table, column or index for SchemaModels.
// Running it against an up-to-date schema changes nothing and keeps all rows.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(SchemaModels()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
