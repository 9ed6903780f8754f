//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/hrms-lite/hrms-backend/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend/internal/infrastructure/persistence/models"
	"github.com/hrms-lite/hrms-backend/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_IsIdempotent(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	employee := CreateTestEmployee(t, "Engineering")
	require.NoError(t, ctx.EmployeeRepo.Create(context.Background(), employee))

	require.NoError(t, Migrate(ctx.DB))
	require.NoError(t, Migrate(ctx.DB))

	count, err := ctx.EmployeeRepo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	for _, model := range SchemaModels() {
		assert.True(t, ctx.DB.Migrator().HasTable(model))
	}

	employeesDDL := sqliteTableDDL(t, ctx, "employees")
	assert.Contains(t, employeesDDL, "varchar(64)")
	assert.NotContains(t, employeesDDL, "REFERENCES")

	attendanceDDL := sqliteTableDDL(t, ctx, "attendance_records")
	assert.Contains(t, attendanceDDL, "REFERENCES `employees`")
	assert.Contains(t, attendanceDDL, "ON DELETE CASCADE")
}

func TestMigrate_ForeignKeyCascadesEmployeeDelete(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	employee := CreateTestEmployee(t, "Engineering")
	require.NoError(t, ctx.EmployeeRepo.Create(context.Background(), employee))
	require.NoError(t, ctx.AttendanceRepo.Create(context.Background(),
		CreateTestRecord(t, employee.ID, "2024-03-01", attendance.StatusPresent)))

	// Bypasses the repository so only the constraint removes the attendance rows.
	require.NoError(t, ctx.DB.Exec("DELETE FROM employees WHERE id = ?", employee.ID).Error)

	var orphans int64
	require.NoError(t, ctx.DB.Model(&models.AttendanceRecordModel{}).Count(&orphans).Error)
	assert.Zero(t, orphans)
}

func sqliteTableDDL(t *testing.T, ctx *TestContext, table string) string {
	t.Helper()

	var ddl string
	require.NoError(t, ctx.DB.Raw("SELECT sql FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&ddl).Error)
	require.NotEmpty(t, ddl)
	return ddl
}

func TestNewDBConnection_UnreachablePostgres(t *testing.T) {
	settings := config.DatabaseSettings{
		Type: config.PostgresDbType,
		DSN:  "host=127.0.0.1 port=1 user=hrms password=hrms sslmode=disable connect_timeout=1",
	}

	db, err := NewDBConnection(settings)
	assert.Error(t, err)
	assert.Nil(t, db)
}

func TestNewDBConnection_InvalidSettings(t *testing.T) {
	_, err := NewDBConnection(config.DatabaseSettings{Type: "oracle"})
	assert.Error(t, err)

	_, err = NewDBConnection(config.DatabaseSettings{Type: config.PostgresDbType})
	assert.Error(t, err)
}

func TestNewDBConnection_SqliteEnablesForeignKeys(t *testing.T) {
	db, err := NewDBConnection(SqliteTestSettings())
	require.NoError(t, err)
	t.Cleanup(func() { _ = CloseDB(db) })

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
}
