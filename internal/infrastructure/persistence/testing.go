//go:build integration
// +build integration

package persistence

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/hrms-lite/hrms-backend/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend/internal/domain/employees"
	"github.com/hrms-lite/hrms-backend/internal/pkg/config"
	"github.com/hrms-lite/hrms-backend/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// PostgresDSNEnv names the variable holding an admin DSN for postgres-backed tests.
const PostgresDSNEnv = "HRMS_TEST_POSTGRES_DSN"

// TestContext holds test database and repositories
type TestContext struct {
	DB             *gorm.DB
	EmployeeRepo   employees.EmployeeRepository
	AttendanceRepo attendance.AttendanceRepository
}

// SqliteTestSettings returns settings for a private, shared-cache in-memory database.
func SqliteTestSettings() config.DatabaseSettings {
	return config.DatabaseSettings{
		Type: config.SqliteDbType,
		DSN:  "file:" + uuid.NewString() + "?mode=memory&cache=shared",
	}
}

// SetupTestDB opens and migrates a database of the given type with automatic cleanup.
// Postgres tests are skipped unless PostgresDSNEnv is set.
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanup := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = SqliteTestSettings()

	case config.PostgresDbType:
		adminDSN := os.Getenv(PostgresDSNEnv)
		if adminDSN == "" {
			t.Skipf("%s not set", PostgresDSNEnv)
		}
		name := "hrms_test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{Type: config.PostgresDbType, DSN: adminDSN, Name: name}
		maintenanceDSN, err := WithDatabaseName(adminDSN, "postgres")
		require.NoError(t, err)
		cleanup = func() {
			_ = DropDatabase(maintenanceDSN, name)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanup()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)

	employeeRepo, err := NewGormEmployeeRepository(db, log)
	require.NoError(t, err, "Failed to create employee repository")

	attendanceRepo, err := NewGormAttendanceRepository(db, log)
	require.NoError(t, err, "Failed to create attendance repository")

	return &TestContext{
		DB:             db,
		EmployeeRepo:   employeeRepo,
		AttendanceRepo: attendanceRepo,
	}
}

// CreateTestEmployee builds a valid, unsaved employee with unique code and email.
func CreateTestEmployee(t *testing.T, department string) *employees.Employee {
	t.Helper()

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return &employees.Employee{
		EmployeeID: "EMP-" + suffix,
		FullName:   "Test Employee " + suffix,
		Email:      "employee." + suffix + "@example.com",
		Department: department,
	}
}

// CreateTestRecord builds a valid, unsaved attendance record for the given day.
func CreateTestRecord(t *testing.T, employeeID uint, date string, status attendance.Status) *attendance.AttendanceRecord {
	t.Helper()

	markedAt, err := time.Parse("2006-01-02", date)
	require.NoError(t, err)

	return &attendance.AttendanceRecord{
		EmployeeID: employeeID,
		Date:       date,
		MarkedAt:   markedAt.Add(9 * time.Hour),
		Status:     status,
	}
}
