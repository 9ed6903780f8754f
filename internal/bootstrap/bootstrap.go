// Package bootstrap assembles the application: it opens storage, initializes
// the schema, builds the services and mounts them on a gin engine.
package bootstrap

import (
	"fmt"
	"time"

	"github.com/hrms-lite/hrms-backend/internal/api/rest"
	"github.com/hrms-lite/hrms-backend/internal/app"
	"github.com/hrms-lite/hrms-backend/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend/internal/domain/dashboard"
	"github.com/hrms-lite/hrms-backend/internal/domain/employees"
	"github.com/hrms-lite/hrms-backend/internal/infrastructure/persistence"
	"github.com/hrms-lite/hrms-backend/internal/pkg/config"
	"github.com/hrms-lite/hrms-backend/internal/pkg/logger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Services groups the application services of the three route modules
type Services struct {
	Employees  employees.EmployeeService
	Attendance attendance.AttendanceService
	Dashboard  dashboard.DashboardService
}

// Application is the fully wired server. Engine is not modified after construction.
type Application struct {
	DB       *gorm.DB
	Services *Services
	Engine   *gin.Engine
}

// OpenDatabase connects to the configured database and initializes the schema.
// An unreachable database is reported as an error.
func OpenDatabase(settings config.DatabaseSettings, log logger.Logger) (*gorm.DB, error) {
	db, err := persistence.NewDBConnection(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	if err := persistence.Migrate(db); err != nil {
		_ = persistence.CloseDB(db)
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	return db, nil
}

// NewServices builds the repositories and the services on top of db.
// "Today" is evaluated in location.
func NewServices(db *gorm.DB, location *time.Location, log logger.Logger) (*Services, error) {
	employeeRepo, err := persistence.NewGormEmployeeRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create employee repository: %w", err)
	}

	attendanceRepo, err := persistence.NewGormAttendanceRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create attendance repository: %w", err)
	}

	clock := app.NewSystemClock(location)

	employeeService, err := app.NewEmployeeService(employeeRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create employee service: %w", err)
	}

	attendanceService, err := app.NewAttendanceService(attendanceRepo, employeeRepo, clock, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create attendance service: %w", err)
	}

	dashboardService, err := app.NewDashboardService(employeeRepo, attendanceRepo, clock, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create dashboard service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &Services{
		Employees:  employeeService,
		Attendance: attendanceService,
		Dashboard:  dashboardService,
	}, nil
}

// LoadLocation resolves an IANA timezone name.
func LoadLocation(name string) (*time.Location, error) {
	location, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	return location, nil
}

// NewApplication wires storage, services and the HTTP engine for the server.
func NewApplication(cfg *config.RestConfig, log logger.Logger) (*Application, error) {
	location, err := LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, err
	}

	db, err := OpenDatabase(cfg.Database, log)
	if err != nil {
		return nil, err
	}

	services, err := NewServices(db, location, log)
	if err != nil {
		_ = persistence.CloseDB(db)
		return nil, err
	}

	engine := rest.NewEngine(log, cfg.FrontendURL, services.Employees, services.Attendance, services.Dashboard)

	return &Application{
		DB:       db,
		Services: services,
		Engine:   engine,
	}, nil
}

// Close releases the database connection.
func (a *Application) Close() error {
	return persistence.CloseDB(a.DB)
}
