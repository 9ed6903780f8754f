package app

import (
	"context"
	"fmt"

	"github.com/hrms-lite/hrms-backend/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend/internal/domain/dashboard"
	"github.com/hrms-lite/hrms-backend/internal/domain/employees"
	"github.com/hrms-lite/hrms-backend/internal/pkg/logger"
	"github.com/hrms-lite/hrms-backend/internal/pkg/validators"
)

// dashboardService implements the DashboardService interface
type dashboardService struct {
	employeeRepo   employees.EmployeeRepository
	attendanceRepo attendance.AttendanceRepository
	clock          Clock
	logger         logger.Logger
}

// NewDashboardService creates a new instance of DashboardService
func NewDashboardService(
	employeeRepo employees.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	clock Clock,
	logger logger.Logger,
) (dashboard.DashboardService, error) {
	if employeeRepo == nil || attendanceRepo == nil {
		return nil, fmt.Errorf("employee and attendance repositories must not be nil")
	}
	if clock == nil {
		clock = NewSystemClock(nil)
	}
	return &dashboardService{
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		clock:          clock,
		logger:         logger,
	}, nil
}

func (s *dashboardService) Summary(ctx context.Context) (*dashboard.DashboardSummary, error) {
	today := validators.FormatISODate(s.clock.Now())

	total, err := s.employeeRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.attendanceRepo.CountByDate(ctx, today)
	if err != nil {
		return nil, err
	}

	present := counts[attendance.StatusPresent]
	absent := counts[attendance.StatusAbsent]

	unmarked := total - present - absent
	if unmarked < 0 {
		unmarked = 0
	}

	s.logger.With("date", today, "total", total).Debug("dashboard summary computed")

	return &dashboard.DashboardSummary{
		Date:           today,
		TotalEmployees: total,
		PresentToday:   present,
		AbsentToday:    absent,
		UnmarkedToday:  unmarked,
	}, nil
}
