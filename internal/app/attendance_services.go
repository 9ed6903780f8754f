package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrms-lite/hrms-backend/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend/internal/domain/employees"
	"github.com/hrms-lite/hrms-backend/internal/pkg/logger"
	"github.com/hrms-lite/hrms-backend/internal/pkg/metrics"
	"github.com/hrms-lite/hrms-backend/internal/pkg/validators"
)

// attendanceService implements the AttendanceService interface
type attendanceService struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employees.EmployeeRepository
	clock          Clock
	logger         logger.Logger
}

// NewAttendanceService creates a new instance of AttendanceService
func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employees.EmployeeRepository,
	clock Clock,
	logger logger.Logger,
) (attendance.AttendanceService, error) {
	if attendanceRepo == nil || employeeRepo == nil {
		return nil, fmt.Errorf("attendance and employee repositories must not be nil")
	}
	if clock == nil {
		clock = NewSystemClock(nil)
	}
	return &attendanceService{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
		clock:          clock,
		logger:         logger,
	}, nil
}

// Mark records today's status for the employee.
func (s *attendanceService) Mark(ctx context.Context, employeeID uint, status attendance.Status) (*attendance.AttendanceRecord, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: status must be one of %s, %s", attendance.ErrInvalidRecord, attendance.StatusPresent, attendance.StatusAbsent)
	}

	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	now := s.clock.Now()
	record := &attendance.AttendanceRecord{
		EmployeeID: employeeID,
		Date:       validators.FormatISODate(now),
		MarkedAt:   now,
		Status:     status,
	}

	if _, err := s.attendanceRepo.GetByEmployeeAndDate(ctx, employeeID, record.Date); err == nil {
		return nil, attendance.ErrAlreadyMarked
	} else if !errors.Is(err, attendance.ErrRecordNotFound) {
		return nil, err
	}

	if err := s.attendanceRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	metrics.AttendanceMarked.WithLabelValues(string(status)).Inc()
	s.logger.With(
		"employee", employeeID,
		"date", record.Date,
		"status", string(status),
	).Info("attendance marked")

	return record, nil
}

func (s *attendanceService) List(ctx context.Context, query *attendance.AttendanceQuery) ([]*attendance.AttendanceRecord, error) {
	if query == nil {
		return nil, fmt.Errorf("%w: missing query", attendance.ErrInvalidQuery)
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, query.EmployeeID); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []*attendance.AttendanceRecord{}
	}
	return records, nil
}

func (s *attendanceService) Summary(ctx context.Context, employeeID uint) (*attendance.AttendanceSummary, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}

	counts, err := s.attendanceRepo.CountByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	present := counts[attendance.StatusPresent]
	absent := counts[attendance.StatusAbsent]
	return &attendance.AttendanceSummary{
		EmployeeID:  employeeID,
		PresentDays: present,
		AbsentDays:  absent,
		TotalDays:   present + absent,
	}, nil
}
