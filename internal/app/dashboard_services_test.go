//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/hrms-lite/hrms-backend/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend/internal/domain/dashboard"
	"github.com/hrms-lite/hrms-backend/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Summary(t *testing.T) {
	employeeRepo := new(MockEmployeeRepository)
	attendanceRepo := new(MockAttendanceRepository)
	clock := FixedClock{Instant: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}

	service, err := NewDashboardService(employeeRepo, attendanceRepo, clock, logger.NewNopLogger())
	require.NoError(t, err)

	employeeRepo.On("Count", mock.Anything).Return(int64(10), nil)
	attendanceRepo.On("CountByDate", mock.Anything, "2024-03-01").Return(attendance.StatusCounts{
		attendance.StatusPresent: 6,
		attendance.StatusAbsent:  1,
	}, nil)

	summary, err := service.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &dashboard.DashboardSummary{
		Date:           "2024-03-01",
		TotalEmployees: 10,
		PresentToday:   6,
		AbsentToday:    1,
		UnmarkedToday:  3,
	}, summary)
}

func TestDashboardService_Summary_NoEmployees(t *testing.T) {
	employeeRepo := new(MockEmployeeRepository)
	attendanceRepo := new(MockAttendanceRepository)
	clock := FixedClock{Instant: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}

	service, err := NewDashboardService(employeeRepo, attendanceRepo, clock, logger.NewNopLogger())
	require.NoError(t, err)

	employeeRepo.On("Count", mock.Anything).Return(int64(0), nil)
	attendanceRepo.On("CountByDate", mock.Anything, "2024-03-01").Return(attendance.StatusCounts{}, nil)

	summary, err := service.Summary(context.Background())
	require.NoError(t, err)
	assert.Zero(t, summary.TotalEmployees)
	assert.Zero(t, summary.UnmarkedToday)
}

func TestDashboardService_Summary_RepositoryFailure(t *testing.T) {
	employeeRepo := new(MockEmployeeRepository)
	attendanceRepo := new(MockAttendanceRepository)

	service, err := NewDashboardService(employeeRepo, attendanceRepo, nil, logger.NewNopLogger())
	require.NoError(t, err)

	dbErr := errors.New("database is locked")
	employeeRepo.On("Count", mock.Anything).Return(int64(0), dbErr)

	_, err = service.Summary(context.Background())
	assert.ErrorIs(t, err, dbErr)
}
