//go:build unit
// +build unit

package rest

import (
	"context"

	"github.com/hrms-lite/hrms-backend/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend/internal/domain/dashboard"
	"github.com/hrms-lite/hrms-backend/internal/domain/employees"

	"github.com/stretchr/testify/mock"
)

// MockEmployeeService is a mock implementation of EmployeeService
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) Create(ctx context.Context, employee *employees.Employee) (*employees.Employee, error) {
	args := m.Called(ctx, employee)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employees.Employee), args.Error(1)
}

func (m *MockEmployeeService) List(ctx context.Context, query *employees.EmployeeQuery) ([]*employees.Employee, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*employees.Employee), args.Error(1)
}

func (m *MockEmployeeService) GetByID(ctx context.Context, id uint) (*employees.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employees.Employee), args.Error(1)
}

func (m *MockEmployeeService) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAttendanceService is a mock implementation of AttendanceService
type MockAttendanceService struct {
	mock.Mock
}

func (m *MockAttendanceService) Mark(ctx context.Context, employeeID uint, status attendance.Status) (*attendance.AttendanceRecord, error) {
	args := m.Called(ctx, employeeID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attendance.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceService) List(ctx context.Context, query *attendance.AttendanceQuery) ([]*attendance.AttendanceRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*attendance.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceService) Summary(ctx context.Context, employeeID uint) (*attendance.AttendanceSummary, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attendance.AttendanceSummary), args.Error(1)
}

// MockDashboardService is a mock implementation of DashboardService
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Summary(ctx context.Context) (*dashboard.DashboardSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dashboard.DashboardSummary), args.Error(1)
}
