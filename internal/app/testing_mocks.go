//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/hrms-lite/hrms-backend/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend/internal/domain/employees"

	"github.com/stretchr/testify/mock"
)

// MockEmployeeRepository is a mock implementation of EmployeeRepository
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) Create(ctx context.Context, employee *employees.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) List(ctx context.Context, query *employees.EmployeeQuery) ([]*employees.Employee, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*employees.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetByID(ctx context.Context, id uint) (*employees.Employee, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employees.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*employees.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employees.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) GetByEmail(ctx context.Context, email string) (*employees.Employee, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*employees.Employee), args.Error(1)
}

func (m *MockEmployeeRepository) DeleteByID(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEmployeeRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockAttendanceRepository is a mock implementation of AttendanceRepository
type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) Create(ctx context.Context, record *attendance.AttendanceRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockAttendanceRepository) List(ctx context.Context, query *attendance.AttendanceQuery) ([]*attendance.AttendanceRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*attendance.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID uint, date string) (*attendance.AttendanceRecord, error) {
	args := m.Called(ctx, employeeID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*attendance.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) CountByEmployee(ctx context.Context, employeeID uint) (attendance.StatusCounts, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(attendance.StatusCounts), args.Error(1)
}

func (m *MockAttendanceRepository) CountByDate(ctx context.Context, date string) (attendance.StatusCounts, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(attendance.StatusCounts), args.Error(1)
}
