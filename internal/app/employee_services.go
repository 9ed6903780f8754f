package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrms-lite/hrms-backend/internal/domain/employees"
	"github.com/hrms-lite/hrms-backend/internal/pkg/logger"
	"github.com/hrms-lite/hrms-backend/internal/pkg/metrics"
)

// employeeService implements the EmployeeService interface
type employeeService struct {
	employeeRepo employees.EmployeeRepository
	logger       logger.Logger
}

// NewEmployeeService creates a new instance of EmployeeService
func NewEmployeeService(employeeRepo employees.EmployeeRepository, logger logger.Logger) (employees.EmployeeService, error) {
	if employeeRepo == nil {
		return nil, fmt.Errorf("employee repository must not be nil")
	}
	return &employeeService{
		employeeRepo: employeeRepo,
		logger:       logger,
	}, nil
}

// Create registers a new employee. Duplicate codes and emails are reported before
// insertion so the caller learns which field collided; the unique indexes still
// guard against concurrent inserts.
func (s *employeeService) Create(ctx context.Context, employee *employees.Employee) (*employees.Employee, error) {
	if employee == nil {
		return nil, fmt.Errorf("%w: empty payload", employees.ErrInvalidEmployee)
	}

	employee.Normalize()
	if err := employee.Validate(); err != nil {
		return nil, err
	}

	if err := s.ensureUnique(ctx, employee); err != nil {
		return nil, err
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	metrics.EmployeesCreated.Inc()
	s.logger.With(
		"id", employee.ID,
		"employee_id", employee.EmployeeID,
		"department", employee.Department,
	).Info("employee registered")

	return employee, nil
}

func (s *employeeService) ensureUnique(ctx context.Context, employee *employees.Employee) error {
	if _, err := s.employeeRepo.GetByEmployeeID(ctx, employee.EmployeeID); err == nil {
		return employees.ErrDuplicateEmployeeID
	} else if !errors.Is(err, employees.ErrEmployeeNotFound) {
		return err
	}

	if _, err := s.employeeRepo.GetByEmail(ctx, employee.Email); err == nil {
		return employees.ErrDuplicateEmail
	} else if !errors.Is(err, employees.ErrEmployeeNotFound) {
		return err
	}

	return nil
}

func (s *employeeService) List(ctx context.Context, query *employees.EmployeeQuery) ([]*employees.Employee, error) {
	list, err := s.employeeRepo.List(ctx, query)
	if err != nil {
		return nil, err
	}
	if list == nil {
		list = []*employees.Employee{}
	}
	return list, nil
}

func (s *employeeService) GetByID(ctx context.Context, id uint) (*employees.Employee, error) {
	return s.employeeRepo.GetByID(ctx, id)
}

func (s *employeeService) DeleteByID(ctx context.Context, id uint) error {
	if err := s.employeeRepo.DeleteByID(ctx, id); err != nil {
		return err
	}

	metrics.EmployeesDeleted.Inc()
	s.logger.With("id", id).Info("employee removed")
	return nil
}
