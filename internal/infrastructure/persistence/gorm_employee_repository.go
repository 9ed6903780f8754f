package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrms-lite/hrms-backend/internal/domain/employees"
	"github.com/hrms-lite/hrms-backend/internal/infrastructure/persistence/models"
	"github.com/hrms-lite/hrms-backend/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormEmployeeRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormEmployeeRepository creates a new GORM-based EmployeeRepository implementation
func NewGormEmployeeRepository(db *gorm.DB, logger logger.Logger) (employees.EmployeeRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db must not be nil")
	}
	return &gormEmployeeRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormEmployeeRepository) Create(ctx context.Context, employee *employees.Employee) error {
	if err := employee.Validate(); err != nil {
		return err
	}

	model := &models.EmployeeModel{}
	model.FromDomain(employee)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return employees.ErrDuplicateEmployee
		}
		return fmt.Errorf("failed to create employee: %w", err)
	}

	employee.ID = model.ID
	employee.CreatedAt = model.CreatedAt

	r.logger.Info("Created employee with id ", employee.ID)
	return nil
}

func (r *gormEmployeeRepository) List(ctx context.Context, query *employees.EmployeeQuery) ([]*employees.Employee, error) {
	if query == nil {
		query = employees.NewEmployeeQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dbQuery := r.db.WithContext(ctx).Model(&models.EmployeeModel{})
	if query.Department != "" {
		dbQuery = dbQuery.Where("department = ?", query.Department)
	}

	var modelList []*models.EmployeeModel
	if err := dbQuery.Order("id asc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch employees: %w", err)
	}

	domainList := make([]*employees.Employee, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormEmployeeRepository) GetByID(ctx context.Context, id uint) (*employees.Employee, error) {
	return r.first(ctx, "id = ?", id)
}

func (r *gormEmployeeRepository) GetByEmployeeID(ctx context.Context, employeeID string) (*employees.Employee, error) {
	return r.first(ctx, "employee_id = ?", employeeID)
}

func (r *gormEmployeeRepository) GetByEmail(ctx context.Context, email string) (*employees.Employee, error) {
	return r.first(ctx, "email = ?", email)
}

func (r *gormEmployeeRepository) first(ctx context.Context, condition string, value interface{}) (*employees.Employee, error) {
	var model models.EmployeeModel
	if err := r.db.WithContext(ctx).Where(condition, value).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, employees.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to fetch employee: %w", err)
	}
	return model.ToDomain(), nil
}

// DeleteByID removes the employee's attendance records and then the employee in one transaction.
func (r *gormEmployeeRepository) DeleteByID(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("employee_id = ?", id).Delete(&models.AttendanceRecordModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete attendance records: %w", err)
		}

		result := tx.Where("id = ?", id).Delete(&models.EmployeeModel{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete employee: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return employees.ErrEmployeeNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted employee with id ", id)
	return nil
}

func (r *gormEmployeeRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.EmployeeModel{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}
	return count, nil
}
