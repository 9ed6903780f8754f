package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrms-lite/hrms-backend/internal/domain/attendance"
	"github.com/hrms-lite/hrms-backend/internal/infrastructure/persistence/models"
	"github.com/hrms-lite/hrms-backend/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAttendanceRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAttendanceRepository creates a new GORM-based AttendanceRepository implementation
func NewGormAttendanceRepository(db *gorm.DB, logger logger.Logger) (attendance.AttendanceRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("db must not be nil")
	}
	return &gormAttendanceRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAttendanceRepository) Create(ctx context.Context, record *attendance.AttendanceRecord) error {
	if err := record.Validate(); err != nil {
		return err
	}

	model := &models.AttendanceRecordModel{}
	model.FromDomain(record)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return attendance.ErrAlreadyMarked
		}
		return fmt.Errorf("failed to create attendance record: %w", err)
	}

	record.ID = model.ID
	r.logger.Info("Marked employee ", record.EmployeeID, " ", record.Status, " on ", record.Date)
	return nil
}

func (r *gormAttendanceRepository) List(ctx context.Context, query *attendance.AttendanceQuery) ([]*attendance.AttendanceRecord, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	dbQuery := r.db.WithContext(ctx).
		Model(&models.AttendanceRecordModel{}).
		Where("employee_id = ?", query.EmployeeID)

	if query.Date != "" {
		dbQuery = dbQuery.Where("attendance_date = ?", query.Date)
	}
	if query.FromDate != "" {
		dbQuery = dbQuery.Where("attendance_date >= ?", query.FromDate)
	}
	if query.ToDate != "" {
		dbQuery = dbQuery.Where("attendance_date <= ?", query.ToDate)
	}

	var modelList []*models.AttendanceRecordModel
	if err := dbQuery.Order("marked_at desc").Order("id desc").Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch attendance records: %w", err)
	}

	domainList := make([]*attendance.AttendanceRecord, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}
	return domainList, nil
}

func (r *gormAttendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID uint, date string) (*attendance.AttendanceRecord, error) {
	var model models.AttendanceRecordModel
	err := r.db.WithContext(ctx).
		Where("employee_id = ? AND attendance_date = ?", employeeID, date).
		First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, attendance.ErrRecordNotFound
		}
		return nil, fmt.Errorf("failed to fetch attendance record: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormAttendanceRepository) CountByEmployee(ctx context.Context, employeeID uint) (attendance.StatusCounts, error) {
	return r.countByStatus(ctx, "employee_id = ?", employeeID)
}

func (r *gormAttendanceRepository) CountByDate(ctx context.Context, date string) (attendance.StatusCounts, error) {
	return r.countByStatus(ctx, "attendance_date = ?", date)
}

type statusCountRow struct {
	Status string
	Total  int64
}

func (r *gormAttendanceRepository) countByStatus(ctx context.Context, condition string, value interface{}) (attendance.StatusCounts, error) {
	var rows []statusCountRow
	err := r.db.WithContext(ctx).
		Model(&models.AttendanceRecordModel{}).
		Select("status, COUNT(*) AS total").
		Where(condition, value).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count attendance records: %w", err)
	}

	counts := attendance.StatusCounts{}
	for _, row := range rows {
		counts[attendance.Status(row.Status)] = row.Total
	}
	return counts, nil
}
