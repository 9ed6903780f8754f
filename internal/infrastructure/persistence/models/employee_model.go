package models

import (
	"time"

	"github.com/hrms-lite/hrms-backend/internal/domain/employees"
)

// EmployeeModel is the GORM database model for employees (infrastructure concern).
// Attendance only declares the cascading foreign key on attendance_records; it is never loaded.
type EmployeeModel struct {
	ID         uint                    `gorm:"primaryKey;autoIncrement"`
	EmployeeID string                  `gorm:"type:varchar(64);not null;uniqueIndex:idx_employees_employee_id"`
	FullName   string                  `gorm:"type:varchar(255);not null"`
	Email      string                  `gorm:"type:varchar(255);not null;uniqueIndex:idx_employees_email"`
	Department string                  `gorm:"type:varchar(128);not null;index"`
	CreatedAt  time.Time               `gorm:"not null"`
	Attendance []AttendanceRecordModel `gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (EmployeeModel) TableName() string {
	return "employees"
}

// ToDomain converts GORM model to domain entity
func (m *EmployeeModel) ToDomain() *employees.Employee {
	return &employees.Employee{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		FullName:   m.FullName,
		Email:      m.Email,
		Department: m.Department,
		CreatedAt:  m.CreatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EmployeeModel) FromDomain(e *employees.Employee) {
	m.ID = e.ID
	m.EmployeeID = e.EmployeeID
	m.FullName = e.FullName
	m.Email = e.Email
	m.Department = e.Department
	m.CreatedAt = e.CreatedAt
}
