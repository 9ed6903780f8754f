package models

import (
	"time"

	"github.com/hrms-lite/hrms-backend/internal/domain/attendance"
)

// AttendanceRecordModel is the GORM database model for attendance marks.
// The composite unique index enforces one record per employee per day.
// The foreign key to employees is declared on EmployeeModel.Attendance.
type AttendanceRecordModel struct {
	ID         uint      `gorm:"primaryKey;autoIncrement"`
	EmployeeID uint      `gorm:"not null;uniqueIndex:idx_attendance_employee_date,priority:1"`
	Date       string    `gorm:"column:attendance_date;type:varchar(10);not null;uniqueIndex:idx_attendance_employee_date,priority:2;index:idx_attendance_date"`
	MarkedAt   time.Time `gorm:"not null"`
	Status     string    `gorm:"type:varchar(10);not null"`
}

// TableName specifies the table name for GORM
func (AttendanceRecordModel) TableName() string {
	return "attendance_records"
}

// ToDomain converts GORM model to domain entity
func (m *AttendanceRecordModel) ToDomain() *attendance.AttendanceRecord {
	return &attendance.AttendanceRecord{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		Date:       m.Date,
		MarkedAt:   m.MarkedAt,
		Status:     attendance.Status(m.Status),
	}
}

// FromDomain converts domain entity to GORM model
func (m *AttendanceRecordModel) FromDomain(r *attendance.AttendanceRecord) {
	m.ID = r.ID
	m.EmployeeID = r.EmployeeID
	m.Date = r.Date
	m.MarkedAt = r.MarkedAt
	m.Status = string(r.Status)
}
