package models

import (
	"time"

	"gorm.io/datatypes"
)

type Attendance struct {
	BaseModel

	EmployeeID     uint           `gorm:"not null;uniqueIndex:idx_attendance_employee_date"`
	AttendanceDate datatypes.Date `gorm:"not null;uniqueIndex:idx_attendance_employee_date"`
	CheckIn        *time.Time
	CheckOut       *time.Time
	WorkMinutes    *int
}

func (Attendance) TableName() string {
	return "attendance"
}
