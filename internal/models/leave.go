package models

import "gorm.io/datatypes"

type LeaveRequest struct {
	BaseModel

	EmployeeID uint           `gorm:"not null;index"`
	LeaveType  string         `gorm:"not null"` // Paid, Sick, Unpaid
	StartDate  datatypes.Date `gorm:"not null"`
	EndDate    datatypes.Date `gorm:"not null"`
	Reason     *string
	Status     string         `gorm:"not null;default:Pending;index"`
	AppliedOn  datatypes.Date `gorm:"not null"`
}
