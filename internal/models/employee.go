package models

type Employee struct {
	BaseModel

	UserID      uint   `gorm:"not null;uniqueIndex"` // one profile per user
	FullName    string `gorm:"not null"`
	Department  *string
	Designation *string
	Phone       *string
	Address     *string

	// Relationships
	AttendanceRecords []Attendance   `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	LeaveRequests     []LeaveRequest `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Payrolls          []Payroll      `gorm:"foreignKey:EmployeeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}
