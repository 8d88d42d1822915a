package models

import "github.com/shopspring/decimal"

type Payroll struct {
	BaseModel

	EmployeeID   uint            `gorm:"not null;index"`
	Month        int             `gorm:"not null;index:idx_payroll_period"`
	Year         int             `gorm:"not null;index:idx_payroll_period"`
	PresentDays  int             `gorm:"not null"`
	TotalDays    int             `gorm:"not null"`
	BaseSalary   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	SalaryAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Status       string          `gorm:"not null;default:Generated"`
}
