package services

import (
	"context"
	"errors"

	"github.com/dayflow-dev/dayflow/internal/models"
	"github.com/dayflow-dev/dayflow/internal/stores"
	"github.com/dayflow-dev/dayflow/internal/types"
	"github.com/shopspring/decimal"
)

type PayrollRequest struct {
	EmployeeID uint
	Month      int
	Year       int
	BaseSalary decimal.Decimal
}

type PayrollService struct {
	payrolls   stores.PayrollStore
	attendance stores.AttendanceStore
	employees  stores.EmployeeStore
}

func NewPayrollService(payrolls stores.PayrollStore, attendance stores.AttendanceStore, employees stores.EmployeeStore) *PayrollService {
	return &PayrollService{payrolls: payrolls, attendance: attendance, employees: employees}
}

// ProrateSalary returns present/total of base, rounded to cents.
func ProrateSalary(present, total int, base decimal.Decimal) decimal.Decimal {
	if total <= 0 {
		return decimal.Zero
	}

	return base.Mul(decimal.NewFromInt(int64(present))).
		Div(decimal.NewFromInt(int64(total))).
		Round(2)
}

// Generate appends a payroll row; repeated calls for the same period add new rows.
func (s *PayrollService) Generate(ctx context.Context, req PayrollRequest) (*models.Payroll, error) {
	if err := validatePeriod(req.Month, req.Year); err != nil {
		return nil, err
	}
	if req.BaseSalary.IsNegative() {
		return nil, newError(KindValidation, "Base salary cannot be negative")
	}

	if _, err := s.employees.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, stores.ErrNotFound) {
			return nil, newError(KindNotFound, "Employee not found")
		}
		return nil, err
	}

	from, to := monthBounds(req.Year, req.Month)
	employeeID := req.EmployeeID

	records, err := s.attendance.List(ctx, stores.AttendanceFilter{
		EmployeeID: &employeeID,
		From:       &from,
		To:         &to,
	})
	if err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, newError(KindValidation, "No attendance records found")
	}

	present := countPresent(records)

	payroll := &models.Payroll{
		EmployeeID:   req.EmployeeID,
		Month:        req.Month,
		Year:         req.Year,
		PresentDays:  present,
		TotalDays:    len(records),
		BaseSalary:   req.BaseSalary.Round(2),
		SalaryAmount: ProrateSalary(present, len(records), req.BaseSalary),
		Status:       types.PayrollStatusGenerated,
	}

	if err := s.payrolls.CreatePayroll(ctx, payroll); err != nil {
		return nil, err
	}

	return payroll, nil
}

func (s *PayrollService) ListMine(ctx context.Context, employeeID uint, month, year *int) ([]models.Payroll, error) {
	return s.ListAll(ctx, stores.PayrollFilter{EmployeeID: &employeeID, Month: month, Year: year})
}

func (s *PayrollService) ListAll(ctx context.Context, filter stores.PayrollFilter) ([]models.Payroll, error) {
	if err := validateFilter(filter.Month, filter.Year); err != nil {
		return nil, err
	}
	return s.payrolls.List(ctx, filter)
}
