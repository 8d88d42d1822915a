package stores

import (
	"context"

	"github.com/dayflow-dev/dayflow/internal/models"
	"gorm.io/gorm"
)

type PayrollFilter struct {
	EmployeeID *uint
	Month      *int
	Year       *int
}

type PayrollStore interface {
	CreatePayroll(ctx context.Context, p *models.Payroll) error
	// List orders by year then month, newest first.
	List(ctx context.Context, filter PayrollFilter) ([]models.Payroll, error)
}

type GormPayrollStore struct{ DB *gorm.DB }

func (s *GormPayrollStore) CreatePayroll(ctx context.Context, p *models.Payroll) error {
	return translate(s.DB.WithContext(ctx).Create(p).Error)
}

func (s *GormPayrollStore) List(ctx context.Context, filter PayrollFilter) ([]models.Payroll, error) {
	query := s.DB.WithContext(ctx).Model(&models.Payroll{})

	if filter.EmployeeID != nil {
		query = query.Where("employee_id = ?", *filter.EmployeeID)
	}
	if filter.Month != nil {
		query = query.Where("month = ?", *filter.Month)
	}
	if filter.Year != nil {
		query = query.Where("year = ?", *filter.Year)
	}

	var payrolls []models.Payroll
	if err := query.Order("year DESC").Order("month DESC").Order("id DESC").Find(&payrolls).Error; err != nil {
		return nil, translate(err)
	}
	return payrolls, nil
}
