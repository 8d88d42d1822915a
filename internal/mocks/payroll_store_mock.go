package mocks

import (
	"context"

	"github.com/dayflow-dev/dayflow/internal/models"
	"github.com/dayflow-dev/dayflow/internal/stores"
	"github.com/stretchr/testify/mock"
)

type PayrollStore struct{ mock.Mock }

func (m *PayrollStore) CreatePayroll(ctx context.Context, p *models.Payroll) error {
	return m.Called(ctx, p).Error(0)
}

func (m *PayrollStore) List(ctx context.Context, filter stores.PayrollFilter) ([]models.Payroll, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Payroll), args.Error(1)
}
