package stores

import (
	"context"

	"github.com/dayflow-dev/dayflow/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EmployeeStore interface {
	// GetOrCreate returns the profile of userID, inserting one with fullName
	// when none exists. Concurrent first calls converge on a single row.
	GetOrCreate(ctx context.Context, userID uint, fullName string) (*models.Employee, error)
	FindByUserID(ctx context.Context, userID uint) (*models.Employee, error)
	GetByID(ctx context.Context, id uint) (*models.Employee, error)
	// Update applies the given column values and returns the refreshed row.
	Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Employee, error)
	List(ctx context.Context) ([]models.Employee, error)
}

type GormEmployeeStore struct{ DB *gorm.DB }

func (s *GormEmployeeStore) GetOrCreate(ctx context.Context, userID uint, fullName string) (*models.Employee, error) {
	tx := s.DB.WithContext(ctx)

	employee := models.Employee{UserID: userID, FullName: fullName}

	err := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoNothing: true,
	}).Create(&employee).Error
	if err != nil {
		return nil, translate(err)
	}

	var stored models.Employee
	if err := tx.Where("user_id = ?", userID).First(&stored).Error; err != nil {
		return nil, translate(err)
	}
	return &stored, nil
}

func (s *GormEmployeeStore) FindByUserID(ctx context.Context, userID uint) (*models.Employee, error) {
	var e models.Employee
	if err := s.DB.WithContext(ctx).Where("user_id = ?", userID).First(&e).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (s *GormEmployeeStore) GetByID(ctx context.Context, id uint) (*models.Employee, error) {
	var e models.Employee
	if err := s.DB.WithContext(ctx).First(&e, id).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (s *GormEmployeeStore) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Employee, error) {
	tx := s.DB.WithContext(ctx)

	var e models.Employee
	if err := tx.First(&e, id).Error; err != nil {
		return nil, translate(err)
	}

	if len(fields) > 0 {
		if err := tx.Model(&e).Updates(fields).Error; err != nil {
			return nil, translate(err)
		}
	}

	if err := tx.First(&e, id).Error; err != nil {
		return nil, translate(err)
	}
	return &e, nil
}

func (s *GormEmployeeStore) List(ctx context.Context) ([]models.Employee, error) {
	var employees []models.Employee
	if err := s.DB.WithContext(ctx).Order("id").Find(&employees).Error; err != nil {
		return nil, translate(err)
	}
	return employees, nil
}
