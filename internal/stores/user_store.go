package stores

import (
	"context"

	"github.com/dayflow-dev/dayflow/internal/models"
	"gorm.io/gorm"
)

// UserStore abstracts credential persistence.
type UserStore interface {
	// FindByEmail returns the user or ErrNotFound.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uint) (*models.User, error)
	// CreateUser returns ErrDuplicate when the email is taken.
	CreateUser(ctx context.Context, u *models.User) error
}

type GormUserStore struct{ DB *gorm.DB }

func (s *GormUserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := s.DB.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *GormUserStore) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := s.DB.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, translate(err)
	}
	return &u, nil
}

func (s *GormUserStore) CreateUser(ctx context.Context, u *models.User) error {
	return translate(s.DB.WithContext(ctx).Create(u).Error)
}
