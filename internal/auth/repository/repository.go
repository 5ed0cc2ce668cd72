package repository

import (
	"github.com/palloncino/storage-server-app-01/internal/auth/domain"
)

// UserRepository is the persistence boundary for user records. Lookups
// return (nil, nil) when no record matches.
type UserRepository interface {
	Create(user *domain.User) error
	FindByID(id int) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	FindAll() ([]domain.User, error)
	Update(user *domain.User) error
	DeleteByIDs(ids []int) (int64, error)
}
