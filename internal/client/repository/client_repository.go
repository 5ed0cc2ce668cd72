package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/palloncino/storage-server-app-01/internal/client/domain"
)

// ClientRepository is the persistence boundary for client records.
type ClientRepository interface {
	Create(client *domain.Client) error
	FindByID(id int) (*domain.Client, error)
	FindAll() ([]domain.Client, error)
	Update(client *domain.Client) error
	DeleteByIDs(ids []int) (int64, error)
}

// clientRepository implements ClientRepository using GORM
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new instance of clientRepository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) Create(client *domain.Client) error {
	client.CreatedAt = time.Now()
	client.UpdatedAt = time.Now()
	return r.db.Create(client).Error
}

func (r *clientRepository) FindByID(id int) (*domain.Client, error) {
	var client domain.Client
	err := r.db.Where("id = ?", id).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) FindAll() ([]domain.Client, error) {
	var clients []domain.Client
	err := r.db.Find(&clients).Error
	return clients, err
}

func (r *clientRepository) Update(client *domain.Client) error {
	client.UpdatedAt = time.Now()
	return r.db.Save(client).Error
}

func (r *clientRepository) DeleteByIDs(ids []int) (int64, error) {
	res := r.db.Where("id IN ?", ids).Delete(&domain.Client{})
	return res.RowsAffected, res.Error
}
