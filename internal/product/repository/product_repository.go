package repository

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/palloncino/storage-server-app-01/internal/product/domain"
)

// ErrNoneMatched reports a bulk delete that affected zero rows. The
// surrounding transaction is rolled back when it is returned.
var ErrNoneMatched = errors.New("no products matched the given ids")

// ProductRepository is the persistence boundary for product records.
type ProductRepository interface {
	Create(product *domain.Product) error
	FindByID(id int) (*domain.Product, error)
	FindAll() ([]domain.Product, error)
	UpdateByID(id int, updates map[string]any) (int64, error)
	DeleteByIDs(ids []int, beforeCommit func(preImages []domain.Product)) (int64, error)
}

// productRepository implements ProductRepository using GORM
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new instance of productRepository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(product *domain.Product) error {
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()
	return r.db.Create(product).Error
}

func (r *productRepository) FindByID(id int) (*domain.Product, error) {
	var product domain.Product
	err := r.db.Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) FindAll() ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.Find(&products).Error
	return products, err
}

func (r *productRepository) UpdateByID(id int, updates map[string]any) (int64, error) {
	updates["updated_at"] = time.Now()
	res := r.db.Model(&domain.Product{}).Where("id = ?", id).Updates(updates)
	return res.RowsAffected, res.Error
}

// DeleteByIDs removes the given products in a single transaction. The rows
// are read first so their pre-images are known, then bulk deleted; if zero
// rows match, the transaction rolls back and ErrNoneMatched is returned.
// beforeCommit runs with the pre-images after the delete but before the
// commit; whatever it does on the filesystem is not transactional and is
// never rolled back.
func (r *productRepository) DeleteByIDs(ids []int, beforeCommit func(preImages []domain.Product)) (int64, error) {
	var affected int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var preImages []domain.Product
		if err := tx.Where("id IN ?", ids).Find(&preImages).Error; err != nil {
			return err
		}

		res := tx.Where("id IN ?", ids).Delete(&domain.Product{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNoneMatched
		}
		affected = res.RowsAffected

		if beforeCommit != nil {
			beforeCommit(preImages)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}
