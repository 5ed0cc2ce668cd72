package usecase

import (
	"errors"

	"github.com/palloncino/storage-server-app-01/internal/product/domain"
	"github.com/palloncino/storage-server-app-01/internal/product/repository"
	"github.com/palloncino/storage-server-app-01/pkg/apperror"
	"github.com/palloncino/storage-server-app-01/pkg/logger"
)

// ImageRemover deletes the file behind a product image URL. Failures are
// expected to be non-fatal for callers.
type ImageRemover interface {
	Remove(imgURL string) error
}

// ProductUsecase covers the product CRUD surface including the
// transactional bulk delete with image cleanup.
type ProductUsecase interface {
	GetProducts() ([]domain.Product, error)
	CreateProduct(product *domain.Product) error
	EditProduct(id int, updates map[string]any) (*domain.Product, error)
	DeleteProducts(ids []int) (int64, error)
}

// productUsecase implements ProductUsecase
type productUsecase struct {
	productRepo repository.ProductRepository
	images      ImageRemover
}

// NewProductUsecase creates a new instance of productUsecase
func NewProductUsecase(productRepo repository.ProductRepository, images ImageRemover) ProductUsecase {
	return &productUsecase{
		productRepo: productRepo,
		images:      images,
	}
}

func (u *productUsecase) GetProducts() ([]domain.Product, error) {
	products, err := u.productRepo.FindAll()
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "Error retrieving products", err)
	}
	return products, nil
}

func (u *productUsecase) CreateProduct(product *domain.Product) error {
	if err := u.productRepo.Create(product); err != nil {
		return apperror.Wrap(apperror.BadRequest, "Error creating product", err)
	}
	return nil
}

func (u *productUsecase) EditProduct(id int, updates map[string]any) (*domain.Product, error) {
	count, err := u.productRepo.UpdateByID(id, updates)
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "Error updating product", err)
	}
	if count == 0 {
		return nil, apperror.New(apperror.NotFound, "Product not found")
	}

	product, err := u.productRepo.FindByID(id)
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "Error updating product", err)
	}
	if product == nil {
		return nil, apperror.New(apperror.NotFound, "Updated product not found")
	}
	return product, nil
}

// DeleteProducts bulk-deletes the given products inside one transaction and
// removes their image files. The rows are authoritative: a file that cannot
// be removed is logged and left behind, never undoing the delete.
func (u *productUsecase) DeleteProducts(ids []int) (int64, error) {
	count, err := u.productRepo.DeleteByIDs(ids, func(preImages []domain.Product) {
		for _, p := range preImages {
			if p.ImgURL == "" {
				continue
			}
			// Best effort; Remove logs its own outcome.
			_ = u.images.Remove(p.ImgURL)
		}
	})
	if err != nil {
		if errors.Is(err, repository.ErrNoneMatched) {
			logger.Log.Warnf("No products found with given IDs: %v", ids)
			return 0, apperror.New(apperror.NotFound, "No products found with the given IDs.")
		}
		return 0, apperror.Wrap(apperror.Internal, "Error deleting products", err)
	}
	return count, nil
}
