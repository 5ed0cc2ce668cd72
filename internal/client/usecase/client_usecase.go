package usecase

import (
	"github.com/palloncino/storage-server-app-01/internal/client/domain"
	"github.com/palloncino/storage-server-app-01/internal/client/dto"
	"github.com/palloncino/storage-server-app-01/internal/client/repository"
	"github.com/palloncino/storage-server-app-01/pkg/apperror"
)

// ClientUsecase covers the client CRUD surface.
type ClientUsecase interface {
	GetClients() ([]domain.Client, error)
	CreateClient(req *dto.CreateClientRequest) (*domain.Client, error)
	EditClient(req *dto.EditClientRequest) (*domain.Client, error)
	DeleteClients(ids []int) (int64, error)
}

// clientUsecase implements ClientUsecase
type clientUsecase struct {
	clientRepo repository.ClientRepository
}

// NewClientUsecase creates a new instance of clientUsecase
func NewClientUsecase(clientRepo repository.ClientRepository) ClientUsecase {
	return &clientUsecase{clientRepo: clientRepo}
}

func (u *clientUsecase) GetClients() ([]domain.Client, error) {
	clients, err := u.clientRepo.FindAll()
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "Error retrieving clients", err)
	}
	return clients, nil
}

func (u *clientUsecase) CreateClient(req *dto.CreateClientRequest) (*domain.Client, error) {
	if err := req.Address.Validate(); err != nil {
		return nil, apperror.Wrap(apperror.BadRequest, "All address fields must be filled", err)
	}

	client := &domain.Client{
		FiscalCode:   req.FiscalCode,
		VatNumber:    req.VatNumber,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		CompanyName:  req.CompanyName,
		Address:      req.Address,
		Email:        req.Email,
		MobileNumber: req.MobileNumber,
	}

	if err := u.clientRepo.Create(client); err != nil {
		return nil, apperror.Wrap(apperror.Internal, "Error creating client", err)
	}
	return client, nil
}

func (u *clientUsecase) EditClient(req *dto.EditClientRequest) (*domain.Client, error) {
	client, err := u.clientRepo.FindByID(req.ID)
	if err != nil {
		return nil, apperror.Wrap(apperror.Internal, "Error updating client", err)
	}
	if client == nil {
		return nil, apperror.New(apperror.NotFound, "Client not found")
	}

	if req.FiscalCode != "" {
		client.FiscalCode = req.FiscalCode
	}
	if req.VatNumber != "" {
		client.VatNumber = req.VatNumber
	}
	if req.FirstName != "" {
		client.FirstName = req.FirstName
	}
	if req.LastName != "" {
		client.LastName = req.LastName
	}
	if req.CompanyName != "" {
		client.CompanyName = req.CompanyName
	}
	if req.Email != "" {
		client.Email = req.Email
	}
	if req.MobileNumber != "" {
		client.MobileNumber = req.MobileNumber
	}
	if req.Address != nil {
		if err := req.Address.Validate(); err != nil {
			return nil, apperror.Wrap(apperror.BadRequest, "All address fields must be filled", err)
		}
		client.Address = *req.Address
	}

	if err := u.clientRepo.Update(client); err != nil {
		return nil, apperror.Wrap(apperror.Internal, "Error updating client", err)
	}
	return client, nil
}

func (u *clientUsecase) DeleteClients(ids []int) (int64, error) {
	count, err := u.clientRepo.DeleteByIDs(ids)
	if err != nil {
		return 0, apperror.Wrap(apperror.Internal, "Error deleting clients", err)
	}
	if count == 0 {
		return 0, apperror.New(apperror.NotFound, "No clients found with the given IDs.")
	}
	return count, nil
}
