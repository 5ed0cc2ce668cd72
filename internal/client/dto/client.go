package dto

import "github.com/palloncino/storage-server-app-01/internal/client/domain"

type CreateClientRequest struct {
	FiscalCode   string         `json:"fiscalCode" binding:"required"`
	VatNumber    string         `json:"vatNumber" binding:"required"`
	FirstName    string         `json:"firstName" binding:"required"`
	LastName     string         `json:"lastName" binding:"required"`
	CompanyName  string         `json:"companyName" binding:"required"`
	Address      domain.Address `json:"address" binding:"required"`
	Email        string         `json:"email" binding:"required,email"`
	MobileNumber string         `json:"mobileNumber"`
}

type EditClientRequest struct {
	ID           int             `json:"id" binding:"required"`
	FiscalCode   string          `json:"fiscalCode"`
	VatNumber    string          `json:"vatNumber"`
	FirstName    string          `json:"firstName"`
	LastName     string          `json:"lastName"`
	CompanyName  string          `json:"companyName"`
	Address      *domain.Address `json:"address"`
	Email        string          `json:"email"`
	MobileNumber string          `json:"mobileNumber"`
}

type DeleteClientsRequest struct {
	Ids []int `json:"ids" binding:"required"`
}
