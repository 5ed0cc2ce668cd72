package domain

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/palloncino/storage-server-app-01/pkg/jsonutil"
)

// Address is the structured address stored as a JSON column. Historical
// rows were sometimes written with an extra layer of string encoding, so
// Scan decodes defensively.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

// Validate rejects an address with any empty field.
func (a Address) Validate() error {
	if a.Street == "" || a.City == "" || a.ZipCode == "" || a.Country == "" {
		return errors.New("all address fields must be filled")
	}
	return nil
}

func (a Address) Value() (driver.Value, error) {
	return json.Marshal(a)
}

func (a *Address) Scan(src any) error {
	raw, err := rawJSON(src)
	if err != nil || raw == nil {
		return err
	}
	value, err := jsonutil.DecodeNested(raw)
	if err != nil {
		return err
	}
	buf, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return json.Unmarshal(buf, a)
}

// Client is a customer record quotes and documents are issued against.
type Client struct {
	ID           int       `json:"id" gorm:"primaryKey;autoIncrement"`
	FiscalCode   string    `json:"fiscalCode" gorm:"size:16;not null"`
	VatNumber    string    `json:"vatNumber" gorm:"size:14;not null"`
	FirstName    string    `json:"firstName" gorm:"not null"`
	LastName     string    `json:"lastName" gorm:"not null"`
	CompanyName  string    `json:"companyName" gorm:"not null"`
	Address      Address   `json:"address" gorm:"type:jsonb;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	MobileNumber string    `json:"mobileNumber"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (Client) TableName() string {
	return "clients"
}

func rawJSON(src any) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("unsupported JSON column type %T", src)
	}
}
