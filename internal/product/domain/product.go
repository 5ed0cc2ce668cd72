package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/palloncino/storage-server-app-01/pkg/jsonutil"
)

// Components is the structured parts list stored as a JSON column. Rows
// written by old clients may carry the list as a doubly-encoded string;
// Scan peels that off so callers always see a materialized array.
type Components []any

func (c Components) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

func (c *Components) Scan(src any) error {
	raw, err := rawJSON(src)
	if err != nil {
		return err
	}
	if raw == nil {
		*c = Components{}
		return nil
	}
	value, err := jsonutil.DecodeNested(raw)
	if err != nil {
		return err
	}
	*c = Components(jsonutil.AsArray(value))
	return nil
}

// Product is a catalog record. ImgURL points at a file under the managed
// images folder; an empty string means no image.
type Product struct {
	ID          int        `json:"id" gorm:"primaryKey;autoIncrement"`
	Name        string     `json:"name" gorm:"not null"`
	Description string     `json:"description" gorm:"type:text;not null"`
	Price       float64    `json:"price" gorm:"type:decimal(10,2);not null"`
	Category    string     `json:"category" gorm:"not null"`
	Company     string     `json:"company" gorm:"not null"`
	ImgURL      string     `json:"imgUrl" gorm:"column:img_url"`
	Components  Components `json:"components" gorm:"type:jsonb"`
	Discount    float64    `json:"discount" gorm:"default:0"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

func (Product) TableName() string {
	return "products"
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
