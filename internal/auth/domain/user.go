package domain

import "time"

// RoleUser is the role every signup starts with.
const RoleUser = "user"

// User is an account in the quoting tool. The password column only ever
// holds a bcrypt hash and is never serialized.
type User struct {
	ID          int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Username    string    `json:"username" gorm:"not null"`
	FirstName   string    `json:"firstName" gorm:"not null"`
	LastName    string    `json:"lastName" gorm:"not null"`
	CompanyName string    `json:"companyName" gorm:"not null"`
	Email       string    `json:"email" gorm:"uniqueIndex;not null"`
	Role        string    `json:"role" gorm:"not null;default:user"`
	Password    string    `json:"-" gorm:"not null"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
