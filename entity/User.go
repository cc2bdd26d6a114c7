package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `json:"-"`
	Role     string `gorm:"not null;default:student" json:"role"` // student | owner

	CanteensOwned []Canteen `gorm:"foreignKey:OwnerID" json:"-"`
	Orders        []Order   `json:"-"`
}
