package entity

import (
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name  string  `gorm:"not null" json:"name"`
	Price float64 `gorm:"not null" json:"price"`

	CanteenID uint    `gorm:"index" json:"canteenId"`
	Canteen   Canteen `json:"-"`
}
