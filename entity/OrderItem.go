package entity

import (
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`

	OrderID uint  `gorm:"index" json:"orderId"`
	Order   Order `json:"-"`
}
