package entity

import (
	"time"

	"gorm.io/gorm"
)

// Order is an immutable snapshot of a completed checkout. Items are copied
// by value (name/price/quantity) so later menu edits never touch past orders.
type Order struct {
	gorm.Model
	UserID uint `gorm:"not null;index" json:"userId"`
	User   User `json:"-"`

	CanteenName     string    `gorm:"not null" json:"canteenName"`
	TotalAmount     float64   `gorm:"not null" json:"totalAmount"`
	PaymentMethod   string    `gorm:"not null" json:"paymentMethod"`
	DeliveryAddress string    `gorm:"not null" json:"deliveryAddress"`
	OrderDate       time.Time `json:"orderDate"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"items"`
}
