package entity

import (
	"gorm.io/gorm"
)

type Canteen struct {
	gorm.Model
	University string `gorm:"not null;index" json:"university"`
	Name       string `gorm:"not null" json:"name"`

	// OwnerID is set once at creation and never reassigned. Every menu
	// mutation is filtered by it at the persistence layer.
	OwnerID uint `gorm:"not null;index" json:"ownerId"`
	Owner   User `gorm:"foreignKey:OwnerID" json:"-"`

	Menu []MenuItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"menu"`
}
