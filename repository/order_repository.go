package repository

import (
	"gorm.io/gorm"

	"github.com/Kadalibhanu05/Gitam-Campus-Eats/entity"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// Create persists the order and its item rows in one transaction.
func (r *OrderRepository) Create(order *entity.Order) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(order).Error
	})
}

func (r *OrderRepository) FindByUser(userID uint) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("id DESC").Limit(50).
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepository) FindByID(id uint) (*entity.Order, error) {
	var order entity.Order
	err := r.DB.Preload("Items").First(&order, id).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}
