package repository

import (
	"gorm.io/gorm"

	"github.com/Kadalibhanu05/Gitam-Campus-Eats/entity"
)

type CanteenRepository struct {
	DB *gorm.DB
}

func NewCanteenRepository(db *gorm.DB) *CanteenRepository {
	return &CanteenRepository{DB: db}
}

func (r *CanteenRepository) FindByUniversity(university string) ([]entity.Canteen, error) {
	var canteens []entity.Canteen
	err := r.DB.
		Preload("Menu").
		Where("university = ?", university).
		Find(&canteens).Error
	return canteens, err
}

func (r *CanteenRepository) FindByID(id uint) (*entity.Canteen, error) {
	var canteen entity.Canteen
	err := r.DB.
		Preload("Menu").
		First(&canteen, id).Error
	if err != nil {
		return nil, err
	}
	return &canteen, nil
}

// FindOwned loads a canteen only when the requester owns it. A foreign
// canteen and a missing canteen are the same ErrRecordNotFound, so
// non-owners learn nothing about what exists.
func (r *CanteenRepository) FindOwned(id, ownerID uint) (*entity.Canteen, error) {
	var canteen entity.Canteen
	err := r.DB.
		Preload("Menu").
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&canteen).Error
	if err != nil {
		return nil, err
	}
	return &canteen, nil
}

func (r *CanteenRepository) Create(canteen *entity.Canteen) error {
	return r.DB.Create(canteen).Error
}

// AppendItemsOwned inserts menu rows for a canteen in a single conditional
// write per item: the INSERT..SELECT only produces a row when the canteen id
// and owner id match together, so there is no check-then-act gap between
// verifying ownership and writing. Returns the number of rows written.
func (r *CanteenRepository) AppendItemsOwned(canteenID, ownerID uint, items []entity.MenuItem) (int64, error) {
	var written int64
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		for _, it := range items {
			res := tx.Exec(`
				INSERT INTO menu_items (created_at, updated_at, name, price, canteen_id)
				SELECT CURRENT_TIMESTAMP, CURRENT_TIMESTAMP, ?, ?, c.id
				  FROM canteens c
				 WHERE c.id = ? AND c.owner_id = ? AND c.deleted_at IS NULL
			`, it.Name, it.Price, canteenID, ownerID)
			if res.Error != nil {
				return res.Error
			}
			written += res.RowsAffected
		}
		return nil
	})
	return written, err
}

// RemoveItemOwned deletes one menu item, filtered by canteen ownership in
// the same statement. Zero rows affected means the canteen, the ownership or
// the item did not match.
func (r *CanteenRepository) RemoveItemOwned(canteenID, ownerID, itemID uint) (int64, error) {
	res := r.DB.Exec(`
		DELETE FROM menu_items
		 WHERE id = ?
		   AND canteen_id IN (SELECT id FROM canteens WHERE id = ? AND owner_id = ? AND deleted_at IS NULL)
	`, itemID, canteenID, ownerID)
	return res.RowsAffected, res.Error
}
