package services

import (
	"errors"
	"strconv"

	"gorm.io/gorm"

	"github.com/Kadalibhanu05/Gitam-Campus-Eats/entity"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/repository"
)

// CanteenService gates every menu mutation on canteen ownership. The owner
// check happens inside the repository's conditional writes, not as a
// separate read before the write.
type CanteenService struct {
	Repo *repository.CanteenRepository
}

func NewCanteenService(repo *repository.CanteenRepository) *CanteenService {
	return &CanteenService{Repo: repo}
}

// MenuItemIn is one candidate menu item as posted by the owner forms. Price
// arrives as a string and is validated, not coerced: a candidate with an
// empty name or an unparseable/negative price is silently discarded.
type MenuItemIn struct {
	Name  string `form:"name" json:"name"`
	Price string `form:"price" json:"price"`
}

func filterValidItems(items []MenuItemIn) []entity.MenuItem {
	valid := make([]entity.MenuItem, 0, len(items))
	for _, it := range items {
		if it.Name == "" {
			continue
		}
		price, err := strconv.ParseFloat(it.Price, 64)
		if err != nil || price < 0 {
			continue
		}
		valid = append(valid, entity.MenuItem{Name: it.Name, Price: price})
	}
	return valid
}

func (s *CanteenService) List(university string) ([]entity.Canteen, error) {
	return s.Repo.FindByUniversity(university)
}

func (s *CanteenService) Get(id uint) (*entity.Canteen, error) {
	c, err := s.Repo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return c, err
}

func (s *CanteenService) Create(ownerID uint, university, name string, items []MenuItemIn) (*entity.Canteen, error) {
	if name == "" {
		return nil, ErrValidation
	}
	canteen := &entity.Canteen{
		University: university,
		Name:       name,
		OwnerID:    ownerID,
		Menu:       filterValidItems(items),
	}
	if err := s.Repo.Create(canteen); err != nil {
		return nil, err
	}
	return canteen, nil
}

// LoadOwned returns the canteen only to its owner. Everyone else gets
// ErrNotFound whether the canteen exists or not.
func (s *CanteenService) LoadOwned(canteenID, requesterID uint) (*entity.Canteen, error) {
	c, err := s.Repo.FindOwned(canteenID, requesterID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return c, err
}

// AppendItems adds the valid candidates to the canteen's menu. The owner
// check runs for every request, even one whose candidates all fail
// validation: a non-owner gets Forbidden regardless of payload shape.
// Invalid candidates themselves are dropped silently, never reported as a
// partial success.
func (s *CanteenService) AppendItems(canteenID, requesterID uint, items []MenuItemIn) error {
	valid := filterValidItems(items)
	if len(valid) == 0 {
		// nothing to write, but the request is still owner-gated
		if _, err := s.Repo.FindOwned(canteenID, requesterID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrForbidden
			}
			return err
		}
		return nil
	}
	written, err := s.Repo.AppendItemsOwned(canteenID, requesterID, valid)
	if err != nil {
		return err
	}
	if written == 0 {
		return ErrForbidden
	}
	return nil
}

// RemoveItem pulls one item from the menu through a single owner-filtered
// delete. Zero affected rows collapses "wrong owner", "no such canteen" and
// "no such item" into the same Forbidden.
func (s *CanteenService) RemoveItem(canteenID, requesterID, itemID uint) error {
	affected, err := s.Repo.RemoveItemOwned(canteenID, requesterID, itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrForbidden
	}
	return nil
}
