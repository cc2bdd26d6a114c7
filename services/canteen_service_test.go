package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Kadalibhanu05/Gitam-Campus-Eats/entity"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/repository"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Canteen{}, &entity.MenuItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.SessionRecord{},
	))
	return db
}

func newCanteenService(t *testing.T) (*CanteenService, *gorm.DB) {
	db := newTestDB(t)
	return NewCanteenService(repository.NewCanteenRepository(db)), db
}

func seedCanteen(t *testing.T, db *gorm.DB, ownerID uint) *entity.Canteen {
	t.Helper()
	canteen := &entity.Canteen{
		University: "Gitam University",
		Name:       "Main Block Canteen",
		OwnerID:    ownerID,
		Menu:       []entity.MenuItem{{Name: "Coffee", Price: 3}},
	}
	require.NoError(t, db.Create(canteen).Error)
	return canteen
}

func TestCreateFiltersInvalidCandidates(t *testing.T) {
	svc, _ := newCanteenService(t)

	canteen, err := svc.Create(1, "Gitam University", "Juice Corner", []MenuItemIn{
		{Name: "Mango Juice", Price: "2.50"},
		{Name: "", Price: "1.00"},         // no name
		{Name: "Mystery", Price: "cheap"}, // unparseable price
		{Name: "Negative", Price: "-4"},   // negative price
	})
	require.NoError(t, err)
	require.Len(t, canteen.Menu, 1)
	require.Equal(t, "Mango Juice", canteen.Menu[0].Name)
	require.Equal(t, 2.50, canteen.Menu[0].Price)
}

func TestCreateRequiresName(t *testing.T) {
	svc, _ := newCanteenService(t)
	_, err := svc.Create(1, "Gitam University", "", nil)
	require.ErrorIs(t, err, ErrValidation)
}

func TestLoadOwnedHidesForeignCanteens(t *testing.T) {
	svc, db := newCanteenService(t)
	canteen := seedCanteen(t, db, 1)

	got, err := svc.LoadOwned(canteen.ID, 1)
	require.NoError(t, err)
	require.Equal(t, canteen.ID, got.ID)

	// wrong owner and nonexistent id are the same outcome
	_, err = svc.LoadOwned(canteen.ID, 2)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = svc.LoadOwned(9999, 2)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAppendItemsOwnerOnly(t *testing.T) {
	svc, db := newCanteenService(t)
	canteen := seedCanteen(t, db, 1)

	// non-owner is rejected and writes nothing
	err := svc.AppendItems(canteen.ID, 2, []MenuItemIn{{Name: "Samosa", Price: "1.50"}})
	require.ErrorIs(t, err, ErrForbidden)

	var count int64
	db.Model(&entity.MenuItem{}).Where("canteen_id = ?", canteen.ID).Count(&count)
	require.EqualValues(t, 1, count)

	// owner appends; invalid candidates drop silently
	err = svc.AppendItems(canteen.ID, 1, []MenuItemIn{
		{Name: "Samosa", Price: "1.50"},
		{Name: "", Price: "9"},
	})
	require.NoError(t, err)

	db.Model(&entity.MenuItem{}).Where("canteen_id = ?", canteen.ID).Count(&count)
	require.EqualValues(t, 2, count)
}

func TestAppendItemsAllInvalidStillChecksOwner(t *testing.T) {
	svc, db := newCanteenService(t)
	canteen := seedCanteen(t, db, 1)

	// owner: invalid candidates drop silently, not an error
	err := svc.AppendItems(canteen.ID, 1, []MenuItemIn{{Name: "", Price: ""}})
	require.NoError(t, err)

	// non-owner: rejected even though nothing would be written
	err = svc.AppendItems(canteen.ID, 2, []MenuItemIn{{Name: "", Price: ""}})
	require.ErrorIs(t, err, ErrForbidden)

	// same for an empty payload and an unknown canteen
	err = svc.AppendItems(canteen.ID, 2, nil)
	require.ErrorIs(t, err, ErrForbidden)
	err = svc.AppendItems(9999, 1, nil)
	require.ErrorIs(t, err, ErrForbidden)

	var count int64
	db.Model(&entity.MenuItem{}).Where("canteen_id = ?", canteen.ID).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestRemoveItemOwnerOnly(t *testing.T) {
	svc, db := newCanteenService(t)
	canteen := seedCanteen(t, db, 1)
	itemID := canteen.Menu[0].ID

	// foreign requester: Forbidden, menu untouched
	err := svc.RemoveItem(canteen.ID, 2, itemID)
	require.ErrorIs(t, err, ErrForbidden)

	var count int64
	db.Model(&entity.MenuItem{}).Where("canteen_id = ?", canteen.ID).Count(&count)
	require.EqualValues(t, 1, count)

	// owner removes
	require.NoError(t, svc.RemoveItem(canteen.ID, 1, itemID))
	db.Model(&entity.MenuItem{}).Where("canteen_id = ?", canteen.ID).Count(&count)
	require.EqualValues(t, 0, count)

	// gone now, so a repeat collapses to Forbidden
	err = svc.RemoveItem(canteen.ID, 1, itemID)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestGetDistinguishesNotFoundOnReadPath(t *testing.T) {
	svc, db := newCanteenService(t)
	canteen := seedCanteen(t, db, 1)

	got, err := svc.Get(canteen.ID)
	require.NoError(t, err)
	require.Len(t, got.Menu, 1)

	_, err = svc.Get(12345)
	require.ErrorIs(t, err, ErrNotFound)
}
