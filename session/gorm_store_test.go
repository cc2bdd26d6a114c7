package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Kadalibhanu05/Gitam-Campus-Eats/entity"
)

func newStore(t *testing.T) (*GormStore, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&entity.SessionRecord{}))
	return NewGormStore(db), db
}

func TestLoadUnknownIDGivesFreshSession(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	for _, id := range []string{"", "never-saved"} {
		sess, err := store.Load(ctx, id)
		require.NoError(t, err)
		require.NotEmpty(t, sess.ID)
		require.Nil(t, sess.User)
		require.Empty(t, sess.Cart)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	sess := New()
	sess.User = &User{ID: 3, Name: "Ravi", Email: "ravi@campus.edu", Role: "owner"}
	sess.Cart = []CartLine{{CanteenID: "C1", Name: "Tea", UnitPrice: 2, Quantity: 1}}
	require.NoError(t, store.Save(ctx, sess))

	loaded, err := store.Load(ctx, sess.ID)
	require.NoError(t, err)
	require.Equal(t, sess.ID, loaded.ID)
	require.Equal(t, "owner", loaded.User.Role)
	require.Equal(t, sess.Cart, loaded.Cart)
}

func TestSaveOverwritesExistingDocument(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	sess := New()
	require.NoError(t, store.Save(ctx, sess))
	sess.Cart = []CartLine{{CanteenID: "C1", Name: "Tea", UnitPrice: 2, Quantity: 5}}
	require.NoError(t, store.Save(ctx, sess))

	loaded, err := store.Load(ctx, sess.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Cart, 1)
	require.Equal(t, 5, loaded.Cart[0].Quantity)
}

func TestDestroyDropsSession(t *testing.T) {
	store, _ := newStore(t)
	ctx := context.Background()

	sess := New()
	require.NoError(t, store.Save(ctx, sess))
	require.NoError(t, store.Destroy(ctx, sess.ID))

	loaded, err := store.Load(ctx, sess.ID)
	require.NoError(t, err)
	require.NotEqual(t, sess.ID, loaded.ID)
}

func TestExpiredSessionIsDiscarded(t *testing.T) {
	store, db := newStore(t)
	ctx := context.Background()

	sess := New()
	require.NoError(t, store.Save(ctx, sess))

	// age the row past the TTL
	require.NoError(t, db.Model(&entity.SessionRecord{}).
		Where("token = ?", sess.ID).
		Update("expires_at", time.Now().Add(-time.Minute)).Error)

	loaded, err := store.Load(ctx, sess.ID)
	require.NoError(t, err)
	require.NotEqual(t, sess.ID, loaded.ID)

	// the expired row was pruned
	var count int64
	db.Model(&entity.SessionRecord{}).Where("token = ?", sess.ID).Count(&count)
	require.EqualValues(t, 0, count)
}
