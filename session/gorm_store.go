package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Kadalibhanu05/Gitam-Campus-Eats/entity"
)

// GormStore keeps sessions as rows in the main database, one JSON document
// per token, the default backend.
type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

func (s *GormStore) Load(ctx context.Context, id string) (*Session, error) {
	if id == "" {
		return New(), nil
	}

	var rec entity.SessionRecord
	err := s.DB.WithContext(ctx).First(&rec, "token = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return New(), nil
	}
	if err != nil {
		return nil, err
	}

	if time.Now().After(rec.ExpiresAt) {
		// lazily drop the expired row and start over
		s.DB.WithContext(ctx).Delete(&entity.SessionRecord{}, "token = ?", id)
		return New(), nil
	}

	var sess Session
	if err := json.Unmarshal(rec.Data, &sess); err != nil {
		return New(), nil
	}
	return &sess, nil
}

func (s *GormStore) Save(ctx context.Context, sess *Session) error {
	sess.ExpiresAt = time.Now().Add(TTL)
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	rec := entity.SessionRecord{
		Token:     sess.ID,
		Data:      data,
		ExpiresAt: sess.ExpiresAt,
	}
	// upsert keyed on the token; concurrent saves are last-write-wins
	return s.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "expires_at", "updated_at"}),
	}).Create(&rec).Error
}

func (s *GormStore) Destroy(ctx context.Context, id string) error {
	return s.DB.WithContext(ctx).Delete(&entity.SessionRecord{}, "token = ?", id).Error
}
