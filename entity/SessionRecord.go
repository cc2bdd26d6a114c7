package entity

import (
	"time"
)

// SessionRecord backs the database session store. Data holds the
// JSON-encoded session document (user identity + cart lines).
type SessionRecord struct {
	Token     string `gorm:"primaryKey"`
	Data      []byte
	ExpiresAt time.Time `gorm:"index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
