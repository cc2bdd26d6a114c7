package session

import (
	"time"

	"github.com/google/uuid"
)

// TTL is how long an untouched session survives in the store.
const TTL = 24 * time.Hour

// User is the identity slice kept inside the session after login.
type User struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// CartLine is one cart entry. Identity within a cart is the
// (CanteenID, Name) pair; quantities merge instead of duplicating lines.
type CartLine struct {
	CanteenID string  `json:"canteenId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
}

// Session is the per-visitor document persisted by a Store and addressed
// by the opaque token carried in the visitor's cookie.
type Session struct {
	ID        string     `json:"id"`
	User      *User      `json:"user,omitempty"`
	Cart      []CartLine `json:"cart"`
	ExpiresAt time.Time  `json:"expiresAt"`
}

// New returns a fresh anonymous session with an empty cart.
func New() *Session {
	return &Session{
		ID:        uuid.NewString(),
		Cart:      []CartLine{},
		ExpiresAt: time.Now().Add(TTL),
	}
}

// LoggedIn reports whether the session carries an authenticated user.
func (s *Session) LoggedIn() bool { return s.User != nil }
