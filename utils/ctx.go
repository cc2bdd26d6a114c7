package utils

import (
	"github.com/gin-gonic/gin"

	"github.com/Kadalibhanu05/Gitam-Campus-Eats/session"
)

const sessionKey = "session"

func SetSession(c *gin.Context, s *session.Session) {
	c.Set(sessionKey, s)
}

// CurrentSession returns the session the middleware attached to the request.
func CurrentSession(c *gin.Context) *session.Session {
	if v, ok := c.Get(sessionKey); ok {
		if s, ok := v.(*session.Session); ok {
			return s
		}
	}
	return session.New()
}

// CurrentUserID returns the logged-in user's id, 0 when anonymous.
func CurrentUserID(c *gin.Context) uint {
	s := CurrentSession(c)
	if s.User == nil {
		return 0
	}
	return s.User.ID
}

func CurrentRole(c *gin.Context) string {
	s := CurrentSession(c)
	if s.User == nil {
		return ""
	}
	return s.User.Role
}
