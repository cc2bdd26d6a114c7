package middlewares

import (
	"github.com/gin-gonic/gin"

	"github.com/Kadalibhanu05/Gitam-Campus-Eats/configs"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/pkg/resp"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/session"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/utils"
)

// SessionMiddleware resolves the visitor's session from the signed cookie
// and attaches it to the request context. A missing, invalid or expired
// cookie starts a fresh anonymous session; the new id is pushed back to the
// client before the handler runs.
func SessionMiddleware(store session.Store, cfg *configs.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		var id string
		if cookie, err := c.Cookie(cfg.CookieName); err == nil {
			id = utils.ParseSessionID(cookie, cfg.JWTSecret)
		}

		sess, err := store.Load(c.Request.Context(), id)
		if err != nil {
			resp.ServerError(c, err)
			c.Abort()
			return
		}

		if sess.ID != id {
			signed, err := utils.SignSessionID(sess.ID, cfg.JWTSecret, cfg.CookieTTL)
			if err != nil {
				resp.ServerError(c, err)
				c.Abort()
				return
			}
			c.SetCookie(cfg.CookieName, signed, int(cfg.CookieTTL.Seconds()), "/", "", false, true)
		}

		utils.SetSession(c, sess)
		c.Next()
	}
}

// RequireUser rejects requests whose session has no authenticated user.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !utils.CurrentSession(c).LoggedIn() {
			resp.Unauthorized(c, "login required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole additionally gates on the session user's role.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := utils.CurrentSession(c)
		if !sess.LoggedIn() {
			resp.Unauthorized(c, "login required")
			c.Abort()
			return
		}
		if sess.User.Role != role {
			resp.Forbidden(c, "access denied")
			c.Abort()
			return
		}
		c.Next()
	}
}
