package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Kadalibhanu05/Gitam-Campus-Eats/configs"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/pkg/resp"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/services"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/session"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/utils"
)

type SignupRequest struct {
	Name     string `form:"name" json:"name" binding:"required"`
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required,min=6"`
	Role     string `form:"role" json:"role"`
}

type LoginRequest struct {
	Email    string `form:"email" json:"email" binding:"required,email"`
	Password string `form:"password" json:"password" binding:"required"`
}

type AuthController struct {
	Svc   *services.AuthService
	Store session.Store
	Cfg   *configs.Config
}

func NewAuthController(svc *services.AuthService, store session.Store, cfg *configs.Config) *AuthController {
	return &AuthController{Svc: svc, Store: store, Cfg: cfg}
}

// POST /signup
func (a *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Register(req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sess := utils.CurrentSession(c)
	sess.User = user
	if err := a.Store.Save(c.Request.Context(), sess); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"id": user.ID, "name": user.Name, "email": user.Email, "role": user.Role})
}

// POST /login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}

	sess := utils.CurrentSession(c)
	sess.User = user
	if err := a.Store.Save(c.Request.Context(), sess); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"id": user.ID, "name": user.Name, "email": user.Email, "role": user.Role})
}

// GET /logout
func (a *AuthController) Logout(c *gin.Context) {
	sess := utils.CurrentSession(c)
	if err := a.Store.Destroy(c.Request.Context(), sess.ID); err != nil {
		resp.ServerError(c, err)
		return
	}
	c.SetCookie(a.Cfg.CookieName, "", -1, "/", "", false, true)
	resp.OK(c, gin.H{"loggedOut": true})
}
