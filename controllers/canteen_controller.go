package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Kadalibhanu05/Gitam-Campus-Eats/configs"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/pkg/resp"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/services"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/utils"
)

type CanteenController struct {
	Svc *services.CanteenService
	Cfg *configs.Config
}

func NewCanteenController(svc *services.CanteenService, cfg *configs.Config) *CanteenController {
	return &CanteenController{Svc: svc, Cfg: cfg}
}

// GET /canteens
func (ctl *CanteenController) List(c *gin.Context) {
	canteens, err := ctl.Svc.List(ctl.Cfg.University)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"canteens": canteens})
}

// GET /menu/:canteenId
func (ctl *CanteenController) Menu(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("canteenId"))

	canteen, err := ctl.Svc.Get(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			resp.NotFound(c, "canteen not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"canteen": canteen})
}

type addCanteenRequest struct {
	CanteenName string                `form:"canteenName" json:"canteenName" binding:"required"`
	MenuItems   []services.MenuItemIn `json:"menuItems"`
}

// POST /add-canteen
func (ctl *CanteenController) Create(c *gin.Context) {
	var req addCanteenRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	canteen, err := ctl.Svc.Create(utils.CurrentUserID(c), ctl.Cfg.University, req.CanteenName, req.MenuItems)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, "canteen name required")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"canteen": canteen})
}

// GET /edit-canteen/:id
func (ctl *CanteenController) EditView(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	canteen, err := ctl.Svc.LoadOwned(uint(id), utils.CurrentUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			// owned-by-someone-else and nonexistent look identical
			resp.NotFound(c, "canteen not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"canteen": canteen})
}

type editCanteenRequest struct {
	NewItems []services.MenuItemIn `json:"newItems"`
}

// POST /edit-canteen/:id
func (ctl *CanteenController) AppendItems(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))

	var req editCanteenRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ctl.Svc.AppendItems(uint(id), utils.CurrentUserID(c), req.NewItems); err != nil {
		if errors.Is(err, services.ErrForbidden) {
			resp.Forbidden(c, "you cannot edit this canteen")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

type deleteItemRequest struct {
	CanteenID string `form:"canteenId" json:"canteenId" binding:"required"`
	ItemID    string `form:"itemId" json:"itemId" binding:"required"`
}

// POST /delete-item
func (ctl *CanteenController) DeleteItem(c *gin.Context) {
	var req deleteItemRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	canteenID, _ := strconv.Atoi(req.CanteenID)
	itemID, _ := strconv.Atoi(req.ItemID)

	if err := ctl.Svc.RemoveItem(uint(canteenID), utils.CurrentUserID(c), uint(itemID)); err != nil {
		if errors.Is(err, services.ErrForbidden) {
			resp.Forbidden(c, "you do not own this canteen")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": true})
}
