package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Kadalibhanu05/Gitam-Campus-Eats/configs"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/pkg/resp"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/services"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/utils"
)

type CartController struct {
	Svc *services.CartService
	Cfg *configs.Config
}

func NewCartController(svc *services.CartService, cfg *configs.Config) *CartController {
	return &CartController{Svc: svc, Cfg: cfg}
}

// POST /add-to-cart
func (h *CartController) Add(c *gin.Context) {
	var req services.AddToCartIn
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	sess := utils.CurrentSession(c)
	if err := h.Svc.Add(c.Request.Context(), sess, req); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": sess.Cart})
}

// POST /update-cart-quantity
func (h *CartController) UpdateQuantity(c *gin.Context) {
	var req struct {
		Index  string `form:"index" json:"index"`
		Action string `form:"action" json:"action"`
	}
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	// a non-numeric index lands out of range and turns into a no-op
	index, err := strconv.Atoi(req.Index)
	if err != nil {
		index = -1
	}

	sess := utils.CurrentSession(c)
	if err := h.Svc.UpdateQuantity(c.Request.Context(), sess, index, req.Action); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": sess.Cart})
}

// GET /cart
func (h *CartController) View(c *gin.Context) {
	sess := utils.CurrentSession(c)
	resp.OK(c, gin.H{
		"cart":       sess.Cart,
		"total":      services.CartTotal(sess.Cart),
		"university": h.Cfg.University,
	})
}
