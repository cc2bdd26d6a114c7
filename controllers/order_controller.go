package controllers

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Kadalibhanu05/Gitam-Campus-Eats/pkg/resp"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/services"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/utils"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

type placeOrderRequest struct {
	PaymentMethod string                 `form:"paymentMethod" json:"paymentMethod"`
	Items         []services.OrderItemIn `json:"items"`
	ItemsJSON     string                 `form:"itemsJSON" json:"itemsJSON"`
	CanteenName   string                 `form:"canteenName" json:"canteenName"`
	TotalAmount   string                 `form:"totalAmount" json:"totalAmount"`
	Address       string                 `form:"address" json:"address"`
}

// POST /place-order
func (oc *OrderController) Place(c *gin.Context) {
	var req placeOrderRequest
	if err := c.ShouldBind(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	// the checkout form posts its lines as a hidden JSON field
	if len(req.Items) == 0 && req.ItemsJSON != "" {
		if err := json.Unmarshal([]byte(req.ItemsJSON), &req.Items); err != nil {
			resp.BadRequest(c, "missing order details")
			return
		}
	}

	sess := utils.CurrentSession(c)
	order, err := oc.Svc.Place(c.Request.Context(), sess, services.PlaceOrderIn{
		PaymentMethod: req.PaymentMethod,
		Items:         req.Items,
		CanteenName:   req.CanteenName,
		TotalAmount:   req.TotalAmount,
		Address:       req.Address,
	})
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			resp.BadRequest(c, "missing order details")
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.Created(c, gin.H{"id": order.ID, "totalAmount": order.TotalAmount})
}

// GET /orders
func (oc *OrderController) ListForMe(c *gin.Context) {
	orders, err := oc.Svc.ListForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"orders": orders})
}
