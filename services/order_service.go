package services

import (
	"context"
	"strconv"
	"time"

	"github.com/Kadalibhanu05/Gitam-Campus-Eats/entity"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/repository"
	"github.com/Kadalibhanu05/Gitam-Campus-Eats/session"
)

// OrderService turns a cart snapshot into a persisted order and then resets
// the cart. The order row is written before the cart is touched: a crash in
// between leaves a non-empty cart and a recorded order, never the reverse.
type OrderService struct {
	Orders *repository.OrderRepository
	Cart   *CartService
}

func NewOrderService(orders *repository.OrderRepository, cart *CartService) *OrderService {
	return &OrderService{Orders: orders, Cart: cart}
}

type OrderItemIn struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type PlaceOrderIn struct {
	PaymentMethod string        `form:"paymentMethod" json:"paymentMethod"`
	Items         []OrderItemIn `json:"items"`
	CanteenName   string        `form:"canteenName" json:"canteenName"`
	TotalAmount   string        `form:"totalAmount" json:"totalAmount"`
	Address       string        `form:"address" json:"address"`
}

// Place validates the checkout payload, persists the order snapshot and
// clears the session cart. Items and total are taken from the payload as
// given, matching the submitted cart rather than re-deriving it.
func (s *OrderService) Place(ctx context.Context, sess *session.Session, in PlaceOrderIn) (*entity.Order, error) {
	if in.PaymentMethod == "" || in.Address == "" || len(in.Items) == 0 {
		return nil, ErrValidation
	}

	canteenName := in.CanteenName
	if canteenName == "" {
		canteenName = "Campus Canteen"
	}
	total, err := strconv.ParseFloat(in.TotalAmount, 64)
	if err != nil {
		total = 0
	}

	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, entity.OrderItem{
			Name:     it.Name,
			Price:    it.Price,
			Quantity: it.Quantity,
		})
	}

	order := &entity.Order{
		UserID:          sess.User.ID,
		CanteenName:     canteenName,
		TotalAmount:     total,
		PaymentMethod:   in.PaymentMethod,
		DeliveryAddress: in.Address,
		OrderDate:       time.Now(),
		Items:           items,
	}

	if err := s.Orders.Create(order); err != nil {
		return nil, err
	}

	// Order is durable from here on; only now is the cart reset.
	if err := s.Cart.Clear(ctx, sess); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *OrderService) ListForUser(userID uint) ([]entity.Order, error) {
	return s.Orders.FindByUser(userID)
}
