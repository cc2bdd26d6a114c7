package services

import (
	"context"
	"strconv"

	"github.com/Kadalibhanu05/Gitam-Campus-Eats/session"
)

// Cart quantity actions.
const (
	ActionIncrease = "increase"
	ActionDecrease = "decrease"
	ActionRemove   = "remove"
)

// AddLine merges or appends one line and returns the new cart. A line is
// identified by its (canteenId, name) pair: adding the same item again bumps
// the quantity and keeps the unit price from the first insert. qty below 1
// coerces to 1. The input slice is never modified.
func AddLine(cart []session.CartLine, canteenID, name string, price float64, qty int) []session.CartLine {
	if qty < 1 {
		qty = 1
	}
	out := make([]session.CartLine, len(cart))
	copy(out, cart)

	for i := range out {
		if out[i].CanteenID == canteenID && out[i].Name == name {
			out[i].Quantity += qty
			return out
		}
	}
	return append(out, session.CartLine{
		CanteenID: canteenID,
		Name:      name,
		UnitPrice: price,
		Quantity:  qty,
	})
}

// ChangeQuantity applies increase/decrease/remove at a positional index and
// returns the new cart. Decreasing to zero removes the line. An index past
// the bounds (a stale form submit) is a no-op, never an error.
func ChangeQuantity(cart []session.CartLine, index int, action string) []session.CartLine {
	out := make([]session.CartLine, len(cart))
	copy(out, cart)

	if index < 0 || index >= len(out) {
		return out
	}

	switch action {
	case ActionIncrease:
		out[index].Quantity++
	case ActionDecrease:
		out[index].Quantity--
		if out[index].Quantity <= 0 {
			out = append(out[:index], out[index+1:]...)
		}
	case ActionRemove:
		out = append(out[:index], out[index+1:]...)
	}
	return out
}

// CartTotal sums unit price times quantity over the whole cart.
func CartTotal(cart []session.CartLine) float64 {
	var total float64
	for _, line := range cart {
		total += line.UnitPrice * float64(line.Quantity)
	}
	return total
}

// CoerceQuantity turns raw form input into a usable quantity. Anything that
// is not a positive integer defaults to 1; this is a silent coercion, not an
// error path.
func CoerceQuantity(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// CoercePrice parses a decimal price, falling back to 0 when the input is
// not numeric. Cart adds never fail on malformed numbers.
func CoercePrice(raw string) float64 {
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

// CartService owns the session-scoped cart. Every method is a load, one
// pure transform, and a single save.
type CartService struct {
	Store session.Store
}

func NewCartService(store session.Store) *CartService {
	return &CartService{Store: store}
}

type AddToCartIn struct {
	CanteenID string `form:"canteenId" json:"canteenId"`
	ItemName  string `form:"itemName" json:"itemName"`
	ItemPrice string `form:"itemPrice" json:"itemPrice"`
	Quantity  string `form:"quantity" json:"quantity"`
}

func (s *CartService) Add(ctx context.Context, sess *session.Session, in AddToCartIn) error {
	sess.Cart = AddLine(sess.Cart, in.CanteenID, in.ItemName, CoercePrice(in.ItemPrice), CoerceQuantity(in.Quantity))
	return s.Store.Save(ctx, sess)
}

func (s *CartService) UpdateQuantity(ctx context.Context, sess *session.Session, index int, action string) error {
	sess.Cart = ChangeQuantity(sess.Cart, index, action)
	return s.Store.Save(ctx, sess)
}

// Clear empties the cart. Called by the order flow after the order row is
// durably persisted, never before.
func (s *CartService) Clear(ctx context.Context, sess *session.Session) error {
	sess.Cart = []session.CartLine{}
	return s.Store.Save(ctx, sess)
}
