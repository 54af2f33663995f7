// Package checkout hands a cart snapshot to the order store. It never clears the cart;
// callers do that once submission has succeeded.
package checkout

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/e-ogugua/emmdraEmpireAndLifestyle-sub001/cart"
	"github.com/e-ogugua/emmdraEmpireAndLifestyle-sub001/logic"
)

// Customer is the contact block of the storefront order form.
type Customer struct {
	Name    string
	Email   string
	Phone   string
	Address string
	Notes   string
}

type Order struct {
	ID        string
	Customer  Customer
	Items     []logic.CartItem
	Total     decimal.Decimal
	ItemCount int
	CreatedAt time.Time
}

type Submitter interface {
	Submit(ctx context.Context, order Order) error
}

// NewOrder captures state for submission. An empty cart or a missing name or email is
// rejected with INVALID_ARGUMENT.
func NewOrder(state logic.CartState, customer Customer) (Order, error) {
	if state.IsEmpty() {
		return Order{}, logic.NewInvalidArgument(logic.ErrMsgCartEmpty)
	}
	customer.Name = strings.TrimSpace(customer.Name)
	customer.Email = strings.TrimSpace(customer.Email)
	if customer.Name == "" {
		return Order{}, logic.NewInvalidArgument(logic.ErrMsgCustomerRequired)
	}
	if customer.Email == "" {
		return Order{}, logic.NewInvalidArgument(logic.ErrMsgEmailRequired)
	}

	snapshot := state.Clone()
	return Order{
		ID:        uuid.NewString(),
		Customer:  customer,
		Items:     snapshot.Items,
		Total:     snapshot.Total,
		ItemCount: snapshot.ItemCount,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Checkout submits the current contents of c. The cart is left untouched.
func Checkout(ctx context.Context, c *cart.Cart, customer Customer, submitter Submitter) (Order, error) {
	order, err := NewOrder(c.State(), customer)
	if err != nil {
		return Order{}, err
	}
	if err := submitter.Submit(ctx, order); err != nil {
		return Order{}, err
	}
	return order, nil
}

// LogSubmitter records orders in the log only.
type LogSubmitter struct {
	Logger *zap.Logger
}

func (s LogSubmitter) Submit(_ context.Context, order Order) error {
	logger := s.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	logger.Info("order submitted",
		zap.String("order_id", order.ID),
		zap.String("customer", order.Customer.Name),
		zap.Int("item_count", order.ItemCount),
		zap.String("total", order.Total.StringFixed(2)))
	return nil
}
