package checkout

import (
	"context"
	"fmt"
	"log"
	"sync/atomic"

	"botilleria/internal/cart"
	"botilleria/internal/domain"
	orderrepo "botilleria/internal/repository/order"
	"botilleria/internal/session"
)

// SuccessMessage is shown on the confirmation view after an order is
// accepted.
const SuccessMessage = "¡Gracias por tu compra! Tu pedido ha sido procesado exitosamente."

// OrderBackend is the remote system of record. An order exists there
// only after Create returns successfully.
type OrderBackend interface {
	Create(ctx context.Context, in orderrepo.CreateOrderInput) (*domain.Order, error)
}

// Result carries the outcome of a successful submission.
type Result struct {
	OrderID string `json:"orderId"`
	Message string `json:"message"`
}

// Workflow submits one cart to the order backend. At most one
// submission is in flight per cart; the items, total and user email
// are snapshotted at call time so later cart mutations cannot leak
// into a pending order. On failure nothing changes locally and the
// visitor may retry.
type Workflow struct {
	cart     *cart.Store
	session  *session.Store
	orders   OrderBackend
	logger   *log.Logger
	inFlight atomic.Bool
}

func New(cartStore *cart.Store, sessionStore *session.Store, orders OrderBackend, logger *log.Logger) *Workflow {
	return &Workflow{
		cart:    cartStore,
		session: sessionStore,
		orders:  orders,
		logger:  logger,
	}
}

// Submit runs the checkout. It returns domain.ErrNotAuthenticated
// before touching the backend when no user is signed in,
// domain.ErrEmptyCart for an empty cart and domain.ErrCheckoutInFlight
// while a previous submission is pending.
func (w *Workflow) Submit(ctx context.Context) (*Result, error) {
	state := w.session.State()
	if !state.IsAuthenticated || state.User == nil {
		return nil, domain.ErrNotAuthenticated
	}

	snap := w.cart.Snapshot()
	if len(snap.Items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	if !w.inFlight.CompareAndSwap(false, true) {
		return nil, domain.ErrCheckoutInFlight
	}
	defer w.inFlight.Store(false)

	items := make([]domain.OrderItem, 0, len(snap.Items))
	for _, it := range snap.Items {
		items = append(items, domain.OrderItem{
			ID:       it.ID,
			Name:     it.Name,
			PriceCLP: it.PriceCLP,
			Quantity: it.Quantity,
		})
	}

	order, err := w.orders.Create(ctx, orderrepo.CreateOrderInput{
		Items:     items,
		TotalCLP:  snap.TotalCLP,
		UserEmail: state.User.Email,
	})
	if err != nil {
		w.logger.Printf("create order for %s: %v", state.User.Email, err)
		return nil, fmt.Errorf("create order: %w", err)
	}

	w.cart.Clear()
	return &Result{OrderID: order.ID, Message: SuccessMessage}, nil
}
