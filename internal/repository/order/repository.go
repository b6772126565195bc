package order

import (
	"context"

	"botilleria/internal/domain"
)

// CreateOrderInput is the client-side snapshot submitted at checkout.
// The backend stamps the server timestamp and status itself.
//
// No idempotency key is carried; a duplicated submission produces a
// duplicate order. Known gap, kept as-is.
type CreateOrderInput struct {
	Items     []domain.OrderItem
	TotalCLP  int64
	UserEmail string
}

type Repository interface {
	Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error)
	ListByEmail(ctx context.Context, email string) ([]domain.Order, error)
}
