package order

import (
	"context"
	"encoding/json"
	"fmt"

	"botilleria/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateOrderInput) (*domain.Order, error) {
	items, err := json.Marshal(in.Items)
	if err != nil {
		return nil, fmt.Errorf("encode items: %w", err)
	}

	const q = `
INSERT INTO orders (items, total_clp, user_email, status)
VALUES ($1, $2, $3, $4)
RETURNING id::text, status, created_at
`
	order := domain.Order{
		Items:     in.Items,
		TotalCLP:  in.TotalCLP,
		UserEmail: in.UserEmail,
	}
	if err := r.pool.QueryRow(ctx, q, items, in.TotalCLP, in.UserEmail, domain.OrderStatusCompleted).Scan(
		&order.ID,
		&order.Status,
		&order.Date,
	); err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *postgresRepo) ListByEmail(ctx context.Context, email string) ([]domain.Order, error) {
	const q = `
SELECT id::text, items, total_clp, user_email, status, created_at
FROM orders
WHERE user_email = $1
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var (
			order domain.Order
			items []byte
		)
		if err := rows.Scan(&order.ID, &items, &order.TotalCLP, &order.UserEmail, &order.Status, &order.Date); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(items, &order.Items); err != nil {
			return nil, fmt.Errorf("decode items for order %s: %w", order.ID, err)
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
