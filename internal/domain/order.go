package domain

import "time"

// OrderStatusCompleted is stamped by the order backend on every order
// it accepts.
const OrderStatusCompleted = "completado"

type OrderItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PriceCLP int64  `json:"price"`
	Quantity int    `json:"quantity"`
}

// Order is the immutable record of a completed checkout. It is owned
// by the order backend; Date is the backend's server timestamp.
type Order struct {
	ID        string      `json:"id"`
	Items     []OrderItem `json:"items"`
	TotalCLP  int64       `json:"total"`
	UserEmail string      `json:"userEmail"`
	Status    string      `json:"status"`
	Date      time.Time   `json:"date"`
}
