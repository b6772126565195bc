package domain

type CartItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	PriceCLP int64  `json:"price"`
	Image    string `json:"image"`
	Quantity int    `json:"quantity"`
}

// CartSnapshot is an immutable view of the cart at one point in time.
// Total and Count are derived from Items and never stored separately.
type CartSnapshot struct {
	Items    []CartItem `json:"items"`
	TotalCLP int64      `json:"total"`
	Count    int        `json:"count"`
}
