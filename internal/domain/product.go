package domain

// Product is a catalog entry. The catalog is read-only; products are
// never mutated after load. PriceCLP is an integer amount in Chilean
// pesos (no minor fraction).
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	PriceCLP    int64   `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Rating      float64 `json:"rating"`
	Category    string  `json:"category"`
}
