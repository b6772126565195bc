package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"botilleria/internal/domain"
)

// Catalog is the static product list, loaded once at startup and
// immutable afterwards. Insertion order is the display order.
type Catalog struct {
	products []domain.Product
	byID     map[string]domain.Product
}

// Load reads a JSON array of products and validates every entry.
func Load(r io.Reader) (*Catalog, error) {
	var products []domain.Product
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	byID := make(map[string]domain.Product, len(products))
	for i, p := range products {
		if err := validate(p); err != nil {
			return nil, fmt.Errorf("product %d: %w", i, err)
		}
		if _, ok := byID[p.ID]; ok {
			return nil, fmt.Errorf("product %d: duplicate id %q", i, p.ID)
		}
		byID[p.ID] = p
	}

	return &Catalog{products: products, byID: byID}, nil
}

// LoadFile loads a catalog from a JSON file on disk.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

func validate(p domain.Product) error {
	if strings.TrimSpace(p.ID) == "" {
		return fmt.Errorf("id required")
	}
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name required for id %q", p.ID)
	}
	if p.PriceCLP <= 0 {
		return fmt.Errorf("price must be positive for id %q", p.ID)
	}
	if strings.TrimSpace(p.Category) == "" {
		return fmt.Errorf("category required for id %q", p.ID)
	}
	return nil
}

// Len reports the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}

// Get returns the product with the given id.
func (c *Catalog) Get(id string) (domain.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

// Products returns all products in catalog order.
func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Categories returns the distinct categories in first-seen order.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool, len(c.products))
	var out []string
	for _, p := range c.products {
		if !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	return out
}
