package catalog

import (
	"strings"

	"botilleria/internal/domain"
)

// CategoryAll selects every category.
const CategoryAll = "todos"

// Filter returns the products matching both the category and the
// query, preserving input order. Category is an exact, case-sensitive
// match unless it is CategoryAll. A non-empty query matches
// case-insensitively as a substring of name, description or category.
// Filter is pure: it never mutates its input and keeps no state
// between calls.
func Filter(products []domain.Product, category, query string) []domain.Product {
	q := strings.ToLower(query)
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if category != CategoryAll && p.Category != category {
			continue
		}
		if q != "" && !matchesQuery(p, q) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesQuery(p domain.Product, q string) bool {
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

// Filter applies Filter to the catalog's products.
func (c *Catalog) Filter(category, query string) []domain.Product {
	return Filter(c.products, category, query)
}
