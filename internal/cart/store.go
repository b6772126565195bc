package cart

import (
	"sync"

	"botilleria/internal/domain"
)

// Quantity bounds for a single line. Adds beyond MaxQuantity succeed
// but leave the quantity at the cap; updates below MinQuantity floor
// at the minimum instead of removing the line.
const (
	MinQuantity = 1
	MaxQuantity = 10
)

// Store holds one visitor's cart in memory. Mutations are atomic and
// subscribers only ever observe fully-applied snapshots. The cart is
// intentionally not durable: it is lost on restart, only the auth
// session persists.
type Store struct {
	mu    sync.Mutex
	items []domain.CartItem
	subs  []func(domain.CartSnapshot)
}

func NewStore() *Store {
	return &Store{}
}

// Subscribe registers fn to be called with a snapshot after every
// mutation. Callbacks run outside the store lock.
func (s *Store) Subscribe(fn func(domain.CartSnapshot)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// AddItem inserts the product with quantity 1, or increments its
// quantity if the product is already in the cart, capped at
// MaxQuantity. Adding past the cap is not an error.
func (s *Store) AddItem(p domain.Product) {
	s.mu.Lock()
	found := false
	for i := range s.items {
		if s.items[i].ID == p.ID {
			if s.items[i].Quantity < MaxQuantity {
				s.items[i].Quantity++
			}
			found = true
			break
		}
	}
	if !found {
		s.items = append(s.items, domain.CartItem{
			ID:       p.ID,
			Name:     p.Name,
			PriceCLP: p.PriceCLP,
			Image:    p.Image,
			Quantity: 1,
		})
	}
	s.finish()
}

// RemoveItem deletes the line with the given id. Removing an absent id
// is a no-op.
func (s *Store) RemoveItem(id string) {
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.finish()
}

// UpdateQuantity sets the quantity of an existing line, clamped to
// [MinQuantity, MaxQuantity]. Values at or below zero floor at
// MinQuantity rather than removing the line. Absent ids are ignored.
func (s *Store) UpdateQuantity(id string, quantity int) {
	if quantity < MinQuantity {
		quantity = MinQuantity
	}
	if quantity > MaxQuantity {
		quantity = MaxQuantity
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].Quantity = quantity
			break
		}
	}
	s.finish()
}

// Clear empties the cart.
func (s *Store) Clear() {
	s.mu.Lock()
	s.items = nil
	s.finish()
}

// Snapshot returns a copy of the current cart with derived totals.
func (s *Store) Snapshot() domain.CartSnapshot {
	s.mu.Lock()
	snap := s.snapshotLocked()
	s.mu.Unlock()
	return snap
}

func (s *Store) snapshotLocked() domain.CartSnapshot {
	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	snap := domain.CartSnapshot{Items: items}
	for _, it := range items {
		snap.TotalCLP += it.PriceCLP * int64(it.Quantity)
		snap.Count += it.Quantity
	}
	return snap
}

// finish snapshots under the held lock, releases it and notifies
// subscribers. Callers must hold s.mu.
func (s *Store) finish() {
	snap := s.snapshotLocked()
	subs := make([]func(domain.CartSnapshot), len(s.subs))
	copy(subs, s.subs)
	s.mu.Unlock()
	for _, fn := range subs {
		fn(snap)
	}
}
