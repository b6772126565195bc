package visitor

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log"
	"sync"

	"botilleria/internal/cart"
	"botilleria/internal/checkout"
	orderrepo "botilleria/internal/repository/order"
	"botilleria/internal/session"
)

// Visitor bundles the per-visitor stores: the transient cart, the
// durable auth session and the checkout workflow bound to both.
type Visitor struct {
	ID       string
	Cart     *cart.Store
	Session  *session.Store
	Checkout *checkout.Workflow
}

// Manager hands out visitors keyed by their cookie token. Stores live
// in memory for the process lifetime; the auth envelope alone is
// restored from and written to the envelope repository.
type Manager struct {
	mu        sync.Mutex
	visitors  map[string]*Visitor
	envelopes EnvelopeRepository
	orders    orderrepo.Repository
	logger    *log.Logger
}

// EnvelopeRepository is the durable slot store shared by all visitors.
type EnvelopeRepository interface {
	Load(ctx context.Context, visitorID string) ([]byte, error)
	Save(ctx context.Context, visitorID string, payload []byte) error
}

func NewManager(envelopes EnvelopeRepository, orders orderrepo.Repository, logger *log.Logger) *Manager {
	return &Manager{
		visitors:  make(map[string]*Visitor),
		envelopes: envelopes,
		orders:    orders,
		logger:    logger,
	}
}

// Get returns the visitor for the given id, creating it on first use.
// Creation restores the persisted session envelope and replays it as
// the initial identity event, so isAuthInitialized becomes true even
// for signed-out visitors.
func (m *Manager) Get(ctx context.Context, id string) *Visitor {
	m.mu.Lock()
	if v, ok := m.visitors[id]; ok {
		m.mu.Unlock()
		return v
	}
	m.mu.Unlock()

	cartStore := cart.NewStore()
	sessionStore := session.NewStore(ctx, &slot{repo: m.envelopes, visitorID: id}, m.logger)
	sessionStore.ApplyIdentity(ctx, session.IdentityEvent{User: sessionStore.State().User})

	v := &Visitor{
		ID:       id,
		Cart:     cartStore,
		Session:  sessionStore,
		Checkout: checkout.New(cartStore, sessionStore, m.orders, m.logger),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if existing, ok := m.visitors[id]; ok {
		// Lost a creation race; keep the first.
		return existing
	}
	m.visitors[id] = v
	return v
}

// NewID issues an opaque visitor token for the cookie.
func (m *Manager) NewID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
