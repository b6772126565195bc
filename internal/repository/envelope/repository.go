package envelope

import "context"

// Repository is the durable key-value slot for persisted session
// envelopes, one per visitor. Load returns domain.ErrNotFound when no
// envelope was ever written for the visitor.
type Repository interface {
	Load(ctx context.Context, visitorID string) ([]byte, error)
	Save(ctx context.Context, visitorID string, payload []byte) error
}
