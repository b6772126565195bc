package visitor

import "context"

// slot binds the shared envelope repository to one visitor id,
// satisfying session.Slot.
type slot struct {
	repo      EnvelopeRepository
	visitorID string
}

func (s *slot) Load(ctx context.Context) ([]byte, error) {
	return s.repo.Load(ctx, s.visitorID)
}

func (s *slot) Save(ctx context.Context, payload []byte) error {
	return s.repo.Save(ctx, s.visitorID, payload)
}
