package auth

import (
	"context"

	"botilleria/internal/domain"
)

// Backend abstracts the external identity provider. The browser runs
// the redirect flow against the provider and hands the resulting ID
// token to this service, which verifies it and routes the identity
// event into the session store.
type Backend interface {
	// SignInURL is the provider page a visitor is redirected to when
	// an action requires authentication.
	SignInURL() string
	// VerifyIDToken validates a redirect-result token and extracts
	// the identity it certifies.
	VerifyIDToken(ctx context.Context, idToken string) (*domain.UserSession, error)
}
