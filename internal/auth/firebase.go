package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"botilleria/internal/domain"
)

// ErrInvalidToken indicates the ID token could not be verified.
var ErrInvalidToken = errors.New("invalid token")

// FirebaseBackend verifies Firebase ID tokens issued by the hosted
// Google sign-in flow.
type FirebaseBackend struct {
	client    *fbauth.Client
	signInURL string
}

// NewFirebase initializes the Firebase app for the given project. When
// credentialsFile is empty, application default credentials are used.
func NewFirebase(ctx context.Context, projectID, credentialsFile, signInURL string) (*FirebaseBackend, error) {
	if strings.TrimSpace(projectID) == "" {
		return nil, fmt.Errorf("firebase project id is required")
	}
	cfg := &firebase.Config{ProjectID: projectID}

	var (
		app *firebase.App
		err error
	)
	if credentialsFile != "" {
		app, err = firebase.NewApp(ctx, cfg, option.WithCredentialsFile(credentialsFile))
	} else {
		app, err = firebase.NewApp(ctx, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("init firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("init firebase auth: %w", err)
	}

	return &FirebaseBackend{client: client, signInURL: signInURL}, nil
}

func (b *FirebaseBackend) SignInURL() string {
	return b.signInURL
}

func (b *FirebaseBackend) VerifyIDToken(ctx context.Context, idToken string) (*domain.UserSession, error) {
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return nil, ErrInvalidToken
	}
	token, err := b.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return userFromClaims(token.Claims), nil
}

func userFromClaims(claims map[string]interface{}) *domain.UserSession {
	user := &domain.UserSession{}
	if v, ok := claims["email"].(string); ok {
		user.Email = strings.TrimSpace(v)
	}
	if v, ok := claims["name"].(string); ok {
		user.DisplayName = strings.TrimSpace(v)
	}
	if v, ok := claims["picture"].(string); ok {
		user.PhotoURL = strings.TrimSpace(v)
	}
	return user
}
