package domain

// UserSession describes the identity pushed by the auth backend.
type UserSession struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName,omitempty"`
	PhotoURL    string `json:"photoURL,omitempty"`
}

// SessionState is the visitor's authentication state.
//
// IsAuthenticated is true exactly when User is non-nil.
// IsAuthInitialized flips to true once the first identity check
// completes and never resets for the rest of the process lifetime.
type SessionState struct {
	IsAuthenticated   bool         `json:"isAuthenticated"`
	IsAuthInitialized bool         `json:"isAuthInitialized"`
	User              *UserSession `json:"user"`
}
