package session

import (
	"encoding/json"
	"testing"

	"botilleria/internal/domain"
)

func TestDecodeEnvelopeMigratesV0ToV1(t *testing.T) {
	raw := []byte(`{"version":0,"state":{"isAuthenticated":true,"user":{"email":"a@b.com","displayName":"Ana","photoURL":"https://img/a.jpg"}}}`)
	state, err := DecodeEnvelope(raw)
	if err != nil {
		t.Fatalf("DecodeEnvelope: %v", err)
	}
	if !state.IsAuthenticated {
		t.Fatalf("isAuthenticated was dropped")
	}
	if state.IsAuthInitialized {
		t.Fatalf("migration must add isAuthInitialized=false")
	}
	if state.User == nil || state.User.Email != "a@b.com" || state.User.DisplayName != "Ana" || state.User.PhotoURL != "https://img/a.jpg" {
		t.Fatalf("user was not preserved verbatim: %+v", state.User)
	}
}

func TestDecodeEnvelopeCurrentVersionPassesThrough(t *testing.T) {
	in := domain.SessionState{
		IsAuthenticated:   true,
		IsAuthInitialized: true,
		User:              &domain.UserSession{Email: "a@b.com"},
	}
	payload, err := EncodeEnvelope(in)
	if err != nil {
		t.Fatalf("EncodeEnvelope: %v", err)
	}

	var env Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if env.Version != CurrentVersion {
		t.Fatalf("expected version %d, got %d", CurrentVersion, env.Version)
	}

	out, err := DecodeEnvelope(payload)
	if err != nil {
		t.Fatalf("DecodeEnvelope: %v", err)
	}
	if out.User == nil || out.User.Email != "a@b.com" || !out.IsAuthInitialized {
		t.Fatalf("round trip lost data: %+v", out)
	}
}

func TestDecodeEnvelopeRejectsNewerVersions(t *testing.T) {
	raw := []byte(`{"version":99,"state":{}}`)
	if _, err := DecodeEnvelope(raw); err == nil {
		t.Fatalf("expected error for future version")
	}
}

func TestDecodeEnvelopeRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "{", `{"version":0,"state":"nope"}`} {
		if _, err := DecodeEnvelope([]byte(raw)); err == nil {
			t.Fatalf("expected error for %q", raw)
		}
	}
}
