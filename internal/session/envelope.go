package session

import (
	"encoding/json"
	"fmt"

	"botilleria/internal/domain"
)

// CurrentVersion is the schema version written to durable storage.
// Code and storage share this single source of truth; stored envelopes
// older than it are migrated forward at load time.
const CurrentVersion = 1

// Envelope wraps the persisted session state with its schema version.
type Envelope struct {
	Version int             `json:"version"`
	State   json.RawMessage `json:"state"`
}

// migrations is a linear chain of pure transforms. The step keyed by
// version v takes a v-shaped state and returns a (v+1)-shaped one.
// Steps may add or transform fields but never drop fields the new
// schema still has.
var migrations = map[int]func(map[string]any) map[string]any{
	// v0 predates the initialization flag.
	0: func(state map[string]any) map[string]any {
		state["isAuthInitialized"] = false
		return state
	},
}

// DecodeEnvelope parses a stored envelope and migrates its state to
// CurrentVersion. The caller decides how to handle errors; the store
// falls back to the default state.
func DecodeEnvelope(raw []byte) (domain.SessionState, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return domain.SessionState{}, fmt.Errorf("parse envelope: %w", err)
	}
	if env.Version > CurrentVersion {
		return domain.SessionState{}, fmt.Errorf("envelope version %d is newer than %d", env.Version, CurrentVersion)
	}

	var state map[string]any
	if err := json.Unmarshal(env.State, &state); err != nil {
		return domain.SessionState{}, fmt.Errorf("parse state: %w", err)
	}
	for v := env.Version; v < CurrentVersion; v++ {
		step, ok := migrations[v]
		if !ok {
			return domain.SessionState{}, fmt.Errorf("no migration from version %d", v)
		}
		state = step(state)
	}

	migrated, err := json.Marshal(state)
	if err != nil {
		return domain.SessionState{}, fmt.Errorf("encode migrated state: %w", err)
	}
	var out domain.SessionState
	if err := json.Unmarshal(migrated, &out); err != nil {
		return domain.SessionState{}, fmt.Errorf("decode migrated state: %w", err)
	}
	return out, nil
}

// EncodeEnvelope wraps the state in a CurrentVersion envelope.
func EncodeEnvelope(state domain.SessionState) ([]byte, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, err
	}
	return json.Marshal(Envelope{Version: CurrentVersion, State: raw})
}
