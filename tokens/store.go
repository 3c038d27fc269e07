package tokens

import (
	"context"
	"errors"
)

// ErrNoSession is an exported constant or variable used by the session controller.
var ErrNoSession = errors.New("no stored session")

// ErrNoState is an exported constant or variable used by the session controller.
var ErrNoState = errors.New("no pending oauth state")

// ErrRedisUnavailable is an exported constant or variable used by the session controller.
var ErrRedisUnavailable = errors.New("redis unavailable")

// TokenSet defines a public type used by cognauth APIs.
//
// TokenSet instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type TokenSet struct {
	AccessToken  string
	IDToken      string
	RefreshToken string
}

// Complete describes the complete operation and its observable behavior.
//
// Complete may return an error when input validation, dependency calls, or security checks fail.
// Complete does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (t TokenSet) Complete() bool {
	return t.AccessToken != "" && t.IDToken != "" && t.RefreshToken != ""
}

// Empty describes the empty operation and its observable behavior.
//
// Empty may return an error when input validation, dependency calls, or security checks fail.
// Empty does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (t TokenSet) Empty() bool {
	return t.AccessToken == "" && t.IDToken == "" && t.RefreshToken == ""
}

// Profile defines a public type used by cognauth APIs.
//
// Profile instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Profile struct {
	Email    string
	Username string
}

// Store defines a public type used by cognauth APIs.
//
// Store implementations must be safe for concurrent use. A store holds at
// most one session; writing a new session replaces the previous one as a
// single unit.
type Store interface {
	// Save persists the token triple and, when non-nil, the profile
	// hints. Partial writes must not be observable.
	Save(ctx context.Context, set TokenSet, profile *Profile) error

	// Load returns the stored session only when the full triple is
	// present; anything less reports ErrNoSession.
	Load(ctx context.Context) (TokenSet, error)

	// Peek returns whatever token material is stored without the
	// completeness requirement of Load.
	Peek(ctx context.Context) (TokenSet, error)

	// LoadProfile returns the stored profile hints, zero-valued when the
	// session carries none.
	LoadProfile(ctx context.Context) (Profile, error)

	// Clear removes the session and any pending oauth state. Clearing an
	// empty store succeeds.
	Clear(ctx context.Context) error

	// PutState stores the oauth state nonce, replacing any previous one.
	PutState(ctx context.Context, state string) error

	// TakeState returns the pending state nonce and removes it in the
	// same step; a second take reports ErrNoState.
	TakeState(ctx context.Context) (string, error)
}
