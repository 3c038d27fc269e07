package cognauth

import (
	"context"

	"github.com/mkweon/cognauth/tokens"
)

// IsAuthenticated describes the isauthenticated operation and its observable behavior.
//
// IsAuthenticated may return an error when input validation, dependency calls, or security checks fail.
// IsAuthenticated does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// The predicate is deliberately lax: either an access token or an
// identity token is enough to render authenticated views, and the store
// is the single source of truth. No claims are inspected and no provider
// call is made.
func (e *Engine) IsAuthenticated(ctx context.Context) bool {
	if e == nil || e.store == nil {
		return false
	}

	set, err := e.store.Peek(ctx)
	if err != nil {
		return false
	}

	return set.AccessToken != "" || set.IDToken != ""
}

// CurrentSession describes the currentsession operation and its observable behavior.
//
// CurrentSession may return an error when input validation, dependency calls, or security checks fail.
// CurrentSession does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Unlike IsAuthenticated, this requires the full triple.
func (e *Engine) CurrentSession(ctx context.Context) (tokens.TokenSet, error) {
	if e == nil || e.store == nil {
		return tokens.TokenSet{}, ErrEngineNotReady
	}
	return e.store.Load(ctx)
}

// CurrentUser describes the currentuser operation and its observable behavior.
//
// CurrentUser may return an error when input validation, dependency calls, or security checks fail.
// CurrentUser does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// The claims are recomputed from the stored identity token on every call
// rather than cached, so a replaced session is never served stale.
func (e *Engine) CurrentUser(ctx context.Context) (*IdentityClaims, error) {
	if e == nil || e.store == nil {
		return nil, ErrEngineNotReady
	}

	set, err := e.store.Peek(ctx)
	if err != nil {
		return nil, err
	}
	if set.IDToken == "" {
		return nil, tokens.ErrNoSession
	}

	return decodeIdentityClaims(set.IDToken)
}

// Profile describes the profile operation and its observable behavior.
//
// Profile may return an error when input validation, dependency calls, or security checks fail.
// Profile does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Profile(ctx context.Context) (tokens.Profile, error) {
	if e == nil || e.store == nil {
		return tokens.Profile{}, ErrEngineNotReady
	}
	return e.store.LoadProfile(ctx)
}
