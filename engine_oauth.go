package cognauth

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/mkweon/cognauth/internal"
	"github.com/mkweon/cognauth/tokens"
)

// BeginFederatedLogin describes the beginfederatedlogin operation and its observable behavior.
//
// BeginFederatedLogin may return an error when input validation, dependency calls, or security checks fail.
// BeginFederatedLogin does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// It stores a fresh single-use state nonce and returns the hosted-UI
// authorize URL the caller must redirect the user to. An empty
// identityProvider falls back to the configured default.
func (e *Engine) BeginFederatedLogin(ctx context.Context, identityProvider string) (string, error) {
	if e == nil || e.store == nil {
		return "", ErrEngineNotReady
	}
	if e.config.Provider.DomainPrefix == "" && e.config.OAuth.HostedBaseOverride == "" {
		return "", ErrMissingDomainPrefix
	}
	if e.config.Provider.RedirectOrigin == "" {
		return "", ErrMissingRedirectOrigin
	}
	if identityProvider == "" {
		identityProvider = e.config.OAuth.IdentityProvider
	}

	state, err := internal.NewStateNonce()
	if err != nil {
		return "", fmt.Errorf("generate oauth state: %w", err)
	}
	if err := e.store.PutState(ctx, state); err != nil {
		return "", err
	}

	e.metricInc(MetricOAuthBegin)
	e.emitAudit(ctx, auditEventOAuthBegin, true, "", nil, func() map[string]string {
		return map[string]string{"identity_provider": identityProvider}
	})

	cfg := e.oauthConfig()
	return cfg.AuthCodeURL(state, oauth2.SetAuthURLParam("identity_provider", identityProvider)), nil
}

// CompleteFederatedLogin describes the completefederatedlogin operation and its observable behavior.
//
// CompleteFederatedLogin may return an error when input validation, dependency calls, or security checks fail.
// CompleteFederatedLogin does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// rawQuery is the query string of the callback request. The stored state
// is consumed exactly once whatever the outcome; the token endpoint is
// never contacted unless the callback state matches it. Exchange failures
// surface the provider's raw status and body in the failure message.
func (e *Engine) CompleteFederatedLogin(ctx context.Context, rawQuery string) FlowResult {
	if e == nil || e.store == nil {
		return e.failure(ErrEngineNotReady)
	}

	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return e.failure(ErrMissingAuthCode)
	}

	saved, err := e.store.TakeState(ctx)
	if err != nil || saved == "" {
		e.metricInc(MetricOAuthStateMismatch)
		e.emitAudit(ctx, auditEventOAuthFailure, false, "", ErrStateMismatch, nil)
		return e.failure(ErrStateMismatch)
	}
	if state := values.Get("state"); state == "" || state != saved {
		e.metricInc(MetricOAuthStateMismatch)
		e.emitAudit(ctx, auditEventOAuthFailure, false, "", ErrStateMismatch, nil)
		return e.failure(ErrStateMismatch)
	}

	if errName := values.Get("error"); errName != "" {
		e.metricInc(MetricOAuthExchangeFailure)
		e.emitAudit(ctx, auditEventOAuthFailure, false, "", ErrExchangeFailed, func() map[string]string {
			return map[string]string{"error": errName}
		})
		result := e.failure(ErrExchangeFailed)
		if desc := values.Get("error_description"); desc != "" {
			result.Message = fmt.Sprintf("Sign-in with the external provider failed: %s.", desc)
		}
		return result
	}

	code := values.Get("code")
	if code == "" {
		e.emitAudit(ctx, auditEventOAuthFailure, false, "", ErrMissingAuthCode, nil)
		return e.failure(ErrMissingAuthCode)
	}

	if e.oauthHTTP != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, e.oauthHTTP)
	}

	cfg := e.oauthConfig()
	start := time.Now()
	tok, err := cfg.Exchange(ctx, code)
	e.metricObserve(MetricExchangeLatency, time.Since(start))
	if err != nil {
		e.metricInc(MetricOAuthExchangeFailure)

		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			e.emitAudit(ctx, auditEventOAuthFailure, false, "", ErrExchangeFailed, func() map[string]string {
				return map[string]string{"status": retrieveErr.Response.Status}
			})
			result := e.failure(ErrExchangeFailed)
			result.Message = fmt.Sprintf(
				"Sign-in with the external provider failed (%s): %s.",
				retrieveErr.Response.Status,
				strings.TrimSpace(string(retrieveErr.Body)),
			)
			return result
		}

		e.emitAudit(ctx, auditEventOAuthFailure, false, "", ErrConnectivity, nil)
		return e.failure(ErrConnectivity)
	}

	idToken, _ := tok.Extra("id_token").(string)
	set := tokens.TokenSet{
		AccessToken:  tok.AccessToken,
		IDToken:      idToken,
		RefreshToken: tok.RefreshToken,
	}
	if !set.Complete() {
		e.metricInc(MetricOAuthExchangeFailure)
		e.emitAudit(ctx, auditEventOAuthFailure, false, "", ErrIncompleteTokenSet, nil)
		return e.failure(ErrIncompleteTokenSet)
	}

	var email string
	if claims, err := decodeIdentityClaims(idToken); err == nil {
		email = claims.Email
	}

	if err := e.saveSession(ctx, set, email); err != nil {
		return e.failure(err)
	}

	e.metricInc(MetricOAuthSuccess)
	e.emitAudit(ctx, auditEventOAuthSuccess, true, email, nil, nil)

	return FlowResult{
		Status: FlowSuccess,
		Tokens: &set,
	}
}

func (e *Engine) oauthConfig() oauth2.Config {
	base := e.config.hostedBase()

	// The token endpoint expects Basic auth when the app client has a
	// secret and client_id in the form body when it does not.
	style := oauth2.AuthStyleInParams
	if e.config.Provider.ClientSecret != "" {
		style = oauth2.AuthStyleInHeader
	}

	return oauth2.Config{
		ClientID:     e.config.Provider.ClientID,
		ClientSecret: e.config.Provider.ClientSecret,
		RedirectURL:  e.config.redirectURI(),
		Scopes:       append([]string(nil), e.config.OAuth.Scopes...),
		Endpoint: oauth2.Endpoint{
			AuthURL:   base + "/oauth2/authorize",
			TokenURL:  base + "/oauth2/token",
			AuthStyle: style,
		},
	}
}
