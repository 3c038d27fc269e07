package cognauth

import (
	"context"
	"errors"

	"github.com/mkweon/cognauth/cognitoidp"
	"github.com/mkweon/cognauth/tokens"
)

const challengeNewPasswordRequired = "NEW_PASSWORD_REQUIRED"

// Login describes the login operation and its observable behavior.
//
// Login may return an error when input validation, dependency calls, or security checks fail.
// Login does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Login runs the USER_PASSWORD_AUTH flow. A full token triple is a
// FlowSuccess and replaces the stored session; a provider challenge is a
// FlowChallenge and leaves the store untouched. When the account's email
// is unconfirmed the failure additionally carries a ChallengeVerifyEmail
// so the caller can move straight to the verification flow.
func (e *Engine) Login(ctx context.Context, email, password string) FlowResult {
	if e == nil || e.transport == nil || e.store == nil {
		return e.failure(ErrEngineNotReady)
	}
	if email == "" {
		return e.failure(ErrMissingEmail)
	}
	if password == "" {
		return e.failure(ErrMissingPassword)
	}

	params := map[string]string{
		"USERNAME": email,
		"PASSWORD": password,
	}
	hash, ok, err := e.secretHash(email)
	if err != nil {
		return e.failure(err)
	}
	if ok {
		params["SECRET_HASH"] = hash
	}

	out, err := e.transport.InitiateAuth(ctx, &cognitoidp.InitiateAuthInput{
		AuthFlow:       "USER_PASSWORD_AUTH",
		ClientID:       e.config.Provider.ClientID,
		AuthParameters: params,
	})
	if err != nil {
		e.metricInc(MetricLoginFailure)
		result := e.failure(err)
		e.emitAudit(ctx, auditEventLoginFailure, false, email, result.Err, nil)
		if errors.Is(result.Err, ErrUserNotConfirmed) {
			result.Challenge = &Challenge{Kind: ChallengeVerifyEmail, Email: email}
		}
		return result
	}

	if out.ChallengeName == challengeNewPasswordRequired {
		e.metricInc(MetricLoginChallenge)
		e.emitAudit(ctx, auditEventLoginChallenge, false, email, nil, func() map[string]string {
			return map[string]string{"challenge": out.ChallengeName}
		})
		return FlowResult{
			Status: FlowChallenge,
			Challenge: &Challenge{
				Kind:    ChallengeNewPassword,
				Email:   email,
				Session: out.Session,
			},
			Message: "A new password is required before signing in.",
		}
	}

	set := tokenSetFromResult(out.AuthenticationResult)
	if !set.Complete() {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, email, ErrIncompleteTokenSet, nil)
		return e.failure(ErrIncompleteTokenSet)
	}

	if err := e.saveSession(ctx, set, email); err != nil {
		e.metricInc(MetricLoginFailure)
		return e.failure(err)
	}

	e.metricInc(MetricLoginSuccess)
	e.emitAudit(ctx, auditEventLoginSuccess, true, email, nil, nil)

	return FlowResult{
		Status: FlowSuccess,
		Tokens: &set,
	}
}

func tokenSetFromResult(result *cognitoidp.AuthenticationResult) tokens.TokenSet {
	if result == nil {
		return tokens.TokenSet{}
	}
	return tokens.TokenSet{
		AccessToken:  result.AccessToken,
		IDToken:      result.IDToken,
		RefreshToken: result.RefreshToken,
	}
}
