package cognauth

import (
	"context"

	"github.com/mkweon/cognauth/cognitoidp"
)

const (
	passwordMinLength = 8
	passwordSymbols   = "@$!%*?&"
)

// Register describes the register operation and its observable behavior.
//
// Register may return an error when input validation, dependency calls, or security checks fail.
// Register does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Local checks run in order before any network call: confirmation match
// first, then the password policy. A successful sign-up does not create a
// session; the result is a ChallengeVerifyEmail directing the caller to
// the verification flow.
func (e *Engine) Register(ctx context.Context, in RegisterInput) FlowResult {
	if e == nil || e.transport == nil {
		return e.failure(ErrEngineNotReady)
	}
	if in.Email == "" {
		return e.failure(ErrMissingEmail)
	}
	if in.Password != in.ConfirmPassword {
		e.metricInc(MetricSignUpRejected)
		e.emitAudit(ctx, auditEventSignUpRejected, false, in.Email, ErrPasswordMismatch, nil)
		return e.failure(ErrPasswordMismatch)
	}
	if !passwordMeetsPolicy(in.Password) {
		e.metricInc(MetricSignUpRejected)
		e.emitAudit(ctx, auditEventSignUpRejected, false, in.Email, ErrPasswordPolicy, nil)
		return e.failure(ErrPasswordPolicy)
	}

	req := &cognitoidp.SignUpInput{
		ClientID: e.config.Provider.ClientID,
		Username: in.Email,
		Password: in.Password,
		UserAttributes: []cognitoidp.AttributeType{
			{Name: "email", Value: in.Email},
			{Name: "given_name", Value: in.Name},
		},
	}
	hash, ok, err := e.secretHash(in.Email)
	if err != nil {
		return e.failure(err)
	}
	if ok {
		req.SecretHash = hash
	}

	out, err := e.transport.SignUp(ctx, req)
	if err != nil {
		e.metricInc(MetricSignUpFailure)
		result := e.failure(err)
		e.emitAudit(ctx, auditEventSignUpFailure, false, in.Email, result.Err, nil)
		return result
	}

	e.metricInc(MetricSignUpSuccess)
	e.emitAudit(ctx, auditEventSignUpSuccess, true, in.Email, nil, func() map[string]string {
		meta := map[string]string{"user_sub": out.UserSub}
		if out.CodeDeliveryDetails != nil {
			meta["delivery"] = out.CodeDeliveryDetails.DeliveryMedium
		}
		return meta
	})

	return FlowResult{
		Status: FlowChallenge,
		Challenge: &Challenge{
			Kind:  ChallengeVerifyEmail,
			Email: in.Email,
		},
		Message: "A verification code has been sent to your email address.",
	}
}

// passwordMeetsPolicy enforces the provider's pool policy locally so a
// doomed sign-up never leaves the process: at least 8 characters with an
// uppercase letter, a lowercase letter, a digit, and one of @$!%*?&, and
// nothing outside those classes.
func passwordMeetsPolicy(password string) bool {
	if len(password) < passwordMinLength {
		return false
	}

	var hasLower, hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case isPasswordSymbol(r):
			hasSymbol = true
		default:
			return false
		}
	}

	return hasLower && hasUpper && hasDigit && hasSymbol
}

func isPasswordSymbol(r rune) bool {
	for _, s := range passwordSymbols {
		if r == s {
			return true
		}
	}
	return false
}
