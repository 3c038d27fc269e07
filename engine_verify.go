package cognauth

import (
	"context"

	"github.com/mkweon/cognauth/cognitoidp"
)

// ConfirmSignUp describes the confirmsignup operation and its observable behavior.
//
// ConfirmSignUp may return an error when input validation, dependency calls, or security checks fail.
// ConfirmSignUp does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// A FlowSuccess here carries no tokens; the account is confirmed and the
// caller proceeds to Login.
func (e *Engine) ConfirmSignUp(ctx context.Context, email, code string) FlowResult {
	if e == nil || e.transport == nil {
		return e.failure(ErrEngineNotReady)
	}
	if email == "" {
		return e.failure(ErrMissingEmail)
	}
	if code == "" {
		return e.failure(ErrMissingCode)
	}

	req := &cognitoidp.ConfirmSignUpInput{
		ClientID:         e.config.Provider.ClientID,
		Username:         email,
		ConfirmationCode: code,
	}
	hash, ok, err := e.secretHash(email)
	if err != nil {
		return e.failure(err)
	}
	if ok {
		req.SecretHash = hash
	}

	if err := e.transport.ConfirmSignUp(ctx, req); err != nil {
		e.metricInc(MetricConfirmFailure)
		result := e.failure(err)
		e.emitAudit(ctx, auditEventConfirmFailure, false, email, result.Err, nil)
		return result
	}

	e.metricInc(MetricConfirmSuccess)
	e.emitAudit(ctx, auditEventConfirmSuccess, true, email, nil, nil)

	return FlowResult{
		Status:  FlowSuccess,
		Message: "Your email address has been verified. You can sign in now.",
	}
}

// ResendCode describes the resendcode operation and its observable behavior.
//
// ResendCode may return an error when input validation, dependency calls, or security checks fail.
// ResendCode does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) ResendCode(ctx context.Context, email string) FlowResult {
	if e == nil || e.transport == nil {
		return e.failure(ErrEngineNotReady)
	}
	if email == "" {
		return e.failure(ErrMissingEmail)
	}

	req := &cognitoidp.ResendConfirmationCodeInput{
		ClientID: e.config.Provider.ClientID,
		Username: email,
	}
	hash, ok, err := e.secretHash(email)
	if err != nil {
		return e.failure(err)
	}
	if ok {
		req.SecretHash = hash
	}

	out, err := e.transport.ResendConfirmationCode(ctx, req)
	if err != nil {
		e.metricInc(MetricResendFailure)
		result := e.failure(err)
		e.emitAudit(ctx, auditEventResendFailure, false, email, result.Err, nil)
		return result
	}

	e.metricInc(MetricResendSuccess)
	e.emitAudit(ctx, auditEventResendSuccess, true, email, nil, func() map[string]string {
		if out.CodeDeliveryDetails == nil {
			return nil
		}
		return map[string]string{"destination": out.CodeDeliveryDetails.Destination}
	})

	return FlowResult{
		Status:  FlowSuccess,
		Message: "A new verification code has been sent.",
	}
}
