package cognauth

import (
	"context"
	"log"
)

// Logout describes the logout operation and its observable behavior.
//
// Logout may return an error when input validation, dependency calls, or security checks fail.
// Logout does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// The provider-side GlobalSignOut is best effort: its failure is logged
// and audited but never blocks the local clear, and the returned error
// reflects only the clear itself.
func (e *Engine) Logout(ctx context.Context) error {
	if e == nil || e.store == nil {
		return ErrEngineNotReady
	}

	if e.transport != nil {
		set, err := e.store.Peek(ctx)
		if err == nil && set.AccessToken != "" {
			if err := e.transport.GlobalSignOut(ctx, set.AccessToken); err != nil {
				log.Print("cognauth: global sign-out failed: ", err)
				e.emitAudit(ctx, auditEventGlobalSignOut, false, "", Categorize(err), nil)
			}
		}
	}

	if err := e.store.Clear(ctx); err != nil {
		return err
	}

	e.metricInc(MetricLogout)
	e.metricInc(MetricSessionCleared)
	e.emitAudit(ctx, auditEventLogout, true, "", nil, nil)

	return nil
}
