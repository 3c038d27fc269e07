package cognauth

import (
	"context"
	"net/http"
	"time"

	"github.com/mkweon/cognauth/tokens"
)

// Engine defines a public type used by cognauth APIs.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config    Config
	transport Transport
	store     tokens.Store
	audit     *auditDispatcher
	metrics   *Metrics

	// oauthHTTP is the client used for the hosted-UI token exchange. It
	// is separate from the transport's client so tests can point the
	// exchange at a local server.
	oauthHTTP *http.Client
}

// Close describes the close operation and its observable behavior.
//
// Close may return an error when input validation, dependency calls, or security checks fail.
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped may return an error when input validation, dependency calls, or security checks fail.
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot may return an error when input validation, dependency calls, or security checks fail.
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) metricObserve(id MetricID, d time.Duration) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Observe(id, d)
}

func (e *Engine) emitAudit(
	ctx context.Context,
	eventType string,
	success bool,
	email string,
	err error,
	metadataBuilder func() map[string]string,
) {
	if e == nil || e.audit == nil {
		return
	}

	var metadata map[string]string
	if metadataBuilder != nil {
		metadata = metadataBuilder()
	}

	event := AuditEvent{
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		Email:     email,
		IP:        clientIPFromContext(ctx),
		UserAgent: userAgentFromContext(ctx),
		Success:   success,
		Metadata:  metadata,
	}
	if code := auditErrorCode(err); code != "" {
		event.Error = string(code)
	}

	e.audit.Emit(ctx, event)
}

// secretHash returns the request signature for username, or ok=false when
// no client secret is configured and the parameter must be omitted.
func (e *Engine) secretHash(username string) (string, bool, error) {
	if e.config.Provider.ClientSecret == "" {
		return "", false, nil
	}

	hash, err := ComputeSecretHash(username, e.config.Provider.ClientID, e.config.Provider.ClientSecret)
	if err != nil {
		return "", false, err
	}

	return hash, true, nil
}

// failure builds the FlowFailure result for a raw provider, transport, or
// local error: Err carries the sentinel category, Message the renderable
// translation.
func (e *Engine) failure(err error) FlowResult {
	category := Categorize(err)
	return FlowResult{
		Status:  FlowFailure,
		Err:     category,
		Message: translateCategory(category),
	}
}

// saveSession persists the triple with claim-derived profile hints.
func (e *Engine) saveSession(ctx context.Context, set tokens.TokenSet, email string) error {
	if err := e.store.Save(ctx, set, profileHints(set.IDToken, email)); err != nil {
		e.emitAudit(ctx, auditEventSessionSaveFail, false, email, ErrSessionUnavailable, nil)
		return err
	}
	e.metricInc(MetricSessionSaved)
	return nil
}
