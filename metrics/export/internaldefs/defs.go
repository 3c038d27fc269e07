package internaldefs

import (
	cognauth "github.com/mkweon/cognauth"
)

// CounterDef defines a public type used by cognauth APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   cognauth.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by cognauth APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   cognauth.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the session controller.
var CounterDefs = []CounterDef{
	{ID: cognauth.MetricLoginSuccess, Name: "cognauth_login_success_total", Help: "Successful password logins."},
	{ID: cognauth.MetricLoginFailure, Name: "cognauth_login_failure_total", Help: "Failed password logins."},
	{ID: cognauth.MetricLoginChallenge, Name: "cognauth_login_challenge_total", Help: "Logins interrupted by a provider challenge."},
	{ID: cognauth.MetricSignUpSuccess, Name: "cognauth_signup_success_total", Help: "Accepted registrations."},
	{ID: cognauth.MetricSignUpRejected, Name: "cognauth_signup_rejected_total", Help: "Registrations rejected by local validation."},
	{ID: cognauth.MetricSignUpFailure, Name: "cognauth_signup_failure_total", Help: "Registrations rejected by the provider."},
	{ID: cognauth.MetricConfirmSuccess, Name: "cognauth_confirm_success_total", Help: "Successful email confirmations."},
	{ID: cognauth.MetricConfirmFailure, Name: "cognauth_confirm_failure_total", Help: "Failed email confirmations."},
	{ID: cognauth.MetricResendSuccess, Name: "cognauth_resend_success_total", Help: "Verification codes resent."},
	{ID: cognauth.MetricResendFailure, Name: "cognauth_resend_failure_total", Help: "Failed verification code resends."},
	{ID: cognauth.MetricOAuthBegin, Name: "cognauth_oauth_begin_total", Help: "Federated sign-ins started."},
	{ID: cognauth.MetricOAuthSuccess, Name: "cognauth_oauth_success_total", Help: "Federated sign-ins completed."},
	{ID: cognauth.MetricOAuthStateMismatch, Name: "cognauth_oauth_state_mismatch_total", Help: "Callback state values that did not match the stored nonce."},
	{ID: cognauth.MetricOAuthExchangeFailure, Name: "cognauth_oauth_exchange_failure_total", Help: "Failed authorization code exchanges."},
	{ID: cognauth.MetricLogout, Name: "cognauth_logout_total", Help: "Logout operations."},
	{ID: cognauth.MetricSessionSaved, Name: "cognauth_session_saved_total", Help: "Sessions written to the token store."},
	{ID: cognauth.MetricSessionCleared, Name: "cognauth_session_cleared_total", Help: "Sessions cleared from the token store."},
}

// HistogramDefs is an exported constant or variable used by the session controller.
var HistogramDefs = []HistogramDef{
	{ID: cognauth.MetricExchangeLatency, Name: "cognauth_exchange_latency_seconds", Help: "Authorization code exchange latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the session controller.
var HistogramBounds = []string{
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"1",
	"2.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the session controller.
var HistogramBoundSuffix = []string{
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"1",
	"2_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets may return an error when input validation, dependency calls, or security checks fail.
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets may return an error when input validation, dependency calls, or security checks fail.
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
