package cognauth

import (
	"context"

	"github.com/mkweon/cognauth/cognitoidp"
	"github.com/mkweon/cognauth/tokens"
)

// FlowStatus defines a public type used by cognauth APIs.
//
// FlowStatus instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type FlowStatus uint8

const (
	// FlowSuccess is an exported constant or variable used by the session controller.
	FlowSuccess FlowStatus = iota
	// FlowChallenge is an exported constant or variable used by the session controller.
	FlowChallenge
	// FlowFailure is an exported constant or variable used by the session controller.
	FlowFailure
)

// ChallengeKind defines a public type used by cognauth APIs.
//
// ChallengeKind instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ChallengeKind string

const (
	// ChallengeNewPassword is an exported constant or variable used by the session controller.
	ChallengeNewPassword ChallengeKind = "new_password_required"
	// ChallengeVerifyEmail is an exported constant or variable used by the session controller.
	ChallengeVerifyEmail ChallengeKind = "verify_email"
)

// Challenge defines a public type used by cognauth APIs.
//
// Challenge instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Challenge struct {
	Kind  ChallengeKind
	Email string

	// Session is the provider continuation handle for challenges that
	// resume a login (NEW_PASSWORD_REQUIRED). Empty otherwise.
	Session string
}

// FlowResult defines a public type used by cognauth APIs.
//
// A FlowResult is the only thing a flow operation hands back: FlowSuccess
// carries Tokens (nil for flows that do not mint a session, such as
// ConfirmSignUp), FlowChallenge carries Challenge, FlowFailure carries a
// sentinel in Err and a renderable Message. A failed login may also carry
// a Challenge when the failure itself names the next step (unverified
// email directing the caller to the verification flow).
type FlowResult struct {
	Status    FlowStatus
	Tokens    *tokens.TokenSet
	Challenge *Challenge
	Err       error
	Message   string
}

// Failed describes the failed operation and its observable behavior.
//
// Failed may return an error when input validation, dependency calls, or security checks fail.
// Failed does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (r FlowResult) Failed() bool {
	return r.Status == FlowFailure
}

// RegisterInput defines a public type used by cognauth APIs.
//
// RegisterInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
}

// Transport defines a public type used by cognauth APIs.
//
// Transport is the provider boundary the engine calls through. The
// production implementation is [cognitoidp.Client]; tests substitute
// in-memory fakes.
type Transport interface {
	InitiateAuth(ctx context.Context, in *cognitoidp.InitiateAuthInput) (*cognitoidp.InitiateAuthOutput, error)
	SignUp(ctx context.Context, in *cognitoidp.SignUpInput) (*cognitoidp.SignUpOutput, error)
	ConfirmSignUp(ctx context.Context, in *cognitoidp.ConfirmSignUpInput) error
	ResendConfirmationCode(ctx context.Context, in *cognitoidp.ResendConfirmationCodeInput) (*cognitoidp.ResendConfirmationCodeOutput, error)
	GlobalSignOut(ctx context.Context, accessToken string) error
}
