package cognitoidp

import (
	"errors"
	"fmt"
	"strings"
)

// ErrTransport is an exported constant or variable used by the identity provider client.
var ErrTransport = errors.New("identity provider unreachable")

// ProviderError defines a public type used by cognauth APIs.
//
// ProviderError instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ProviderError struct {
	Name       string `json:"__type"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

// Error describes the error operation and its observable behavior.
//
// Error may return an error when input validation, dependency calls, or security checks fail.
// Error does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *ProviderError) Error() string {
	if e == nil {
		return "provider error"
	}
	if e.Message == "" {
		return fmt.Sprintf("provider error %s (http %d)", e.Name, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

// ExceptionName describes the exceptionname operation and its observable behavior.
//
// ExceptionName may return an error when input validation, dependency calls, or security checks fail.
// ExceptionName does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// The wire __type may carry a namespace prefix ("com.amazon...#Name");
// only the trailing exception name is meaningful to callers.
func (e *ProviderError) ExceptionName() string {
	if e == nil {
		return ""
	}
	if i := strings.LastIndexByte(e.Name, '#'); i >= 0 {
		return e.Name[i+1:]
	}
	return e.Name
}

// InitiateAuthInput defines a public type used by cognauth APIs.
//
// InitiateAuthInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type InitiateAuthInput struct {
	AuthFlow       string            `json:"AuthFlow"`
	ClientID       string            `json:"ClientId"`
	AuthParameters map[string]string `json:"AuthParameters"`
}

// AuthenticationResult defines a public type used by cognauth APIs.
//
// AuthenticationResult instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuthenticationResult struct {
	AccessToken  string `json:"AccessToken"`
	IDToken      string `json:"IdToken"`
	RefreshToken string `json:"RefreshToken"`
	TokenType    string `json:"TokenType"`
	ExpiresIn    int    `json:"ExpiresIn"`
}

// InitiateAuthOutput defines a public type used by cognauth APIs.
//
// InitiateAuthOutput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type InitiateAuthOutput struct {
	AuthenticationResult *AuthenticationResult `json:"AuthenticationResult"`
	ChallengeName        string                `json:"ChallengeName"`
	ChallengeParameters  map[string]string     `json:"ChallengeParameters"`
	Session              string                `json:"Session"`
}

// AttributeType defines a public type used by cognauth APIs.
//
// AttributeType instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AttributeType struct {
	Name  string `json:"Name"`
	Value string `json:"Value"`
}

// SignUpInput defines a public type used by cognauth APIs.
//
// SignUpInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SignUpInput struct {
	ClientID       string          `json:"ClientId"`
	Username       string          `json:"Username"`
	Password       string          `json:"Password"`
	SecretHash     string          `json:"SecretHash,omitempty"`
	UserAttributes []AttributeType `json:"UserAttributes,omitempty"`
}

// CodeDeliveryDetails defines a public type used by cognauth APIs.
//
// CodeDeliveryDetails instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CodeDeliveryDetails struct {
	Destination    string `json:"Destination"`
	DeliveryMedium string `json:"DeliveryMedium"`
	AttributeName  string `json:"AttributeName"`
}

// SignUpOutput defines a public type used by cognauth APIs.
//
// SignUpOutput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SignUpOutput struct {
	UserConfirmed       bool                 `json:"UserConfirmed"`
	UserSub             string               `json:"UserSub"`
	CodeDeliveryDetails *CodeDeliveryDetails `json:"CodeDeliveryDetails"`
}

// ConfirmSignUpInput defines a public type used by cognauth APIs.
//
// ConfirmSignUpInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ConfirmSignUpInput struct {
	ClientID         string `json:"ClientId"`
	Username         string `json:"Username"`
	ConfirmationCode string `json:"ConfirmationCode"`
	SecretHash       string `json:"SecretHash,omitempty"`
}

// ResendConfirmationCodeInput defines a public type used by cognauth APIs.
//
// ResendConfirmationCodeInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ResendConfirmationCodeInput struct {
	ClientID   string `json:"ClientId"`
	Username   string `json:"Username"`
	SecretHash string `json:"SecretHash,omitempty"`
}

// ResendConfirmationCodeOutput defines a public type used by cognauth APIs.
//
// ResendConfirmationCodeOutput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ResendConfirmationCodeOutput struct {
	CodeDeliveryDetails *CodeDeliveryDetails `json:"CodeDeliveryDetails"`
}

// GlobalSignOutInput defines a public type used by cognauth APIs.
//
// GlobalSignOutInput instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type GlobalSignOutInput struct {
	AccessToken string `json:"AccessToken"`
}
