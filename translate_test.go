package cognauth

import (
	"errors"
	"fmt"
	"testing"

	"github.com/mkweon/cognauth/cognitoidp"
)

func TestCategorizeProviderExceptions(t *testing.T) {
	cases := []struct {
		name string
		want error
	}{
		{"NotAuthorizedException", ErrInvalidCredentials},
		{"UserNotFoundException", ErrUserNotFound},
		{"UserNotConfirmedException", ErrUserNotConfirmed},
		{"UsernameExistsException", ErrUserExists},
		{"InvalidPasswordException", ErrPasswordPolicy},
		{"CodeMismatchException", ErrCodeMismatch},
		{"ExpiredCodeException", ErrCodeExpired},
		{"LimitExceededException", ErrRateLimited},
		{"TooManyRequestsException", ErrRateLimited},
		{"NetworkError", ErrConnectivity},
		{"SomethingNovelException", ErrAuthFailed},
	}

	for _, tc := range cases {
		err := &cognitoidp.ProviderError{Name: tc.name, Message: "detail"}
		if got := Categorize(err); !errors.Is(got, tc.want) {
			t.Fatalf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestCategorizeNamespacedExceptionName(t *testing.T) {
	err := &cognitoidp.ProviderError{
		Name:    "com.amazonaws.cognito#UserNotFoundException",
		Message: "User does not exist.",
	}
	if got := Categorize(err); !errors.Is(got, ErrUserNotFound) {
		t.Fatalf("namespaced __type not recognized: got %v", got)
	}
}

func TestCategorizeNetworkSubstringFallback(t *testing.T) {
	err := &cognitoidp.ProviderError{
		Name:    "InternalErrorException",
		Message: "A Network failure interrupted the request",
	}
	if got := Categorize(err); !errors.Is(got, ErrConnectivity) {
		t.Fatalf("message substring fallback not applied: got %v", got)
	}
}

func TestCategorizeTransportError(t *testing.T) {
	err := fmt.Errorf("%w: dial tcp: connection refused", cognitoidp.ErrTransport)
	if got := Categorize(err); !errors.Is(got, ErrConnectivity) {
		t.Fatalf("transport error not mapped to connectivity: got %v", got)
	}
}

func TestCategorizePassesSentinelsThrough(t *testing.T) {
	for _, sentinel := range []error{ErrPasswordMismatch, ErrStateMismatch, ErrMissingEmail} {
		if got := Categorize(sentinel); !errors.Is(got, sentinel) {
			t.Fatalf("sentinel %v re-categorized to %v", sentinel, got)
		}
	}
}

func TestTranslateNeverEmpty(t *testing.T) {
	inputs := []error{
		&cognitoidp.ProviderError{Name: "NotAuthorizedException"},
		&cognitoidp.ProviderError{Name: "NeverHeardOfItException"},
		errors.New("arbitrary failure"),
		ErrStateMismatch,
		ErrPasswordPolicy,
	}

	for _, err := range inputs {
		if msg := Translate(err); msg == "" {
			t.Fatalf("Translate(%v) returned empty message", err)
		}
	}
}

func TestTranslateDistinguishesCategories(t *testing.T) {
	invalid := Translate(&cognitoidp.ProviderError{Name: "NotAuthorizedException"})
	noUser := Translate(&cognitoidp.ProviderError{Name: "UserNotFoundException"})
	fallback := Translate(errors.New("mystery"))

	if invalid == noUser {
		t.Fatal("distinct exceptions share a message")
	}
	if fallback == invalid || fallback == noUser {
		t.Fatal("catch-all message collides with a named category")
	}
}
