package cognauth

import (
	"errors"
	"strings"

	"github.com/mkweon/cognauth/cognitoidp"
	"github.com/mkweon/cognauth/tokens"
)

// Categorize describes the categorize operation and its observable behavior.
//
// Categorize may return an error when input validation, dependency calls, or security checks fail.
// Categorize does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Every error collapses onto one of the package sentinels so callers can
// errors.Is against FlowResult.Err. Unknown provider exceptions and any
// error this package has no name for map to ErrAuthFailed.
func Categorize(err error) error {
	if err == nil {
		return nil
	}

	var pe *cognitoidp.ProviderError
	if errors.As(err, &pe) {
		switch pe.ExceptionName() {
		case "NotAuthorizedException":
			return ErrInvalidCredentials
		case "UserNotFoundException":
			return ErrUserNotFound
		case "UserNotConfirmedException":
			return ErrUserNotConfirmed
		case "UsernameExistsException":
			return ErrUserExists
		case "InvalidPasswordException":
			return ErrPasswordPolicy
		case "CodeMismatchException":
			return ErrCodeMismatch
		case "ExpiredCodeException":
			return ErrCodeExpired
		case "LimitExceededException", "TooManyRequestsException":
			return ErrRateLimited
		case "NetworkError":
			return ErrConnectivity
		}
		if containsNetwork(pe.Message) {
			return ErrConnectivity
		}
		return ErrAuthFailed
	}

	switch {
	case errors.Is(err, cognitoidp.ErrTransport):
		return ErrConnectivity
	case errors.Is(err, tokens.ErrRedisUnavailable):
		return ErrSessionUnavailable
	case isCategory(err):
		return err
	case containsNetwork(err.Error()):
		return ErrConnectivity
	}

	return ErrAuthFailed
}

// Translate describes the translate operation and its observable behavior.
//
// Translate may return an error when input validation, dependency calls, or security checks fail.
// Translate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// Translate never fails and never returns an empty string; the result is
// safe to render directly.
func Translate(err error) string {
	return translateCategory(Categorize(err))
}

func translateCategory(category error) string {
	switch {
	case category == nil:
		return ""
	case errors.Is(category, ErrInvalidCredentials):
		return "Incorrect email or password."
	case errors.Is(category, ErrUserNotFound):
		return "No account exists with that email address."
	case errors.Is(category, ErrUserNotConfirmed):
		return "Email verification is not complete. Check your inbox for the verification code."
	case errors.Is(category, ErrUserExists):
		return "An account with this email address already exists."
	case errors.Is(category, ErrPasswordPolicy):
		return "Password must be at least 8 characters and include an uppercase letter, a lowercase letter, a digit, and one of @$!%*?&."
	case errors.Is(category, ErrPasswordMismatch):
		return "Passwords do not match."
	case errors.Is(category, ErrMissingEmail):
		return "Enter your email address."
	case errors.Is(category, ErrMissingPassword):
		return "Enter your password."
	case errors.Is(category, ErrMissingCode):
		return "Enter the verification code."
	case errors.Is(category, ErrCodeMismatch):
		return "The verification code is incorrect. Check it and try again."
	case errors.Is(category, ErrCodeExpired):
		return "The verification code has expired. Request a new one."
	case errors.Is(category, ErrRateLimited):
		return "Too many attempts. Wait a moment and try again."
	case errors.Is(category, ErrConnectivity):
		return "A network error occurred. Check your connection and try again."
	case errors.Is(category, ErrStateMismatch):
		return "The sign-in attempt could not be verified. Start the sign-in again."
	case errors.Is(category, ErrMissingAuthCode):
		return "The sign-in response was incomplete. Start the sign-in again."
	case errors.Is(category, ErrExchangeFailed):
		return "Sign-in with the external provider failed. Try again."
	case errors.Is(category, ErrIncompleteTokenSet):
		return "The sign-in response was incomplete. Try again."
	case errors.Is(category, ErrSessionUnavailable):
		return "Your session could not be saved. Try again."
	}

	return "Authentication failed. Please try again."
}

// isCategory reports whether err already is one of the sentinels the
// engine attaches to flow results.
func isCategory(err error) bool {
	for _, sentinel := range []error{
		ErrInvalidCredentials, ErrUserNotFound, ErrUserNotConfirmed,
		ErrUserExists, ErrPasswordPolicy, ErrPasswordMismatch,
		ErrMissingEmail, ErrMissingPassword, ErrMissingCode,
		ErrCodeMismatch, ErrCodeExpired, ErrRateLimited, ErrConnectivity,
		ErrStateMismatch, ErrMissingAuthCode, ErrExchangeFailed,
		ErrIncompleteTokenSet, ErrSessionUnavailable, ErrAuthFailed,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

func containsNetwork(message string) bool {
	return strings.Contains(strings.ToLower(message), "network")
}
