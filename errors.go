package cognauth

import "errors"

var (
	// ErrInvalidCredentials is an exported constant or variable used by the session controller.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserNotFound is an exported constant or variable used by the session controller.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserNotConfirmed is an exported constant or variable used by the session controller.
	ErrUserNotConfirmed = errors.New("user email not confirmed")
	// ErrUserExists is an exported constant or variable used by the session controller.
	ErrUserExists = errors.New("user already exists")
	// ErrPasswordPolicy is an exported constant or variable used by the session controller.
	ErrPasswordPolicy = errors.New("password policy violation")
	// ErrPasswordMismatch is an exported constant or variable used by the session controller.
	ErrPasswordMismatch = errors.New("password confirmation mismatch")
	// ErrMissingEmail is an exported constant or variable used by the session controller.
	ErrMissingEmail = errors.New("email required")
	// ErrMissingPassword is an exported constant or variable used by the session controller.
	ErrMissingPassword = errors.New("password required")
	// ErrMissingCode is an exported constant or variable used by the session controller.
	ErrMissingCode = errors.New("verification code required")
	// ErrCodeMismatch is an exported constant or variable used by the session controller.
	ErrCodeMismatch = errors.New("verification code mismatch")
	// ErrCodeExpired is an exported constant or variable used by the session controller.
	ErrCodeExpired = errors.New("verification code expired")
	// ErrRateLimited is an exported constant or variable used by the session controller.
	ErrRateLimited = errors.New("attempt limit exceeded")
	// ErrConnectivity is an exported constant or variable used by the session controller.
	ErrConnectivity = errors.New("provider unreachable")
	// ErrAuthFailed is an exported constant or variable used by the session controller.
	ErrAuthFailed = errors.New("authentication failed")
	// ErrStateMismatch is an exported constant or variable used by the session controller.
	ErrStateMismatch = errors.New("oauth state mismatch")
	// ErrMissingAuthCode is an exported constant or variable used by the session controller.
	ErrMissingAuthCode = errors.New("authorization code missing from callback")
	// ErrExchangeFailed is an exported constant or variable used by the session controller.
	ErrExchangeFailed = errors.New("authorization code exchange failed")
	// ErrIncompleteTokenSet is an exported constant or variable used by the session controller.
	ErrIncompleteTokenSet = errors.New("provider response missing token material")
	// ErrSessionUnavailable is an exported constant or variable used by the session controller.
	ErrSessionUnavailable = errors.New("session store unavailable")
	// ErrSecretKeyEmpty is an exported constant or variable used by the session controller.
	ErrSecretKeyEmpty = errors.New("client secret empty")
	// ErrMissingClientID is an exported constant or variable used by the session controller.
	ErrMissingClientID = errors.New("client id required")
	// ErrMissingDomainPrefix is an exported constant or variable used by the session controller.
	ErrMissingDomainPrefix = errors.New("hosted domain prefix required")
	// ErrMissingRedirectOrigin is an exported constant or variable used by the session controller.
	ErrMissingRedirectOrigin = errors.New("redirect origin required")
	// ErrEngineNotReady is an exported constant or variable used by the session controller.
	ErrEngineNotReady = errors.New("engine not initialized")
)
