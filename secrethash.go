package cognauth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// ComputeSecretHash describes the computesecrethash operation and its observable behavior.
//
// ComputeSecretHash may return an error when input validation, dependency calls, or security checks fail.
// ComputeSecretHash does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// The value is HMAC-SHA256 keyed by the client secret over the
// concatenation username+clientID, encoded with standard Base64. The
// provider recomputes the same value server-side, so any drift in input
// order or encoding is rejected as a signature failure.
func ComputeSecretHash(username, clientID, clientSecret string) (string, error) {
	if clientSecret == "" {
		return "", ErrSecretKeyEmpty
	}

	mac := hmac.New(sha256.New, []byte(clientSecret))
	mac.Write([]byte(username))
	mac.Write([]byte(clientID))

	return base64.StdEncoding.EncodeToString(mac.Sum(nil)), nil
}
