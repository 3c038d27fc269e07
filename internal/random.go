package internal

import (
	"crypto/rand"
	"encoding/base64"
)

const stateNonceSize = 32

// NewStateNonce returns a crypto-random oauth state value. base64url
// keeps it safe inside a query string without further escaping.
func NewStateNonce() (string, error) {
	var raw [stateNonceSize]byte
	if _, err := rand.Read(raw[:]); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(raw[:]), nil
}
