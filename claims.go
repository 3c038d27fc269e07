package cognauth

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mkweon/cognauth/tokens"
)

// IdentityClaims defines a public type used by cognauth APIs.
//
// IdentityClaims instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type IdentityClaims struct {
	Subject       string
	Email         string
	EmailVerified bool
	GivenName     string

	// Username is the provider-assigned username (the cognito:username
	// claim), which differs from Email for federated identities.
	Username string
}

// decodeIdentityClaims reads the payload of the identity token without
// verifying its signature. The token was just handed over by the provider
// on an authenticated channel; verification is the resource server's job,
// this side only wants display hints.
func decodeIdentityClaims(idToken string) (*IdentityClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return nil, err
	}

	out := &IdentityClaims{
		Subject:   stringClaim(claims, "sub"),
		Email:     stringClaim(claims, "email"),
		GivenName: stringClaim(claims, "given_name"),
		Username:  stringClaim(claims, "cognito:username"),
	}

	switch v := claims["email_verified"].(type) {
	case bool:
		out.EmailVerified = v
	case string:
		out.EmailVerified = v == "true"
	}

	return out, nil
}

// profileHints derives the stored profile from the identity token, falling
// back to the login email when the token is absent or unreadable. A claim
// decode failure never blocks a session save.
func profileHints(idToken, email string) *tokens.Profile {
	profile := &tokens.Profile{
		Email:    email,
		Username: localPart(email),
	}

	claims, err := decodeIdentityClaims(idToken)
	if err != nil {
		return profile
	}

	if claims.Email != "" {
		profile.Email = claims.Email
	}
	if claims.Username != "" {
		profile.Username = claims.Username
	}

	return profile
}

func stringClaim(claims jwt.MapClaims, name string) string {
	v, _ := claims[name].(string)
	return v
}

func localPart(email string) string {
	if i := strings.IndexByte(email, '@'); i > 0 {
		return email[:i]
	}
	return email
}
