package middleware

import (
	"net/http"

	cognauth "github.com/mkweon/cognauth"
)

// RequireSession is the API-route variant of Guard: instead of
// redirecting, unauthenticated requests get a 401 with a JSON body.
func RequireSession(engine *cognauth.Engine) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if engine == nil || !engine.IsAuthenticated(r.Context()) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
