package middleware

import (
	"net/http"
	"net/url"

	cognauth "github.com/mkweon/cognauth"
)

// Guard returns middleware that gates routes on session presence. An
// unauthenticated request is redirected to loginPath with the originally
// requested resource in a "next" query parameter so the login page can
// return the user where they were headed.
func Guard(engine *cognauth.Engine, loginPath string) func(http.Handler) http.Handler {
	if loginPath == "" {
		loginPath = "/login"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if engine == nil || !engine.IsAuthenticated(r.Context()) {
				http.Redirect(w, r, loginURL(loginPath, r.URL), http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func loginURL(loginPath string, requested *url.URL) string {
	target := requested.Path
	if requested.RawQuery != "" {
		target += "?" + requested.RawQuery
	}
	return loginPath + "?next=" + url.QueryEscape(target)
}
