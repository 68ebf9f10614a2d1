// Copyright (c) 2026 E10-Naganiom.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package guard

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/E10-Naganiom/ofraud-dashboard-web/session"
)

// Decision is the guard's verdict for one request against one session
// snapshot.
type Decision int

const (
	// Resolving: the session restore has not finished. Nothing protected
	// may be served; the client gets a neutral retry answer.
	Resolving Decision = iota
	// Denied: resolved and unauthenticated. One redirect to the login
	// entry point, carrying the requested path.
	Denied
	// Granted: resolved and authenticated.
	Granted
)

// FallbackPath is where login lands when returnTo is absent or unsafe.
const FallbackPath = "/dashboard"

// LoginPath is the console's login entry point.
const LoginPath = "/login"

// Decide maps a session snapshot onto a guard decision.
func Decide(s session.Session) Decision {
	switch {
	case s.IsLoading:
		return Resolving
	case !s.IsAuthenticated():
		return Denied
	default:
		return Granted
	}
}

// LoginRedirectURL builds the login URL carrying the requested path as a
// percent-encoded returnTo parameter.
func LoginRedirectURL(requestedPath string) string {
	return LoginPath + "?returnTo=" + url.QueryEscape(requestedPath)
}

// SafeReturnTo validates a returnTo value received back from the login
// flow. Anything absent, not rooted at "/", or protocol-relative ("//")
// falls back to FallbackPath so the console can never redirect off-site.
func SafeReturnTo(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") {
		return FallbackPath
	}
	return raw
}

// Protect wraps a handler so protected content is never written to an
// unauthenticated or not-yet-resolved viewer. This is the whole point of
// the guard: no protected bytes may leak in the Resolving or Denied
// states.
func Protect(store *session.Store, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch Decide(store.Snapshot()) {
		case Resolving:
			w.Header().Set("Retry-After", "1")
			http.Error(w, "session restore in progress", http.StatusServiceUnavailable)
		case Denied:
			http.Redirect(w, r, LoginRedirectURL(r.URL.Path), http.StatusSeeOther)
		default:
			next(w, r)
		}
	}
}
