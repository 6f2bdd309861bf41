package middleware

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/csrf"
)

// CSRFHeader is where datastar actions carry the token.
const CSRFHeader = "X-CSRF-Token"

const csrfCookie = "csrf_token"

type CSRFOptions struct {
	Key    []byte
	Secure bool
	Logger *slog.Logger
}

// CSRF protects every state-changing request. Safe methods pass through and
// get a token in their context for the page to embed.
func CSRF(opts CSRFOptions) func(http.Handler) http.Handler {
	protect := csrf.Protect(opts.Key,
		csrf.Secure(opts.Secure),
		csrf.Path("/"),
		csrf.CookieName(csrfCookie),
		csrf.RequestHeader(CSRFHeader),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if opts.Logger != nil {
				reason := "unknown"
				if err := csrf.FailureReason(r); err != nil {
					reason = err.Error()
				}
				opts.Logger.Warn("http.csrf.rejected",
					"path", r.URL.Path,
					"reason", reason,
					"requestId", RequestID(r.Context()),
				)
			}
			http.Error(w, "Invalid CSRF Token", http.StatusForbidden)
		})),
	)

	return func(next http.Handler) http.Handler {
		h := protect(next)
		if opts.Secure {
			return h
		}
		// without TLS the origin checks must not assume https
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
}

// CSRFToken returns the token for the current request, or "" when the
// request did not pass through CSRF.
func CSRFToken(r *http.Request) string {
	return csrf.Token(r)
}
