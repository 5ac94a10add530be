package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/lumiereglamour/store/app/helpers"
	"github.com/lumiereglamour/store/app/utils/sessions"
)

// CanonicalHostRedirect 301s GET/HEAD requests on any non-canonical host to
// https://<canonicalHost> preserving path and query. POSTs pass through so
// form and AJAX submissions are never broken by the redirect.
func CanonicalHostRedirect(canonicalHost string) func(http.Handler) http.Handler {
	canonical := strings.ToLower(strings.TrimSpace(canonicalHost))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if canonical == "" {
				next.ServeHTTP(w, r)
				return
			}

			host := strings.ToLower(strings.Split(r.Host, ":")[0])
			if host != "" && host != canonical && (r.Method == http.MethodGet || r.Method == http.MethodHead) {
				target := "https://" + canonical + r.URL.RequestURI()
				http.Redirect(w, r, target, http.StatusMovedPermanently)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// CartCountMiddleware exposes the session cart item count to every page via
// the request context.
func CartCountMiddleware(store sessions.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			count := 0
			for _, item := range store.Cart(r) {
				count += item.Cantidad
			}

			ctx := context.WithValue(r.Context(), helpers.CartCountKey, count)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// AdminBasicAuth guards the admin API with HTTP basic auth against a single
// configured user and bcrypt password hash.
func AdminBasicAuth(user, passwordHash string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqUser, reqPassword, ok := r.BasicAuth()
			if !ok || user == "" || passwordHash == "" ||
				reqUser != user || !helpers.PasswordCompare(passwordHash, []byte(reqPassword)) {
				w.Header().Set("WWW-Authenticate", `Basic realm="admin"`)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
