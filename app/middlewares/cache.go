package middlewares

import (
	"bytes"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/lumiereglamour/store/app/utils/sessions"
)

type cachedResponse struct {
	status      int
	contentType string
	body        []byte
	expiration  int64
}

type responseRecorder struct {
	http.ResponseWriter
	status int
	body   bytes.Buffer
}

func (r *responseRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// CategoriaCache caches whole responses for category listing pages keyed by
// path+query, for requests without a session cookie only. Entries expire
// lazily after ttl.
type CategoriaCache struct {
	entries sync.Map
	ttl     time.Duration
}

func NewCategoriaCache(ttl time.Duration) *CategoriaCache {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &CategoriaCache{ttl: ttl}
}

func (c *CategoriaCache) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || !strings.HasPrefix(r.URL.Path, "/categoria/") {
			next.ServeHTTP(w, r)
			return
		}

		// Rendered pages embed per-session content (favorite flags, cart
		// badge, CSRF token), so only sessionless requests may be served
		// from or stored in the cache.
		if _, err := r.Cookie(sessions.CookieName); err == nil {
			next.ServeHTTP(w, r)
			return
		}

		key := r.URL.RequestURI()

		if val, ok := c.entries.Load(key); ok {
			entry := val.(cachedResponse)
			if time.Now().Unix() <= entry.expiration {
				if entry.contentType != "" {
					w.Header().Set("Content-Type", entry.contentType)
				}
				w.WriteHeader(entry.status)
				_, _ = w.Write(entry.body)
				return
			}
			c.entries.Delete(key)
		}

		rec := &responseRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		if rec.status == http.StatusOK {
			c.entries.Store(key, cachedResponse{
				status:      rec.status,
				contentType: rec.Header().Get("Content-Type"),
				body:        rec.body.Bytes(),
				expiration:  time.Now().Add(c.ttl).Unix(),
			})
		}
	})
}

// Invalidate drops every cached category page. Called after admin writes.
func (c *CategoriaCache) Invalidate() {
	c.entries.Range(func(key, _ interface{}) bool {
		c.entries.Delete(key)
		return true
	})
}
