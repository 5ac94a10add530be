package sessions

import (
	"encoding/gob"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/lumiereglamour/store/app/models"
)

// CookieName is the browser session cookie. Its presence on a request marks
// the response as session-dependent.
const CookieName = "lumiere-session"

const (
	sessionKeyKey = "session_key"
	cartKey       = "carrito"
)

func init() {
	// The cart slice is gob-encoded into the cookie session.
	gob.Register([]models.CartItem{})
}

// Store is the per-browser session boundary: an opaque session key used for
// favorites, and the session-resident cart.
type Store interface {
	// SessionKey returns the session identifier, or "" when none was
	// provisioned yet.
	SessionKey(r *http.Request) string
	// EnsureSessionKey provisions and persists a session identifier when the
	// request carries none.
	EnsureSessionKey(w http.ResponseWriter, r *http.Request) (string, error)

	Cart(r *http.Request) []models.CartItem
	// SaveCart replaces the cart and explicitly saves the session. In-place
	// mutation of the slice alone never reaches the cookie, so every cart
	// change must come back through here.
	SaveCart(w http.ResponseWriter, r *http.Request, items []models.CartItem) error
	ClearCart(w http.ResponseWriter, r *http.Request) error
}

type CookieSessionStore struct {
	store *sessions.CookieStore
}

func NewCookieSessionStore(secure bool, keyPairs ...[]byte) *CookieSessionStore {
	store := sessions.NewCookieStore(keyPairs...)

	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(30 * 24 * time.Hour / time.Second),
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &CookieSessionStore{store: store}
}

func (c *CookieSessionStore) getSession(r *http.Request) *sessions.Session {
	session, err := c.store.Get(r, CookieName)
	if err != nil {
		// A stale or tampered cookie decodes into a fresh session; that is
		// good enough for an anonymous storefront.
		log.Printf("sessions: error decoding session: %v", err)
	}
	return session
}

func (c *CookieSessionStore) SessionKey(r *http.Request) string {
	session := c.getSession(r)
	if session == nil {
		return ""
	}
	key, ok := session.Values[sessionKeyKey].(string)
	if !ok {
		return ""
	}
	return key
}

func (c *CookieSessionStore) EnsureSessionKey(w http.ResponseWriter, r *http.Request) (string, error) {
	session := c.getSession(r)

	if key, ok := session.Values[sessionKeyKey].(string); ok && key != "" {
		return key, nil
	}

	key := uuid.New().String()
	session.Values[sessionKeyKey] = key
	if err := session.Save(r, w); err != nil {
		return "", err
	}
	return key, nil
}

func (c *CookieSessionStore) Cart(r *http.Request) []models.CartItem {
	session := c.getSession(r)
	if session == nil {
		return nil
	}
	items, ok := session.Values[cartKey].([]models.CartItem)
	if !ok {
		return nil
	}
	return items
}

func (c *CookieSessionStore) SaveCart(w http.ResponseWriter, r *http.Request, items []models.CartItem) error {
	session := c.getSession(r)
	session.Values[cartKey] = items
	return session.Save(r, w)
}

func (c *CookieSessionStore) ClearCart(w http.ResponseWriter, r *http.Request) error {
	session := c.getSession(r)
	delete(session.Values, cartKey)
	return session.Save(r, w)
}
