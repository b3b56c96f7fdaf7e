// Package admin serves the inline editor: login, the tabbed edit panel, the
// list mutation routes, and the explicit save actions that push the edited
// documents back to the sync endpoint.
package admin

import (
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
)

const sessionCookie = "folio_admin"

// Sessions is the in-memory session registry. Sessions do not survive a
// restart; the admin logs in again, which matches how rarely the panel is
// used.
type Sessions struct {
	mu  sync.Mutex
	ids map[string]time.Time
	ttl time.Duration
}

func NewSessions(ttl time.Duration) *Sessions {
	return &Sessions{
		ids: make(map[string]time.Time),
		ttl: ttl,
	}
}

// Start creates a session and returns its cookie.
func (s *Sessions) Start() *http.Cookie {
	id := uuid.NewString()

	s.mu.Lock()
	s.ids[id] = time.Now().Add(s.ttl)
	s.mu.Unlock()

	return &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(s.ttl.Seconds()),
	}
}

// End invalidates the session carried by the request and returns an expired
// cookie to clear it client side.
func (s *Sessions) End(r *http.Request) *http.Cookie {
	if c, err := r.Cookie(sessionCookie); err == nil {
		s.mu.Lock()
		delete(s.ids, c.Value)
		s.mu.Unlock()
	}
	return &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	}
}

// Valid reports whether the request carries a live session.
func (s *Sessions) Valid(r *http.Request) bool {
	c, err := r.Cookie(sessionCookie)
	if err != nil {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	exp, ok := s.ids[c.Value]
	if !ok {
		return false
	}
	if time.Now().After(exp) {
		delete(s.ids, c.Value)
		return false
	}
	return true
}

// Middleware redirects requests without a live session to the login page.
func (s *Sessions) Middleware(loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !s.Valid(r) {
				http.Redirect(w, r, loginPath, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
