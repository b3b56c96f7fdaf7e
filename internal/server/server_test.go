package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ahmadbz/folio/internal/admin"
	"github.com/ahmadbz/folio/internal/cache"
	"github.com/ahmadbz/folio/internal/config"
	"github.com/ahmadbz/folio/internal/content"
	"github.com/ahmadbz/folio/internal/remote"
	"github.com/ahmadbz/folio/internal/site"
	"github.com/ahmadbz/folio/internal/state"
	"github.com/ahmadbz/folio/internal/theme"
)

func newTestServer(t *testing.T, st *state.State) (*Server, *cache.Store) {
	t.Helper()

	endpoint := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(endpoint.Close)

	store, err := cache.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	renderer, err := site.NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}

	client := remote.New(endpoint.URL, "tok", 2*time.Second)
	hub := NewHub()
	adm, err := admin.NewHandler(st, admin.NewSessions(time.Hour), client, store, hub.Broadcast)
	if err != nil {
		t.Fatalf("NewHandler: %v", err)
	}

	cfg := config.DefaultConfig()
	return New(cfg, st, renderer, hub, adm, client, store), store
}

func liveState() *state.State {
	doc := &content.Document{
		Profile: content.Profile{Name: "Ada Lovelace", Role: "Engineer"},
	}
	doc.Normalize()
	return state.New(doc, theme.Default())
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, liveState())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil || body["status"] != "ok" {
		t.Errorf("unexpected health body: %s", rec.Body.String())
	}
}

func TestIndexRendersPage(t *testing.T) {
	srv, _ := newTestServer(t, liveState())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Ada Lovelace") {
		t.Error("page should contain the profile name")
	}
}

func TestIndexFatalState(t *testing.T) {
	srv, _ := newTestServer(t, state.NewFatal())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "System Error") {
		t.Error("expected the terminal error page")
	}
}

func TestStaticAssets(t *testing.T) {
	srv, _ := newTestServer(t, liveState())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/style.css", nil))
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Errorf("unexpected css content type %q", ct)
	}

	rec = httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/static/app.js", nil))
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/javascript") {
		t.Errorf("unexpected js content type %q", ct)
	}
}

func TestThemeToggle(t *testing.T) {
	st := liveState()
	srv, store := newTestServer(t, st)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/theme/toggle", nil))

	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect home, got %d %s", rec.Code, rec.Header().Get("Location"))
	}

	st.View(func(_ *content.Document, thm *theme.Config) {
		if thm.Mode() != theme.ModeLight {
			t.Errorf("toggle should switch dark to light, got %s", thm.Mode())
		}
	})

	// The flip persists locally regardless of the remote outcome.
	raw, ok, err := store.Get(context.Background(), cache.KeyTheme)
	if err != nil || !ok {
		t.Fatalf("expected cached theme, ok=%v err=%v", ok, err)
	}
	var cached theme.Config
	if err := json.Unmarshal(raw, &cached); err != nil || cached.ActiveMode != theme.ModeLight {
		t.Errorf("cached theme wrong: %s err=%v", raw, err)
	}
}

func TestThemeToggleUnavailableWhenFatal(t *testing.T) {
	srv, _ := newTestServer(t, state.NewFatal())

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/theme/toggle", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected 503, got %d", rec.Code)
	}
}
