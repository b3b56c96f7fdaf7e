// Package server wires the public site, the admin editor and the reload
// socket into one HTTP server.
package server

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/ahmadbz/folio/internal/admin"
	"github.com/ahmadbz/folio/internal/cache"
	"github.com/ahmadbz/folio/internal/config"
	"github.com/ahmadbz/folio/internal/content"
	"github.com/ahmadbz/folio/internal/remote"
	"github.com/ahmadbz/folio/internal/site"
	"github.com/ahmadbz/folio/internal/state"
	"github.com/ahmadbz/folio/internal/theme"
)

type Server struct {
	cfg      *config.Config
	state    *state.State
	renderer *site.Renderer
	hub      *Hub
	client   *remote.Client
	cache    *cache.Store

	http *http.Server
}

func New(cfg *config.Config, st *state.State, renderer *site.Renderer, hub *Hub, adm *admin.Handler, client *remote.Client, store *cache.Store) *Server {
	s := &Server{
		cfg:      cfg,
		state:    st,
		renderer: renderer,
		hub:      hub,
		client:   client,
		cache:    store,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	if cfg.AllowAllCORS {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		}))
	}

	r.Get("/healthz", s.handleHealth)
	r.Get("/events", hub.HandleWS)

	// The websocket route must stay outside the request timeout.
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))

		r.Get("/", s.handleIndex)
		r.Get("/static/style.css", s.handleCSS)
		r.Get("/static/app.js", s.handleJS)
		r.Post("/theme/toggle", s.handleThemeToggle)

		admin.RegisterRoutes(r, adm)
	})

	s.http = &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}
	return s
}

// Start blocks serving requests until Shutdown is called.
func (s *Server) Start() error {
	log.Printf("serving on http://localhost%s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown drains in-flight requests and closes the reload sockets.
func (s *Server) Shutdown(ctx context.Context) error {
	s.hub.Close()
	return s.http.Shutdown(ctx)
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler { return s.http.Handler }

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if s.state.Fatal() {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusServiceUnavailable)
		if err := s.renderer.RenderError(w); err != nil {
			log.Printf("rendering error page: %v", err)
		}
		return
	}

	// Render to a buffer first so a template failure can still produce a
	// clean 500 instead of a half-written page.
	var buf bytes.Buffer
	var renderErr error
	s.state.View(func(doc *content.Document, thm *theme.Config) {
		renderErr = s.renderer.RenderPage(&buf, doc, thm)
	})
	if renderErr != nil {
		log.Printf("rendering page: %v", renderErr)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

func (s *Server) handleCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Write(site.StyleCSS())
}

func (s *Server) handleJS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
	w.Write(site.AppJS())
}

// handleThemeToggle flips the mode for everyone. The flip applies locally and
// persists to the cache before the response; the remote save happens in the
// background and its failure only logs, since local state is authoritative
// for the active mode.
func (s *Server) handleThemeToggle(w http.ResponseWriter, r *http.Request) {
	if s.state.Fatal() {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
		return
	}

	s.state.Update(func(_ *content.Document, thm *theme.Config) {
		thm.Toggle()
	})

	raw, err := s.state.ThemeJSON()
	if err != nil {
		log.Printf("encoding theme: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if err := s.cache.Put(r.Context(), cache.KeyTheme, raw); err != nil {
		log.Printf("theme cache write failed: %v", err)
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := s.client.SaveTheme(ctx, raw); err != nil {
			log.Printf("background theme save failed: %v", err)
		}
	}()

	s.hub.Broadcast()
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
