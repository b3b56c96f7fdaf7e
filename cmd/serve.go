package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ahmadbz/folio/internal/admin"
	"github.com/ahmadbz/folio/internal/cache"
	"github.com/ahmadbz/folio/internal/config"
	"github.com/ahmadbz/folio/internal/loader"
	"github.com/ahmadbz/folio/internal/remote"
	"github.com/ahmadbz/folio/internal/server"
	"github.com/ahmadbz/folio/internal/site"
	"github.com/ahmadbz/folio/internal/state"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the portfolio web server",
	Long: `Loads the content and theme documents from the remote endpoint (with
cache fallback), then serves the public site and the admin editor.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		store, err := cache.Open(cfg.CachePath)
		if err != nil {
			return fmt.Errorf("opening cache: %w", err)
		}
		defer store.Close()

		client := remote.New(cfg.RemoteURL, cfg.Token, time.Duration(cfg.RequestTimeoutSec)*time.Second)

		var st *state.State
		res, err := loader.New(client, store).Load(cmd.Context())
		switch {
		case err == nil:
			log.Printf("content loaded from %s, theme from %s", res.ContentSource, res.ThemeSource)
			st = state.New(res.Content, res.Theme)
		case errors.Is(err, loader.ErrNoContent):
			// Still serve: the error page tells the visitor what broke,
			// and a restart after the endpoint recovers fixes it.
			log.Printf("boot load failed: %v", err)
			st = state.NewFatal()
		default:
			return fmt.Errorf("loading documents: %w", err)
		}

		renderer, err := site.NewRenderer()
		if err != nil {
			return fmt.Errorf("building renderer: %w", err)
		}

		hub := server.NewHub()
		adm, err := admin.NewHandler(st, admin.NewSessions(12*time.Hour), client, store, hub.Broadcast)
		if err != nil {
			return fmt.Errorf("building admin handler: %w", err)
		}

		srv := server.New(cfg, st, renderer, hub, adm, client, store)

		errCh := make(chan error, 1)
		go func() { errCh <- srv.Start() }()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case sig := <-stop:
			log.Printf("received %s, shutting down", sig)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
