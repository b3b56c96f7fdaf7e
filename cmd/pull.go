package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ahmadbz/folio/internal/cache"
	"github.com/ahmadbz/folio/internal/config"
	"github.com/ahmadbz/folio/internal/loader"
	"github.com/ahmadbz/folio/internal/remote"
)

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Refresh the local cache from the remote endpoint",
	Long:  `Fetches the content and theme documents and stores them in the local cache, so the server can start even when the endpoint is unreachable.`,
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

		res, err := loader.New(client, store).Load(cmd.Context())
		if err != nil {
			return fmt.Errorf("pulling documents: %w", err)
		}
		if res.ContentSource != loader.SourceRemote {
			return fmt.Errorf("remote endpoint unreachable; cache left as is")
		}

		fmt.Printf("content: %s\n", res.ContentSource)
		fmt.Printf("theme:   %s\n", res.ThemeSource)
		fmt.Printf("cache:   %s\n", cfg.CachePath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pullCmd)
}
