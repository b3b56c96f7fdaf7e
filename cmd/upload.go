package cmd

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ahmadbz/folio/internal/config"
	"github.com/ahmadbz/folio/internal/remote"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a file to the endpoint's file store",
	Long:  `Uploads a local file through the sync endpoint and prints the URL it was stored under, ready to paste into any document or image field.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid config: %w", err)
		}

		path := args[0]
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			return fmt.Errorf("stat %s: %w", path, err)
		}

		bar := progressbar.DefaultBytes(info.Size(), "reading")
		var buf bytes.Buffer
		if _, err := io.Copy(io.MultiWriter(&buf, bar), f); err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		mimeType := mime.TypeByExtension(filepath.Ext(path))
		if mimeType == "" {
			mimeType = http.DetectContentType(buf.Bytes())
		}

		client := remote.New(cfg.RemoteURL, cfg.Token, time.Duration(cfg.RequestTimeoutSec)*time.Second)
		url, err := client.Upload(cmd.Context(), remote.UploadRequest{
			Filename: filepath.Base(path),
			MimeType: mimeType,
			Data:     base64.StdEncoding.EncodeToString(buf.Bytes()),
		})
		if err != nil {
			return fmt.Errorf("uploading %s: %w", path, err)
		}

		fmt.Println(url)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}
