// Package loader orchestrates the boot-time document loads: remote fetch,
// marker validation, cache write-through, and the fallback chain.
package loader

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/tidwall/gjson"

	"github.com/ahmadbz/folio/internal/cache"
	"github.com/ahmadbz/folio/internal/content"
	"github.com/ahmadbz/folio/internal/remote"
	"github.com/ahmadbz/folio/internal/theme"
)

// Source records where a document ultimately came from.
type Source string

const (
	SourceRemote  Source = "remote"
	SourceCache   Source = "cache"
	SourceDefault Source = "default"
)

// ErrNoContent is the single fatal outcome: the remote fetch failed and the
// cache holds no copy. The server can only show the terminal error page.
var ErrNoContent = errors.New("no content available from remote or cache")

// Loader loads the two documents at boot and on explicit refresh.
type Loader struct {
	client *remote.Client
	cache  *cache.Store
}

func New(client *remote.Client, store *cache.Store) *Loader {
	return &Loader{client: client, cache: store}
}

// Result is the outcome of a full boot load.
type Result struct {
	Content       *content.Document
	Theme         *theme.Config
	ContentSource Source
	ThemeSource   Source
}

// Load runs the boot sequence. Content loads strictly before theme; the
// theme load starts only after the content load has concluded. The returned
// error is ErrNoContent (wrapped) only — every theme failure degrades to the
// compiled-in default instead.
func (l *Loader) Load(ctx context.Context) (*Result, error) {
	doc, contentSrc, err := l.LoadContent(ctx)
	if err != nil {
		return nil, err
	}

	thm, themeSrc := l.LoadTheme(ctx)

	return &Result{
		Content:       doc,
		Theme:         thm,
		ContentSource: contentSrc,
		ThemeSource:   themeSrc,
	}, nil
}

// LoadContent fetches the content document from the remote endpoint,
// validates it by the presence of the top-level profile field, and writes it
// through to the cache. On any failure it falls back to the cached copy; if
// that is also missing the load is fatal.
func (l *Loader) LoadContent(ctx context.Context) (*content.Document, Source, error) {
	doc, err := l.fetchRemoteContent(ctx)
	if err == nil {
		return doc, SourceRemote, nil
	}
	log.Printf("remote content unavailable (%v), trying cache", err)

	raw, ok, cacheErr := l.cache.Get(ctx, cache.KeyContent)
	if cacheErr != nil {
		log.Printf("content cache read failed: %v", cacheErr)
	}
	if ok {
		var cached content.Document
		if err := json.Unmarshal(raw, &cached); err == nil {
			cached.Normalize()
			return &cached, SourceCache, nil
		}
		log.Printf("cached content is unreadable, discarding")
	}

	return nil, "", fmt.Errorf("loading content: %w", ErrNoContent)
}

func (l *Loader) fetchRemoteContent(ctx context.Context) (*content.Document, error) {
	raw, err := l.client.FetchContent(ctx)
	if err != nil {
		return nil, err
	}
	if !gjson.GetBytes(raw, "profile").Exists() {
		return nil, fmt.Errorf("response has no profile field")
	}

	var doc content.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decoding content: %w", err)
	}
	doc.Normalize()

	if stored, err := json.Marshal(&doc); err == nil {
		if err := l.cache.Put(ctx, cache.KeyContent, stored); err != nil {
			log.Printf("content cache write failed: %v", err)
		}
	}
	return &doc, nil
}

// LoadTheme fetches the theme document, validated by the presence of the
// dark variant, with cache and compiled-in default fallbacks. A missing
// theme never blocks content display, so there is no error return.
func (l *Loader) LoadTheme(ctx context.Context) (*theme.Config, Source) {
	raw, err := l.client.FetchTheme(ctx)
	if err == nil && gjson.GetBytes(raw, "dark").Exists() {
		var cfg theme.Config
		if err := json.Unmarshal(raw, &cfg); err == nil {
			if err := l.cache.Put(ctx, cache.KeyTheme, raw); err != nil {
				log.Printf("theme cache write failed: %v", err)
			}
			return &cfg, SourceRemote
		}
		log.Printf("remote theme is unreadable: %v", err)
	} else if err != nil {
		log.Printf("remote theme unavailable (%v), trying cache", err)
	} else {
		log.Printf("remote theme has no dark variant, trying cache")
	}

	if raw, ok, err := l.cache.Get(ctx, cache.KeyTheme); err == nil && ok {
		var cfg theme.Config
		if err := json.Unmarshal(raw, &cfg); err == nil {
			return &cfg, SourceCache
		}
	}

	return theme.Default(), SourceDefault
}
