package state

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/ahmadbz/folio/internal/content"
	"github.com/ahmadbz/folio/internal/theme"
)

func TestFatalState(t *testing.T) {
	if state := NewFatal(); !state.Fatal() {
		t.Error("NewFatal should report fatal")
	}

	doc := &content.Document{}
	doc.Normalize()
	if state := New(doc, theme.Default()); state.Fatal() {
		t.Error("a loaded state is not fatal")
	}
}

func TestUpdateVisibleToView(t *testing.T) {
	doc := &content.Document{}
	doc.Normalize()
	st := New(doc, theme.Default())

	st.Update(func(d *content.Document, _ *theme.Config) {
		d.Profile.Name = "Ada"
	})

	st.View(func(d *content.Document, _ *theme.Config) {
		if d.Profile.Name != "Ada" {
			t.Errorf("update not visible: %q", d.Profile.Name)
		}
	})
}

func TestContentJSON(t *testing.T) {
	doc := &content.Document{Profile: content.Profile{Name: "Ada"}}
	doc.Normalize()
	st := New(doc, theme.Default())

	raw, err := st.ContentJSON()
	if err != nil {
		t.Fatalf("ContentJSON: %v", err)
	}
	var round content.Document
	if err := json.Unmarshal(raw, &round); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if round.Profile.Name != "Ada" {
		t.Errorf("round trip lost the profile: %+v", round.Profile)
	}
}

// Concurrent edits must serialize; run with -race.
func TestConcurrentUpdates(t *testing.T) {
	doc := &content.Document{}
	doc.Normalize()
	st := New(doc, theme.Default())

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			st.Update(func(d *content.Document, _ *theme.Config) {
				d.Experience = append(d.Experience, content.Experience{})
			})
		}()
		go func() {
			defer wg.Done()
			st.View(func(d *content.Document, _ *theme.Config) {
				_ = len(d.Experience)
			})
		}()
	}
	wg.Wait()

	st.View(func(d *content.Document, _ *theme.Config) {
		if len(d.Experience) != 50 {
			t.Errorf("expected 50 appends, got %d", len(d.Experience))
		}
	})
}
