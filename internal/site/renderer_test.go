package site

import (
	"bytes"
	"strings"
	"testing"

	"github.com/ahmadbz/folio/internal/content"
	"github.com/ahmadbz/folio/internal/theme"
)

func testDocument() *content.Document {
	doc := &content.Document{
		Profile: content.Profile{
			Name:      "Ada Lovelace",
			Role:      "Engineer",
			Bio:       "I build things.",
			AboutDesc: "Some **bold** prose.",
			Location:  "London",
			Email:     "ada@example.com",
		},
		Skills: content.SkillGroups{
			{Category: "languages", Entries: []content.Entry{
				{Name: "Go"},
				{Name: "Python", IconURL: "https://cdn.example.com/py.png"},
			}},
		},
		Experience: []content.Experience{
			{Role: "Dev", Company: "Acme", Date: "2020", Desc: "Worked."},
		},
		Projects: []content.Project{
			{Title: "X", Desc: "A project", TechStack: []content.Entry{{Name: "Go"}}},
		},
		Research: []content.Paper{
			{Title: "On Engines", Authors: "A. Lovelace", Status: "Under Review"},
		},
		Documents: []content.FileLink{
			{Title: "CV", Desc: "Resume", URL: "https://drive.google.com/file/d/ABC/preview"},
		},
	}
	doc.Normalize()
	return doc
}

func render(t *testing.T, doc *content.Document, thm *theme.Config) string {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	var buf bytes.Buffer
	if err := r.RenderPage(&buf, doc, thm); err != nil {
		t.Fatalf("RenderPage: %v", err)
	}
	return buf.String()
}

func TestRenderPageSections(t *testing.T) {
	html := render(t, testDocument(), theme.Default())

	for _, want := range []string{
		"Ada Lovelace",
		"Ada.",                        // nav logo: first word plus dot
		"<strong>bold</strong>",       // markdown about prose
		">X</h3>",                     // project card title
		"No education added yet.",
		"status-under-review",
		"--color-primary: #64ffda",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q", want)
		}
	}
}

func TestSkillEntriesRenderUniformly(t *testing.T) {
	html := render(t, testDocument(), theme.Default())

	// Bare string and object entries both end up as pills; only the icon
	// differs.
	if strings.Count(html, `class="skill-pill"`) != 2 {
		t.Error("expected two skill pills")
	}
	if !strings.Contains(html, "py.png") {
		t.Error("object entry should render its icon")
	}
}

func TestDocumentLinksAreNormalized(t *testing.T) {
	html := render(t, testDocument(), theme.Default())

	if !strings.Contains(html, "https://drive.google.com/file/d/ABC/view") {
		t.Error("preview link should be rewritten to the view form")
	}
	if strings.Contains(html, "/preview") {
		t.Error("raw preview URL leaked into the page")
	}
}

func TestCustomSectionNumbering(t *testing.T) {
	doc := testDocument()
	doc.UserSections = []content.UserSection{
		{Title: "Awards", Items: []content.SectionItem{{Title: "Gold"}}},
		{Title: "Talks", Items: []content.SectionItem{}},
	}

	html := render(t, doc, theme.Default())

	if !strings.Contains(html, "<span>08.</span> Awards") {
		t.Error("first custom section should be numbered 08")
	}
	if !strings.Contains(html, "<span>09.</span> Talks") {
		t.Error("second custom section should be numbered 09")
	}
}

func TestNoCustomSectionsWhenEmpty(t *testing.T) {
	html := render(t, testDocument(), theme.Default())

	if strings.Contains(html, "custom-card") {
		t.Error("empty userSections should render no custom sections")
	}
}

func TestPhotoOmittedWhenUnset(t *testing.T) {
	html := render(t, testDocument(), theme.Default())
	if strings.Contains(html, "hero-photo") {
		t.Error("hero photo should be omitted when photoUrl is empty")
	}

	doc := testDocument()
	doc.Profile.PhotoURL = "https://lh3.googleusercontent.com/d/PIC42"
	html = render(t, doc, theme.Default())
	if !strings.Contains(html, "https://drive.google.com/file/d/PIC42/view") {
		t.Error("hero photo URL should be normalized to the drive view form")
	}
}

func TestLightModeVariables(t *testing.T) {
	thm := theme.Default()
	thm.ActiveMode = theme.ModeLight

	html := render(t, testDocument(), thm)

	if !strings.Contains(html, `data-mode="light"`) {
		t.Error("html element should carry the active mode")
	}
	if !strings.Contains(html, "--color-bg: #e0e3e6") {
		t.Error("light variant variables should be injected")
	}
}

func TestRenderError(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	var buf bytes.Buffer
	if err := r.RenderError(&buf); err != nil {
		t.Fatalf("RenderError: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "System Error") || !strings.Contains(out, "location.reload()") {
		t.Errorf("unexpected error page: %s", out)
	}
}

func TestStatusClass(t *testing.T) {
	cases := map[string]string{
		"Published":    "status-published",
		"Under Review": "status-under-review",
		"In Review":    "status-under-review",
		"Draft":        "status-draft",
		"":             "status-draft",
	}
	for status, want := range cases {
		if got := statusClass(status); got != want {
			t.Errorf("statusClass(%q) = %q, want %q", status, got, want)
		}
	}
}

func TestNavLogo(t *testing.T) {
	if got := navLogo("Ada Lovelace"); got != "Ada." {
		t.Errorf("navLogo = %q", got)
	}
	if got := navLogo("  "); got != "folio." {
		t.Errorf("navLogo fallback = %q", got)
	}
}
