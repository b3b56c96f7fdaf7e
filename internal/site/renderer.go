// Package site renders the public portfolio page from the content and theme
// documents. Each section reads only from the document; nothing here mutates
// state.
package site

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/yuin/goldmark"

	"github.com/ahmadbz/folio/internal/content"
	"github.com/ahmadbz/folio/internal/docurl"
	"github.com/ahmadbz/folio/internal/theme"
)

// customSectionOffset is where user-defined section numbering starts; the
// seven built-in numbered sections come first.
const customSectionOffset = 8

type Renderer struct {
	page *template.Template
	err  *template.Template
	md   goldmark.Markdown
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"viewURL": docurl.Normalize,
		"sectionNum": func(i int) string {
			return fmt.Sprintf("%02d", i+customSectionOffset)
		},
		"statusClass": statusClass,
		"capitalize":  capitalize,
	}

	page, err := template.New("page").Funcs(funcs).Parse(pageTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing page template: %w", err)
	}
	errPage, err := template.New("error").Parse(errorTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing error template: %w", err)
	}

	return &Renderer{
		page: page,
		err:  errPage,
		md:   goldmark.New(),
	}, nil
}

type pageData struct {
	Doc       *content.Document
	NavLogo   string
	AboutHTML template.HTML
	ThemeCSS  template.CSS
	Mode      string
	ModeIcon  string
	Year      int
}

// RenderPage writes the full public page for the given documents.
func (r *Renderer) RenderPage(w io.Writer, doc *content.Document, thm *theme.Config) error {
	variant, mode, _ := thm.Resolve()

	data := pageData{
		Doc:       doc,
		NavLogo:   navLogo(doc.Profile.Name),
		AboutHTML: r.markdown(doc.Profile.AboutDesc),
		ThemeCSS:  themeCSS(variant, mode),
		Mode:      mode,
		ModeIcon:  theme.ToggleIcon(mode),
		Year:      time.Now().Year(),
	}
	return r.page.Execute(w, data)
}

// RenderError writes the terminal error page shown when no content could be
// loaded from any source.
func (r *Renderer) RenderError(w io.Writer) error {
	return r.err.Execute(w, nil)
}

func (r *Renderer) markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		// Fall back to the raw text, escaped by the template engine.
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(buf.String())
}

// themeCSS builds the :root variable block from the resolved variant. It is
// assembled here rather than in the template so the values bypass the CSS
// sanitizer, which rejects quoted font stacks.
func themeCSS(v theme.Variant, mode string) template.CSS {
	var b strings.Builder
	b.WriteString(":root {\n")
	for _, cv := range theme.CSSVars(v, mode) {
		fmt.Fprintf(&b, "  %s: %s;\n", cv.Name, cv.Value)
	}
	b.WriteString("}")
	return template.CSS(b.String())
}

func navLogo(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "folio."
	}
	return strings.Fields(name)[0] + "."
}

func statusClass(status string) string {
	s := strings.ToLower(status)
	switch {
	case s == "published":
		return "status-published"
	case strings.Contains(s, "review"):
		return "status-under-review"
	default:
		return "status-draft"
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// StyleCSS returns the static stylesheet.
func StyleCSS() []byte { return []byte(cssContent) }

// AppJS returns the static page script.
func AppJS() []byte { return []byte(scriptContent) }
