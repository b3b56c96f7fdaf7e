package admin

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"html/template"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ahmadbz/folio/internal/cache"
	"github.com/ahmadbz/folio/internal/content"
	"github.com/ahmadbz/folio/internal/remote"
	"github.com/ahmadbz/folio/internal/state"
	"github.com/ahmadbz/folio/internal/theme"
)

const (
	maxUploadBytes = 10 << 20
	saveTimeout    = 30 * time.Second
)

// Handler serves the editor. Edits mutate the live in-memory state only;
// nothing reaches the endpoint or the cache until the admin hits save.
type Handler struct {
	State    *state.State
	Sessions *Sessions
	Client   *remote.Client
	Cache    *cache.Store

	// Notify is called after any change to the live state so open pages
	// can refresh. May be nil.
	Notify func()

	login *template.Template
	panel *template.Template
}

func NewHandler(st *state.State, sessions *Sessions, client *remote.Client, store *cache.Store, notify func()) (*Handler, error) {
	login, err := template.New("login").Parse(loginTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing login template: %w", err)
	}
	panel, err := template.New("panel").Funcs(template.FuncMap{
		"pathEscape": url.PathEscape,
	}).Parse(panelTemplate)
	if err != nil {
		return nil, fmt.Errorf("parsing panel template: %w", err)
	}

	return &Handler{
		State:    st,
		Sessions: sessions,
		Client:   client,
		Cache:    store,
		Notify:   notify,
		login:    login,
		panel:    panel,
	}, nil
}

// RegisterRoutes mounts the editor under /admin.
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/admin", func(r chi.Router) {
		r.Get("/login", h.loginPage)
		r.Post("/login", h.handleLogin)
		r.Post("/logout", h.handleLogout)

		r.Group(func(r chi.Router) {
			r.Use(h.Sessions.Middleware("/admin/login"))

			r.Get("/", h.panelPage)
			r.Post("/profile", h.updateProfile)

			r.Post("/list/{list}/add", h.listAdd)
			r.Post("/list/{list}/{index}/delete", h.listDelete)
			r.Post("/list/{list}/{index}/move", h.listMove)
			r.Post("/list/{list}/{index}", h.listUpdate)

			r.Post("/skills/categories/add", h.skillCategoryAdd)
			r.Post("/skills/{category}/delete", h.skillCategoryDelete)
			r.Post("/skills/{category}/add", h.skillAdd)
			r.Post("/skills/{category}/{index}/delete", h.skillDelete)
			r.Post("/skills/{category}/{index}/move", h.skillMove)
			r.Post("/skills/{category}/{index}", h.skillUpdate)

			r.Post("/sections/{section}/items/add", h.sectionItemAdd)
			r.Post("/sections/{section}/items/{index}/delete", h.sectionItemDelete)
			r.Post("/sections/{section}/items/{index}/move", h.sectionItemMove)
			r.Post("/sections/{section}/items/{index}", h.sectionItemUpdate)

			r.Post("/theme/mode", h.setThemeMode)
			r.Post("/theme", h.updateThemeVariant)

			r.Post("/save", h.saveContent)
			r.Post("/save-theme", h.saveTheme)
			r.Post("/upload", h.handleUpload)
		})
	})
}

// Login and logout.

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	if h.Sessions.Valid(r) {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	h.renderLogin(w, "")
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	ok, err := h.Client.Login(r.Context(), username, password)
	if err != nil {
		log.Printf("login check failed: %v", err)
		h.renderLogin(w, "Could not reach the sync endpoint. Try again.")
		return
	}
	if !ok {
		h.renderLogin(w, "Invalid credentials.")
		return
	}

	http.SetCookie(w, h.Sessions.Start())
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.Sessions.End(r))
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (h *Handler) renderLogin(w http.ResponseWriter, errMsg string) {
	if err := h.login.Execute(w, map[string]string{"Error": errMsg}); err != nil {
		log.Printf("rendering login page: %v", err)
	}
}

// Panel.

type panelData struct {
	Doc      *content.Document
	Theme    *theme.Config
	Mode     string
	Variant  theme.Variant
	Status   string
	Uploaded string
}

func (h *Handler) panelPage(w http.ResponseWriter, r *http.Request) {
	if h.State.Fatal() {
		http.Error(w, "no content loaded; editing unavailable", http.StatusServiceUnavailable)
		return
	}

	// Template execution walks both documents, so it must finish before the
	// read lock is released or a concurrent edit would race it.
	var buf bytes.Buffer
	var renderErr error
	h.State.View(func(doc *content.Document, thm *theme.Config) {
		data := panelData{
			Doc:      doc,
			Theme:    thm,
			Status:   r.URL.Query().Get("status"),
			Uploaded: r.URL.Query().Get("uploaded"),
		}
		data.Variant, data.Mode, _ = thm.Resolve()
		renderErr = h.panel.Execute(&buf, data)
	})
	if renderErr != nil {
		log.Printf("rendering admin panel: %v", renderErr)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// back redirects to the panel, optionally jumping to a tab anchor.
func (h *Handler) back(w http.ResponseWriter, r *http.Request) {
	target := "/admin"
	if tab := r.FormValue("tab"); tab != "" {
		target += "#" + url.PathEscape(tab)
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (h *Handler) changed() {
	if h.Notify != nil {
		h.Notify()
	}
}

// Profile.

func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	h.State.Update(func(doc *content.Document, _ *theme.Config) {
		doc.Profile = content.Profile{
			Name:      r.FormValue("name"),
			Role:      r.FormValue("role"),
			Bio:       r.FormValue("bio"),
			AboutDesc: r.FormValue("aboutDesc"),
			Location:  r.FormValue("location"),
			Email:     r.FormValue("email"),
			GitHub:    r.FormValue("github"),
			LinkedIn:  r.FormValue("linkedin"),
			PhotoURL:  r.FormValue("photoUrl"),
		}
	})
	h.changed()
	h.back(w, r)
}

// Generic list routes. Every top-level list supports the same three
// operations; the per-list shape only matters on update.

func (h *Handler) listAdd(w http.ResponseWriter, r *http.Request) {
	list := chi.URLParam(r, "list")

	var ok bool
	h.State.Update(func(doc *content.Document, _ *theme.Config) {
		ok = doc.AppendBlank(list)
	})
	if !ok {
		http.Error(w, "unknown list", http.StatusNotFound)
		return
	}
	h.changed()
	h.back(w, r)
}

func (h *Handler) listDelete(w http.ResponseWriter, r *http.Request) {
	list := chi.URLParam(r, "list")
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "bad index", http.StatusBadRequest)
		return
	}

	h.State.Update(func(doc *content.Document, _ *theme.Config) {
		doc.RemoveFrom(list, idx)
	})
	h.changed()
	h.back(w, r)
}

func (h *Handler) listMove(w http.ResponseWriter, r *http.Request) {
	list := chi.URLParam(r, "list")
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "bad index", http.StatusBadRequest)
		return
	}
	dir, err := strconv.Atoi(r.FormValue("dir"))
	if err != nil || (dir != -1 && dir != 1) {
		http.Error(w, "dir must be -1 or 1", http.StatusBadRequest)
		return
	}

	h.State.Update(func(doc *content.Document, _ *theme.Config) {
		doc.MoveIn(list, idx, dir)
	})
	h.changed()
	h.back(w, r)
}

// listUpdate replaces the addressed record with the posted form. The panel
// forms always post every field, so a full overwrite is safe.
func (h *Handler) listUpdate(w http.ResponseWriter, r *http.Request) {
	list := chi.URLParam(r, "list")
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "bad index", http.StatusBadRequest)
		return
	}

	ok := false
	h.State.Update(func(doc *content.Document, _ *theme.Config) {
		if idx < 0 || idx >= doc.Len(list) {
			return
		}
		ok = true
		switch list {
		case content.ListExperience:
			doc.Experience[idx] = content.Experience{
				Role:     r.FormValue("role"),
				Company:  r.FormValue("company"),
				Date:     r.FormValue("date"),
				Location: r.FormValue("location"),
				Desc:     r.FormValue("desc"),
				DocURL:   r.FormValue("docUrl"),
			}
		case content.ListEducation:
			doc.Education[idx] = content.Education{
				Degree:      r.FormValue("degree"),
				Institution: r.FormValue("institution"),
				StartYear:   r.FormValue("startYear"),
				EndYear:     r.FormValue("endYear"),
				Location:    r.FormValue("location"),
				Details:     r.FormValue("details"),
				DocURL:      r.FormValue("docUrl"),
			}
		case content.ListProjects:
			doc.Projects[idx] = content.Project{
				Title:     r.FormValue("title"),
				Desc:      r.FormValue("desc"),
				ImageURL:  r.FormValue("imageUrl"),
				TechStack: parseTechStack(r.FormValue("techStack")),
				GitHubURL: r.FormValue("githubUrl"),
				LiveURL:   r.FormValue("liveUrl"),
				DocURL:    r.FormValue("docUrl"),
			}
		case content.ListResearch:
			doc.Research[idx] = content.Paper{
				Title:    r.FormValue("title"),
				Authors:  r.FormValue("authors"),
				Venue:    r.FormValue("venue"),
				Year:     r.FormValue("year"),
				Status:   r.FormValue("status"),
				PaperURL: r.FormValue("paperUrl"),
				CertURL:  r.FormValue("certUrl"),
			}
		case content.ListDocuments:
			doc.Documents[idx] = content.FileLink{
				Title: r.FormValue("title"),
				Desc:  r.FormValue("desc"),
				URL:   r.FormValue("url"),
			}
		case content.ListSections:
			items := doc.UserSections[idx].Items
			doc.UserSections[idx] = content.UserSection{
				Title: r.FormValue("title"),
				Icon:  r.FormValue("icon"),
				Items: items,
			}
		default:
			ok = false
		}
	})
	if !ok {
		http.Error(w, "unknown list or index", http.StatusNotFound)
		return
	}
	h.changed()
	h.back(w, r)
}

// Skills. Category names may contain any character, so the panel path-escapes
// them into the route and the handlers decode the segment back.

func categoryParam(r *http.Request) string {
	raw := chi.URLParam(r, "category")
	if dec, err := url.PathUnescape(raw); err == nil {
		return dec
	}
	return raw
}

func (h *Handler) skillCategoryAdd(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")

	var ok bool
	h.State.Update(func(doc *content.Document, _ *theme.Config) {
		ok = doc.Skills.AddCategory(name)
	})
	if !ok {
		http.Error(w, "category name is empty or already exists", http.StatusBadRequest)
		return
	}
	h.changed()
	h.back(w, r)
}

func (h *Handler) skillCategoryDelete(w http.ResponseWriter, r *http.Request) {
	category := categoryParam(r)

	h.State.Update(func(doc *content.Document, _ *theme.Config) {
		doc.Skills.DeleteCategory(category)
	})
	h.changed()
	h.back(w, r)
}

func (h *Handler) skillAdd(w http.ResponseWriter, r *http.Request) {
	category := categoryParam(r)
	entry := content.Entry{
		Name:    r.FormValue("name"),
		IconURL: r.FormValue("iconUrl"),
	}

	var ok bool
	h.State.Update(func(doc *content.Document, _ *theme.Config) {
		ok = doc.AppendSkill(category, entry)
	})
	if !ok {
		http.Error(w, "unknown category", http.StatusNotFound)
		return
	}
	h.changed()
	h.back(w, r)
}

func (h *Handler) skillDelete(w http.ResponseWriter, r *http.Request) {
	category := categoryParam(r)
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "bad index", http.StatusBadRequest)
		return
	}

	h.State.Update(func(doc *content.Document, _ *theme.Config) {
		doc.RemoveSkill(category, idx)
	})
	h.changed()
	h.back(w, r)
}

func (h *Handler) skillMove(w http.ResponseWriter, r *http.Request) {
	category := categoryParam(r)
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "bad index", http.StatusBadRequest)
		return
	}
	dir, err := strconv.Atoi(r.FormValue("dir"))
	if err != nil || (dir != -1 && dir != 1) {
		http.Error(w, "dir must be -1 or 1", http.StatusBadRequest)
		return
	}

	h.State.Update(func(doc *content.Document, _ *theme.Config) {
		doc.MoveSkill(category, idx, dir)
	})
	h.changed()
	h.back(w, r)
}

// skillUpdate rewrites an existing entry's name and icon in place.
func (h *Handler) skillUpdate(w http.ResponseWriter, r *http.Request) {
	category := categoryParam(r)
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "bad index", http.StatusBadRequest)
		return
	}
	entry := content.Entry{
		Name:    r.FormValue("name"),
		IconURL: r.FormValue("iconUrl"),
	}

	ok := false
	h.State.Update(func(doc *content.Document, _ *theme.Config) {
		entries := doc.Skills.Group(category)
		if idx < 0 || idx >= len(entries) {
			return
		}
		entries[idx] = entry
		ok = true
	})
	if !ok {
		http.Error(w, "unknown category or index", http.StatusNotFound)
		return
	}
	h.changed()
	h.back(w, r)
}

// Custom section items.

func (h *Handler) sectionIndex(r *http.Request) (int, error) {
	return strconv.Atoi(chi.URLParam(r, "section"))
}

func (h *Handler) sectionItemAdd(w http.ResponseWriter, r *http.Request) {
	section, err := h.sectionIndex(r)
	if err != nil {
		http.Error(w, "bad section", http.StatusBadRequest)
		return
	}

	var ok bool
	h.State.Update(func(doc *content.Document, _ *theme.Config) {
		ok = doc.AppendSectionItem(section, content.SectionItem{})
	})
	if !ok {
		http.Error(w, "unknown section", http.StatusNotFound)
		return
	}
	h.changed()
	h.back(w, r)
}

func (h *Handler) sectionItemDelete(w http.ResponseWriter, r *http.Request) {
	section, err := h.sectionIndex(r)
	if err != nil {
		http.Error(w, "bad section", http.StatusBadRequest)
		return
	}
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "bad index", http.StatusBadRequest)
		return
	}

	h.State.Update(func(doc *content.Document, _ *theme.Config) {
		doc.RemoveSectionItem(section, idx)
	})
	h.changed()
	h.back(w, r)
}

func (h *Handler) sectionItemMove(w http.ResponseWriter, r *http.Request) {
	section, err := h.sectionIndex(r)
	if err != nil {
		http.Error(w, "bad section", http.StatusBadRequest)
		return
	}
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "bad index", http.StatusBadRequest)
		return
	}
	dir, err := strconv.Atoi(r.FormValue("dir"))
	if err != nil || (dir != -1 && dir != 1) {
		http.Error(w, "dir must be -1 or 1", http.StatusBadRequest)
		return
	}

	h.State.Update(func(doc *content.Document, _ *theme.Config) {
		doc.MoveSectionItem(section, idx, dir)
	})
	h.changed()
	h.back(w, r)
}

func (h *Handler) sectionItemUpdate(w http.ResponseWriter, r *http.Request) {
	section, err := h.sectionIndex(r)
	if err != nil {
		http.Error(w, "bad section", http.StatusBadRequest)
		return
	}
	idx, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		http.Error(w, "bad index", http.StatusBadRequest)
		return
	}

	ok := false
	h.State.Update(func(doc *content.Document, _ *theme.Config) {
		if section < 0 || section >= len(doc.UserSections) {
			return
		}
		items := doc.UserSections[section].Items
		if idx < 0 || idx >= len(items) {
			return
		}
		items[idx] = content.SectionItem{
			Title:       r.FormValue("title"),
			Subtitle:    r.FormValue("subtitle"),
			Date:        r.FormValue("date"),
			Description: r.FormValue("description"),
			DocURL:      r.FormValue("docUrl"),
			BadgeURL:    r.FormValue("badgeUrl"),
		}
		ok = true
	})
	if !ok {
		http.Error(w, "unknown section or item", http.StatusNotFound)
		return
	}
	h.changed()
	h.back(w, r)
}

// Theme.

func (h *Handler) setThemeMode(w http.ResponseWriter, r *http.Request) {
	mode := r.FormValue("mode")
	if mode != theme.ModeDark && mode != theme.ModeLight {
		http.Error(w, "unknown mode", http.StatusBadRequest)
		return
	}

	h.State.Update(func(_ *content.Document, thm *theme.Config) {
		thm.ActiveMode = mode
	})
	h.changed()
	h.back(w, r)
}

func (h *Handler) updateThemeVariant(w http.ResponseWriter, r *http.Request) {
	mode := r.FormValue("mode")
	if mode != theme.ModeDark && mode != theme.ModeLight {
		http.Error(w, "unknown mode", http.StatusBadRequest)
		return
	}

	v := theme.Variant{
		PrimaryColor:      r.FormValue("primaryColor"),
		SecondaryColor:    r.FormValue("secondaryColor"),
		BackgroundColor:   r.FormValue("backgroundColor"),
		SurfaceColor:      r.FormValue("surfaceColor"),
		SurfaceLightColor: r.FormValue("surfaceLightColor"),
		AccentColor:       r.FormValue("accentColor"),
		TextColor:         r.FormValue("textColor"),
		TextMutedColor:    r.FormValue("textMutedColor"),
		GlassColor:        r.FormValue("glassColor"),
		BorderRadius:      r.FormValue("borderRadius"),
		CardRadius:        r.FormValue("cardRadius"),
		ButtonRadius:      r.FormValue("buttonRadius"),
		FontFamily:        r.FormValue("fontFamily"),
	}

	h.State.Update(func(_ *content.Document, thm *theme.Config) {
		thm.SetVariant(mode, v)
	})
	h.changed()
	h.back(w, r)
}

// Saves. The cache is only written after the endpoint accepts the document,
// so a failed save never leaves the local copy ahead of the remote one.

func (h *Handler) saveContent(w http.ResponseWriter, r *http.Request) {
	raw, err := h.State.ContentJSON()
	if err != nil {
		http.Error(w, "encoding document: "+err.Error(), http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), saveTimeout)
	defer cancel()

	if err := h.Client.SaveContent(ctx, raw); err != nil {
		log.Printf("content save failed: %v", err)
		http.Redirect(w, r, "/admin?status=save-failed", http.StatusSeeOther)
		return
	}
	if err := h.Cache.Put(ctx, cache.KeyContent, raw); err != nil {
		log.Printf("content cache write failed: %v", err)
	}

	h.changed()
	http.Redirect(w, r, "/admin?status=saved", http.StatusSeeOther)
}

func (h *Handler) saveTheme(w http.ResponseWriter, r *http.Request) {
	raw, err := h.State.ThemeJSON()
	if err != nil {
		http.Error(w, "encoding theme: "+err.Error(), http.StatusInternalServerError)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), saveTimeout)
	defer cancel()

	if err := h.Client.SaveTheme(ctx, raw); err != nil {
		log.Printf("theme save failed: %v", err)
		http.Redirect(w, r, "/admin?status=theme-save-failed", http.StatusSeeOther)
		return
	}
	if err := h.Cache.Put(ctx, cache.KeyTheme, raw); err != nil {
		log.Printf("theme cache write failed: %v", err)
	}

	h.changed()
	http.Redirect(w, r, "/admin?status=theme-saved", http.StatusSeeOther)
}

// Upload proxies a file to the endpoint's file store and surfaces the stored
// URL for pasting into any of the URL fields.

func (h *Handler) handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "parsing upload: "+err.Error(), http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file field", http.StatusBadRequest)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		http.Error(w, "reading upload: "+err.Error(), http.StatusInternalServerError)
		return
	}

	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	ctx, cancel := context.WithTimeout(r.Context(), saveTimeout)
	defer cancel()

	storedURL, err := h.Client.Upload(ctx, remote.UploadRequest{
		Filename: header.Filename,
		MimeType: mimeType,
		Data:     base64.StdEncoding.EncodeToString(data),
	})
	if err != nil {
		log.Printf("upload failed: %v", err)
		http.Redirect(w, r, "/admin?status=upload-failed", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, "/admin?status=uploaded&uploaded="+url.QueryEscape(storedURL), http.StatusSeeOther)
}

// parseTechStack splits a comma-separated form value into entries. Icons are
// managed through the upload flow and pasted as object entries by hand, so
// the quick edit path only handles names.
func parseTechStack(s string) []content.Entry {
	entries := []content.Entry{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		entries = append(entries, content.Entry{Name: part})
	}
	return entries
}
