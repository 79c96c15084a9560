package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"webvello.com/site/internal/format"
	"webvello.com/site/internal/handlers"
	mw "webvello.com/site/internal/middleware"
	"webvello.com/site/internal/observability"
)

// templateSet holds one template per page, each cloned from the shared
// layouts and partials, plus the shared set itself for fragment responses.
type templateSet struct {
	shared *template.Template
	pages  map[string]*template.Template
}

// views parses templates once, or on every request in dev mode.
type views struct {
	dir   string
	dev   bool
	cache *templateSet
}

func newViews(dir string, dev bool) (*views, error) {
	v := &views{dir: dir, dev: dev}
	if dev {
		// Fail fast on syntax errors even though requests reparse.
		if _, err := parseTemplates(dir); err != nil {
			return nil, err
		}
		return v, nil
	}
	set, err := parseTemplates(dir)
	if err != nil {
		return nil, err
	}
	v.cache = set
	return v, nil
}

func (v *views) load() (*templateSet, error) {
	if v.dev {
		return parseTemplates(v.dir)
	}
	if v.cache == nil {
		return nil, fmt.Errorf("templates not initialized")
	}
	return v.cache, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"now":          time.Now,
		"fmtDate":      format.FmtDate,
		"fmtShortDate": format.FmtShortDate,
		"fmtISODate":   format.FmtISODate,
		"fmtRating":    format.FmtRating,
		"fmtCount":     format.FmtCount,
		"readingTime":  format.FmtReadingTime,
		"stars":        format.Stars,
		"ratingStars":  func(n int) []bool { return format.Stars(float64(n)) },
		"add":          func(a, b int) int { return a + b },
		"lower":        strings.ToLower,
		"join":         strings.Join,
	}
}

// parseTemplates discovers layouts/ and partials/ as the shared base and
// clones it once per file under pages/. Page names are file names without
// the .tmpl extension.
func parseTemplates(dir string) (*templateSet, error) {
	shared, err := collect(filepath.Join(dir, "layouts"), filepath.Join(dir, "partials"))
	if err != nil {
		return nil, err
	}
	if len(shared) == 0 {
		return nil, fmt.Errorf("no layout templates found under %s", dir)
	}
	base, err := template.New("_root").Funcs(templateFuncs()).ParseFiles(shared...)
	if err != nil {
		return nil, err
	}

	pageFiles, err := collect(filepath.Join(dir, "pages"))
	if err != nil {
		return nil, err
	}
	if len(pageFiles) == 0 {
		return nil, fmt.Errorf("no page templates found under %s", dir)
	}
	set := &templateSet{shared: base, pages: make(map[string]*template.Template, len(pageFiles))}
	for _, file := range pageFiles {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFiles(file); err != nil {
			return nil, fmt.Errorf("parse %s: %w", file, err)
		}
		set.pages[strings.TrimSuffix(filepath.Base(file), ".tmpl")] = clone
	}
	return set, nil
}

func collect(dirs ...string) ([]string, error) {
	var files []string
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && strings.HasSuffix(d.Name(), ".tmpl") {
				files = append(files, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return files, nil
}

// renderPage executes a page with the base layout. htmx requests that target
// the main region only get the "content" block.
func (s *server) renderPage(w http.ResponseWriter, r *http.Request, status int, page string, data handlers.PageData) {
	ctx, span := observability.StartSpan(r.Context(), "render "+page, attribute.String("page", page))
	var err error
	defer func() { observability.EndSpan(span, err) }()

	set, err := s.views.load()
	if err != nil {
		s.renderFailure(w, r, page, err)
		return
	}
	t, ok := set.pages[page]
	if !ok {
		err = fmt.Errorf("unknown page template %q", page)
		s.renderFailure(w, r, page, err)
		return
	}
	name := "base"
	if req, ok := mw.HTMXFromContext(ctx); ok && !req.Boosted && req.Target == "main" {
		name = "content"
	}

	var buf bytes.Buffer
	if err = t.ExecuteTemplate(&buf, name, data); err != nil {
		s.renderFailure(w, r, page, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

// renderFragment executes a shared partial for htmx swaps.
func (s *server) renderFragment(w http.ResponseWriter, r *http.Request, name string, data any) {
	set, err := s.views.load()
	if err != nil {
		s.renderFailure(w, r, name, err)
		return
	}
	var buf bytes.Buffer
	if err := set.shared.ExecuteTemplate(&buf, name, data); err != nil {
		s.renderFailure(w, r, name, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// renderFailure logs the cause and serves the 500 page. A failing error page
// falls back to plain text.
func (s *server) renderFailure(w http.ResponseWriter, r *http.Request, name string, cause error) {
	observability.FromContext(r.Context()).Error("template render failed",
		zap.String("template", name),
		zap.Error(cause),
	)
	if name == "error" {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	s.serverError(w, r)
}
