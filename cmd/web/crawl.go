package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"webvello.com/site/internal/cms"
	"webvello.com/site/internal/observability"
	"webvello.com/site/internal/sitemap"
)

func (s *server) sitemapEntries(r *http.Request) ([]sitemap.Entry, error) {
	posts, err := s.content.ListPosts(r.Context(), cms.ListOptions{})
	if err != nil {
		return nil, err
	}
	return sitemap.Build(s.site, sitemap.CatalogInput(posts)), nil
}

// sitemap serves every URL in one urlset.
func (s *server) sitemap(w http.ResponseWriter, r *http.Request) {
	entries, err := s.sitemapEntries(r)
	if err != nil {
		s.xmlFailure(w, r, err)
		return
	}
	s.writeXML(w, r, func() ([]byte, error) { return sitemap.Marshal(entries) })
}

// sitemapIndex points at the per-section child sitemaps.
func (s *server) sitemapIndex(w http.ResponseWriter, r *http.Request) {
	entries, err := s.sitemapEntries(r)
	if err != nil {
		s.xmlFailure(w, r, err)
		return
	}
	s.writeXML(w, r, func() ([]byte, error) { return sitemap.MarshalIndex(s.site, entries) })
}

func (s *server) sitemapSection(w http.ResponseWriter, r *http.Request) {
	section, ok := sitemap.ParseSection(chi.URLParam(r, "section"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	entries, err := s.sitemapEntries(r)
	if err != nil {
		s.xmlFailure(w, r, err)
		return
	}
	s.writeXML(w, r, func() ([]byte, error) { return sitemap.Marshal(sitemap.Filter(entries, section)) })
}

func (s *server) robots(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write([]byte(sitemap.Robots(s.site)))
}

func (s *server) writeXML(w http.ResponseWriter, r *http.Request, marshal func() ([]byte, error)) {
	body, err := marshal()
	if err != nil {
		s.xmlFailure(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write(body)
}

func (s *server) xmlFailure(w http.ResponseWriter, r *http.Request, err error) {
	observability.FromContext(r.Context()).Error("sitemap build failed", zap.Error(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
