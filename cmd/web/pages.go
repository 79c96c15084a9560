package main

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"webvello.com/site/internal/catalog"
	"webvello.com/site/internal/cms"
	"webvello.com/site/internal/handlers"
	mw "webvello.com/site/internal/middleware"
	"webvello.com/site/internal/observability"
	"webvello.com/site/internal/trust"
)

const (
	homeLatestPosts    = 3
	serviceRecentPosts = 3
	industryPosts      = 6
	relatedPosts       = 3
)

func (s *server) home(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	widgets := trust.LoadAll(ctx, s.trust)
	for name, err := range map[string]error{
		"testimonials": widgets.Testimonials.Err,
		"reviews":      widgets.Reviews.Err,
		"badges":       widgets.Badges.Err,
		"logos":        widgets.Logos.Err,
	} {
		if err != nil {
			observability.FromContext(ctx).Warn("trust widget unavailable", zap.String("widget", name), zap.Error(err))
		}
	}
	latest := s.listPosts(r, cms.ListOptions{Limit: homeLatestPosts})
	vm := handlers.Home(s.env(r), widgets, latest)
	// ?t=N positions the testimonial carousel when htmx is unavailable.
	if i, err := strconv.Atoi(r.URL.Query().Get("t")); err == nil {
		vm.Home.Testimonials = handlers.Testimonials(widgets.Testimonials, i)
	}
	s.renderPage(w, r, http.StatusOK, "home", vm)
}

func (s *server) servicesIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, "services", handlers.ServicesIndex(s.env(r)))
}

// service serves /services/{slug}; geo- slugs are the city GEO landing pages.
func (s *server) service(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if strings.HasPrefix(slug, "geo-") {
		g, ok := catalog.LookupGeoPage(slug)
		if !ok {
			s.notFound(w, r)
			return
		}
		s.renderPage(w, r, http.StatusOK, "geo", handlers.Geo(s.env(r), g))
		return
	}
	svc, ok := catalog.LookupService(slug)
	if !ok {
		s.notFound(w, r)
		return
	}
	recent := s.listPosts(r, cms.ListOptions{ServiceSlug: svc.Slug, Limit: serviceRecentPosts})
	s.renderPage(w, r, http.StatusOK, "service", handlers.Service(s.env(r), svc, recent))
}

func (s *server) industriesIndex(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, "industries", handlers.IndustriesIndex(s.env(r)))
}

func (s *server) industry(w http.ResponseWriter, r *http.Request) {
	ind, ok := catalog.LookupIndustry(chi.URLParam(r, "slug"))
	if !ok {
		s.notFound(w, r)
		return
	}
	posts := s.listPosts(r, cms.ListOptions{Industry: ind.Name, Limit: industryPosts})
	s.renderPage(w, r, http.StatusOK, "industry", handlers.Industry(s.env(r), ind, posts))
}

func (s *server) city(w http.ResponseWriter, r *http.Request) {
	city, ok := catalog.LookupCity(chi.URLParam(r, "city"))
	if !ok {
		s.notFound(w, r)
		return
	}
	s.renderPage(w, r, http.StatusOK, "city", handlers.City(s.env(r), city))
}

func (s *server) cityService(w http.ResponseWriter, r *http.Request) {
	city, svc, ok := catalog.LookupCityService(chi.URLParam(r, "city"), chi.URLParam(r, "service"))
	if !ok {
		s.notFound(w, r)
		return
	}
	s.renderPage(w, r, http.StatusOK, "city_service", handlers.CityService(s.env(r), city, svc))
}

// blogIndex lists posts filtered by ?industry, ?service, ?city and ?q. htmx
// requests from the filter form only get the results list.
func (s *server) blogIndex(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := cms.ListOptions{
		Industry: strings.TrimSpace(q.Get("industry")),
		Service:  strings.TrimSpace(q.Get("service")),
		City:     strings.TrimSpace(q.Get("city")),
		Search:   strings.TrimSpace(q.Get("q")),
	}
	posts, err := s.content.ListPosts(r.Context(), opts)
	if err != nil {
		observability.FromContext(r.Context()).Error("list posts failed", zap.Error(err))
		s.serverError(w, r)
		return
	}
	vm := handlers.BlogIndex(s.env(r), posts, opts)
	if req, ok := mw.HTMXFromContext(r.Context()); ok && req.Target == "post-results" {
		w.Header().Set("HX-Push-Url", r.URL.RequestURI())
		s.renderFragment(w, r, "post_results", vm.Blog)
		return
	}
	s.renderPage(w, r, http.StatusOK, "blog", vm)
}

func (s *server) post(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	post, err := s.content.GetPost(ctx, chi.URLParam(r, "slug"))
	if errors.Is(err, cms.ErrNotFound) {
		s.notFound(w, r)
		return
	}
	if err != nil {
		observability.FromContext(ctx).Error("load post failed", zap.Error(err))
		s.serverError(w, r)
		return
	}
	related, err := s.content.Related(ctx, post, relatedPosts)
	if err != nil {
		observability.FromContext(ctx).Warn("related posts unavailable", zap.String("slug", post.Slug), zap.Error(err))
	}
	s.renderPage(w, r, http.StatusOK, "post", handlers.Post(s.env(r), post, related))
}

func (s *server) static(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, ok := catalog.LookupPage(path)
		if !ok {
			s.notFound(w, r)
			return
		}
		s.renderPage(w, r, http.StatusOK, "static", handlers.Static(s.env(r), page))
	}
}

func (s *server) notFound(w http.ResponseWriter, r *http.Request) {
	if mw.IsHTMX(r.Context()) {
		mw.WriteError(w, r, http.StatusNotFound, "not found")
		return
	}
	s.renderPage(w, r, http.StatusNotFound, "error", handlers.NotFound(s.env(r)))
}

func (s *server) serverError(w http.ResponseWriter, r *http.Request) {
	if mw.IsHTMX(r.Context()) {
		mw.WriteError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	s.renderPage(w, r, http.StatusInternalServerError, "error", handlers.ServerError(s.env(r)))
}

// listPosts degrades to no posts when the content directory cannot be read;
// the surrounding page still renders.
func (s *server) listPosts(r *http.Request, opts cms.ListOptions) []cms.Post {
	posts, err := s.content.ListPosts(r.Context(), opts)
	if err != nil {
		observability.FromContext(r.Context()).Warn("list posts failed", zap.Error(err))
		return nil
	}
	return posts
}
