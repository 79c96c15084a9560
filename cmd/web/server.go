package main

import (
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"webvello.com/site/internal/catalog"
	"webvello.com/site/internal/cms"
	"webvello.com/site/internal/config"
	"webvello.com/site/internal/handlers"
	"webvello.com/site/internal/leads"
	mw "webvello.com/site/internal/middleware"
	"webvello.com/site/internal/observability"
	"webvello.com/site/internal/seo"
	"webvello.com/site/internal/trust"
)

const requestTimeout = 30 * time.Second

// server carries the dependencies every handler reads from.
type server struct {
	cfg       config.Config
	site      seo.Site
	analytics handlers.Analytics
	logger    *zap.Logger
	content   *cms.Client
	trust     trust.Provider
	views     *views
	now       func() time.Time

	leadStore   leads.Store
	notifier    leads.Notifier
	leads       *leads.Capturer
	leadLimiter *leads.Limiter
}

type serverOption func(*server)

func withContent(c *cms.Client) serverOption {
	return func(s *server) { s.content = c }
}

func withTrust(p trust.Provider) serverOption {
	return func(s *server) { s.trust = p }
}

func withClock(now func() time.Time) serverOption {
	return func(s *server) { s.now = now }
}

func withLeadStore(store leads.Store) serverOption {
	return func(s *server) { s.leadStore = store }
}

func withNotifier(n leads.Notifier) serverOption {
	return func(s *server) { s.notifier = n }
}

func newServer(cfg config.Config, logger *zap.Logger, opts ...serverOption) (*server, error) {
	if logger == nil {
		logger = observability.NoopLogger()
	}
	s := &server{
		cfg:       cfg,
		site:      siteFrom(cfg.Site),
		analytics: handlers.AnalyticsFrom(cfg.Analytics),
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.content == nil {
		s.content = cms.New(cfg.Content.Dir, cms.WithCacheTTL(cfg.Content.CacheTTL))
	}
	if s.trust == nil {
		s.trust = trustProvider(cfg.Trust)
	}
	if s.notifier == nil {
		s.notifier = leads.LogNotifier{Logger: logger}
	}
	s.leads = leads.NewCapturer(s.leadStore, s.notifier,
		leads.WithLogger(logger),
		leads.WithClock(s.now),
	)
	s.leadLimiter = leads.NewLimiter(cfg.Leads.RateLimit, cfg.Leads.RateWindow, leads.WithLimiterClock(s.now))
	v, err := newViews(cfg.Server.TemplatesDir, cfg.Server.DevMode)
	if err != nil {
		return nil, err
	}
	s.views = v
	return s, nil
}

func siteFrom(cfg config.SiteConfig) seo.Site {
	return seo.Site{
		Name:          cfg.Name,
		BaseURL:       cfg.BaseURL,
		Phone:         cfg.Phone,
		Email:         cfg.Email,
		Logo:          "/assets/img/logo.svg",
		DefaultImage:  "/assets/img/og-default.png",
		TwitterHandle: "@webvello",
		SameAs: []string{
			"https://www.linkedin.com/company/webvello",
			"https://twitter.com/webvello",
			"https://www.facebook.com/webvello",
		},
	}
}

// trustProvider uses the remote endpoint when configured and the built-in
// data otherwise. The remote provider falls back to the same data on failure.
func trustProvider(cfg config.TrustConfig) trust.Provider {
	if cfg.Endpoint == "" {
		return trust.StaticProvider{}
	}
	return trust.NewRemoteProvider(cfg.Endpoint, trust.WithTTL(cfg.CacheTTL))
}

func newRouter(s *server) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will use
	// X-Forwarded-For to determine the client IP. Ensure only trusted proxies
	// can set these headers in production environments.
	r.Use(chimw.RealIP)
	r.Use(observability.InjectLogger(s.logger))
	r.Use(observability.RequestLogger())
	r.Use(observability.Recovery(s.logger, s.serverError))
	r.Use(mw.SecurityHeaders(s.cfg.Site.HTTPS()))
	r.Use(mw.Redirects(mw.LegacyRedirects))
	r.Use(mw.HTMX)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(requestTimeout))

	r.NotFound(s.notFound)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/assets/*", mw.AssetsWithCache(filepath.Join(s.cfg.Server.PublicDir, "assets"), s.cfg.Server.DevMode))

	r.Get("/", s.home)
	r.Get("/services", s.servicesIndex)
	r.Get("/services/{slug}", s.service)
	r.Get("/industries", s.industriesIndex)
	r.Get("/industries/{slug}", s.industry)
	r.Get("/blog", s.blogIndex)
	r.Get("/blog/{slug}", s.post)
	for _, p := range catalog.Pages() {
		if p.Path == contactPath {
			continue
		}
		r.Get(p.Path, s.static(p.Path))
	}
	r.Group(func(r chi.Router) {
		r.Use(chimw.RequestSize(maxLeadBody))
		r.Use(mw.CSRF(s.cfg.Site.HTTPS()))
		r.Get(contactPath, s.contact)
		r.Post(contactPath, s.submitLead)
	})
	r.Get("/{city}", s.city)
	r.Get("/{city}/{service}", s.cityService)

	r.Route("/partials", func(r chi.Router) {
		r.Get("/nav", s.navPartial)
		r.Get("/nav/{group}", s.navPartial)
		r.Get("/testimonials", s.testimonialsPartial)
	})

	r.Get("/sitemap.xml", s.sitemap)
	r.Get("/sitemap_index.xml", s.sitemapIndex)
	r.Get("/sitemap/{section}.xml", s.sitemapSection)
	r.Get("/robots.txt", s.robots)
	return r
}

// env assembles the builder input for this request.
func (s *server) env(r *http.Request) handlers.Env {
	q := r.URL.Query()
	return handlers.Env{
		Site:         s.site,
		Analytics:    s.analytics,
		Path:         r.URL.Path,
		OpenDropdown: q.Get("open"),
		MobileOpen:   q.Get("menu") == "open",
		Now:          s.now(),
		Rating:       s.rating(r.Context()),
	}
}

func (s *server) rating(ctx context.Context) trust.Summary {
	res := trust.Load[trust.Review](ctx, s.trust.Reviews)
	return trust.Summarize(res.Items)
}
