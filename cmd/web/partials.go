package main

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"webvello.com/site/internal/handlers"
	mw "webvello.com/site/internal/middleware"
	"webvello.com/site/internal/nav"
	"webvello.com/site/internal/trust"
)

// navPartial re-renders the header menu. /partials/nav closes every dropdown;
// /partials/nav/{group} toggles one against the currently open group (?open=),
// or opens it outright on hover (?hover=1). Unknown groups close the menu.
func (s *server) navPartial(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	open := ""
	if group := chi.URLParam(r, "group"); group != "" {
		if q.Get("hover") == "1" {
			if it, ok := nav.Group(group); ok {
				open = it.Slug()
			}
		} else {
			open = nav.Toggle(q.Get("open"), group)
		}
	}
	menu := nav.Build(currentPath(r), open)
	menu.MobileOpen = q.Get("menu") == "open"
	s.renderFragment(w, r, "nav", menu)
}

// currentPath is the page the fragment is rendered for: ?path=, then the
// htmx current URL, then the home page.
func currentPath(r *http.Request) string {
	if p := r.URL.Query().Get("path"); p != "" {
		return p
	}
	if req, ok := mw.HTMXFromContext(r.Context()); ok && req.CurrentURL != "" {
		if u, err := url.Parse(req.CurrentURL); err == nil && u.Path != "" {
			return u.Path
		}
	}
	return "/"
}

// testimonialsPartial renders the carousel at ?i=N. Any integer is accepted
// and wraps; anything else shows the first slide.
func (s *server) testimonialsPartial(w http.ResponseWriter, r *http.Request) {
	i, err := strconv.Atoi(r.URL.Query().Get("i"))
	if err != nil {
		i = 0
	}
	res := trust.Load[trust.Testimonial](r.Context(), s.trust.Testimonials)
	s.renderFragment(w, r, "testimonials", handlers.Testimonials(res, i))
}
