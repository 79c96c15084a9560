// Package handlers builds the view models the page templates render. Builders
// are pure: they take catalog, content and trust data and return a PageData
// with metadata, JSON-LD, navigation and the page payload filled in.
package handlers

import (
	"html/template"
	"time"

	"webvello.com/site/internal/catalog"
	"webvello.com/site/internal/config"
	"webvello.com/site/internal/leads"
	"webvello.com/site/internal/nav"
	"webvello.com/site/internal/seo"
	"webvello.com/site/internal/trust"
)

// PageData is the view model every page template receives.
type PageData struct {
	Title       string
	Path        string
	Site        seo.Site
	SEO         seo.Meta
	JSONLD      []template.JS
	Analytics   Analytics
	Nav         nav.Menu
	Breadcrumbs []nav.Crumb
	Year        int
	Rating      trust.Summary

	// Per-page payloads; exactly one is set.
	Home        *HomeView
	Services    *ServicesView
	Service     *ServiceView
	Geo         *GeoView
	Industries  *IndustriesView
	Industry    *IndustryView
	City        *CityView
	CityService *CityServiceView
	Blog        *BlogView
	Post        *PostView
	Page        *StaticView
	Error       *ErrorView

	// Lead is set on pages that embed the contact form.
	Lead *LeadForm
}

// Analytics holds client instrumentation configuration surfaced to templates.
type Analytics struct {
	GA4MeasurementID string // e.g. G-XXXXXXXXXX
	GTMContainerID   string // e.g. GTM-XXXXXXX
	Debug            bool
}

// AnalyticsFrom copies the analytics section of the runtime config.
func AnalyticsFrom(cfg config.AnalyticsConfig) Analytics {
	return Analytics{
		GA4MeasurementID: cfg.GA4MeasurementID,
		GTMContainerID:   cfg.GTMContainerID,
		Debug:            cfg.Debug,
	}
}

// Env is the request-independent and request-scoped input shared by all builders.
type Env struct {
	Site         seo.Site
	Analytics    Analytics
	Path         string
	OpenDropdown string
	MobileOpen   bool
	Now          time.Time
	Rating       trust.Summary
}

// StaticView is a content page from the catalog (about, pricing, solutions, ...).
type StaticView struct {
	catalog.Page
}

// LeadForm is the state of the contact form: blank, redisplayed with errors,
// or replaced by a thank-you once sent.
type LeadForm struct {
	CSRFToken string
	Values    leads.Submission
	Errors    leads.FieldErrors
	Message   string
	Sent      bool
	Services  []string
}

// NewLeadForm prepares a form carrying token, with the service choices filled in.
func NewLeadForm(token string) LeadForm {
	services := make([]string, 0, len(catalog.KeyServices())+1)
	for _, svc := range catalog.KeyServices() {
		services = append(services, svc.Name)
	}
	return LeadForm{CSRFToken: token, Services: append(services, "Other")}
}

// ErrorView backs the 404 and 500 pages.
type ErrorView struct {
	Status  int
	Heading string
	Message string
}

func newPage(env Env, title, description string) PageData {
	path := env.Path
	if path == "" {
		path = "/"
	}
	menu := nav.Build(path, env.OpenDropdown)
	menu.MobileOpen = env.MobileOpen
	now := env.Now
	if now.IsZero() {
		now = time.Now()
	}
	return PageData{
		Title:       title,
		Path:        path,
		Site:        env.Site,
		SEO:         seo.NewMeta(env.Site, path, title, description),
		Analytics:   env.Analytics,
		Nav:         menu,
		Breadcrumbs: nav.Breadcrumbs(path),
		Year:        now.Year(),
		Rating:      env.Rating,
	}
}

func (p *PageData) addJSONLD(blocks ...map[string]any) {
	for _, b := range blocks {
		if raw := seo.JSON(b); raw != "" {
			p.JSONLD = append(p.JSONLD, template.JS(raw))
		}
	}
}

// pageSchema fills the options every page shares: URL, title, breadcrumbs and rating.
func (p *PageData) pageSchema(opts seo.PageOptions) seo.PageOptions {
	opts.URL = p.SEO.Canonical
	if opts.Title == "" {
		opts.Title = p.Title
	}
	if opts.Description == "" {
		opts.Description = p.SEO.Description
	}
	if len(opts.Breadcrumbs) == 0 {
		opts.Breadcrumbs = breadcrumbItems(p.Site, p.Breadcrumbs)
	}
	if opts.Rating == nil {
		opts.Rating = RatingFrom(p.Rating)
	}
	return opts
}

// RatingFrom converts the review summary into a JSON-LD rating. Without
// reviews there is no rating to claim.
func RatingFrom(s trust.Summary) *seo.Rating {
	if s.Total <= 0 {
		return nil
	}
	return &seo.Rating{Value: s.Average, Count: s.Total}
}

func breadcrumbItems(site seo.Site, crumbs []nav.Crumb) []seo.BreadcrumbItem {
	if len(crumbs) < 2 {
		return nil
	}
	items := make([]seo.BreadcrumbItem, 0, len(crumbs))
	for _, c := range crumbs {
		items = append(items, seo.BreadcrumbItem{Name: c.Label, Item: site.URL(c.Href)})
	}
	return items
}

func qa(faqs []catalog.FAQ) []seo.QA {
	out := make([]seo.QA, 0, len(faqs))
	for _, f := range faqs {
		out = append(out, seo.QA{Question: f.Question, Answer: f.Answer})
	}
	return out
}

// Static builds a catalog content page.
func Static(env Env, page catalog.Page) PageData {
	env.Path = page.Path
	vm := newPage(env, page.Title, page.Description)
	vm.Page = &StaticView{Page: page}

	kind := "WebPage"
	switch page.Path {
	case "/about":
		kind = "AboutPage"
	case "/contact":
		kind = "ContactPage"
	case "/case-studies", "/resources", "/locations", "/solutions":
		kind = "CollectionPage"
	}
	vm.addJSONLD(seo.PageSchema(env.Site, vm.pageSchema(seo.PageOptions{Kind: kind})))
	return vm
}

// Contact builds the contact page around form.
func Contact(env Env, page catalog.Page, form LeadForm) PageData {
	vm := Static(env, page)
	vm.Lead = &form
	return vm
}

// NotFound builds the 404 page. It is never indexed.
func NotFound(env Env) PageData {
	vm := newPage(env, "Page Not Found", "The page you are looking for does not exist or has moved.")
	vm.SEO = vm.SEO.NoIndex()
	vm.Breadcrumbs = nil
	vm.Error = &ErrorView{
		Status:  404,
		Heading: "We couldn't find that page",
		Message: "The page may have moved. Try our services, the blog, or head back home.",
	}
	return vm
}

// ServerError builds the 500 page.
func ServerError(env Env) PageData {
	vm := newPage(env, "Something Went Wrong", "An unexpected error occurred.")
	vm.SEO = vm.SEO.NoIndex()
	vm.Breadcrumbs = nil
	vm.Error = &ErrorView{
		Status:  500,
		Heading: "Something went wrong",
		Message: "We hit an unexpected error rendering this page. Please try again in a moment.",
	}
	return vm
}
