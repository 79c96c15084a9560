package handlers

import (
	"fmt"
	"sort"
	"strings"

	"webvello.com/site/internal/catalog"
	"webvello.com/site/internal/cms"
	"webvello.com/site/internal/nav"
	"webvello.com/site/internal/seo"
)

// categoryOrder mirrors the header menu.
var categoryOrder = []string{
	"Creative Solutions",
	"Intelligent Solutions",
	"Technical Solutions",
	"Marketing Solutions",
	"Conversion Optimization",
}

// ServiceCategory is a titled group of services.
type ServiceCategory struct {
	Name     string
	Slug     string
	Services []catalog.Service
}

// ServicesView is the /services index.
type ServicesView struct {
	Categories []ServiceCategory
	GeoPages   []catalog.GeoPage
}

// ServiceView is a /services/{slug} detail page.
type ServiceView struct {
	Service     catalog.Service
	Related     []catalog.Service
	Cities      []catalog.City
	RecentPosts []cms.Post
}

// GeoView is a /services/geo-{city} landing page.
type GeoView struct {
	Geo      catalog.GeoPage
	CitySlug string
	Services []catalog.Service
}

// CityView is a /{city} hub.
type CityView struct {
	City     catalog.City
	Services []catalog.Service
	Geo      *catalog.GeoPage
}

// CityServiceView is a /{city}/{service} combination page.
type CityServiceView struct {
	City     catalog.City
	Service  catalog.Service
	Headline string
	Intro    string
	FAQs     []catalog.FAQ
	Others   []catalog.Service
}

// Categories groups the catalog services in menu order. Unknown categories follow, sorted.
func Categories() []ServiceCategory {
	groups := catalog.ServicesByCategory()
	out := make([]ServiceCategory, 0, len(groups))
	seen := map[string]bool{}
	for _, name := range categoryOrder {
		if svcs, ok := groups[name]; ok {
			out = append(out, ServiceCategory{Name: name, Slug: categorySlug(name), Services: svcs})
			seen[name] = true
		}
	}
	var rest []string
	for name := range groups {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		out = append(out, ServiceCategory{Name: name, Slug: categorySlug(name), Services: groups[name]})
	}
	return out
}

// ServicesIndex builds /services.
func ServicesIndex(env Env) PageData {
	env.Path = "/services"
	vm := newPage(env,
		"Digital Marketing & Web Design Services",
		"Explore Web Vello services: website design, web development, SEO, local SEO, AI consulting and generative engine optimization.",
	)
	vm.Services = &ServicesView{Categories: Categories(), GeoPages: catalog.GeoPages()}
	vm.addJSONLD(seo.PageSchema(env.Site, vm.pageSchema(seo.PageOptions{Kind: "CollectionPage"})))
	return vm
}

// Service builds a service detail page.
func Service(env Env, svc catalog.Service, recent []cms.Post) PageData {
	env.Path = "/services/" + svc.Slug
	vm := newPage(env, svc.Name+" Services", svc.Summary)
	vm.SEO.Keywords = []string{strings.ToLower(svc.Name), strings.ToLower(svc.Name) + " agency", strings.ToLower(svc.Name) + " services"}
	vm.Breadcrumbs = serviceCrumbs(env.Path, svc.Name)

	var related []catalog.Service
	for _, s := range catalog.Services() {
		if s.Category == svc.Category && s.Slug != svc.Slug {
			related = append(related, s)
		}
	}
	var cities []catalog.City
	if isKeyService(svc.Slug) {
		cities = catalog.Cities()
	}
	vm.Service = &ServiceView{Service: svc, Related: related, Cities: cities, RecentPosts: recent}

	vm.addJSONLD(
		seo.PageSchema(env.Site, vm.pageSchema(seo.PageOptions{
			Service: svc.Name,
			FAQs:    qa(svc.FAQs),
		})),
		seo.HowTo("How we deliver "+svc.Name, svc.Summary, "P90D", processSteps(svc)),
	)
	return vm
}

// Geo builds a city GEO landing page.
func Geo(env Env, g catalog.GeoPage) PageData {
	env.Path = "/services/" + g.Slug
	vm := newPage(env, g.Title, g.Description)
	vm.SEO.Keywords = append([]string(nil), g.Keywords...)
	vm.Breadcrumbs = serviceCrumbs(env.Path, "GEO Services "+g.City)

	citySlug := geoCitySlug(g)
	vm.Geo = &GeoView{Geo: g, CitySlug: citySlug}
	for _, slug := range []string{"generative-engine-optimization", "chatgpt-optimization", "answer-engine-optimization", "local-seo"} {
		if s, ok := catalog.LookupService(slug); ok {
			vm.Geo.Services = append(vm.Geo.Services, s)
		}
	}

	vm.addJSONLD(seo.PageSchema(env.Site, vm.pageSchema(seo.PageOptions{
		Title:   g.Headline,
		Service: "Generative Engine Optimization",
		City:    &seo.Place{Slug: citySlug, Name: g.City, Region: g.State},
		FAQs:    qa(g.FAQs),
	})))
	return vm
}

// City builds a city hub listing the services offered there.
func City(env Env, city catalog.City) PageData {
	env.Path = "/" + city.Slug
	vm := newPage(env,
		fmt.Sprintf("Web Design & SEO Services in %s", city.FullName),
		fmt.Sprintf("Web Vello helps %s businesses win customers with website design, SEO, local SEO and AI search optimization.", city.Name),
	)
	vm.Breadcrumbs = []nav.Crumb{
		{Href: "/", Label: "Home"},
		{Href: "/locations", Label: "Locations"},
		{Href: env.Path, Label: city.FullName, Active: true},
	}
	view := &CityView{City: city, Services: catalog.KeyServices()}
	for _, g := range catalog.GeoPages() {
		if geoCitySlug(g) == city.Slug {
			g := g
			view.Geo = &g
			break
		}
	}
	vm.City = view

	vm.addJSONLD(seo.PageSchema(env.Site, vm.pageSchema(seo.PageOptions{
		Kind: "CollectionPage",
		City: &seo.Place{Slug: city.Slug, Name: city.Name, Region: city.State},
	})))
	return vm
}

// CityService builds a /{city}/{service} page.
func CityService(env Env, city catalog.City, svc catalog.Service) PageData {
	env.Path = "/" + city.Slug + "/" + svc.Slug
	title := fmt.Sprintf("%s in %s", svc.Name, city.FullName)
	vm := newPage(env, title,
		fmt.Sprintf("%s for %s businesses. %s. Local strategy, transparent pricing and measurable results.", svc.Name, city.Name, svc.Summary),
	)
	lower := strings.ToLower(svc.Name)
	cityLower := strings.ToLower(city.Name)
	vm.SEO.Keywords = []string{
		lower + " " + cityLower,
		cityLower + " " + lower + " agency",
		lower + " near me",
	}
	vm.Breadcrumbs = []nav.Crumb{
		{Href: "/", Label: "Home"},
		{Href: "/" + city.Slug, Label: city.FullName},
		{Href: env.Path, Label: svc.Name, Active: true},
	}

	faqs := cityServiceFAQs(city, svc)
	view := &CityServiceView{
		City:     city,
		Service:  svc,
		Headline: fmt.Sprintf("%s for %s Businesses", svc.Name, city.Name),
		Intro: fmt.Sprintf("%s companies compete for attention on Google, in Maps and in AI answers. Our %s team builds a plan around the %s market: %s.",
			city.Name, lower, city.Name, industriesPhrase(city.Industries)),
		FAQs: faqs,
	}
	for _, s := range catalog.KeyServices() {
		if s.Slug != svc.Slug {
			view.Others = append(view.Others, s)
		}
	}
	vm.CityService = view

	vm.addJSONLD(seo.PageSchema(env.Site, vm.pageSchema(seo.PageOptions{
		Service: svc.Name,
		City:    &seo.Place{Slug: city.Slug, Name: city.Name, Region: city.State},
		FAQs:    qa(faqs),
	})))
	return vm
}

func cityServiceFAQs(city catalog.City, svc catalog.Service) []catalog.FAQ {
	return []catalog.FAQ{
		{
			Question: fmt.Sprintf("How much does %s cost in %s?", svc.Name, city.Name),
			Answer:   fmt.Sprintf("Pricing depends on scope. Most %s engagements for %s businesses start with a free audit and a fixed monthly or project fee agreed up front.", svc.Name, city.Name),
		},
		{
			Question: fmt.Sprintf("Do you work with %s businesses in person?", city.Name),
			Answer:   fmt.Sprintf("We work remotely with clients across %s and schedule on-site workshops when a project needs them.", city.FullName),
		},
		{
			Question: fmt.Sprintf("Which %s industries do you serve?", city.Name),
			Answer:   fmt.Sprintf("We regularly work with %s companies in %s, along with most other local service and B2B sectors.", city.Name, industriesPhrase(city.Industries)),
		},
	}
}

func serviceCrumbs(path, label string) []nav.Crumb {
	return []nav.Crumb{
		{Href: "/", Label: "Home"},
		{Href: "/services", Label: "Services"},
		{Href: path, Label: label, Active: true},
	}
}

func processSteps(svc catalog.Service) []seo.HowToStep {
	steps := make([]seo.HowToStep, 0, len(svc.Process))
	for _, p := range svc.Process {
		steps = append(steps, seo.HowToStep{Name: p, Text: p + " for " + svc.Name})
	}
	return steps
}

func isKeyService(slug string) bool {
	for _, s := range catalog.KeyServices() {
		if s.Slug == slug {
			return true
		}
	}
	return false
}

// geoCitySlug maps a GEO page to its city hub ("New York", "NY" -> "new-york-ny").
func geoCitySlug(g catalog.GeoPage) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(g.City), " ", "-") + "-" + strings.TrimSpace(g.State))
}

func categorySlug(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", "-"))
}

func industriesPhrase(industries []string) string {
	switch len(industries) {
	case 0:
		return "every local industry"
	case 1:
		return strings.ToLower(industries[0])
	}
	lowered := make([]string, len(industries))
	for i, s := range industries {
		lowered[i] = strings.ToLower(s)
	}
	return strings.Join(lowered[:len(lowered)-1], ", ") + " and " + lowered[len(lowered)-1]
}
