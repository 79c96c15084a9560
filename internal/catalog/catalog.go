// Package catalog holds the literal site data shared by page renderers, the
// sitemap and the navigation: cities, industries, services, GEO landing pages
// and FAQs. Accessors hand out copies so callers can never mutate the tables.
package catalog

import (
	"slices"
	"sort"
	"strings"
)

// FAQ is a question/answer pair rendered in FAQ sections and FAQPage JSON-LD.
type FAQ struct {
	Question string
	Answer   string
}

// Named is a labelled blurb (industry served, neighborhood highlight, ...).
type Named struct {
	Name        string
	Description string
}

// City is a metro area the agency targets with city × service pages.
type City struct {
	Slug       string
	Name       string
	State      string
	FullName   string
	Population string
	Industries []string
}

// Industry is a vertical with its own landing page.
type Industry struct {
	Slug        string
	Name        string
	Description string
}

// Service is an offering with a detail page under /services/{slug}.
type Service struct {
	Slug       string
	Name       string
	Category   string
	Summary    string
	LongDesc   string
	Benefits   []string
	Process    []string
	Industries []string
	FAQs       []FAQ
}

// GeoPage is a city-specific generative engine optimization landing page.
type GeoPage struct {
	Slug          string
	City          string
	State         string
	Title         string
	Description   string
	Keywords      []string
	Headline      string
	Intro         string
	Industries    []Named
	Neighborhoods []string
	FAQs          []FAQ
}

// Cities returns every city sorted by name.
func Cities() []City {
	out := make([]City, 0, len(cities))
	for _, c := range cities {
		out = append(out, c.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupCity finds a city by slug.
func LookupCity(slug string) (City, bool) {
	c, ok := cities[normalize(slug)]
	if !ok {
		return City{}, false
	}
	return c.clone(), true
}

// Industries returns every industry sorted by name.
func Industries() []Industry {
	out := make([]Industry, 0, len(industries))
	for _, ind := range industries {
		out = append(out, ind)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// LookupIndustry finds an industry by slug.
func LookupIndustry(slug string) (Industry, bool) {
	ind, ok := industries[normalize(slug)]
	return ind, ok
}

// Services returns every service grouped by category, then name.
func Services() []Service {
	out := make([]Service, 0, len(services))
	for _, s := range services {
		out = append(out, s.clone())
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// LookupService finds a service by slug.
func LookupService(slug string) (Service, bool) {
	s, ok := services[normalize(slug)]
	if !ok {
		return Service{}, false
	}
	return s.clone(), true
}

// ServicesByCategory buckets services under their category in display order.
func ServicesByCategory() map[string][]Service {
	out := map[string][]Service{}
	for _, s := range Services() {
		out[s.Category] = append(out[s.Category], s)
	}
	return out
}

// GeoPages returns every GEO landing page sorted by city.
func GeoPages() []GeoPage {
	out := make([]GeoPage, 0, len(geoPages))
	for _, g := range geoPages {
		out = append(out, g.clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].City < out[j].City })
	return out
}

// LookupGeoPage finds a GEO landing page by slug ("geo-austin").
func LookupGeoPage(slug string) (GeoPage, bool) {
	g, ok := geoPages[normalize(slug)]
	if !ok {
		return GeoPage{}, false
	}
	return g.clone(), true
}

// HomeFAQs returns the homepage FAQ block.
func HomeFAQs() []FAQ {
	return slices.Clone(homeFAQs)
}

// CitiesForIndustry lists cities whose key industries include the named industry.
func CitiesForIndustry(name string) []City {
	var out []City
	for _, c := range Cities() {
		for _, ind := range c.Industries {
			if strings.EqualFold(ind, name) {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

func normalize(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}

func (c City) clone() City {
	c.Industries = slices.Clone(c.Industries)
	return c
}

func (s Service) clone() Service {
	s.Benefits = slices.Clone(s.Benefits)
	s.Process = slices.Clone(s.Process)
	s.Industries = slices.Clone(s.Industries)
	s.FAQs = slices.Clone(s.FAQs)
	return s
}

func (g GeoPage) clone() GeoPage {
	g.Keywords = slices.Clone(g.Keywords)
	g.Industries = slices.Clone(g.Industries)
	g.Neighborhoods = slices.Clone(g.Neighborhoods)
	g.FAQs = slices.Clone(g.FAQs)
	return g
}

// keyServices are the offerings with a page per city (/{city}/{service}).
var keyServices = []string{
	"website-design",
	"web-development",
	"seo",
	"local-seo",
	"digital-marketing",
	"ai-seo",
	"ai-consulting",
	"ui-ux-design",
}

// KeyServices returns the services that get city × service pages, in menu order.
func KeyServices() []Service {
	out := make([]Service, 0, len(keyServices))
	for _, slug := range keyServices {
		if s, ok := services[slug]; ok {
			out = append(out, s.clone())
		}
	}
	return out
}

// LookupCityService resolves a city × service page. Only key services qualify.
func LookupCityService(citySlug, serviceSlug string) (City, Service, bool) {
	city, ok := LookupCity(citySlug)
	if !ok {
		return City{}, Service{}, false
	}
	key := normalize(serviceSlug)
	if !slices.Contains(keyServices, key) {
		return City{}, Service{}, false
	}
	svc, ok := LookupService(key)
	if !ok {
		return City{}, Service{}, false
	}
	return city, svc, true
}
