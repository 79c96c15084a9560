package seo

import (
	"encoding/json"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const schemaContext = "https://schema.org"

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Rating is an aggregate star rating.
type Rating struct {
	Value float64
	Count int
}

func (r Rating) schema() map[string]any {
	return map[string]any{
		"@type":       "AggregateRating",
		"ratingValue": strconv.FormatFloat(r.Value, 'f', 1, 64),
		"reviewCount": strconv.Itoa(r.Count),
		"bestRating":  "5",
		"worstRating": "1",
	}
}

func orgID(site Site) string { return site.BaseURL + "/#organization" }

// Organization returns the site-wide Organization schema.
func Organization(site Site, rating *Rating) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "Organization",
		"@id":      orgID(site),
		"name":     site.Name,
		"url":      site.BaseURL,
		"description": "Digital Marketing Agency specializing in AI-powered SEO, local search optimization, " +
			"and conversion-focused web development.",
		"slogan": "Design. Develop. Dominate.",
	}
	if site.Logo != "" {
		m["logo"] = map[string]any{"@type": "ImageObject", "url": site.URL(site.Logo)}
	}
	if site.Phone != "" || site.Email != "" {
		contact := map[string]any{
			"@type":             "ContactPoint",
			"contactType":       "customer service",
			"areaServed":        "US",
			"availableLanguage": []string{"English"},
		}
		if site.Phone != "" {
			contact["telephone"] = site.Phone
		}
		if site.Email != "" {
			contact["email"] = site.Email
		}
		m["contactPoint"] = contact
	}
	if len(site.SameAs) > 0 {
		m["sameAs"] = site.SameAs
	}
	if rating != nil && rating.Count > 0 {
		m["aggregateRating"] = rating.schema()
	}
	return m
}

// WebSite returns a minimal WebSite schema with optional SearchAction.
func WebSite(site Site, searchActionURL string) map[string]any {
	m := map[string]any{
		"@context":  schemaContext,
		"@type":     "WebSite",
		"@id":       site.BaseURL + "/#website",
		"name":      site.Name,
		"url":       site.BaseURL,
		"publisher": map[string]any{"@id": orgID(site)},
	}
	if searchActionURL != "" {
		m["potentialAction"] = map[string]any{
			"@type":       "SearchAction",
			"target":      searchActionURL + "{search_term_string}",
			"query-input": "required name=search_term_string",
		}
	}
	return m
}

// Place is a city a local page targets.
type Place struct {
	Slug   string
	Name   string // derived from Slug when empty
	Region string
}

// LocalBusiness returns a ProfessionalService schema for a city page.
func LocalBusiness(site Site, place Place, rating *Rating) map[string]any {
	name := place.Name
	if name == "" {
		name = titleFromSlug(place.Slug)
	}
	url := site.URL("/" + place.Slug)
	address := map[string]any{
		"@type":           "PostalAddress",
		"addressLocality": name,
		"addressCountry":  "US",
	}
	if place.Region != "" {
		address["addressRegion"] = place.Region
	}
	m := map[string]any{
		"@context":   schemaContext,
		"@type":      "ProfessionalService",
		"@id":        url + "#localbusiness",
		"name":       site.Name + " - " + name,
		"url":        url,
		"priceRange": "$$",
		"address":    address,
		"areaServed": map[string]any{"@type": "City", "name": name},
		"serviceType": []string{
			"Web Design",
			"Web Development",
			"SEO Services",
			"Local SEO",
			"Digital Marketing",
		},
		"openingHoursSpecification": []map[string]any{{
			"@type":     "OpeningHoursSpecification",
			"dayOfWeek": []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
			"opens":     "09:00",
			"closes":    "18:00",
		}},
	}
	if site.Logo != "" {
		m["image"] = site.URL(site.Logo)
	}
	if site.Phone != "" {
		m["telephone"] = site.Phone
	}
	if site.Email != "" {
		m["email"] = site.Email
	}
	if rating != nil && rating.Count > 0 {
		m["aggregateRating"] = rating.schema()
	}
	return m
}

// ServiceOptions describes a service offering.
type ServiceOptions struct {
	URL         string
	Name        string
	ServiceType string
	Description string
	City        string
	Rating      *Rating
}

// Service returns a Service schema with an offer catalog.
func Service(site Site, opts ServiceOptions) map[string]any {
	serviceType := opts.ServiceType
	if serviceType == "" {
		serviceType = opts.Name
	}
	area := map[string]any{"@type": "Country", "name": "United States"}
	if opts.City != "" {
		area = map[string]any{"@type": "City", "name": opts.City}
	}
	m := map[string]any{
		"@context":    schemaContext,
		"@type":       "Service",
		"@id":         opts.URL + "#service",
		"serviceType": serviceType,
		"name":        opts.Name,
		"description": opts.Description,
		"url":         opts.URL,
		"provider": map[string]any{
			"@type": "Organization",
			"@id":   orgID(site),
			"name":  site.Name,
		},
		"areaServed": area,
		"hasOfferCatalog": map[string]any{
			"@type": "OfferCatalog",
			"name":  serviceType + " Services",
			"itemListElement": []map[string]any{{
				"@type": "Offer",
				"itemOffered": map[string]any{
					"@type":       "Service",
					"name":        opts.Name,
					"description": opts.Description,
				},
			}},
		},
	}
	if opts.Rating != nil && opts.Rating.Count > 0 {
		m["aggregateRating"] = opts.Rating.schema()
	}
	return m
}

// ArticleOptions describes a blog post.
type ArticleOptions struct {
	URL           string
	Headline      string
	Description   string
	Image         string
	Author        string
	DatePublished string
	DateModified  string
	Keywords      []string
	Section       string
}

// Article returns an Article schema for a blog post.
func Article(site Site, opts ArticleOptions) map[string]any {
	author := opts.Author
	if author == "" {
		author = site.Name + " Team"
	}
	section := opts.Section
	if section == "" {
		section = "Digital Marketing"
	}
	m := map[string]any{
		"@context":    schemaContext,
		"@type":       "Article",
		"@id":         opts.URL + "#article",
		"headline":    opts.Headline,
		"description": opts.Description,
		"author": map[string]any{
			"@type": "Person",
			"name":  author,
			"url":   site.URL("/about"),
		},
		"publisher": map[string]any{
			"@type": "Organization",
			"@id":   orgID(site),
			"name":  site.Name,
		},
		"mainEntityOfPage": map[string]any{"@type": "WebPage", "@id": opts.URL},
		"articleSection":   section,
		"inLanguage":       "en-US",
	}
	if opts.Image != "" {
		m["image"] = map[string]any{"@type": "ImageObject", "url": site.URL(opts.Image), "width": 1200, "height": 630}
	}
	if opts.DatePublished != "" {
		m["datePublished"] = opts.DatePublished
	}
	if opts.DateModified != "" {
		m["dateModified"] = opts.DateModified
	} else if opts.DatePublished != "" {
		m["dateModified"] = opts.DatePublished
	}
	if len(opts.Keywords) > 0 {
		m["keywords"] = strings.Join(opts.Keywords, ", ")
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// QA is a question with its answer.
type QA struct {
	Question string
	Answer   string
}

// FAQPage builds a FAQPage schema.
func FAQPage(faqs []QA) map[string]any {
	entities := make([]map[string]any, 0, len(faqs))
	for _, f := range faqs {
		entities = append(entities, map[string]any{
			"@type": "Question",
			"name":  f.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  f.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   schemaContext,
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}

// ReviewItem is a single testimonial in review markup.
type ReviewItem struct {
	Author        string
	Rating        int
	Body          string
	DatePublished string
}

// ReviewAggregate returns review markup for the agency's services.
func ReviewAggregate(site Site, reviews []ReviewItem, rating Rating) map[string]any {
	items := make([]map[string]any, 0, len(reviews))
	for _, r := range reviews {
		items = append(items, map[string]any{
			"@type":  "Review",
			"author": map[string]any{"@type": "Person", "name": r.Author},
			"reviewRating": map[string]any{
				"@type":       "Rating",
				"ratingValue": strconv.Itoa(r.Rating),
				"bestRating":  "5",
				"worstRating": "1",
			},
			"reviewBody":    r.Body,
			"datePublished": r.DatePublished,
		})
	}
	return map[string]any{
		"@context":        schemaContext,
		"@type":           "Product",
		"name":            site.Name + " Digital Marketing Services",
		"aggregateRating": rating.schema(),
		"review":          items,
	}
}

// HowToStep is a single step in a HowTo.
type HowToStep struct {
	Name string
	Text string
	URL  string
}

// HowTo builds a HowTo schema. totalTime defaults to P7D.
func HowTo(name, description, totalTime string, steps []HowToStep) map[string]any {
	if totalTime == "" {
		totalTime = "P7D"
	}
	el := make([]map[string]any, 0, len(steps))
	for i, s := range steps {
		step := map[string]any{
			"@type":    "HowToStep",
			"position": i + 1,
			"name":     s.Name,
			"text":     s.Text,
		}
		if s.URL != "" {
			step["url"] = s.URL
		}
		el = append(el, step)
	}
	return map[string]any{
		"@context":    schemaContext,
		"@type":       "HowTo",
		"name":        name,
		"description": description,
		"totalTime":   totalTime,
		"step":        el,
	}
}

// PageOptions selects the blocks PageSchema composes.
type PageOptions struct {
	Kind        string // WebPage subtype, e.g. "AboutPage"; defaults to "WebPage"
	URL         string
	Title       string
	Description string
	Image       string
	Service     string
	City        *Place
	Breadcrumbs []BreadcrumbItem
	FAQs        []QA
	Reviews     []ReviewItem
	Rating      *Rating
}

// WebPage returns a WebPage (or subtype) schema.
func WebPage(site Site, opts PageOptions) map[string]any {
	kind := opts.Kind
	if kind == "" {
		kind = "WebPage"
	}
	about := opts.Service
	if about == "" {
		about = "Digital Marketing"
	}
	image := opts.Image
	if image == "" {
		image = site.DefaultImage
	}
	m := map[string]any{
		"@context":    schemaContext,
		"@type":       kind,
		"@id":         opts.URL + "#webpage",
		"url":         opts.URL,
		"name":        opts.Title,
		"description": opts.Description,
		"isPartOf":    map[string]any{"@type": "WebSite", "@id": site.BaseURL + "/#website"},
		"about":       map[string]any{"@type": "Thing", "name": about},
		"inLanguage":  "en-US",
	}
	if image != "" {
		m["primaryImageOfPage"] = map[string]any{"@type": "ImageObject", "url": site.URL(image)}
	}
	return m
}

// PageSchema composes an @graph: Organization and WebPage always, then Service,
// LocalBusiness, BreadcrumbList, FAQPage and review blocks when their inputs are set.
func PageSchema(site Site, opts PageOptions) map[string]any {
	graph := []map[string]any{
		Organization(site, opts.Rating),
		WebPage(site, opts),
	}
	if opts.Service != "" {
		city := ""
		if opts.City != nil {
			city = opts.City.Name
			if city == "" {
				city = titleFromSlug(opts.City.Slug)
			}
		}
		graph = append(graph, Service(site, ServiceOptions{
			URL:         opts.URL,
			Name:        opts.Title,
			ServiceType: opts.Service,
			Description: opts.Description,
			City:        city,
			Rating:      opts.Rating,
		}))
	}
	if opts.City != nil {
		graph = append(graph, LocalBusiness(site, *opts.City, opts.Rating))
	}
	if len(opts.Breadcrumbs) > 0 {
		graph = append(graph, BreadcrumbList(opts.Breadcrumbs))
	}
	if len(opts.FAQs) > 0 {
		graph = append(graph, FAQPage(opts.FAQs))
	}
	if len(opts.Reviews) > 0 && opts.Rating != nil {
		graph = append(graph, ReviewAggregate(site, opts.Reviews, *opts.Rating))
	}
	for _, node := range graph {
		delete(node, "@context")
	}
	return map[string]any{
		"@context": schemaContext,
		"@graph":   graph,
	}
}

func titleFromSlug(slug string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}
