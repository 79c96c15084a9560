package handlers

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"webvello.com/site/internal/catalog"
	"webvello.com/site/internal/cms"
	"webvello.com/site/internal/seo"
	"webvello.com/site/internal/trust"
)

func testEnv() Env {
	return Env{
		Site: seo.Site{
			Name:         "Web Vello",
			BaseURL:      "https://webvello.com",
			DefaultImage: "/assets/og-default.png",
		},
		Now: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func jsonLD(vm PageData) string {
	parts := make([]string, 0, len(vm.JSONLD))
	for _, js := range vm.JSONLD {
		parts = append(parts, string(js))
	}
	return strings.Join(parts, "\n")
}

func TestCategoriesOrder(t *testing.T) {
	cats := Categories()
	require.GreaterOrEqual(t, len(cats), len(categoryOrder))
	for i, name := range categoryOrder {
		require.Equal(t, name, cats[i].Name)
		require.NotEmpty(t, cats[i].Services)
	}
	require.Equal(t, "creative-solutions", cats[0].Slug)
}

func TestHomeSchemaAndTestimonials(t *testing.T) {
	widgets := trust.Widgets{
		Testimonials: trust.Result[trust.Testimonial]{
			Status: trust.StatusReady,
			Items: []trust.Testimonial{
				{ID: "a", Name: "Ana", Rating: 5, Content: "Great"},
				{ID: "b", Name: "Ben", Rating: 4, Content: "Good"},
			},
		},
		Summary: trust.Summary{Average: 4.9, Total: 120},
	}
	vm := Home(testEnv(), widgets, nil)

	require.Equal(t, "/", vm.Path)
	require.Equal(t, 2025, vm.Year)
	require.NotNil(t, vm.Home)
	require.Equal(t, "Ana", vm.Home.Testimonials.Current.Name)
	require.Equal(t, 1, vm.Home.Testimonials.NextIndex)
	require.Equal(t, 1, vm.Home.Testimonials.PrevIndex)

	ld := jsonLD(vm)
	require.Contains(t, ld, `"@type":"Organization"`)
	require.Contains(t, ld, `"@type":"WebSite"`)
	require.Contains(t, ld, `"@type":"FAQPage"`)
	require.Contains(t, ld, "AggregateRating")
}

func TestHomeWithoutReviewsOmitsRating(t *testing.T) {
	widgets := trust.Widgets{
		Testimonials: trust.Result[trust.Testimonial]{Status: trust.StatusUnavailable, Err: errors.New("down")},
	}
	vm := Home(testEnv(), widgets, nil)
	require.Equal(t, trust.StatusUnavailable, vm.Home.Testimonials.Status)
	require.NotContains(t, jsonLD(vm), "AggregateRating")
}

func TestTestimonialsWraps(t *testing.T) {
	res := trust.Result[trust.Testimonial]{
		Status: trust.StatusReady,
		Items:  []trust.Testimonial{{Name: "a"}, {Name: "b"}, {Name: "c"}},
	}
	view := Testimonials(res, 5)
	require.Equal(t, "c", view.Current.Name)
	require.Equal(t, 0, view.NextIndex)
	require.Equal(t, 1, view.PrevIndex)

	empty := Testimonials(trust.Result[trust.Testimonial]{Status: trust.StatusReady}, 0)
	require.Empty(t, empty.Current.Name)
}

func TestServicePage(t *testing.T) {
	svc, ok := catalog.LookupService("local-seo")
	require.True(t, ok)
	vm := Service(testEnv(), svc, nil)

	require.Equal(t, "/services/local-seo", vm.Path)
	require.Equal(t, "https://webvello.com/services/local-seo", vm.SEO.Canonical)
	require.NotNil(t, vm.Service)
	require.NotEmpty(t, vm.Service.Cities)
	for _, r := range vm.Service.Related {
		require.NotEqual(t, svc.Slug, r.Slug)
		require.Equal(t, svc.Category, r.Category)
	}
	require.Len(t, vm.Breadcrumbs, 3)
	ld := jsonLD(vm)
	require.Contains(t, ld, `"@type":"Service"`)
	require.Contains(t, ld, `"@type":"HowTo"`)
	require.Contains(t, ld, `"@type":"BreadcrumbList"`)
}

func TestGeoPageLinksCityHub(t *testing.T) {
	pages := catalog.GeoPages()
	require.NotEmpty(t, pages)
	vm := Geo(testEnv(), pages[0])
	require.Equal(t, "/services/"+pages[0].Slug, vm.Path)
	require.NotEmpty(t, vm.Geo.CitySlug)
	require.NotEmpty(t, vm.Geo.Services)
	require.Contains(t, jsonLD(vm), "ProfessionalService")
}

func TestCityServicePage(t *testing.T) {
	city, svc, ok := catalog.LookupCityService("austin-tx", "seo")
	require.True(t, ok)
	vm := CityService(testEnv(), city, svc)

	require.Equal(t, "/austin-tx/seo", vm.Path)
	require.Contains(t, vm.Title, "Austin")
	require.Len(t, vm.CityService.FAQs, 3)
	for _, o := range vm.CityService.Others {
		require.NotEqual(t, "seo", o.Slug)
	}
	ld := jsonLD(vm)
	require.Contains(t, ld, "https://webvello.com/austin-tx#localbusiness")
	require.Contains(t, ld, `"@type":"FAQPage"`)
}

func TestCityHub(t *testing.T) {
	city, ok := catalog.LookupCity("austin-tx")
	require.True(t, ok)
	vm := City(testEnv(), city)
	require.Equal(t, "/austin-tx", vm.Path)
	require.Len(t, vm.City.Services, len(catalog.KeyServices()))
	require.Equal(t, "Locations", vm.Breadcrumbs[1].Label)
}

func TestIndustryFallsBackToKeyServices(t *testing.T) {
	ind, ok := catalog.LookupIndustry("aerospace")
	require.True(t, ok)
	vm := Industry(testEnv(), ind, nil)
	require.NotEmpty(t, vm.Industry.Services)
	require.Len(t, vm.Industry.FAQs, 2)
}

func TestBlogIndexFeaturesNewest(t *testing.T) {
	posts := []cms.Post{{Slug: "new"}, {Slug: "old"}}
	vm := BlogIndex(testEnv(), posts, cms.ListOptions{})
	require.NotNil(t, vm.Blog.Featured)
	require.Equal(t, "new", vm.Blog.Featured.Slug)
	require.Len(t, vm.Blog.Posts, 1)
	require.Equal(t, "index, follow", vm.SEO.Robots)

	filtered := BlogIndex(testEnv(), posts, cms.ListOptions{Search: "seo"})
	require.Nil(t, filtered.Blog.Featured)
	require.Len(t, filtered.Blog.Posts, 2)
	require.Equal(t, "seo", filtered.Blog.Query)
	require.Contains(t, filtered.SEO.Robots, "noindex")
}

func TestPostOverrides(t *testing.T) {
	post := cms.Post{
		Slug:        "geo-guide",
		Title:       "The GEO Guide",
		Summary:     "summary",
		Author:      "Dana",
		HTML:        "<p>hi</p>",
		HeroImage:   "/assets/blog/geo.png",
		PublishedAt: time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC),
		SEO:         cms.SEO{Title: "GEO Guide 2025", Description: "override"},
	}
	vm := Post(testEnv(), post, nil)

	require.Equal(t, "GEO Guide 2025 | Web Vello", vm.SEO.Title)
	require.Equal(t, "override", vm.SEO.Description)
	require.Equal(t, "article", vm.SEO.OG.Type)
	require.Equal(t, "https://webvello.com/assets/blog/geo.png", vm.SEO.OG.Image)
	require.Equal(t, "The GEO Guide", vm.Breadcrumbs[len(vm.Breadcrumbs)-1].Label)
	require.EqualValues(t, "<p>hi</p>", vm.Post.HTML)

	ld := jsonLD(vm)
	require.Contains(t, ld, `"@type":"Article"`)
	require.Contains(t, ld, `"datePublished":"2025-01-16T00:00:00Z"`)
}

func TestStaticAndErrorPages(t *testing.T) {
	page, ok := catalog.LookupPage("/about")
	require.True(t, ok)
	vm := Static(testEnv(), page)
	require.Contains(t, jsonLD(vm), "AboutPage")

	nf := NotFound(testEnv())
	require.Equal(t, 404, nf.Error.Status)
	require.Contains(t, nf.SEO.Robots, "noindex")
	require.Nil(t, nf.Breadcrumbs)

	se := ServerError(testEnv())
	require.Equal(t, 500, se.Error.Status)
}

func TestContactCarriesLeadForm(t *testing.T) {
	page, ok := catalog.LookupPage("/contact")
	require.True(t, ok)

	form := NewLeadForm("token-1")
	require.Equal(t, "Other", form.Services[len(form.Services)-1])
	require.Equal(t, len(catalog.KeyServices())+1, len(form.Services))

	vm := Contact(testEnv(), page, form)
	require.NotNil(t, vm.Lead)
	require.Equal(t, "token-1", vm.Lead.CSRFToken)
	require.Contains(t, jsonLD(vm), "ContactPage")
	require.Nil(t, Static(testEnv(), page).Lead)
}

func TestRatingFrom(t *testing.T) {
	require.Nil(t, RatingFrom(trust.Summary{}))
	r := RatingFrom(trust.Summary{Average: 4.8, Total: 10})
	require.NotNil(t, r)
	require.Equal(t, 10, r.Count)
}

func TestIndustriesPhrase(t *testing.T) {
	require.Equal(t, "every local industry", industriesPhrase(nil))
	require.Equal(t, "tech", industriesPhrase([]string{"Tech"}))
	require.Equal(t, "a, b and c", industriesPhrase([]string{"A", "B", "C"}))
}
