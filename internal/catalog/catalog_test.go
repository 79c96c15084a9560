package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookupsNormaliseSlugs(t *testing.T) {
	city, ok := LookupCity("  Austin-TX ")
	require.True(t, ok)
	require.Equal(t, "Austin, TX", city.FullName)

	svc, ok := LookupService("SEO")
	require.True(t, ok)
	require.Equal(t, "SEO Services", svc.Name)

	_, ok = LookupIndustry("realestate")
	require.True(t, ok)

	_, ok = LookupGeoPage("geo-atlantis")
	require.False(t, ok)
}

func TestAccessorsReturnCopies(t *testing.T) {
	svc, ok := LookupService("website-design")
	require.True(t, ok)
	svc.Benefits[0] = "mutated"
	svc.FAQs[0].Question = "mutated"

	again, _ := LookupService("website-redesign")
	require.NotEqual(t, "mutated", again.Benefits[0])
	require.NotEqual(t, "mutated", again.FAQs[0].Question)

	faqs := HomeFAQs()
	faqs[0].Answer = ""
	require.NotEmpty(t, HomeFAQs()[0].Answer)
}

func TestListingsAreSortedAndComplete(t *testing.T) {
	cities := Cities()
	require.Len(t, cities, 37)
	for i := 1; i < len(cities); i++ {
		require.LessOrEqual(t, cities[i-1].Name, cities[i].Name)
	}

	require.Len(t, Industries(), 16)

	services := Services()
	require.Len(t, services, 27)
	for _, s := range services {
		require.NotEmpty(t, s.Summary, s.Slug)
		require.Len(t, s.Process, 4, s.Slug)
	}

	geo := GeoPages()
	require.NotEmpty(t, geo)
	for _, g := range geo {
		require.True(t, strings.HasPrefix(g.Slug, "geo-"))
		require.NotEmpty(t, g.FAQs, g.Slug)
		require.NotEmpty(t, g.Neighborhoods, g.Slug)
	}
}

func TestServicesByCategory(t *testing.T) {
	groups := ServicesByCategory()
	require.Contains(t, groups, "Intelligent Solutions")
	names := make([]string, 0)
	for _, s := range groups["Conversion Optimization"] {
		names = append(names, s.Slug)
	}
	require.Equal(t, []string{"cro-ecommerce", "cro-lead-generation"}, names)
}

func TestCitiesForIndustry(t *testing.T) {
	cities := CitiesForIndustry("aerospace")
	var slugs []string
	for _, c := range cities {
		slugs = append(slugs, c.Slug)
	}
	require.ElementsMatch(t, []string{"fort-worth-tx", "seattle-wa", "oklahoma-city-ok"}, slugs)
}

func TestLookupPage(t *testing.T) {
	p, ok := LookupPage("/pricing")
	require.True(t, ok)
	require.Equal(t, PageCore, p.Kind)

	_, ok = LookupPage("/nope")
	require.False(t, ok)
}

func TestLookupCityService(t *testing.T) {
	require.Len(t, KeyServices(), 8)

	city, svc, ok := LookupCityService("Austin-TX", "local-seo")
	require.True(t, ok)
	require.Equal(t, "Austin", city.Name)
	require.Equal(t, "Local SEO", svc.Name)

	_, _, ok = LookupCityService("austin-tx", "shopify-development")
	require.False(t, ok, "only key services have city pages")

	_, _, ok = LookupCityService("atlantis", "seo")
	require.False(t, ok)
}
