package sitemap

import (
	"encoding/xml"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"webvello.com/site/internal/catalog"
	"webvello.com/site/internal/cms"
	"webvello.com/site/internal/seo"
)

var testSite = seo.Site{Name: "Web Vello", BaseURL: "https://www.webvello.com"}

func byLoc(entries []Entry) map[string]Entry {
	out := make(map[string]Entry, len(entries))
	for _, e := range entries {
		out[e.Loc] = e
	}
	return out
}

func TestBuildAssignsTiers(t *testing.T) {
	published := time.Date(2025, 1, 16, 0, 0, 0, 0, time.UTC)
	posts := []cms.Post{{Slug: "geo-vs-seo-differences-2025", PublishedAt: published, UpdatedAt: published}}

	entries := Build(testSite, CatalogInput(posts))
	m := byLoc(entries)

	home := m["https://www.webvello.com"]
	require.Equal(t, 1.0, home.Priority)
	require.Equal(t, Weekly, home.ChangeFreq)
	require.Equal(t, home, entries[0], "home sorts first")

	require.Equal(t, 0.8, m["https://www.webvello.com/pricing"].Priority)
	require.Equal(t, Monthly, m["https://www.webvello.com/pricing"].ChangeFreq)

	privacy := m["https://www.webvello.com/privacy"]
	require.Equal(t, 0.5, privacy.Priority)
	require.Equal(t, Yearly, privacy.ChangeFreq)

	require.Equal(t, 0.7, m["https://www.webvello.com/services/local-seo"].Priority)
	require.Equal(t, 0.7, m["https://www.webvello.com/services/geo-austin"].Priority)
	require.Equal(t, 0.6, m["https://www.webvello.com/austin-tx/local-seo"].Priority)
	require.Equal(t, SectionLocations, m["https://www.webvello.com/austin-tx/local-seo"].Section)

	blog := m["https://www.webvello.com/blog"]
	require.Equal(t, 0.7, blog.Priority)
	require.Equal(t, Weekly, blog.ChangeFreq)
	require.Equal(t, published, blog.LastMod)

	post := m["https://www.webvello.com/blog/geo-vs-seo-differences-2025"]
	require.Equal(t, 0.6, post.Priority)
	require.Equal(t, published, post.LastMod)
	require.Equal(t, SectionBlog, post.Section)

	wantCityPages := len(catalog.Cities()) * (1 + len(catalog.KeyServices()))
	require.Len(t, Filter(entries, SectionLocations), wantCityPages)
}

func TestBuildDeduplicatesAndSorts(t *testing.T) {
	in := Input{
		Pages: []catalog.Page{
			{Path: "/about", Kind: catalog.PageCore},
			{Path: "/about", Kind: catalog.PageLegal},
			{Path: "/terms", Kind: catalog.PageLegal},
		},
	}
	entries := Build(testSite, in)

	locs := make([]string, 0, len(entries))
	for _, e := range entries {
		locs = append(locs, e.Loc)
	}
	require.Equal(t, []string{
		"https://www.webvello.com",
		"https://www.webvello.com/about",
		"https://www.webvello.com/industries",
		"https://www.webvello.com/services",
		"https://www.webvello.com/blog",
		"https://www.webvello.com/terms",
	}, locs)
	require.Equal(t, 0.8, entries[1].Priority, "first occurrence wins")
}

func TestBuildCapsEntries(t *testing.T) {
	posts := make([]cms.Post, 0, MaxURLsPerSitemap+10)
	for i := 0; i < MaxURLsPerSitemap+10; i++ {
		posts = append(posts, cms.Post{Slug: "post-" + strings.Repeat("x", i%7) + time.Duration(i).String()})
	}
	require.Len(t, Build(testSite, Input{Posts: posts}), MaxURLsPerSitemap)
}

func TestMarshal(t *testing.T) {
	lastMod := time.Date(2025, 1, 27, 15, 4, 0, 0, time.UTC)
	raw, err := Marshal([]Entry{
		{Loc: "https://www.webvello.com", ChangeFreq: Weekly, Priority: 1},
		{Loc: "https://www.webvello.com/blog/a&b", ChangeFreq: Monthly, Priority: 0.6, LastMod: lastMod},
	})
	require.NoError(t, err)
	out := string(raw)
	require.True(t, strings.HasPrefix(out, xml.Header))
	require.Contains(t, out, `<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">`)
	require.Contains(t, out, "<priority>1.0</priority>")
	require.Contains(t, out, "<lastmod>2025-01-27</lastmod>")
	require.Contains(t, out, "/blog/a&amp;b")

	var doc urlset
	require.NoError(t, xml.Unmarshal(raw, &doc))
	require.Len(t, doc.URLs, 2)
	require.Empty(t, doc.URLs[0].LastMod)
}

func TestMarshalIndex(t *testing.T) {
	published := time.Date(2025, 1, 8, 0, 0, 0, 0, time.UTC)
	entries := Build(testSite, Input{Posts: []cms.Post{{Slug: "a", PublishedAt: published}}})

	raw, err := MarshalIndex(testSite, entries)
	require.NoError(t, err)

	var doc sitemapIndex
	require.NoError(t, xml.Unmarshal(raw, &doc))
	locs := make([]string, 0, len(doc.Sitemaps))
	for _, s := range doc.Sitemaps {
		locs = append(locs, s.Loc)
	}
	require.Equal(t, []string{
		"https://www.webvello.com/sitemap/core.xml",
		"https://www.webvello.com/sitemap/services.xml",
		"https://www.webvello.com/sitemap/blog.xml",
	}, locs)
	require.Equal(t, "2025-01-08", doc.Sitemaps[2].LastMod)
}

func TestParseSection(t *testing.T) {
	s, ok := ParseSection(" Blog ")
	require.True(t, ok)
	require.Equal(t, SectionBlog, s)

	_, ok = ParseSection("images")
	require.False(t, ok)
}

func TestRobots(t *testing.T) {
	robots := Robots(testSite)
	require.Contains(t, robots, "User-agent: *\n")
	require.Contains(t, robots, "Disallow: /partials/\n")
	require.True(t, strings.HasSuffix(robots, "Sitemap: https://www.webvello.com/sitemap.xml\n"))
}
