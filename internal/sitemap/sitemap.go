// Package sitemap builds the crawl surface: sitemap.xml, the per-section child
// sitemaps and robots.txt.
package sitemap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"webvello.com/site/internal/catalog"
	"webvello.com/site/internal/cms"
	"webvello.com/site/internal/seo"
)

// MaxURLsPerSitemap stays under the protocol limit of 50,000.
const MaxURLsPerSitemap = 45000

const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// Change frequencies used by the site.
const (
	Weekly  = "weekly"
	Monthly = "monthly"
	Yearly  = "yearly"
)

// Section splits entries into child sitemaps.
type Section string

const (
	SectionCore      Section = "core"
	SectionServices  Section = "services"
	SectionBlog      Section = "blog"
	SectionLocations Section = "locations"
)

// Sections lists child sitemaps in index order.
var Sections = []Section{SectionCore, SectionServices, SectionBlog, SectionLocations}

// Entry is a single <url>.
type Entry struct {
	Loc        string
	LastMod    time.Time
	ChangeFreq string
	Priority   float64
	Section    Section
}

// Input is everything the sitemap covers.
type Input struct {
	Pages        []catalog.Page
	Services     []catalog.Service
	Industries   []catalog.Industry
	GeoPages     []catalog.GeoPage
	Cities       []catalog.City
	CityServices []catalog.Service
	Posts        []cms.Post
}

// CatalogInput fills Input from the catalog tables plus the given posts.
func CatalogInput(posts []cms.Post) Input {
	return Input{
		Pages:        catalog.Pages(),
		Services:     catalog.Services(),
		Industries:   catalog.Industries(),
		GeoPages:     catalog.GeoPages(),
		Cities:       catalog.Cities(),
		CityServices: catalog.KeyServices(),
		Posts:        posts,
	}
}

// Build assigns priorities and change frequencies per page tier, drops
// duplicate locations and caps the result at MaxURLsPerSitemap.
// Entries are ordered by priority (highest first), then location.
func Build(site seo.Site, in Input) []Entry {
	var entries []Entry
	add := func(path string, priority float64, freq string, section Section, lastMod time.Time) {
		entries = append(entries, Entry{
			Loc:        site.URL(path),
			LastMod:    lastMod,
			ChangeFreq: freq,
			Priority:   priority,
			Section:    section,
		})
	}

	add("/", 1.0, Weekly, SectionCore, time.Time{})
	for _, p := range in.Pages {
		switch p.Kind {
		case catalog.PageLegal:
			add(p.Path, 0.5, Yearly, SectionCore, time.Time{})
		case catalog.PageSolution:
			add(p.Path, 0.7, Monthly, SectionServices, time.Time{})
		default:
			add(p.Path, 0.8, Monthly, SectionCore, time.Time{})
		}
	}

	add("/services", 0.8, Monthly, SectionServices, time.Time{})
	for _, s := range in.Services {
		add("/services/"+s.Slug, 0.7, Monthly, SectionServices, time.Time{})
	}
	for _, g := range in.GeoPages {
		add("/services/"+g.Slug, 0.7, Monthly, SectionServices, time.Time{})
	}
	add("/industries", 0.8, Monthly, SectionCore, time.Time{})
	for _, ind := range in.Industries {
		add("/industries/"+ind.Slug, 0.7, Monthly, SectionServices, time.Time{})
	}

	for _, c := range in.Cities {
		add("/"+c.Slug, 0.6, Monthly, SectionLocations, time.Time{})
		for _, s := range in.CityServices {
			add("/"+c.Slug+"/"+s.Slug, 0.6, Monthly, SectionLocations, time.Time{})
		}
	}

	var newest time.Time
	for _, p := range in.Posts {
		lastMod := p.UpdatedAt
		if lastMod.IsZero() {
			lastMod = p.PublishedAt
		}
		if lastMod.After(newest) {
			newest = lastMod
		}
		add("/blog/"+p.Slug, 0.6, Monthly, SectionBlog, lastMod)
	}
	add("/blog", 0.7, Weekly, SectionCore, newest)

	return normalize(entries)
}

func normalize(entries []Entry) []Entry {
	seen := make(map[string]struct{}, len(entries))
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.Loc]; ok {
			continue
		}
		seen[e.Loc] = struct{}{}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Priority != out[j].Priority {
			return out[i].Priority > out[j].Priority
		}
		return out[i].Loc < out[j].Loc
	})
	if len(out) > MaxURLsPerSitemap {
		out = out[:MaxURLsPerSitemap]
	}
	return out
}

// Filter keeps the entries of one section.
func Filter(entries []Entry, section Section) []Entry {
	var out []Entry
	for _, e := range entries {
		if e.Section == section {
			out = append(out, e)
		}
	}
	return out
}

// ParseSection resolves a child sitemap name.
func ParseSection(name string) (Section, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range Sections {
		if string(s) == name {
			return s, true
		}
	}
	return "", false
}

type urlset struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []url    `xml:"url"`
}

type url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type sitemapIndex struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	Xmlns    string       `xml:"xmlns,attr"`
	Sitemaps []indexEntry `xml:"sitemap"`
}

type indexEntry struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// Marshal renders entries as a <urlset> document.
func Marshal(entries []Entry) ([]byte, error) {
	doc := urlset{Xmlns: xmlns, URLs: make([]url, 0, len(entries))}
	for _, e := range entries {
		u := url{
			Loc:        e.Loc,
			ChangeFreq: e.ChangeFreq,
			Priority:   strconv.FormatFloat(e.Priority, 'f', 1, 64),
		}
		if !e.LastMod.IsZero() {
			u.LastMod = e.LastMod.UTC().Format("2006-01-02")
		}
		doc.URLs = append(doc.URLs, u)
	}
	return encode(doc)
}

// MarshalIndex renders a <sitemapindex> pointing at /sitemap/{section}.xml.
// Each child's lastmod is the newest lastmod among its entries.
func MarshalIndex(site seo.Site, entries []Entry) ([]byte, error) {
	doc := sitemapIndex{Xmlns: xmlns}
	for _, section := range Sections {
		child := Filter(entries, section)
		if len(child) == 0 {
			continue
		}
		ie := indexEntry{Loc: site.URL(ChildPath(section))}
		if newest := newestLastMod(child); !newest.IsZero() {
			ie.LastMod = newest.UTC().Format("2006-01-02")
		}
		doc.Sitemaps = append(doc.Sitemaps, ie)
	}
	return encode(doc)
}

// ChildPath is the URL path of a section's sitemap.
func ChildPath(section Section) string {
	return "/sitemap/" + string(section) + ".xml"
}

func newestLastMod(entries []Entry) time.Time {
	var newest time.Time
	for _, e := range entries {
		if e.LastMod.After(newest) {
			newest = e.LastMod
		}
	}
	return newest
}

func encode(doc any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("sitemap: encode: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Robots renders robots.txt allowing everything except internal endpoints.
func Robots(site seo.Site) string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /partials/\n")
	b.WriteString("Disallow: /healthz\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "Sitemap: %s\n", site.URL("/sitemap.xml"))
	return b.String()
}
