package seo

import (
	"strings"
)

// Site carries the organisation facts every page's metadata is built from.
type Site struct {
	Name          string
	BaseURL       string // absolute, without trailing slash
	Phone         string
	Email         string
	Logo          string // path or absolute URL
	DefaultImage  string // path or absolute URL
	TwitterHandle string
	SameAs        []string
}

// URL resolves a site-relative path to an absolute URL.
func (s Site) URL(path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	if path == "" || path == "/" {
		return s.BaseURL
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return s.BaseURL + path
}

type OpenGraph struct {
	Title       string
	Description string
	URL         string
	Image       string
	Type        string
	SiteName    string
}

type Twitter struct {
	Card  string
	Site  string
	Image string
}

type Meta struct {
	Title       string
	Description string
	Keywords    []string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
}

// KeywordList joins keywords for the meta keywords tag.
func (m Meta) KeywordList() string {
	return strings.Join(m.Keywords, ", ")
}

// NewMeta builds page metadata with an absolute canonical URL and the site
// name appended to the title unless it already carries it.
func NewMeta(site Site, path, title, description string) Meta {
	full := title
	switch {
	case strings.TrimSpace(title) == "":
		full = site.Name
	case site.Name != "" && !strings.Contains(title, site.Name):
		full = title + " | " + site.Name
	}
	canonical := site.URL(path)
	image := ""
	if site.DefaultImage != "" {
		image = site.URL(site.DefaultImage)
	}
	return Meta{
		Title:       full,
		Description: description,
		Canonical:   canonical,
		Robots:      "index, follow",
		OG: OpenGraph{
			Title:       full,
			Description: description,
			URL:         canonical,
			Image:       image,
			Type:        "website",
			SiteName:    site.Name,
		},
		Twitter: Twitter{
			Card:  "summary_large_image",
			Site:  site.TwitterHandle,
			Image: image,
		},
	}
}

// NoIndex marks the page as excluded from search indexes (404s, previews).
func (m Meta) NoIndex() Meta {
	m.Robots = "noindex, nofollow"
	return m
}

// WithImage overrides the social preview image.
func (m Meta) WithImage(site Site, image string) Meta {
	if image == "" {
		return m
	}
	abs := site.URL(image)
	m.OG.Image = abs
	m.Twitter.Image = abs
	return m
}
