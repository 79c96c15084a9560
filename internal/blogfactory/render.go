package blogfactory

import (
	"bytes"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	author      = "Web Vello Team"
	category    = "Industry Guides"
	readingTime = 8
)

type frontMatter struct {
	ID          string   `yaml:"id,omitempty"`
	Title       string   `yaml:"title"`
	Summary     string   `yaml:"summary"`
	PublishedAt string   `yaml:"published_at"`
	Author      string   `yaml:"author"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags"`
	Industry    string   `yaml:"industry"`
	Service     string   `yaml:"service"`
	ServiceSlug string   `yaml:"service_slug"`
	City        string   `yaml:"city"`
	Template    string   `yaml:"template"`
	Keywords    []string `yaml:"keywords"`
	ReadingTime int      `yaml:"reading_time"`
}

// Render turns a post into a markdown document with YAML front matter, ending
// with a call to action that links to the matching service page.
func Render(p Post, publishedAt time.Time) ([]byte, error) {
	fm := frontMatter{
		ID:          p.ID,
		Title:       p.Title,
		Summary:     p.MetaDescription,
		PublishedAt: publishedAt.UTC().Format(time.RFC3339),
		Author:      author,
		Category:    category,
		Tags:        []string{p.Industry, p.Service, p.City},
		Industry:    p.Industry,
		Service:     p.Service,
		ServiceSlug: ServiceSlug(p.Service),
		City:        p.City,
		Template:    p.Template,
		Keywords:    p.Keywords,
		ReadingTime: readingTime,
	}
	head, err := yaml.Marshal(fm)
	if err != nil {
		return nil, fmt.Errorf("blogfactory: marshal front matter %s: %w", p.Slug, err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(head)
	buf.WriteString("---\n\n")
	buf.WriteString(p.Body)
	fmt.Fprintf(&buf, "## Ready to Improve Your %s?\n\n", p.Service)
	fmt.Fprintf(&buf, "Our team specializes in %s for %s companies in %s. Let us help you implement the strategies outlined in this guide.\n\n",
		p.Service, p.Industry, p.City)
	fmt.Fprintf(&buf, "[Get Your Free Consultation](/contact) or [View Our Services](%s)\n", ServicePath(p.Service))
	return buf.Bytes(), nil
}
