package cms

import (
	"fmt"
	"math"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type frontMatter struct {
	Title       string         `yaml:"title"`
	Summary     string         `yaml:"summary"`
	Description string         `yaml:"description"`
	PublishedAt string         `yaml:"published_at"`
	Date        string         `yaml:"date"`
	UpdatedAt   string         `yaml:"updated_at"`
	Author      string         `yaml:"author"`
	Category    string         `yaml:"category"`
	Tags        []string       `yaml:"tags"`
	Industry    string         `yaml:"industry"`
	Service     string         `yaml:"service"`
	ServiceSlug string         `yaml:"service_slug"`
	City        string         `yaml:"city"`
	Template    string         `yaml:"template"`
	Keywords    []string       `yaml:"keywords"`
	ReadingTime int            `yaml:"reading_time"`
	HeroImage   string         `yaml:"hero_image"`
	SEO         frontMatterSEO `yaml:"seo"`
}

type frontMatterSEO struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	OGImage     string `yaml:"og_image"`
}

// parse turns a markdown document with optional front matter into a rendered Post.
// modTime backs missing dates for files on disk.
func (c *Client) parse(slug, doc string, modTime time.Time, source Source) (Post, error) {
	fm, body := splitFrontMatter(doc)
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Post{}, fmt.Errorf("cms: parse front matter %s: %w", slug, err)
		}
	}

	out, err := c.renderer.render(body)
	if err != nil {
		return Post{}, fmt.Errorf("cms: render %s: %w", slug, err)
	}

	post := Post{
		Slug:      slug,
		Title:     strings.TrimSuffix(strings.TrimSpace(front.Title), titleSuffix),
		Summary:   firstNonEmpty(front.Summary, front.Description),
		Author:    firstNonEmpty(front.Author, defaultAuthor),
		Category:  strings.TrimSpace(front.Category),
		Tags:      trimAll(front.Tags),
		Industry:  strings.TrimSpace(front.Industry),
		Service:   strings.TrimSpace(front.Service),
		City:      strings.TrimSpace(front.City),
		Template:  strings.TrimSpace(front.Template),
		Keywords:  trimAll(front.Keywords),
		HeroImage: strings.TrimSpace(front.HeroImage),
		Body:      body,
		HTML:      out.HTML,
		TOC:       out.TOC,
		WordCount: out.Words,
		SEO: SEO{
			Title:       strings.TrimSpace(front.SEO.Title),
			Description: strings.TrimSpace(front.SEO.Description),
			OGImage:     strings.TrimSpace(front.SEO.OGImage),
		},
		Source: source,
	}
	if post.Title == "" {
		post.Title = prettifySlug(slug)
	}
	post.ServiceSlug = firstNonEmpty(fieldSlug(front.ServiceSlug), fieldSlug(front.Service))
	post.PublishedAt = parseContentDate(firstNonEmpty(front.PublishedAt, front.Date))
	post.UpdatedAt = parseContentDate(front.UpdatedAt)
	if post.PublishedAt.IsZero() {
		post.PublishedAt = modTime
	}
	if post.UpdatedAt.IsZero() {
		post.UpdatedAt = post.PublishedAt
	}
	post.ReadingTime = front.ReadingTime
	if post.ReadingTime <= 0 {
		post.ReadingTime = readingTime(post.WordCount)
	}
	return post, nil
}

func readingTime(words int) int {
	minutes := int(math.Ceil(float64(words) / wordsPerMinute))
	if minutes < 1 {
		return 1
	}
	return minutes
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	input = strings.ReplaceAll(input, "\r\n", "\n")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n")
		}
	}
	return "", input
}

func parseContentDate(v string) time.Time {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02",
		"2006/01/02",
		"2006-1-2",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

func prettifySlug(slug string) string {
	parts := strings.Split(strings.TrimSpace(slug), "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		if runes[0] >= 'a' && runes[0] <= 'z' {
			runes[0] -= 'a' - 'A'
		}
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
