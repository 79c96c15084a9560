package cms

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"webvello.com/site/internal/observability"
)

// ErrNotFound indicates the requested post does not exist.
var ErrNotFound = errors.New("cms: not found")

const (
	// DefaultCacheTTL bounds how long parsed posts are served from memory.
	DefaultCacheTTL = 5 * time.Minute

	defaultContentDir = "content/blog"
	defaultAuthor     = "Web Vello Team"
	titleSuffix       = " | Web Vello"
	wordsPerMinute    = 200
)

// Source records where a post was loaded from.
type Source string

const (
	SourceFile    Source = "file"
	SourceBuiltin Source = "builtin"
)

// Post is a rendered blog article.
type Post struct {
	Slug        string
	Title       string
	Summary     string
	PublishedAt time.Time
	UpdatedAt   time.Time
	Author      string
	Category    string
	Tags        []string
	Industry    string
	Service     string
	ServiceSlug string // service page slug; derived from Service when front matter omits it
	City        string
	Template    string
	Keywords    []string
	ReadingTime int // minutes
	HeroImage   string
	Body        string // markdown source
	HTML        string // sanitised HTML
	TOC         []Heading
	WordCount   int
	SEO         SEO
	Source      Source
}

// SEO holds optional metadata overrides from front matter.
type SEO struct {
	Title       string
	Description string
	OGImage     string
}

// Heading is a table of contents entry.
type Heading struct {
	ID    string
	Text  string
	Level int
}

// ListOptions filters ListPosts. Empty fields match everything.
type ListOptions struct {
	Industry    string
	Service     string
	ServiceSlug string
	City        string
	Search      string
	Limit       int
}

// Client reads posts from a content directory and merges the built-in articles under them.
type Client struct {
	dir      string
	ttl      time.Duration
	now      func() time.Time
	builtins bool
	renderer *renderer

	mu    sync.RWMutex
	posts map[string]cacheEntry
	list  *listEntry
}

type cacheEntry struct {
	post    Post
	expires time.Time
}

type listEntry struct {
	posts   []Post
	expires time.Time
}

// Option customises a Client.
type Option func(*Client)

// WithCacheTTL overrides DefaultCacheTTL. Non-positive values keep the default.
func WithCacheTTL(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.ttl = d
		}
	}
}

// WithClock swaps the time source used for cache expiry.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

// WithoutBuiltins serves only posts found in the content directory.
func WithoutBuiltins() Option {
	return func(c *Client) { c.builtins = false }
}

// New constructs a Client reading <dir>/<slug>.md.
func New(dir string, opts ...Option) *Client {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		dir = defaultContentDir
	}
	c := &Client{
		dir:      dir,
		ttl:      DefaultCacheTTL,
		now:      time.Now,
		builtins: true,
		renderer: newRenderer(),
		posts:    map[string]cacheEntry{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Dir returns the content directory.
func (c *Client) Dir() string { return c.dir }

// GetPost returns the post for slug. Directory posts win over built-in ones.
func (c *Client) GetPost(ctx context.Context, slug string) (post Post, err error) {
	ctx, span := observability.StartSpan(ctx, "cms.GetPost", attribute.String("cms.slug", slug))
	defer func() {
		if errors.Is(err, ErrNotFound) {
			observability.EndSpan(span, nil)
			return
		}
		observability.EndSpan(span, err)
	}()

	if err := ctx.Err(); err != nil {
		return Post{}, err
	}
	slug = sanitizeSlug(slug)
	if slug == "" {
		return Post{}, ErrNotFound
	}
	return c.post(slug)
}

// ListPosts returns posts newest first, filtered by opts.
func (c *Client) ListPosts(ctx context.Context, opts ListOptions) ([]Post, error) {
	ctx, span := observability.StartSpan(ctx, "cms.ListPosts")
	all, err := c.all(ctx)
	observability.EndSpan(span, err)
	if err != nil {
		return nil, err
	}
	return filterPosts(all, opts), nil
}

// Related returns up to n other posts, preferring a shared service, then industry, then city.
// Remaining slots are filled with the newest posts.
func (c *Client) Related(ctx context.Context, post Post, n int) ([]Post, error) {
	if n <= 0 {
		return nil, nil
	}
	all, err := c.all(ctx)
	if err != nil {
		return nil, err
	}
	tiers := make([][]Post, 4)
	for _, p := range all {
		if p.Slug == post.Slug {
			continue
		}
		switch {
		case sameField(p.Service, post.Service):
			tiers[0] = append(tiers[0], p)
		case sameField(p.Industry, post.Industry):
			tiers[1] = append(tiers[1], p)
		case sameField(p.City, post.City):
			tiers[2] = append(tiers[2], p)
		default:
			tiers[3] = append(tiers[3], p)
		}
	}
	out := make([]Post, 0, n)
	for _, tier := range tiers {
		for _, p := range tier {
			if len(out) == n {
				return out, nil
			}
			out = append(out, p)
		}
	}
	return out, nil
}

// Invalidate drops slug from the cache so the next read goes back to disk.
func (c *Client) Invalidate(slug string) {
	slug = sanitizeSlug(slug)
	c.mu.Lock()
	defer c.mu.Unlock()
	if slug != "" {
		delete(c.posts, slug)
	}
	c.list = nil
}

// InvalidateAll clears every cached post.
func (c *Client) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.posts = map[string]cacheEntry{}
	c.list = nil
}

func (c *Client) post(slug string) (Post, error) {
	now := c.now()
	c.mu.RLock()
	entry, ok := c.posts[slug]
	c.mu.RUnlock()
	if ok && now.Before(entry.expires) {
		return clonePost(entry.post), nil
	}

	post, err := c.load(slug)
	if err != nil {
		return Post{}, err
	}
	c.mu.Lock()
	c.posts[slug] = cacheEntry{post: clonePost(post), expires: now.Add(c.ttl)}
	c.mu.Unlock()
	return post, nil
}

func (c *Client) load(slug string) (Post, error) {
	post, err := c.readFile(slug)
	if err == nil {
		return post, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Post{}, err
	}
	if c.builtins {
		if src, ok := builtinSource(slug); ok {
			return c.parse(slug, src, time.Time{}, SourceBuiltin)
		}
	}
	return Post{}, ErrNotFound
}

func (c *Client) readFile(slug string) (Post, error) {
	file := filepath.Join(c.dir, slug+".md")
	data, err := os.ReadFile(file)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Post{}, ErrNotFound
		}
		return Post{}, fmt.Errorf("cms: read %s: %w", file, err)
	}
	var modTime time.Time
	if info, statErr := os.Stat(file); statErr == nil {
		modTime = info.ModTime()
	}
	return c.parse(slug, string(data), modTime, SourceFile)
}

func (c *Client) all(ctx context.Context) ([]Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	now := c.now()
	c.mu.RLock()
	list := c.list
	c.mu.RUnlock()
	if list != nil && now.Before(list.expires) {
		return copyPosts(list.posts), nil
	}

	slugs, err := c.slugs()
	if err != nil {
		return nil, err
	}
	logger := observability.FromContext(ctx)
	seen := make(map[string]struct{}, len(slugs))
	posts := make([]Post, 0, len(slugs)+len(builtinSlugs()))
	for _, slug := range slugs {
		post, err := c.post(slug)
		if err != nil {
			logger.Warn("skipping unreadable post", zap.String("slug", slug), zap.Error(err))
			continue
		}
		seen[slug] = struct{}{}
		posts = append(posts, post)
	}
	if c.builtins {
		for _, slug := range builtinSlugs() {
			if _, ok := seen[slug]; ok {
				continue
			}
			post, err := c.post(slug)
			if err != nil {
				logger.Warn("skipping built-in post", zap.String("slug", slug), zap.Error(err))
				continue
			}
			posts = append(posts, post)
		}
	}
	sortPosts(posts)

	c.mu.Lock()
	c.list = &listEntry{posts: copyPosts(posts), expires: now.Add(c.ttl)}
	c.mu.Unlock()
	return posts, nil
}

func (c *Client) slugs() ([]string, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("cms: list %s: %w", c.dir, err)
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if slug, ok := slugFromFile(e.Name()); ok {
			out = append(out, slug)
		}
	}
	return out, nil
}

func slugFromFile(name string) (string, bool) {
	name = filepath.Base(name)
	if !strings.EqualFold(filepath.Ext(name), ".md") || strings.HasPrefix(name, ".") {
		return "", false
	}
	slug := sanitizeSlug(strings.TrimSuffix(name, filepath.Ext(name)))
	return slug, slug != ""
}

func filterPosts(posts []Post, opts ListOptions) []Post {
	search := strings.ToLower(strings.TrimSpace(opts.Search))
	out := make([]Post, 0, len(posts))
	for _, p := range posts {
		if opts.Industry != "" && !sameField(p.Industry, opts.Industry) {
			continue
		}
		if opts.Service != "" && !sameField(p.Service, opts.Service) {
			continue
		}
		if opts.ServiceSlug != "" && p.ServiceSlug != fieldSlug(opts.ServiceSlug) {
			continue
		}
		if opts.City != "" && !sameField(p.City, opts.City) {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		out = append(out, p)
		if opts.Limit > 0 && len(out) == opts.Limit {
			break
		}
	}
	return out
}

func matchesSearch(p Post, q string) bool {
	fields := []string{p.Title, p.Summary, p.Category}
	fields = append(fields, p.Keywords...)
	fields = append(fields, p.Tags...)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

func sameField(a, b string) bool {
	a, b = strings.TrimSpace(a), strings.TrimSpace(b)
	if a == "" || b == "" {
		return false
	}
	if strings.EqualFold(a, b) {
		return true
	}
	return strings.EqualFold(strings.ReplaceAll(a, "-", " "), strings.ReplaceAll(b, "-", " "))
}

// fieldSlug lowercases s and joins its alphanumeric runs with hyphens.
func fieldSlug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if dash && b.Len() > 0 {
				b.WriteByte('-')
			}
			dash = false
			b.WriteRune(r)
		default:
			dash = true
		}
	}
	return b.String()
}

func sortPosts(items []Post) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if !a.PublishedAt.Equal(b.PublishedAt) {
			return a.PublishedAt.After(b.PublishedAt)
		}
		if !a.UpdatedAt.Equal(b.UpdatedAt) {
			return a.UpdatedAt.After(b.UpdatedAt)
		}
		return a.Slug < b.Slug
	})
}

func sanitizeSlug(slug string) string {
	slug = strings.TrimSpace(strings.ToLower(slug))
	slug = strings.Trim(slug, "/")
	if slug == "" {
		return ""
	}
	if strings.Contains(slug, "..") || strings.ContainsAny(slug, `/\`) {
		return ""
	}
	if strings.ContainsRune(slug, os.PathSeparator) {
		return ""
	}
	return slug
}

func copyPosts(src []Post) []Post {
	out := make([]Post, len(src))
	for i, p := range src {
		out[i] = clonePost(p)
	}
	return out
}

func clonePost(p Post) Post {
	cp := p
	cp.Tags = append([]string(nil), p.Tags...)
	cp.Keywords = append([]string(nil), p.Keywords...)
	cp.TOC = append([]Heading(nil), p.TOC...)
	return cp
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
