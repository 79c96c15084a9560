package handlers

import (
	"html/template"
	"strings"
	"time"

	"webvello.com/site/internal/cms"
	"webvello.com/site/internal/nav"
	"webvello.com/site/internal/seo"
)

// BlogView is the /blog listing.
type BlogView struct {
	Posts    []cms.Post
	Featured *cms.Post
	Filter   cms.ListOptions
	Query    string
	Total    int
}

// Filtered reports whether any listing filter is active.
func (b BlogView) Filtered() bool {
	f := b.Filter
	return f.Industry != "" || f.Service != "" || f.City != "" || f.Search != ""
}

// PostView is a rendered article.
type PostView struct {
	Post    cms.Post
	HTML    template.HTML
	Related []cms.Post
}

// BlogIndex builds the blog listing. The newest post is featured only on the
// unfiltered listing.
func BlogIndex(env Env, posts []cms.Post, opts cms.ListOptions) PageData {
	env.Path = "/blog"
	vm := newPage(env,
		"Blog: Web Design, SEO & AI Search Insights",
		"Guides on web design, local SEO, generative engine optimization and AI search from the Web Vello team.",
	)
	view := &BlogView{Posts: posts, Filter: opts, Query: opts.Search, Total: len(posts)}
	if !view.Filtered() && len(posts) > 0 {
		first := posts[0]
		view.Featured = &first
		view.Posts = posts[1:]
	}
	if view.Filtered() {
		vm.SEO = vm.SEO.NoIndex()
	}
	vm.Blog = view
	vm.addJSONLD(seo.PageSchema(env.Site, vm.pageSchema(seo.PageOptions{Kind: "CollectionPage"})))
	return vm
}

// Post builds an article page. Front matter SEO fields override the title,
// description and share image.
func Post(env Env, post cms.Post, related []cms.Post) PageData {
	env.Path = "/blog/" + post.Slug
	title := firstNonEmpty(post.SEO.Title, post.Title)
	desc := firstNonEmpty(post.SEO.Description, post.Summary)
	vm := newPage(env, title, desc)
	vm.SEO.Keywords = append([]string(nil), post.Keywords...)
	vm.SEO.OG.Type = "article"
	if img := firstNonEmpty(post.SEO.OGImage, post.HeroImage); img != "" {
		vm.SEO = vm.SEO.WithImage(env.Site, img)
	}
	vm.Breadcrumbs = nav.BreadcrumbsWith(env.Path, func(href string) (string, bool) {
		if href == env.Path {
			return post.Title, true
		}
		return "", false
	})
	vm.Post = &PostView{
		Post: post,
		// HTML was sanitised when the post was parsed.
		HTML:    template.HTML(post.HTML),
		Related: related,
	}

	article := seo.Article(env.Site, seo.ArticleOptions{
		URL:           vm.SEO.Canonical,
		Headline:      post.Title,
		Description:   desc,
		Image:         firstNonEmpty(post.SEO.OGImage, post.HeroImage),
		Author:        post.Author,
		DatePublished: isoTime(post.PublishedAt),
		DateModified:  isoTime(post.UpdatedAt),
		Keywords:      post.Keywords,
		Section:       post.Category,
	})
	vm.addJSONLD(article, seo.BreadcrumbList(breadcrumbItems(env.Site, vm.Breadcrumbs)))
	return vm
}

func isoTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
