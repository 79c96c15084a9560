package handlers

import (
	"webvello.com/site/internal/catalog"
	"webvello.com/site/internal/cms"
	"webvello.com/site/internal/seo"
	"webvello.com/site/internal/trust"
)

// HomeView is the payload of the landing page.
type HomeView struct {
	Headline     string
	Subheadline  string
	Categories   []ServiceCategory
	Industries   []catalog.Industry
	FAQs         []catalog.FAQ
	LatestPosts  []cms.Post
	Trust        trust.Widgets
	Testimonials TestimonialsView
}

// TestimonialsView drives the testimonial carousel partial.
type TestimonialsView struct {
	Status    trust.Status
	Current   trust.Testimonial
	Carousel  trust.Carousel
	PrevIndex int
	NextIndex int
}

// Testimonials positions the carousel at index i. Out-of-range indexes wrap.
func Testimonials(res trust.Result[trust.Testimonial], i int) TestimonialsView {
	view := TestimonialsView{Status: res.Status}
	if !res.Ready() || len(res.Items) == 0 {
		return view
	}
	c := trust.NewCarousel(i, len(res.Items))
	view.Carousel = c
	view.Current = res.Items[c.Index]
	view.PrevIndex = c.Prev().Index
	view.NextIndex = c.Next().Index
	return view
}

const homeTitle = "Web Vello | Web Design, SEO & AI Search Optimization Agency"

// Home builds the landing page.
func Home(env Env, widgets trust.Widgets, latest []cms.Post) PageData {
	env.Path = "/"
	env.Rating = widgets.Summary
	vm := newPage(env,
		homeTitle,
		"Web Vello builds high-converting websites and grows organic visibility with SEO, local SEO and generative engine optimization for ChatGPT, Perplexity and Google AI Overviews.",
	)
	vm.SEO.Keywords = []string{
		"web design agency",
		"seo services",
		"generative engine optimization",
		"ai seo",
		"local seo",
	}
	faqs := catalog.HomeFAQs()
	vm.Home = &HomeView{
		Headline:     "Websites That Win Customers in Search and AI Answers",
		Subheadline:  "Design, development, SEO and GEO from one team, measured by the leads you get.",
		Categories:   Categories(),
		Industries:   catalog.Industries(),
		FAQs:         faqs,
		LatestPosts:  latest,
		Trust:        widgets,
		Testimonials: Testimonials(widgets.Testimonials, 0),
	}

	rating := RatingFrom(widgets.Summary)
	vm.addJSONLD(
		seo.Organization(env.Site, rating),
		seo.WebSite(env.Site, env.Site.URL("/blog?q=")),
		seo.FAQPage(qa(faqs)),
	)
	if reviews := reviewItems(widgets.Testimonials); len(reviews) > 0 && rating != nil {
		vm.addJSONLD(seo.ReviewAggregate(env.Site, reviews, *rating))
	}
	return vm
}

func reviewItems(res trust.Result[trust.Testimonial]) []seo.ReviewItem {
	if !res.Ready() {
		return nil
	}
	out := make([]seo.ReviewItem, 0, len(res.Items))
	for _, t := range res.Items {
		item := seo.ReviewItem{Author: t.Name, Rating: t.Rating, Body: t.Content}
		if !t.Date.IsZero() {
			item.DatePublished = t.Date.Format("2006-01-02")
		}
		out = append(out, item)
	}
	return out
}
