package trust

import (
	"context"
	"slices"
	"time"
)

// StaticProvider serves the built-in social proof.
type StaticProvider struct{}

var _ Provider = StaticProvider{}

func day(s string) time.Time {
	t, _ := time.Parse(time.DateOnly, s)
	return t
}

var staticTestimonials = []Testimonial{
	{
		ID:       "1",
		Name:     "Sarah Johnson",
		Company:  "TechStart Inc.",
		Role:     "Marketing Director",
		Content:  "Web Vello transformed our online presence. Our organic traffic increased by 300% in just 6 months. Their SEO strategies are simply outstanding.",
		Rating:   5,
		Verified: true,
		Date:     day("2024-01-15"),
	},
	{
		ID:       "2",
		Name:     "Michael Chen",
		Company:  "E-commerce Solutions",
		Role:     "CEO",
		Content:  "The team at Web Vello is incredibly professional and knowledgeable. They helped us achieve our first page ranking for our main keywords.",
		Rating:   5,
		Verified: true,
		Date:     day("2024-01-10"),
	},
	{
		ID:       "3",
		Name:     "Emily Rodriguez",
		Company:  "Local Business Co.",
		Role:     "Owner",
		Content:  "Our local SEO results have been phenomenal. We're now ranking #1 for all our target keywords in our city. Highly recommended!",
		Rating:   5,
		Verified: true,
		Date:     day("2024-01-08"),
	},
	{
		ID:       "4",
		Name:     "David Thompson",
		Company:  "Healthcare Plus",
		Role:     "Marketing Manager",
		Content:  "Web Vello's technical SEO expertise helped us fix critical issues that were hurting our rankings. Great results!",
		Rating:   5,
		Verified: true,
		Date:     day("2024-01-05"),
	},
	{
		ID:       "5",
		Name:     "Lisa Wang",
		Company:  "Fashion Forward",
		Role:     "E-commerce Manager",
		Content:  "The content marketing strategies they implemented have been game-changing. Our conversion rates have improved significantly.",
		Rating:   5,
		Verified: true,
		Date:     day("2024-01-03"),
	},
}

var staticReviews = []Review{
	{ID: "1", Platform: "google", Rating: 4.9, ReviewCount: 127, URL: "https://google.com/reviews", Verified: true},
	{ID: "2", Platform: "facebook", Rating: 4.8, ReviewCount: 89, URL: "https://facebook.com/reviews", Verified: true},
	{ID: "3", Platform: "clutch", Rating: 5.0, ReviewCount: 23, URL: "https://clutch.co/reviews", Verified: true},
}

var staticBadges = []Badge{
	{ID: "1", Name: "Google Partner", Description: "Certified Google Partner", Icon: "google-partner", Verified: true, URL: "https://partners.google.com"},
	{ID: "2", Name: "BBB A+ Rating", Description: "Better Business Bureau A+ Rating", Icon: "bbb", Verified: true, URL: "https://bbb.org"},
	{ID: "3", Name: "SSL Secured", Description: "256-bit SSL Encryption", Icon: "ssl", Verified: true},
	{ID: "4", Name: "GDPR Compliant", Description: "GDPR Privacy Compliant", Icon: "gdpr", Verified: true},
	{ID: "5", Name: "24/7 Support", Description: "Round-the-clock support", Icon: "support", Verified: true},
	{ID: "6", Name: "Money Back Guarantee", Description: "30-day money back guarantee", Icon: "guarantee", Verified: true},
}

var staticLogos = []ClientLogo{
	{ID: "1", Name: "TechStart Inc.", Logo: "/logos/techstart.svg", Website: "https://techstart.com", Industry: "Technology"},
	{ID: "2", Name: "E-commerce Solutions", Logo: "/logos/ecommerce.svg", Website: "https://ecommerce-solutions.com", Industry: "E-commerce"},
	{ID: "3", Name: "Healthcare Plus", Logo: "/logos/healthcare.svg", Website: "https://healthcare-plus.com", Industry: "Healthcare"},
	{ID: "4", Name: "Fashion Forward", Logo: "/logos/fashion.svg", Website: "https://fashion-forward.com", Industry: "Fashion"},
	{ID: "5", Name: "Local Business Co.", Logo: "/logos/local-business.svg", Website: "https://local-business.com", Industry: "Local Business"},
	{ID: "6", Name: "Finance Pro", Logo: "/logos/finance.svg", Website: "https://finance-pro.com", Industry: "Finance"},
}

func (StaticProvider) Testimonials(context.Context) ([]Testimonial, error) {
	return slices.Clone(staticTestimonials), nil
}

func (StaticProvider) Reviews(context.Context) ([]Review, error) {
	return slices.Clone(staticReviews), nil
}

func (StaticProvider) Badges(context.Context) ([]Badge, error) {
	return slices.Clone(staticBadges), nil
}

func (StaticProvider) ClientLogos(context.Context) ([]ClientLogo, error) {
	return slices.Clone(staticLogos), nil
}
