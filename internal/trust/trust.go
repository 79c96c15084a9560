// Package trust serves the social-proof widgets: testimonials, review platform
// summaries, trust badges and client logos.
package trust

import (
	"context"
	"math"
	"time"
)

// Testimonial is a client quote shown in the carousel.
type Testimonial struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Company  string    `json:"company"`
	Role     string    `json:"role"`
	Content  string    `json:"content"`
	Rating   int       `json:"rating"`
	Avatar   string    `json:"avatar,omitempty"`
	Verified bool      `json:"verified"`
	Date     time.Time `json:"date"`
}

// Review summarises the rating on one review platform.
type Review struct {
	ID          string  `json:"id"`
	Platform    string  `json:"platform"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	URL         string  `json:"url"`
	Verified    bool    `json:"verified"`
}

// Badge is a certification or partnership mark.
type Badge struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Verified    bool   `json:"verified"`
	URL         string `json:"url,omitempty"`
}

// ClientLogo is a client shown in the logo wall.
type ClientLogo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Logo     string `json:"logo"`
	Website  string `json:"website"`
	Industry string `json:"industry"`
}

// Provider supplies social-proof data.
type Provider interface {
	Testimonials(ctx context.Context) ([]Testimonial, error)
	Reviews(ctx context.Context) ([]Review, error)
	Badges(ctx context.Context) ([]Badge, error)
	ClientLogos(ctx context.Context) ([]ClientLogo, error)
}

// Summary is the combined rating across review platforms.
type Summary struct {
	Average float64
	Total   int
}

// Summarize weights each platform's rating by its review count. Platforms
// without reviews are ignored.
func Summarize(reviews []Review) Summary {
	var total int
	var weighted float64
	for _, r := range reviews {
		if r.ReviewCount <= 0 {
			continue
		}
		total += r.ReviewCount
		weighted += r.Rating * float64(r.ReviewCount)
	}
	if total == 0 {
		return Summary{}
	}
	return Summary{
		Average: math.Round(weighted/float64(total)*100) / 100,
		Total:   total,
	}
}
