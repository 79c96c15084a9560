// Package blogfactory generates templated blog posts and writes them into the
// content directory the site serves /blog from.
package blogfactory

import "strings"

// Template is a post blueprint: a title pattern, the ordered section headings
// of the body and the keywords added to front matter.
type Template struct {
	Key       string
	Title     string
	Structure []string
	Keywords  []string
}

// templates is ordered; random picks index into it.
var templates = []Template{
	{
		Key:       "how-to",
		Title:     "How to {action} for {industry} Companies in {city}",
		Structure: []string{"Introduction", "Step 1", "Step 2", "Step 3", "Step 4", "Conclusion"},
		Keywords:  []string{"how to", "guide", "tutorial", "steps"},
	},
	{
		Key:       "best-practices",
		Title:     "{count} Best Practices for {service} in {city} {industry}",
		Structure: []string{"Introduction", "Best Practice 1", "Best Practice 2", "Best Practice 3", "Implementation", "Conclusion"},
		Keywords:  []string{"best practices", "tips", "strategies", "optimization"},
	},
	{
		Key:       "trends",
		Title:     "{year} {industry} Trends in {city}: What You Need to Know",
		Structure: []string{"Introduction", "Trend 1", "Trend 2", "Trend 3", "Impact", "Conclusion"},
		Keywords:  []string{"trends", "{year}", "future", "innovation"},
	},
	{
		Key:       "comparison",
		Title:     "{service1} vs {service2} for {industry} in {city}",
		Structure: []string{"Introduction", "What is Service 1", "What is Service 2", "Comparison", "Recommendation", "Conclusion"},
		Keywords:  []string{"vs", "comparison", "difference", "which is better"},
	},
	{
		Key:       "cost",
		Title:     "{service} Cost in {city}: Complete Pricing Guide for {industry}",
		Structure: []string{"Introduction", "Pricing Factors", "Cost Breakdown", "Value Analysis", "Tips", "Conclusion"},
		Keywords:  []string{"cost", "pricing", "budget", "affordable"},
	},
}

// Industries are the verticals posts are written for.
var Industries = []string{
	"fashion", "technology", "healthcare", "finance", "manufacturing",
	"retail", "education", "tourism", "aerospace", "energy",
	"government", "logistics", "automotive", "entertainment", "agriculture",
}

// Services are the offerings posts are written about.
var Services = []string{
	"website design", "web development", "SEO", "digital marketing",
	"AI consulting", "local SEO", "e-commerce development", "mobile app development",
	"UI/UX design", "content marketing", "social media marketing", "email marketing",
}

// Cities are the markets posts target.
var Cities = []string{
	"New York", "Los Angeles", "Chicago", "Houston", "Phoenix",
	"Philadelphia", "San Antonio", "San Diego", "Dallas", "San Jose",
	"Austin", "Jacksonville", "Fort Worth", "Columbus", "Charlotte",
	"Seattle", "Denver", "Washington DC", "Boston", "El Paso",
	"Nashville", "Detroit", "Oklahoma City", "Portland", "Las Vegas",
	"Memphis", "Louisville", "Baltimore", "Milwaukee", "Albuquerque",
}

var actions = map[string]string{
	"website design":         "Design a Professional Website",
	"web development":        "Develop a Custom Website",
	"SEO":                    "Optimize Your Website for SEO",
	"digital marketing":      "Launch a Digital Marketing Campaign",
	"AI consulting":          "Implement AI Solutions",
	"local SEO":              "Optimize for Local Search",
	"e-commerce development": "Build an E-commerce Store",
	"mobile app development": "Create a Mobile App",
}

var alternatives = map[string]string{
	"website design":         "web development",
	"web development":        "website design",
	"SEO":                    "digital marketing",
	"digital marketing":      "SEO",
	"AI consulting":          "digital marketing",
	"local SEO":              "SEO",
	"e-commerce development": "web development",
	"mobile app development": "web development",
}

// serviceLinks maps generator services onto the site's service pages.
var serviceLinks = map[string]string{
	"website design":         "website-design",
	"web development":        "web-development",
	"SEO":                    "seo",
	"digital marketing":      "digital-marketing",
	"AI consulting":          "ai-consulting",
	"local SEO":              "local-seo",
	"e-commerce development": "ecommerce-design",
	"mobile app development": "app-design-development",
	"UI/UX design":           "ui-ux-design",
	"content marketing":      "digital-marketing",
	"social media marketing": "social-media-design",
	"email marketing":        "email-marketing-design",
}

// Templates returns the post blueprints in their canonical order.
func Templates() []Template {
	out := make([]Template, len(templates))
	for i, t := range templates {
		t.Structure = append([]string(nil), t.Structure...)
		t.Keywords = append([]string(nil), t.Keywords...)
		out[i] = t
	}
	return out
}

// TemplateKeys lists template keys in canonical order.
func TemplateKeys() []string {
	keys := make([]string, len(templates))
	for i, t := range templates {
		keys[i] = t.Key
	}
	return keys
}

// LookupTemplate finds a template by key.
func LookupTemplate(key string) (Template, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, t := range Templates() {
		if t.Key == key {
			return t, true
		}
	}
	return Template{}, false
}

// Action is the imperative phrase used by how-to titles.
func Action(service string) string {
	if a, ok := actions[service]; ok {
		return a
	}
	return "Implement " + service
}

// AlternativeService is the service a comparison post weighs against service.
func AlternativeService(service string) string {
	if a, ok := alternatives[service]; ok {
		return a
	}
	return "web development"
}

// ServiceSlug is the slug of the site service page that covers service.
func ServiceSlug(service string) string {
	if slug, ok := serviceLinks[service]; ok {
		return slug
	}
	return Slugify(service)
}

// ServicePath is the site page a post's call to action links to.
func ServicePath(service string) string {
	return "/services/" + ServiceSlug(service)
}
