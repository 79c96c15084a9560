package nav

import (
	"fmt"
	"path"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CloseDelay is how long a dropdown stays open after the pointer leaves it.
// The browser applies it through the htmx trigger; the server never waits.
const CloseDelay = 150 * time.Millisecond

// Item is a top-level header entry. Entries with children render as dropdowns.
type Item struct {
	Name        string
	Href        string // "#" for groups without a landing page
	Description string
	Children    []Child
}

// Child is a dropdown entry.
type Child struct {
	Name        string
	Href        string
	Description string
	Icon        string
	Popular     bool
}

// Slug identifies a dropdown in URLs and element ids.
func (it Item) Slug() string {
	return slugify(it.Name)
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Name        string
	Href        string
	Description string
	Slug        string
	Active      bool
	Open        bool
	Children    []RenderedChild
}

// HasChildren reports whether the item renders as a dropdown.
func (r RenderedItem) HasChildren() bool { return len(r.Children) > 0 }

// RenderedChild is a dropdown entry with its active state.
type RenderedChild struct {
	Child
	Active bool
}

// Menu is the full header view model.
type Menu struct {
	Items        []RenderedItem
	Open         string // slug of the open dropdown, "" when all are closed
	MobileOpen   bool
	CloseTrigger string
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{
		Name:        "Creative Solutions",
		Href:        "/services",
		Description: "Design & Creative Services",
		Children: []Child{
			{Name: "Website Design", Href: "/services/website-design", Description: "Custom website design that converts visitors to customers", Icon: "monitor", Popular: true},
			{Name: "Website Redesign", Href: "/services/website-redesign", Description: "Transform your existing website for better performance", Icon: "palette"},
			{Name: "Rapid Web Design", Href: "/services/rapid-web-design", Description: "Fast-track website development for quick launches", Icon: "zap"},
			{Name: "Social Media Design", Href: "/services/social-media-design", Description: "Engaging social media graphics and content", Icon: "users"},
			{Name: "Ecommerce Design", Href: "/services/ecommerce-design", Description: "High-converting online store designs", Icon: "shopping-cart"},
			{Name: "Email Marketing Design", Href: "/services/email-marketing-design", Description: "Optimized email campaigns that drive sales", Icon: "mail"},
			{Name: "App Design & Development", Href: "/services/app-design-development", Description: "Custom mobile app design and development", Icon: "smartphone"},
		},
	},
	{
		Name:        "Intelligent Solutions",
		Href:        "#",
		Description: "AI & Advanced Marketing",
		Children: []Child{
			{Name: "AI Consulting", Href: "/services/ai-consulting", Description: "Strategic AI implementation for your business", Icon: "brain", Popular: true},
			{Name: "AI Digital Marketing", Href: "/services/ai-digital-marketing", Description: "AI-powered marketing strategies and automation", Icon: "zap"},
			{Name: "AI SEO", Href: "/services/ai-seo", Description: "AI-powered search engine optimization", Icon: "search"},
			{Name: "ChatGPT Optimization", Href: "/services/chatgpt-optimization", Description: "Optimize your ChatGPT prompts and workflows", Icon: "message-square"},
			{Name: "Local SEO", Href: "/services/local-seo", Description: "Local search optimization and Google My Business", Icon: "globe"},
			{Name: "Digital Marketing", Href: "/services/digital-marketing", Description: "Comprehensive digital marketing strategies", Icon: "bar-chart"},
			{Name: "Generative Engine Optimization", Href: "/services/generative-engine-optimization", Description: "AI-powered content optimization for search engines", Icon: "bot"},
			{Name: "Answer Engine Optimization", Href: "/services/answer-engine-optimization", Description: "Optimize for voice search and featured snippets", Icon: "search"},
			{Name: "AI GPT Integration", Href: "/services/ai-gpt-integration", Description: "Seamless AI and GPT integration for your systems", Icon: "bot"},
			{Name: "AI Agent Development", Href: "/services/ai-agent-development", Description: "Custom AI agents for business automation", Icon: "bot"},
			{Name: "Enterprise GEO Services", Href: "/services/enterprise-geo-services", Description: "AI-powered location intelligence for enterprise growth", Icon: "globe"},
		},
	},
	{
		Name:        "Technical Solutions",
		Href:        "#",
		Description: "Development & Technical Services",
		Children: []Child{
			{Name: "Web Development", Href: "/services/web-development", Description: "Custom web development and programming services", Icon: "code", Popular: true},
			{Name: "WordPress Development", Href: "/services/wordpress-development", Description: "Custom WordPress solutions and optimization", Icon: "code"},
			{Name: "Shopify Development", Href: "/services/shopify-development", Description: "High-performance Shopify ecommerce solutions", Icon: "shopping-cart"},
			{Name: "Software Development", Href: "/services/software-development", Description: "Custom software and application development", Icon: "settings"},
			{Name: "Software Design & Development", Href: "/services/software-design-development", Description: "Enterprise software solutions and custom applications", Icon: "layers"},
			{Name: "UI/UX Design", Href: "/services/ui-ux-design", Description: "User experience and interface design services", Icon: "eye"},
			{Name: "SEO Services", Href: "/services/seo", Description: "Search engine optimization and digital marketing", Icon: "search"},
		},
	},
	{
		Name:        "Conversion Optimization",
		Href:        "#",
		Description: "CRO & Performance",
		Children: []Child{
			{Name: "CRO E-commerce", Href: "/services/cro-ecommerce", Description: "Optimize your online store for maximum conversions", Icon: "shopping-cart"},
			{Name: "CRO Lead Generation", Href: "/services/cro-lead-generation", Description: "Convert more visitors into qualified leads", Icon: "target"},
		},
	},
	{
		Name:        "Problem Solvers",
		Href:        "#",
		Description: "Solutions for Common Issues",
		Children: []Child{
			{Name: "Website Not Driving Leads", Href: "/solutions/website-leads", Description: "Transform your website into a lead generation machine", Icon: "target"},
			{Name: "Declining Website Traffic", Href: "/solutions/declining-traffic", Description: "Reverse declining traffic with proven strategies", Icon: "trending-down"},
			{Name: "Website Not Converting", Href: "/solutions/website-conversion", Description: "Optimize your website for maximum conversions", Icon: "dollar-sign"},
			{Name: "Website Not Driving ROI", Href: "/solutions/website-roi", Description: "Get measurable ROI from your website investment", Icon: "bar-chart"},
			{Name: "Not Showing Up on Google", Href: "/solutions/google-visibility", Description: "Improve your search engine visibility and rankings", Icon: "search"},
			{Name: "Agency Not Driving Results", Href: "/solutions/agency-results", Description: "Get the results you deserve from your marketing agency", Icon: "alert-triangle"},
		},
	},
	{Name: "Case Studies", Href: "/case-studies", Description: "Success Stories"},
	{Name: "Industries", Href: "/industries", Description: "Industry Solutions"},
	{Name: "Pricing", Href: "/pricing", Description: "Transparent Pricing"},
	{Name: "Resources", Href: "/resources", Description: "Free Tools & Guides"},
	{Name: "About", Href: "/about", Description: "Our Story"},
}

// Build renders the header for currentPath. openDropdown names (or slugs) the
// dropdown to render expanded; unknown names leave every dropdown closed.
func Build(currentPath, openDropdown string) Menu {
	if currentPath == "" {
		currentPath = "/"
	}
	open := ""
	if it, ok := Group(openDropdown); ok {
		open = it.Slug()
	}
	menu := Menu{
		Items:        make([]RenderedItem, 0, len(Main)),
		Open:         open,
		CloseTrigger: CloseTrigger(),
	}
	for _, it := range Main {
		r := RenderedItem{
			Name:        it.Name,
			Href:        it.Href,
			Description: it.Description,
			Slug:        it.Slug(),
		}
		if len(it.Children) == 0 {
			r.Active = isActive(it.Href, currentPath)
		} else {
			r.Open = r.Slug == open
			r.Active = it.Href != "#" && currentPath == it.Href
			r.Children = make([]RenderedChild, 0, len(it.Children))
			for _, c := range it.Children {
				active := isActive(c.Href, currentPath)
				r.Active = r.Active || active
				r.Children = append(r.Children, RenderedChild{Child: c, Active: active})
			}
		}
		menu.Items = append(menu.Items, r)
	}
	return menu
}

// Toggle returns the dropdown that is open after clicking name while current
// is open: clicking the open dropdown closes it, anything else switches.
func Toggle(current, name string) string {
	it, ok := Group(name)
	if !ok {
		return ""
	}
	if slugify(current) == it.Slug() {
		return ""
	}
	return it.Slug()
}

// Group looks up a dropdown by display name or slug.
func Group(name string) (Item, bool) {
	key := slugify(name)
	if key == "" {
		return Item{}, false
	}
	for _, it := range Main {
		if len(it.Children) > 0 && it.Slug() == key {
			return it, true
		}
	}
	return Item{}, false
}

// CloseTrigger is the htmx trigger that closes a dropdown after CloseDelay.
func CloseTrigger() string {
	return fmt.Sprintf("mouseleave delay:%dms", CloseDelay.Milliseconds())
}

func isActive(itemPath, currentPath string) bool {
	if itemPath == "" || itemPath == "#" {
		return false
	}
	if itemPath == "/" {
		return currentPath == "/"
	}
	// match exact or prefix boundary: "/services" or "/services/..."
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path.
// Known top-level sections use the menu label; deeper segments are prettified.
func Breadcrumbs(currentPath string) []Crumb {
	return BreadcrumbsWith(currentPath, nil)
}

// BreadcrumbsWith is Breadcrumbs with a label override for specific hrefs
// (e.g. a blog post title for /blog/{slug}).
func BreadcrumbsWith(currentPath string, label func(href string) (string, bool)) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", Label: "Home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean("/" + strings.Trim(currentPath, "/"))
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	href := ""
	for i, part := range parts {
		if part == "" {
			continue
		}
		href += "/" + part
		text := ""
		if label != nil {
			if l, ok := label(href); ok {
				text = l
			}
		}
		if text == "" && i == 0 {
			text = sectionLabel(href)
		}
		if text == "" {
			text = TitleFromSegment(part)
		}
		crumbs = append(crumbs, Crumb{Href: href, Label: text, Active: i == len(parts)-1})
	}
	return crumbs
}

func sectionLabel(href string) string {
	if href == "/services" {
		return "Services"
	}
	for _, it := range Main {
		if it.Href == href {
			return it.Name
		}
	}
	return ""
}

// TitleFromSegment turns a URL segment into a display label ("local-seo" -> "Local Seo").
func TitleFromSegment(seg string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(seg)
	return cases.Title(language.English).String(strings.TrimSpace(s))
}

func slugify(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		case !dash && b.Len() > 0:
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
