package catalog

import "sort"

// PageKind groups static pages for sitemap priority and layout choices.
type PageKind string

const (
	PageCore     PageKind = "core"
	PageHub      PageKind = "hub"
	PageLegal    PageKind = "legal"
	PageSolution PageKind = "solution"
)

// Page is a static content page rendered by the generic page template.
type Page struct {
	Path        string
	Title       string
	Heading     string
	Description string
	Kind        PageKind
	Sections    []Named
}

var pages = []Page{
	{
		Path:        "/about",
		Title:       "About Web Vello | Digital Marketing Agency",
		Heading:     "About Web Vello",
		Description: "Web Vello is a digital marketing agency specializing in SEO, GEO, AEO, and conversion-focused web development.",
		Kind:        PageCore,
		Sections: []Named{
			{Name: "AI-Powered Technology", Description: "We analyze data patterns competitors miss and turn them into search visibility."},
			{Name: "Transparent Reporting", Description: "Weekly updates and shared dashboards keep every engagement measurable."},
			{Name: "Senior-Level Team", Description: "Certified strategists work directly on your account."},
		},
	},
	{
		Path:        "/contact",
		Title:       "Contact Web Vello | Free Consultation",
		Heading:     "Talk to a strategist",
		Description: "Book a free consultation and get a custom growth plan for your business.",
		Kind:        PageCore,
	},
	{
		Path:        "/pricing",
		Title:       "Pricing | Transparent Digital Marketing Packages",
		Heading:     "Transparent pricing",
		Description: "Clear packages for website design, SEO and GEO with no long-term lock-in.",
		Kind:        PageCore,
		Sections: []Named{
			{Name: "Starter", Description: "A conversion-focused website with on-page SEO foundations."},
			{Name: "Growth", Description: "Ongoing SEO, local SEO and content for businesses ready to scale."},
			{Name: "Enterprise", Description: "Multi-location GEO, AEO and custom development programs."},
		},
	},
	{
		Path:        "/privacy",
		Title:       "Privacy Policy",
		Heading:     "Privacy Policy",
		Description: "How Web Vello collects, uses and protects your information.",
		Kind:        PageLegal,
	},
	{
		Path:        "/terms",
		Title:       "Terms of Service",
		Heading:     "Terms of Service",
		Description: "The terms governing use of the Web Vello website and services.",
		Kind:        PageLegal,
	},
	{
		Path:        "/case-studies",
		Title:       "Case Studies | Client Success Stories",
		Heading:     "Success stories",
		Description: "How businesses grew traffic, leads and revenue with Web Vello.",
		Kind:        PageHub,
	},
	{
		Path:        "/resources",
		Title:       "Resources | Free Tools & Guides",
		Heading:     "Free tools and guides",
		Description: "Checklists, audits and guides to improve your search visibility.",
		Kind:        PageHub,
	},
	{
		Path:        "/locations",
		Title:       "Locations | Cities We Serve",
		Heading:     "Cities we serve",
		Description: "Local SEO, GEO and web design for businesses across major US cities.",
		Kind:        PageHub,
	},
	{
		Path:        "/solutions",
		Title:       "Solutions | Fix What's Holding Your Website Back",
		Heading:     "Solutions for common problems",
		Description: "Targeted programs for websites that are not driving traffic, leads or ROI.",
		Kind:        PageHub,
	},
	{
		Path:        "/solutions/website-leads",
		Title:       "Website Not Driving Leads? | Web Vello",
		Heading:     "Website Not Driving Leads",
		Description: "Transform your website into a lead generation machine.",
		Kind:        PageSolution,
	},
	{
		Path:        "/solutions/declining-traffic",
		Title:       "Declining Website Traffic? | Web Vello",
		Heading:     "Declining Website Traffic",
		Description: "Reverse declining traffic with proven strategies.",
		Kind:        PageSolution,
	},
	{
		Path:        "/solutions/website-conversion",
		Title:       "Website Not Converting? | Web Vello",
		Heading:     "Website Not Converting",
		Description: "Optimize your website for maximum conversions.",
		Kind:        PageSolution,
	},
	{
		Path:        "/solutions/website-roi",
		Title:       "Website Not Driving ROI? | Web Vello",
		Heading:     "Website Not Driving ROI",
		Description: "Get measurable ROI from your website investment.",
		Kind:        PageSolution,
	},
	{
		Path:        "/solutions/google-visibility",
		Title:       "Not Showing Up on Google? | Web Vello",
		Heading:     "Not Showing Up on Google",
		Description: "Improve your search engine visibility and rankings.",
		Kind:        PageSolution,
	},
	{
		Path:        "/solutions/agency-results",
		Title:       "Agency Not Driving Results? | Web Vello",
		Heading:     "Agency Not Driving Results",
		Description: "Get the results you deserve from your marketing agency.",
		Kind:        PageSolution,
	},
}

// Pages returns the static pages sorted by path.
func Pages() []Page {
	out := make([]Page, len(pages))
	for i, p := range pages {
		p.Sections = append([]Named(nil), p.Sections...)
		out[i] = p
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// LookupPage finds a static page by its path.
func LookupPage(path string) (Page, bool) {
	for _, p := range Pages() {
		if p.Path == path {
			return p, true
		}
	}
	return Page{}, false
}
