package catalog

var industries = map[string]Industry{
	"finance": {
		Slug:        "finance",
		Name:        "Finance",
		Description: "Banks, investment firms, fintech, and financial services companies requiring compliance, trust, and conversion-focused experiences.",
	},
	"technology": {
		Slug:        "technology",
		Name:        "Technology",
		Description: "Software, SaaS, and tech-enabled businesses focused on growth, product launches, and complex value propositions.",
	},
	"healthcare": {
		Slug:        "healthcare",
		Name:        "Healthcare",
		Description: "Providers, clinics, and healthcare systems with HIPAA concerns, local visibility, and patient acquisition needs.",
	},
	"manufacturing": {
		Slug:        "manufacturing",
		Name:        "Manufacturing",
		Description: "Industrial manufacturers and suppliers requiring lead gen, technical content, and distributor/channel alignment.",
	},
	"realestate": {
		Slug:        "realestate",
		Name:        "Real Estate",
		Description: "Residential and commercial real estate firms prioritizing local SEO, listings, and investor relations.",
	},
	"retail": {
		Slug:        "retail",
		Name:        "Retail",
		Description: "E-commerce and omnichannel retailers focused on merchandising, CRO, and lifecycle marketing.",
	},
	"education": {
		Slug:        "education",
		Name:        "Education",
		Description: "Schools, universities, and edtech companies targeting enrollment, program awareness, and content authority.",
	},
	"tourism": {
		Slug:        "tourism",
		Name:        "Tourism",
		Description: "Travel, hospitality, and attractions requiring rich media, local SEO, and seasonality-driven campaigns.",
	},
	"aerospace": {
		Slug:        "aerospace",
		Name:        "Aerospace",
		Description: "Aviation and aerospace companies with long sales cycles, certifications, and complex procurement processes.",
	},
	"energy": {
		Slug:        "energy",
		Name:        "Energy",
		Description: "Oil and gas, renewables, and utilities requiring stakeholder communications and service visibility.",
	},
	"government": {
		Slug:        "government",
		Name:        "Government",
		Description: "Public sector organizations focusing on accessibility, transparency, and constituent services.",
	},
	"logistics": {
		Slug:        "logistics",
		Name:        "Logistics",
		Description: "Transportation, warehousing, and supply chain companies optimizing demand capture and operations.",
	},
	"automotive": {
		Slug:        "automotive",
		Name:        "Automotive",
		Description: "OEMs, suppliers, and mobility services with technical content needs and local presence.",
	},
	"entertainment": {
		Slug:        "entertainment",
		Name:        "Entertainment",
		Description: "Film, music, and media businesses prioritizing audience growth and engagement.",
	},
	"fashion": {
		Slug:        "fashion",
		Name:        "Fashion",
		Description: "Apparel and lifestyle brands focused on merchandising, brand, and e-commerce.",
	},
	"agriculture": {
		Slug:        "agriculture",
		Name:        "Agriculture",
		Description: "Producers and agri-businesses needing B2B demand gen and local visibility.",
	},
}
