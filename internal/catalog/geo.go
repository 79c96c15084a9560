package catalog

var geoPages = map[string]GeoPage{
	"geo-austin": {
		Slug:        "geo-austin",
		City:        "Austin",
		State:       "TX",
		Title:       "GEO Services Austin | AI Search Optimization | Web Vello",
		Description: "Get your Austin business found in ChatGPT, Perplexity, and Google SGE. Local GEO services for Austin businesses to dominate AI search.",
		Keywords:    []string{"geo austin", "ai seo austin", "chatgpt optimization austin", "generative engine optimization austin"},
		Headline:    "GEO Services for Austin Businesses",
		Intro:       "Austin is full of tech-savvy AI adopters. When they ask ChatGPT for recommendations, your business should be the answer.",
		Industries: []Named{
			{Name: "Tech & Startups", Description: "Austin's booming tech ecosystem"},
			{Name: "SaaS & Software", Description: "Enterprise and consumer software"},
			{Name: "Music & Entertainment", Description: "Live music capital of the world"},
			{Name: "Food & Restaurant", Description: "Vibrant food scene and hospitality"},
			{Name: "Real Estate", Description: "One of the fastest growing markets"},
			{Name: "Professional Services", Description: "Law, accounting, consulting"},
		},
		Neighborhoods: []string{
			"Downtown Austin", "South Congress (SoCo)", "East Austin", "The Domain",
			"Mueller", "Hyde Park", "Westlake", "Round Rock",
			"Cedar Park", "Pflugerville",
		},
		FAQs: []FAQ{
			{
				Question: "Why does my Austin business need GEO?",
				Answer:   "Austin is one of the most tech-savvy cities in America. Your potential customers are early adopters of AI search tools. When someone asks ChatGPT 'best tech recruiting firm in Austin' or 'top restaurants on South Congress,' you want to be in that answer.",
			},
			{
				Question: "How is Austin GEO different from general GEO?",
				Answer:   "Austin GEO incorporates local context: neighborhoods like SoCo and The Domain, the tech and startup culture, the music scene, and the unique Austin identity. We optimize for how Austin residents actually ask AI for recommendations.",
			},
			{
				Question: "What industries benefit most from Austin GEO?",
				Answer:   "Tech companies, SaaS businesses, professional services, restaurants, and real estate see the biggest impact. Austin's tech-savvy population uses AI search heavily for both business and personal decisions.",
			},
			{
				Question: "Do you work with Austin tech startups?",
				Answer:   "Absolutely. We understand the Austin tech ecosystem and how startup founders, investors, and employees use AI to research vendors, partners, and service providers.",
			},
			{
				Question: "How do you handle Austin's rapid growth?",
				Answer:   "Austin is one of the fastest-growing cities in the US. We help new businesses establish AI visibility quickly and help established businesses maintain dominance as competition increases.",
			},
			{
				Question: "What's the timeline for Austin GEO results?",
				Answer:   "Initial visibility improvements typically appear within 4-8 weeks. For competitive Austin markets like tech services or real estate, full optimization may take 3-6 months.",
			},
		},
	},
	"geo-seattle": {
		Slug:        "geo-seattle",
		City:        "Seattle",
		State:       "WA",
		Title:       "GEO Services Seattle | AI Search Optimization Washington | Web Vello",
		Description: "Get your Seattle business found in ChatGPT, Perplexity, and Google SGE. Local GEO services for Seattle, Bellevue, and the Puget Sound region.",
		Keywords:    []string{"geo seattle", "generative engine optimization seattle", "ai seo seattle", "chatgpt optimization washington", "perplexity optimization seattle"},
		Headline:    "GEO Services for Seattle Businesses",
		Intro:       "Get your Puget Sound business mentioned when customers ask AI for recommendations. From Seattle to Bellevue, we help businesses dominate AI search in the tech capital.",
		Industries: []Named{
			{Name: "Technology", Description: "Amazon, Microsoft, and thousands of tech companies"},
			{Name: "Aerospace", Description: "Boeing and aerospace manufacturing"},
			{Name: "Healthcare", Description: "Major hospital systems and medical practices"},
			{Name: "Professional Services", Description: "Consulting, legal, and business services"},
			{Name: "Real Estate", Description: "Booming residential and commercial market"},
			{Name: "Coffee & Food", Description: "Starbucks HQ and thriving food scene"},
			{Name: "Biotechnology", Description: "Growing biotech and life sciences sector"},
			{Name: "Outdoor & Retail", Description: "REI and outdoor industry companies"},
		},
		Neighborhoods: []string{
			"Downtown Seattle", "Capitol Hill", "Ballard", "Fremont",
			"Queen Anne", "Wallingford", "University District", "South Lake Union",
			"Bellevue", "Redmond", "Kirkland", "Tacoma",
			"Everett", "Renton", "Issaquah", "Bothell",
		},
		FAQs: []FAQ{
			{
				Question: "How does GEO help my Seattle business?",
				Answer:   "When someone asks ChatGPT 'best web developer in Seattle' or asks Perplexity 'find an accounting firm in Bellevue,' your business should be mentioned. GEO optimizes your online presence so AI systems recognize and recommend you in the Puget Sound market.",
			},
			{
				Question: "Do you serve the entire Puget Sound region?",
				Answer:   "Yes. We serve businesses throughout the Seattle metro area: Seattle, Bellevue, Tacoma, Everett, and the entire Puget Sound region. We create location-specific strategies for your service areas across King, Pierce, and Snohomish counties.",
			},
			{
				Question: "What makes Seattle different for GEO?",
				Answer:   "Seattle is home to Amazon, Microsoft, and thousands of tech companies. Your audience here is among the most tech-savvy in the country and early adopters of AI search. Competition for AI visibility is fierce, making early GEO adoption critical.",
			},
			{
				Question: "How long until I see AI visibility improvements?",
				Answer:   "For niche queries and specific neighborhoods, we typically see improvements in 4-8 weeks. Broader competitive terms, especially in tech-heavy categories, take 3-6 months. We prioritize quick wins while building toward larger visibility goals.",
			},
		},
	},
	"geo-chicago": {
		Slug:        "geo-chicago",
		City:        "Chicago",
		State:       "IL",
		Title:       "GEO Services Chicago | AI Search Optimization | Web Vello",
		Description: "Get your Chicago business found in ChatGPT, Perplexity, and Google SGE. Local GEO services for the Loop, North Side, South Side, and greater Chicagoland.",
		Keywords:    []string{"geo chicago", "generative engine optimization chicago", "ai seo chicago", "chatgpt optimization chicago", "perplexity optimization chicago"},
		Headline:    "GEO Services for Chicago Businesses",
		Intro:       "Get your Chicago business mentioned when customers ask AI for recommendations. From the Loop to the suburbs, we help Chicagoland businesses dominate AI search results.",
		Industries: []Named{
			{Name: "Financial Services", Description: "Banks, trading firms, fintech in the Midwest financial hub"},
			{Name: "Manufacturing", Description: "Industrial businesses and B2B manufacturers"},
			{Name: "Legal Services", Description: "Law firms from LaSalle Street to the suburbs"},
			{Name: "Healthcare", Description: "Medical practices, hospitals, specialists across Cook County"},
			{Name: "Real Estate", Description: "Agents and brokerages in Chicago's diverse neighborhoods"},
			{Name: "Food & Hospitality", Description: "Restaurants, hotels, and venues in the food city"},
			{Name: "Technology", Description: "Tech companies and startups in Chicago's growing tech scene"},
			{Name: "Transportation & Logistics", Description: "Shipping, trucking, and logistics companies"},
		},
		Neighborhoods: []string{
			"The Loop", "River North", "Lincoln Park", "Wicker Park",
			"Lakeview", "Gold Coast", "Old Town", "Wrigleyville",
			"Hyde Park", "Pilsen", "Logan Square", "Bucktown",
			"West Loop", "South Loop", "Streeterville", "Magnificent Mile",
		},
		FAQs: []FAQ{
			{
				Question: "How does GEO help my Chicago business?",
				Answer:   "When someone asks ChatGPT 'best deep dish pizza in Chicago' or asks Perplexity 'find a commercial real estate lawyer near me,' your business should be mentioned. GEO optimizes your online presence so AI systems recognize and recommend you for relevant local queries in the Chicago market.",
			},
			{
				Question: "Do you work with businesses throughout Chicagoland?",
				Answer:   "Yes. We serve businesses throughout the Chicago metro area, from the Loop to the suburbs, North Side to South Side. We also work with businesses in the collar counties: DuPage, Lake, Will, Kane, and McHenry. We create location-specific strategies for your service areas.",
			},
			{
				Question: "What makes Chicago different for GEO?",
				Answer:   "Chicago is the business hub of the Midwest with strong B2B and professional services sectors. The neighborhood-specific nature of Chicago means hyper-local GEO strategies are essential. We understand Chicago's diverse business landscape and optimize accordingly.",
			},
			{
				Question: "How long until I see AI visibility improvements in Chicago?",
				Answer:   "For niche queries and specific neighborhoods, we typically see improvements in 4-8 weeks. Broader competitive terms take 3-6 months. We prioritize quick wins in your specific area while building toward larger visibility goals.",
			},
		},
	},
	"geo-new-york": {
		Slug:        "geo-new-york",
		City:        "New York",
		State:       "NY",
		Title:       "GEO Services New York | AI Search Optimization NYC | Web Vello",
		Description: "Get your NYC business found in ChatGPT, Perplexity, and Google SGE. Local GEO services for Manhattan, Brooklyn, Queens, and all NYC boroughs.",
		Keywords:    []string{"geo new york", "generative engine optimization nyc", "ai seo new york", "chatgpt optimization nyc", "perplexity optimization new york"},
		Headline:    "GEO Services for New York Businesses",
		Intro:       "Get your NYC business mentioned when customers ask AI for recommendations. From Manhattan to Brooklyn, we help New York businesses dominate AI search results.",
		Industries: []Named{
			{Name: "Financial Services", Description: "Banks, investment firms, fintech companies in the financial capital"},
			{Name: "Legal Services", Description: "Law firms from boutique to BigLaw, all practice areas"},
			{Name: "Real Estate", Description: "Agents, brokerages, property managers in NYC's competitive market"},
			{Name: "Healthcare", Description: "Medical practices, specialists, clinics across the five boroughs"},
			{Name: "Professional Services", Description: "Consulting, accounting, and business services"},
			{Name: "Restaurants & Hospitality", Description: "Restaurants, hotels, and venues in the food capital"},
			{Name: "Tech & Startups", Description: "Silicon Alley companies and tech firms"},
			{Name: "Retail & E-commerce", Description: "Stores and D2C brands based in NYC"},
		},
		Neighborhoods: []string{
			"Manhattan", "Brooklyn", "Queens", "The Bronx",
			"Staten Island", "Midtown", "SoHo", "Tribeca",
			"Chelsea", "Upper East Side", "Upper West Side", "Financial District",
			"Williamsburg", "DUMBO", "Long Island City", "Harlem",
		},
		FAQs: []FAQ{
			{
				Question: "How does GEO help my New York City business?",
				Answer:   "When someone asks ChatGPT 'best Italian restaurant in SoHo' or asks Perplexity 'find a CPA near me in Manhattan,' AI systems need to mention your business. GEO optimizes your online presence so AI recognizes and recommends you. With NYC's competitive market and tech-savvy population, AI search visibility is becoming critical.",
			},
			{
				Question: "Do you work with businesses in all five boroughs?",
				Answer:   "Yes. We serve businesses throughout NYC: Manhattan, Brooklyn, Queens, The Bronx, and Staten Island. We also work with businesses in the greater metro area including Long Island, Westchester, and New Jersey. We create location-specific strategies for your service areas.",
			},
			{
				Question: "What makes NYC different for GEO?",
				Answer:   "New York is the most competitive business market in the country with the highest density of sophisticated consumers. NYC residents adopt AI tools quickly and expect to find quality local businesses through these platforms. The neighborhood-specific nature of NYC search requires hyper-local GEO strategies.",
			},
			{
				Question: "How long until I see results in the NYC market?",
				Answer:   "For niche queries and specific neighborhoods, we typically see improvements in 4-8 weeks. Broader competitive terms take 3-6 months due to NYC's high competition. We prioritize quick wins in your specific borough or neighborhood while building toward larger visibility goals.",
			},
			{
				Question: "Can you help with both GEO and traditional local SEO?",
				Answer:   "Absolutely. We recommend combining GEO with traditional local SEO for maximum visibility in NYC. We optimize your Google Business Profile, build local citations, manage reviews, and create location-specific content while ensuring AI systems cite your business.",
			},
		},
	},
}
