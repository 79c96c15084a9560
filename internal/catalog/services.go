package catalog

var defaultBenefits = []string{
	"Expert local market knowledge",
	"Proven track record of success",
	"Customized solutions for your business",
	"Ongoing support and optimization",
}

var defaultProcess = []string{
	"Discovery & Planning",
	"Strategy & Design",
	"Implementation",
	"Optimization & Support",
}

var defaultServiceIndustries = []string{"Technology", "Healthcare", "Finance", "Retail", "Manufacturing", "Real Estate"}

var defaultServiceFAQs = []FAQ{
	{
		Question: "How long does it take to see results?",
		Answer:   "Results vary by service and business goals, but most clients see initial improvements within 30-60 days.",
	},
	{
		Question: "Do you work with businesses of all sizes?",
		Answer:   "Yes, we work with small businesses, mid-market companies, and enterprises across various industries.",
	},
	{
		Question: "What makes your services different?",
		Answer:   "We combine local market expertise with proven methodologies and cutting-edge technology to deliver exceptional results.",
	},
}

// service builds an entry sharing the default benefits, process, industries and FAQs.
func service(slug, name, category, summary, longDesc string) Service {
	return Service{
		Slug:       slug,
		Name:       name,
		Category:   category,
		Summary:    summary,
		LongDesc:   longDesc,
		Benefits:   defaultBenefits,
		Process:    defaultProcess,
		Industries: defaultServiceIndustries,
		FAQs:       defaultServiceFAQs,
	}
}

var services = func() map[string]Service {
	list := []Service{
		service("website-design", "Website Design", "Creative Solutions",
			"Custom website design that converts visitors to customers",
			"Custom website design solutions"),
		service("website-redesign", "Website Redesign", "Creative Solutions",
			"Transform your existing website for better performance",
			"Professional website redesign services"),
		service("web-development", "Web Development", "Technical Solutions",
			"Custom web development and programming services",
			"Custom web development solutions"),
		service("rapid-web-design", "Rapid Web Design", "Creative Solutions",
			"Fast-track website development for quick launches",
			"Fast-track website design services"),
		service("ui-ux-design", "UI/UX Design", "Creative Solutions",
			"User experience and interface design services",
			"User-centered design solutions"),
		service("ecommerce-design", "E-commerce Design", "Creative Solutions",
			"High-converting online store designs",
			"E-commerce website design services"),
		service("app-design-development", "App Design & Development", "Creative Solutions",
			"Custom mobile app design and development",
			"Mobile and web app design and development"),
		service("software-design-development", "Software Design & Development", "Technical Solutions",
			"Enterprise software solutions and custom applications",
			"Custom software design and development"),
		service("software-development", "Software Development", "Technical Solutions",
			"Custom software and application development",
			"Professional software development services"),
		service("shopify-development", "Shopify Development", "Technical Solutions",
			"High-performance Shopify ecommerce solutions",
			"Shopify store development and customization"),
		service("wordpress-development", "WordPress Development", "Technical Solutions",
			"Custom WordPress solutions and optimization",
			"WordPress website development services"),
		service("ai-consulting", "AI Consulting", "Intelligent Solutions",
			"Strategic AI implementation for your business",
			"AI strategy and implementation consulting"),
		service("ai-seo", "AI SEO", "Intelligent Solutions",
			"AI-powered search engine optimization",
			"AI-powered SEO optimization services"),
		service("ai-digital-marketing", "AI Digital Marketing", "Intelligent Solutions",
			"AI-powered marketing strategies and automation",
			"AI-enhanced digital marketing solutions"),
		service("ai-gpt-integration", "AI GPT Integration", "Intelligent Solutions",
			"Seamless AI and GPT integration for your systems",
			"GPT and AI model integration services"),
		service("ai-agent-development", "AI Agent Development", "Intelligent Solutions",
			"Custom AI agents for business automation",
			"Custom AI agent development services"),
		service("chatgpt-optimization", "ChatGPT Optimization", "Intelligent Solutions",
			"Optimize your ChatGPT prompts and workflows",
			"ChatGPT integration and optimization"),
		service("generative-engine-optimization", "Generative Engine Optimization", "Intelligent Solutions",
			"AI-powered content optimization for search engines",
			"Optimization for generative AI search engines"),
		service("answer-engine-optimization", "Answer Engine Optimization", "Intelligent Solutions",
			"Optimize for voice search and featured snippets",
			"Optimization for answer engines and voice search"),
		service("seo", "SEO Services", "Marketing Solutions",
			"Search engine optimization and digital marketing",
			"Comprehensive SEO optimization services"),
		service("local-seo", "Local SEO", "Marketing Solutions",
			"Local search optimization and Google My Business",
			"Local search engine optimization services"),
		service("digital-marketing", "Digital Marketing", "Marketing Solutions",
			"Comprehensive digital marketing strategies",
			"Comprehensive digital marketing services"),
		service("email-marketing-design", "Email Marketing Design", "Marketing Solutions",
			"Optimized email campaigns that drive sales",
			"Email marketing campaign design and optimization"),
		service("social-media-design", "Social Media Design", "Marketing Solutions",
			"Engaging social media graphics and content",
			"Social media content and campaign design"),
		service("cro-ecommerce", "CRO E-commerce", "Conversion Optimization",
			"Optimize your online store for maximum conversions",
			"E-commerce conversion rate optimization"),
		service("cro-lead-generation", "CRO Lead Generation", "Conversion Optimization",
			"Convert more visitors into qualified leads",
			"Lead generation conversion optimization"),
		service("enterprise-geo-services", "Enterprise GEO Services", "Intelligent Solutions",
			"AI-powered location intelligence for enterprise growth",
			"Enterprise-grade generative engine optimization"),
	}
	out := make(map[string]Service, len(list))
	for _, s := range list {
		out[s.Slug] = s
	}
	return out
}()
