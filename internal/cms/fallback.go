package cms

import "sort"

// Built-in articles ship with the binary so /blog is never empty on a fresh deploy.
// Files in the content directory with the same slug replace them.
var builtinPosts = map[string]string{
	"geo-vs-seo-differences-2025": `---
title: "GEO vs SEO: Key Differences and Why You Need Both (2025)"
summary: "Understand the differences between GEO (Generative Engine Optimization) and traditional SEO. Learn why you need both strategies for maximum search visibility."
published_at: "2025-01-16"
category: "GEO & AI Search"
service: "Generative Engine Optimization"
reading_time: 10
keywords:
  - geo vs seo
  - generative engine optimization vs seo
  - ai seo vs traditional seo
  - geo and seo differences
seo:
  title: "GEO vs SEO: Key Differences and Why You Need Both"
  description: "Understand the differences between GEO and traditional SEO."
---
With the rise of AI search tools like ChatGPT, Perplexity, and Google SGE, a new optimization discipline has emerged: GEO (Generative Engine Optimization). But what exactly makes it different from traditional SEO, and do you need both?

## The Quick Answer

**SEO** optimizes your website to rank in traditional search engine results (Google's 10 blue links).

**GEO** optimizes your content to be mentioned and cited in AI-generated answers (ChatGPT responses, Perplexity answers, Google AI Overviews).

You need both because your customers use both. Some search on Google, some ask AI. The businesses that capture both channels win more customers.

## Side-by-Side Comparison

| Factor | Traditional SEO | GEO |
|---|---|---|
| Primary Goal | Rank URLs in search results | Get mentioned in AI answers |
| Target Platforms | Google, Bing search engines | ChatGPT, Claude, Perplexity, SGE |
| Success Metric | Ranking position, organic traffic | Citation frequency, AI mentions |
| Content Focus | Keywords, backlinks, technical factors | Entities, structure, semantic clarity |
| User Outcome | Click through to website | Information + brand attribution |
| Time to Results | 3-6 months typical | 4-8 weeks for initial visibility |

## What SEO Does Well

Traditional SEO excels at:

- **Driving website traffic**: users click through to your site
- **Capturing purchase intent**: ranking for transactional keywords
- **Building authority**: backlinks and domain reputation
- **Local visibility**: Google Maps and local pack rankings
- **Long-term compounding**: rankings often stick once earned

## What GEO Does Well

GEO excels at:

- **Early-stage research visibility**: when users are exploring options
- **Brand building**: being recommended by AI builds trust
- **Answering questions**: AI users ask questions, not keywords
- **Comparison queries**: "Best X vs Y" queries where AI recommends
- **Future-proofing**: AI search is growing rapidly

## Why You Need Both

### Different User Journeys

Some users Google for information. Some ask ChatGPT. Some do both. If you only optimize for one, you're invisible to the other audience.

### Different Stages of the Funnel

AI search often captures users earlier in their journey, during research and exploration. Traditional search captures users closer to purchase. You want visibility at both stages.

### Synergy Between Channels

Good GEO often improves SEO (structured content helps both). Good SEO often helps GEO (authoritative sites get cited more). They reinforce each other.

## How to Approach Both

### Start with SEO Fundamentals

SEO fundamentals like good content, clean technical structure and mobile-friendly design benefit both SEO and GEO. Don't abandon SEO basics.

### Add GEO Layers

On top of SEO, add GEO-specific optimizations:

- Schema markup for AI understanding
- FAQ sections that match AI query patterns
- Entity optimization for brand recognition
- Content structured for AI extraction

### Track Both Channels

Measure SEO through rankings and organic traffic. Measure GEO through AI testing, brand mentions, and attribution from new customers who found you via AI.

## Common Questions

### Will GEO replace SEO?

No. They serve different purposes. SEO will remain important for driving website traffic. GEO adds visibility in a new channel. Think of them as complementary, not competitive.

### Which should I prioritize?

If you have zero SEO, start there; it's foundational. If you have solid SEO but no GEO, adding GEO can unlock new visibility quickly. Most businesses should invest in both.

## Conclusion

GEO and SEO are both essential for comprehensive search visibility in 2025. SEO captures users who search traditionally. GEO captures users who ask AI. The smartest businesses invest in both to maximize their reach.

Ready to optimize for both? [Get a free SEO + GEO audit](/contact) and see where you stand in both channels.
`,

	"local-seo-checklist-2025": `---
title: "Local SEO Checklist 2025: Complete Guide for Local Businesses"
summary: "The complete local SEO checklist for 2025. Google Business Profile, local citations, reviews, and everything you need to rank locally."
published_at: "2025-01-27"
category: "Local SEO"
service: "Local SEO"
reading_time: 15
keywords:
  - local seo checklist
  - local seo guide 2025
  - google business profile optimization
  - local search optimization
seo:
  title: "Local SEO Checklist 2025"
  description: "Complete local SEO checklist for local businesses."
---
Local SEO is essential for any business that serves customers in a specific geographic area. This checklist covers everything you need to optimize for local search in 2025.

## Google Business Profile Optimization

- [ ] Claim and verify your Google Business Profile
- [ ] Complete all business information fields
- [ ] Choose primary and secondary categories
- [ ] Add high-quality photos (exterior, interior, team, products)
- [ ] Write a compelling business description with keywords
- [ ] Add all services with descriptions
- [ ] Set accurate business hours (including holidays)
- [ ] Enable messaging and Q&A
- [ ] Post weekly updates (offers, events, news)

## NAP Consistency

NAP (Name, Address, Phone) consistency is critical for local SEO. Your business information must be identical everywhere it appears online.

- [ ] Document your official NAP format
- [ ] Add NAP to website header/footer
- [ ] Include NAP on Contact page
- [ ] Audit existing citations for consistency
- [ ] Use schema markup for structured NAP

## Local Citations

- [ ] Submit to major data aggregators
- [ ] Claim Yelp, Bing Places, Apple Maps
- [ ] Submit to industry-specific directories
- [ ] Join local Chamber of Commerce

## Review Strategy

- [ ] Create a review generation process
- [ ] Set up review request emails/SMS
- [ ] Respond to all reviews (positive and negative)
- [ ] Diversify review platforms (Google, Yelp, industry-specific)
- [ ] Add review schema markup to website

## On-Page Local SEO

- [ ] Include city/location in title tags
- [ ] Add location to meta descriptions
- [ ] Create location-specific landing pages
- [ ] Embed Google Map on Contact page
- [ ] Implement LocalBusiness schema markup

## Local Link Building

- [ ] Partner with local businesses for cross-links
- [ ] Sponsor local events and organizations
- [ ] Get featured in local news and publications
- [ ] Create linkable local resources

## Adding GEO to Your Local Strategy

In 2025, local SEO isn't complete without GEO. Many local searches now happen through AI:

- "Best plumber near me" asked to ChatGPT
- "Recommend a restaurant in [neighborhood]" asked to Perplexity
- "What dentist should I see for [procedure]" asked to Claude

Adding GEO to your local strategy means optimizing your local presence for AI systems, not just search engines. This includes structured data, FAQ content, and entity optimization.

Need help? [Get a free local SEO audit](/contact) to see where you stand.
`,

	"how-to-rank-chatgpt-local-business": `---
title: "How to Get Your Local Business Mentioned in ChatGPT (2025 Guide)"
summary: "Step-by-step guide to getting your local business recommended by ChatGPT and other AI assistants. Practical GEO strategies that work."
published_at: "2025-01-08"
category: "GEO & AI Search"
service: "ChatGPT Optimization"
reading_time: 12
keywords:
  - chatgpt local business
  - get mentioned in chatgpt
  - chatgpt seo
  - ai recommendations local business
  - chatgpt optimization
seo:
  title: "How to Get Your Local Business Mentioned in ChatGPT"
  description: "Step-by-step guide to getting your local business recommended by AI assistants."
---
More people are asking ChatGPT questions like "Who's the best plumber in Denver?" or "Find me a good dentist in Austin." If your business isn't being mentioned, you're missing out on a growing source of customers.

## Why ChatGPT Matters for Local Businesses

ChatGPT has over 200 million weekly active users. Many of them use it like a smarter, conversational search engine, asking questions and expecting helpful answers.

**The opportunity:** most local businesses haven't optimized for AI recommendations. If you do it now, you can get mentioned before your competitors even know this is a thing.

## How ChatGPT Finds Local Business Information

### Training Data

ChatGPT was trained on a massive dataset that includes websites, directories, articles, and other content. If your business has been mentioned in quality content, ChatGPT may "know" about you.

### Web Browsing

With browsing enabled, ChatGPT searches the web in real time and cites sources when someone asks for a local recommendation.

### Pattern Recognition

ChatGPT looks for signals of quality and relevance: consistent information, reviews, detailed service descriptions, and authoritative mentions across multiple sources.

## Step-by-Step: Getting Your Business Mentioned

### Step 1: Make Your Business Information Crystal Clear

- **Business name**: use the exact same name everywhere
- **Service type**: clearly state what you do
- **Location**: city, neighborhoods, service areas
- **Specialties**: what you're known for

### Step 2: Create FAQ Content That Matches How People Ask

People ask "Who's the best [service] in [city]?" Answer those questions directly on your site.

### Step 3: Build Authority Through Content

Publish comprehensive service pages, local guides, case studies with specific details, and an about page with your credentials.

### Step 4: Get Mentioned on Other Sites

Keep your Google Business Profile complete, claim your Yelp listing, and get listed in industry directories and local publications.

### Step 5: Add Schema Markup

Add LocalBusiness schema so AI systems can read your details:

    {
      "@context": "https://schema.org",
      "@type": "LocalBusiness",
      "name": "Your Business Name",
      "areaServed": ["Denver", "Aurora", "Lakewood"]
    }

### Step 6: Collect and Feature Reviews

Ask satisfied customers for Google reviews, feature testimonials with specific details, and respond to every review.

## What NOT to Do

- **Don't try to "hack" ChatGPT**: it doesn't work like that
- **Don't stuff keywords**: AI understands context
- **Don't create thin content**: quality matters more than quantity
- **Don't have inconsistent information**: same name and address everywhere

## How to Test Your Progress

Periodically ask ChatGPT "Who's the best [your service] in [your city]?" Responses vary, so the goal is to increase your chances, not guarantee mentions.

## Timeline: What to Expect

- **Week 1-2:** optimize website content and schema
- **Month 1:** create FAQ and location-specific content
- **Month 2-3:** build external mentions and reviews
- **Month 4+:** start seeing mentions in AI responses

Need help? [Get a free AI visibility audit](/contact).
`,
}

func builtinSource(slug string) (string, bool) {
	src, ok := builtinPosts[slug]
	return src, ok
}

func builtinSlugs() []string {
	out := make([]string, 0, len(builtinPosts))
	for slug := range builtinPosts {
		out = append(out, slug)
	}
	sort.Strings(out)
	return out
}
