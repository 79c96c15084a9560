package blogfactory

import (
	"errors"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
	"text/template"
)

// ErrUnknownTemplate is returned for template keys outside the vocabulary.
var ErrUnknownTemplate = errors.New("blogfactory: unknown template")

const defaultYear = 2024

// Post is a composed article before it is rendered to a document.
type Post struct {
	ID              string
	Template        string
	Title           string
	Slug            string
	MetaDescription string
	Body            string
	Industry        string
	Service         string
	City            string
	Keywords        []string
}

// Tuple identifies the inputs a post was composed from.
func (p Post) Tuple() Tuple {
	return Tuple{Template: p.Template, Industry: p.Industry, Service: p.Service, City: p.City}
}

// Tuple is the (template, industry, service, city) combination behind a post.
type Tuple struct {
	Template string
	Industry string
	Service  string
	City     string
}

// Key is a stable registry key for the tuple.
func (t Tuple) Key() string {
	return strings.ToLower(strings.Join([]string{t.Template, t.Industry, t.Service, t.City}, "|"))
}

// Composer builds posts by interpolating vocabulary into templates. Compose is
// a pure function of its inputs: choices the generator once made at random
// ({count}, the highlighted practice or trend) are derived from a hash of the tuple.
type Composer struct {
	Year int
}

// Compose builds the post for a template key and tuple.
func (c Composer) Compose(key, industry, service, city string) (Post, error) {
	tmpl, ok := LookupTemplate(key)
	if !ok {
		return Post{}, fmt.Errorf("%w: %q", ErrUnknownTemplate, key)
	}
	year := c.Year
	if year <= 0 {
		year = defaultYear
	}
	tuple := Tuple{Template: tmpl.Key, Industry: industry, Service: service, City: city}
	seed := tupleHash(tuple, "")

	title := strings.NewReplacer(
		"{action}", Action(service),
		"{industry}", industry,
		"{city}", city,
		"{service1}", service,
		"{service2}", AlternativeService(service),
		"{service}", service,
		"{count}", strconv.Itoa(int(seed%5)+5),
		"{year}", strconv.Itoa(year),
	).Replace(tmpl.Title)

	keywords := make([]string, 0, len(tmpl.Keywords)+3)
	for _, k := range tmpl.Keywords {
		keywords = append(keywords, strings.ReplaceAll(k, "{year}", strconv.Itoa(year)))
	}
	keywords = append(keywords, service, industry, city)

	body, err := composeBody(tmpl, tuple, title, year)
	if err != nil {
		return Post{}, err
	}

	return Post{
		Template:        tmpl.Key,
		Title:           title,
		Slug:            Slugify(title),
		MetaDescription: metaDescription(title, industry, city),
		Body:            body,
		Industry:        industry,
		Service:         service,
		City:            city,
		Keywords:        keywords,
	}, nil
}

func metaDescription(title, industry, city string) string {
	return fmt.Sprintf("Learn about %s for %s companies in %s. Expert insights, best practices, and actionable strategies to grow your business.",
		strings.ToLower(title), industry, city)
}

type sectionData struct {
	Heading  string
	Line     string
	Industry string
	Service  string
	City     string
	Title    string
}

func composeBody(tmpl Template, tuple Tuple, title string, year int) (string, error) {
	practices := []string{
		"Focus on user experience and mobile optimization for {city} customers",
		"Implement local SEO strategies specific to the {city} market",
		"Use data-driven decision making for {service} optimization",
		"Maintain consistent branding across all {service} touchpoints",
		"Regularly update and optimize your {service} based on performance metrics",
	}
	trends := []string{
		"AI and automation are revolutionizing {service} in the {industry} industry",
		"Personalization is becoming crucial for {service} success in {city}",
		"Mobile-first approaches are essential for {service} in {year}",
		"Data privacy and security are top priorities for {service} implementation",
		"Integration with emerging technologies is key to {service} success",
	}
	steps := map[string]string{
		"1": "Research and analyze your current {service} performance in the {city} market",
		"2": "Develop a comprehensive {service} strategy tailored to {industry} requirements",
		"3": "Implement the {service} solution with proper testing and optimization",
		"4": "Monitor, measure, and continuously improve your {service} results",
	}
	fill := strings.NewReplacer(
		"{service}", tuple.Service,
		"{industry}", tuple.Industry,
		"{city}", tuple.City,
		"{year}", strconv.Itoa(year),
	).Replace

	var b strings.Builder
	for _, heading := range tmpl.Structure {
		data := sectionData{
			Heading:  heading,
			Industry: tuple.Industry,
			Service:  tuple.Service,
			City:     tuple.City,
			Title:    title,
		}
		name := "generic"
		switch {
		case heading == "Introduction":
			name = "intro"
		case heading == "Conclusion":
			name = "conclusion"
		case strings.HasPrefix(heading, "Step "):
			name = "step"
			n := strings.TrimPrefix(heading, "Step ")
			if line, ok := steps[n]; ok {
				data.Line = fill(line)
			} else {
				data.Line = fmt.Sprintf("Execute the %s phase of your %s implementation", n, tuple.Service)
			}
		case strings.HasPrefix(heading, "Best Practice"):
			name = "practice"
			data.Line = fill(practices[tupleHash(tuple, heading)%uint64(len(practices))])
		case strings.HasPrefix(heading, "Trend"):
			name = "trend"
			data.Line = fill(trends[tupleHash(tuple, heading)%uint64(len(trends))])
		}
		if err := sections.ExecuteTemplate(&b, name, data); err != nil {
			return "", fmt.Errorf("blogfactory: render section %q: %w", heading, err)
		}
	}
	return b.String(), nil
}

func tupleHash(t Tuple, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(t.Key()))
	if salt != "" {
		_, _ = h.Write([]byte{0})
		_, _ = h.Write([]byte(salt))
	}
	return h.Sum64()
}

var sections = template.Must(template.New("sections").Parse(sectionTemplates))

const sectionTemplates = `
{{- define "intro" -}}
## Introduction

In today's competitive {{.Industry}} market in {{.City}}, {{.Service}} has become essential for business success. Whether you're a startup or an established company, understanding how to effectively implement {{.Service}} can make the difference between thriving and merely surviving.

This comprehensive guide will walk you through everything you need to know about {{.Service}} for {{.Industry}} companies in {{.City}}, including best practices, common pitfalls, and actionable strategies you can implement immediately.

### Why {{.Service}} Matters for {{.Industry}} in {{.City}}

The {{.Industry}} industry in {{.City}} is highly competitive, with businesses constantly looking for ways to gain an edge. {{.Service}} provides that competitive advantage by:

- Improving your online visibility
- Enhancing customer experience
- Increasing conversion rates
- Building brand authority
- Driving sustainable growth

Let's dive into the specific strategies that work best for {{.Industry}} companies in the {{.City}} market.

{{end -}}

{{- define "step" -}}
## {{.Heading}}

{{.Line}}

### Detailed Implementation

For {{.Industry}} companies in {{.City}}, this step involves:

1. **Market Analysis**: Understanding the specific needs of {{.Industry}} customers in {{.City}}
2. **Competitive Research**: Analyzing what your competitors are doing with {{.Service}}
3. **Resource Planning**: Allocating the right resources for successful {{.Service}} implementation
4. **Timeline Development**: Creating a realistic timeline for {{.Service}} deployment

### Key Considerations

- **Local Market Dynamics**: {{.City}} has unique characteristics that affect {{.Service}} success
- **Industry Regulations**: {{.Industry}} companies must comply with specific regulations
- **Customer Expectations**: Understanding what {{.City}} customers expect from {{.Service}}
- **Technology Requirements**: Ensuring your {{.Service}} solution meets technical standards

{{end -}}

{{- define "practice" -}}
## {{.Heading}}

{{.Line}}

### Why This Matters for {{.Industry}} in {{.City}}

This best practice is particularly important for {{.Industry}} companies in {{.City}} because:

- **Market Competition**: {{.City}} has a highly competitive {{.Industry}} market
- **Customer Expectations**: {{.City}} customers have high expectations for {{.Service}}
- **Local Factors**: {{.City}}-specific factors that impact {{.Service}} success
- **Industry Standards**: {{.Industry}} industry standards that must be met

### Implementation Tips

1. **Start Small**: Begin with a pilot program to test the practice
2. **Measure Results**: Track key metrics to measure success
3. **Iterate and Improve**: Continuously refine based on results
4. **Scale Gradually**: Expand successful practices across your organization

{{end -}}

{{- define "trend" -}}
## {{.Heading}}

{{.Line}}

### Impact on {{.Industry}} Companies in {{.City}}

This trend is particularly relevant for {{.Industry}} companies in {{.City}} because:

- **Market Dynamics**: {{.City}} market characteristics that make this trend important
- **Customer Behavior**: How {{.City}} customers are responding to this trend
- **Competitive Landscape**: How competitors are adopting this trend
- **Business Opportunities**: New opportunities this trend creates

### How to Prepare

1. **Stay Informed**: Keep up with industry news and developments
2. **Invest in Technology**: Upgrade your {{.Service}} tools and platforms
3. **Train Your Team**: Ensure your team understands the trend
4. **Test and Learn**: Experiment with trend-based {{.Service}} strategies

{{end -}}

{{- define "conclusion" -}}
## Conclusion

{{.Service}} is essential for {{.Industry}} companies looking to succeed in the competitive {{.City}} market. By following the strategies and best practices outlined in this guide, you can:

- Improve your {{.Service}} performance
- Gain a competitive advantage in {{.City}}
- Better serve your {{.Industry}} customers
- Drive sustainable business growth

### Next Steps

1. **Assess Your Current Situation**: Evaluate your existing {{.Service}} implementation
2. **Develop an Action Plan**: Create a roadmap for {{.Service}} improvement
3. **Start Implementation**: Begin with the highest-impact strategies
4. **Monitor and Optimize**: Continuously improve your {{.Service}} results

### Get Professional Help

If you need assistance with {{.Service}} for your {{.Industry}} company in {{.City}}, consider working with experienced professionals who understand both the {{.Industry}} industry and the {{.City}} market.

Remember, successful {{.Service}} implementation takes time, effort, and expertise. By following this guide and staying committed to continuous improvement, you can achieve significant results for your {{.Industry}} business in {{.City}}.

{{end -}}

{{- define "generic" -}}
## {{.Heading}}

This section covers important aspects of {{.Service}} for {{.Industry}} companies in {{.City}}.

### Key Points

- Understanding {{.City}} market dynamics
- Adapting {{.Service}} strategies for {{.Industry}} requirements
- Measuring success and ROI
- Continuous improvement and optimization

### Implementation Guidelines

1. **Research**: Understand your target market in {{.City}}
2. **Plan**: Develop a comprehensive {{.Service}} strategy
3. **Execute**: Implement with proper testing and monitoring
4. **Optimize**: Continuously improve based on results

{{end -}}
`
