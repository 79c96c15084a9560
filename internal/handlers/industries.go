package handlers

import (
	"fmt"
	"strings"

	"webvello.com/site/internal/catalog"
	"webvello.com/site/internal/cms"
	"webvello.com/site/internal/seo"
)

// IndustriesView is the /industries index.
type IndustriesView struct {
	Industries []catalog.Industry
}

// IndustryView is an /industries/{slug} page.
type IndustryView struct {
	Industry catalog.Industry
	Services []catalog.Service
	Cities   []catalog.City
	Posts    []cms.Post
	FAQs     []catalog.FAQ
}

// IndustriesIndex builds /industries.
func IndustriesIndex(env Env) PageData {
	env.Path = "/industries"
	vm := newPage(env,
		"Industries We Serve",
		"Web design, SEO and AI search strategies built for healthcare, legal, real estate, home services, SaaS, e-commerce and more.",
	)
	vm.Industries = &IndustriesView{Industries: catalog.Industries()}
	vm.addJSONLD(seo.PageSchema(env.Site, vm.pageSchema(seo.PageOptions{Kind: "CollectionPage"})))
	return vm
}

// Industry builds an industry landing page. Services are those tagged for the
// industry; when none are, the key services stand in.
func Industry(env Env, ind catalog.Industry, posts []cms.Post) PageData {
	env.Path = "/industries/" + ind.Slug
	vm := newPage(env,
		fmt.Sprintf("%s Marketing & Web Design", ind.Name),
		ind.Description,
	)
	lower := strings.ToLower(ind.Name)
	vm.SEO.Keywords = []string{lower + " marketing", lower + " seo", lower + " web design"}

	view := &IndustryView{Industry: ind, Cities: catalog.CitiesForIndustry(ind.Name), Posts: posts}
	for _, s := range catalog.Services() {
		for _, tag := range s.Industries {
			if strings.EqualFold(tag, ind.Name) || strings.EqualFold(tag, ind.Slug) {
				view.Services = append(view.Services, s)
				break
			}
		}
	}
	if len(view.Services) == 0 {
		view.Services = catalog.KeyServices()
	}
	view.FAQs = []catalog.FAQ{
		{
			Question: fmt.Sprintf("Do you have experience marketing %s businesses?", lower),
			Answer:   fmt.Sprintf("Yes. We build websites and search strategies for %s companies and tailor messaging, compliance and conversion paths to the sector.", lower),
		},
		{
			Question: fmt.Sprintf("How long does SEO take for %s companies?", lower),
			Answer:   "Most clients see early movement within 60 to 90 days and compounding results after six months, depending on competition and site health.",
		},
	}
	vm.Industry = view

	vm.addJSONLD(seo.PageSchema(env.Site, vm.pageSchema(seo.PageOptions{
		Service: ind.Name + " Marketing",
		FAQs:    qa(view.FAQs),
	})))
	return vm
}
