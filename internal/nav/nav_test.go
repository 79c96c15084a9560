package nav

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func findItem(t *testing.T, m Menu, name string) RenderedItem {
	t.Helper()
	for _, it := range m.Items {
		if it.Name == name {
			return it
		}
	}
	t.Fatalf("item %q not found", name)
	return RenderedItem{}
}

func TestBuildActiveState(t *testing.T) {
	m := Build("/services/ai-seo", "")

	intelligent := findItem(t, m, "Intelligent Solutions")
	require.True(t, intelligent.Active)
	require.False(t, intelligent.Open)

	creative := findItem(t, m, "Creative Solutions")
	require.False(t, creative.Active, "a service outside the group must not light up the /services group")

	var active []string
	for _, c := range intelligent.Children {
		if c.Active {
			active = append(active, c.Name)
		}
	}
	require.Equal(t, []string{"AI SEO"}, active)

	m = Build("/services", "")
	require.True(t, findItem(t, m, "Creative Solutions").Active)

	m = Build("/industries/healthcare", "")
	require.True(t, findItem(t, m, "Industries").Active)
	require.False(t, findItem(t, m, "Pricing").Active)
}

func TestBuildOpenDropdown(t *testing.T) {
	m := Build("/", "Technical Solutions")
	require.Equal(t, "technical-solutions", m.Open)

	open := 0
	for _, it := range m.Items {
		if it.Open {
			open++
			require.Equal(t, "Technical Solutions", it.Name)
		}
	}
	require.Equal(t, 1, open)

	m = Build("/", "Pricing")
	require.Empty(t, m.Open, "flat links are not dropdowns")
	require.Equal(t, "mouseleave delay:150ms", m.CloseTrigger)
}

func TestToggle(t *testing.T) {
	require.Equal(t, "creative-solutions", Toggle("", "Creative Solutions"))
	require.Equal(t, "", Toggle("creative-solutions", "Creative Solutions"))
	require.Equal(t, "problem-solvers", Toggle("creative-solutions", "problem-solvers"))
	require.Equal(t, "", Toggle("creative-solutions", "unknown"))
}

func TestGroup(t *testing.T) {
	it, ok := Group("conversion-optimization")
	require.True(t, ok)
	require.Len(t, it.Children, 2)

	_, ok = Group("About")
	require.False(t, ok)
}

func TestBreadcrumbs(t *testing.T) {
	crumbs := Breadcrumbs("/")
	require.Equal(t, []Crumb{{Href: "/", Label: "Home", Active: true}}, crumbs)

	crumbs = Breadcrumbs("/services/local-seo/")
	require.Equal(t, []Crumb{
		{Href: "/", Label: "Home"},
		{Href: "/services", Label: "Services"},
		{Href: "/services/local-seo", Label: "Local Seo", Active: true},
	}, crumbs)

	crumbs = BreadcrumbsWith("/blog/seo-cost-in-austin", func(href string) (string, bool) {
		if href == "/blog/seo-cost-in-austin" {
			return "SEO Cost in Austin", true
		}
		return "", false
	})
	require.Len(t, crumbs, 3)
	require.Equal(t, "Blog", crumbs[1].Label)
	require.Equal(t, "SEO Cost in Austin", crumbs[2].Label)

	crumbs = Breadcrumbs("/case-studies")
	require.Equal(t, "Case Studies", crumbs[1].Label)
}
