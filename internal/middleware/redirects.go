package middleware

import (
	"net/http"
	"strings"
)

// LegacyRedirects maps retired URLs onto their current pages.
var LegacyRedirects = map[string]string{
	"/home":                                "/",
	"/about-us":                            "/about",
	"/contact-us":                          "/contact",
	"/pricing-plans":                       "/pricing",
	"/our-services":                        "/services",
	"/service":                             "/services",
	"/portfolio":                           "/case-studies",
	"/case-study":                          "/case-studies",
	"/blog-posts":                          "/blog",
	"/articles":                            "/blog",
	"/news":                                "/blog",
	"/resource":                            "/resources",
	"/industry":                            "/industries",
	"/location":                            "/locations",
	"/cities":                              "/locations",
	"/city":                                "/locations",
	"/services/web-design":                 "/services/website-design",
	"/services/seo-services":               "/services/seo",
	"/services/ai-services":                "/services/ai-consulting",
	"/services/digital-marketing-services": "/services/digital-marketing",
	"/services/ui-design":                  "/services/ui-ux-design",
	"/services/ux-design":                  "/services/ui-ux-design",
	"/services/local-seo-services":         "/services/local-seo",
	"/services/ppc":                        "/services/digital-marketing",
	"/services/ecommerce-development":      "/services/ecommerce-design",
}

// Redirects issues permanent redirects for legacy paths and strips trailing
// slashes. The query string is preserved.
func Redirects(table map[string]string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			if len(path) > 1 && strings.HasSuffix(path, "/") {
				path = strings.TrimRight(path, "/")
				if path == "" {
					path = "/"
				}
			}
			if dest, ok := table[path]; ok {
				path = dest
			}
			if path == r.URL.Path {
				next.ServeHTTP(w, r)
				return
			}
			if q := r.URL.RawQuery; q != "" {
				path += "?" + q
			}
			http.Redirect(w, r, path, http.StatusMovedPermanently)
		})
	}
}
