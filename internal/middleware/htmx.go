package middleware

import (
	"net/http"
)

// HTMX marks requests coming from htmx so handlers can answer with a fragment
// instead of the full layout. Responses vary on HX-Request so caches keep both.
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "HX-Request")
		if r.Header.Get("HX-Request") != "true" {
			next.ServeHTTP(w, r)
			return
		}
		req := HTMXRequest{
			Target:     r.Header.Get("HX-Target"),
			Trigger:    r.Header.Get("HX-Trigger"),
			CurrentURL: r.Header.Get("HX-Current-URL"),
			Boosted:    r.Header.Get("HX-Boosted") == "true",
		}
		next.ServeHTTP(w, r.WithContext(WithHTMX(r.Context(), req)))
	})
}
