package middleware

import (
	"fmt"
	"net/http"
)

// WriteError answers with a short plain message. htmx requests get HX-Reswap none
// so the current fragment stays in place, plus a site:error event the page can surface.
func WriteError(w http.ResponseWriter, r *http.Request, code int, msg string) {
	if IsHTMX(r.Context()) {
		w.Header().Set("HX-Reswap", "none")
		w.Header().Set("HX-Trigger", fmt.Sprintf(`{"site:error":{"status":%d}}`, code))
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Error(w, msg, code)
}
